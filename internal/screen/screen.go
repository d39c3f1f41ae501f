package screen

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyplan/internal/ui/theme"
)

// Screen is one tab of the planner UI.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the tab label.
	Title() string

	// Capturing reports whether the screen is reading text input. Global
	// keys are not intercepted while it is.
	Capturing() bool

	// KeyBindings lists the screen's keys for the footer help.
	KeyBindings() []key.Binding
}

// Status is a one-line outcome message shown under a screen.
type Status struct {
	Text string
	Err  bool
}

// Info returns a non-error status.
func Info(text string) Status { return Status{Text: text} }

// Error returns an error status.
func Error(text string) Status { return Status{Text: text, Err: true} }

// View renders the status, or nothing when empty.
func (s Status) View() string {
	switch {
	case s.Text == "":
		return ""
	case s.Err:
		return theme.Weak.Render(s.Text)
	default:
		return theme.Done.Render(s.Text)
	}
}

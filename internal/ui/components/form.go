package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplan/internal/ui/theme"
)

// FormResult tells the owner of a Form what the last key did.
type FormResult int

const (
	FormActive FormResult = iota
	FormSubmitted
	FormCancelled
)

// Form is a stack of labelled text inputs. Enter moves to the next field
// and submits from the last one; Esc cancels.
type Form struct {
	Title  string
	Err    string
	labels []string
	inputs []textinput.Model
	focus  int
}

// NewForm creates a form with one input per label. The first input is
// focused.
func NewForm(title string, labels ...string) *Form {
	f := &Form{Title: title, labels: labels}
	for i, l := range labels {
		ti := textinput.New()
		ti.Placeholder = l
		ti.CharLimit = 64
		if i == 0 {
			ti.Focus()
		}
		f.inputs = append(f.inputs, ti)
	}
	return f
}

// Init returns the focus command of the first field.
func (f *Form) Init() tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	return f.inputs[f.focus].Focus()
}

// SetValue prefills field i.
func (f *Form) SetValue(i int, v string) {
	if i >= 0 && i < len(f.inputs) {
		f.inputs[i].SetValue(v)
	}
}

// Focused returns the index of the focused field.
func (f *Form) Focused() int {
	return f.focus
}

// Update handles a message and reports whether the form was submitted or
// cancelled.
func (f *Form) Update(msg tea.Msg) (FormResult, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc":
			return FormCancelled, nil
		case "enter":
			if f.focus == len(f.inputs)-1 {
				return FormSubmitted, nil
			}
			return FormActive, f.move(1)
		case "tab", "down":
			return FormActive, f.move(1)
		case "shift+tab", "up":
			return FormActive, f.move(-1)
		}
	}
	if len(f.inputs) == 0 {
		return FormActive, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return FormActive, cmd
}

func (f *Form) move(delta int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

// Values returns the trimmed value of every field in order.
func (f *Form) Values() []string {
	out := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		out[i] = strings.TrimSpace(in.Value())
	}
	return out
}

// View renders the form inside a card.
func (f *Form) View() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(20)
	rows := []string{theme.Title.Render(f.Title)}
	for i, in := range f.inputs {
		rows = append(rows, label.Render(f.labels[i])+in.View())
	}
	if f.Err != "" {
		rows = append(rows, theme.Weak.Render(f.Err))
	}
	rows = append(rows, theme.Hint.Render("enter next/submit · esc cancel"))
	return theme.Card.Render(strings.Join(rows, "\n"))
}

// Package app is the interactive planner: one planner.Service shared by
// tabbed screens for the session.
package app

import (
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/screens/graph"
	"github.com/abhisek/studyplan/internal/screens/plan"
	"github.com/abhisek/studyplan/internal/screens/syllabus"
	"github.com/abhisek/studyplan/internal/ui/theme"
)

var globalKeys = struct {
	Next, Prev, Quit key.Binding
}{
	Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	screens []screen.Screen
	active  int
	help    help.Model
	width   int
	height  int
}

// New creates the model with the subject, syllabus and planner tabs.
func New(svc *planner.Service) AppModel {
	return AppModel{
		screens: []screen.Screen{
			graph.New(svc),
			syllabus.New(svc),
			plan.New(svc),
		},
		help: help.New(),
	}
}

// Active returns the screen of the selected tab.
func (m AppModel) Active() screen.Screen {
	return m.screens[m.active]
}

func (m AppModel) Init() tea.Cmd {
	return m.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.Active().Capturing() {
			switch {
			case key.Matches(msg, globalKeys.Quit):
				return m, tea.Quit
			case key.Matches(msg, globalKeys.Next):
				return m.switchTo(m.active + 1)
			case key.Matches(msg, globalKeys.Prev):
				return m.switchTo(m.active - 1)
			}
			if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] < '1'+byte(len(m.screens)) {
				return m.switchTo(int(s[0] - '1'))
			}
		}
	}

	updated, cmd := m.Active().Update(msg)
	m.screens[m.active] = updated
	return m, cmd
}

func (m AppModel) switchTo(i int) (tea.Model, tea.Cmd) {
	n := len(m.screens)
	m.active = (i%n + n) % n
	return m, m.Active().Init()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	active := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true).Padding(0, 1)
	inactive := lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1)

	tabs := make([]string, len(m.screens))
	for i, s := range m.screens {
		label := string(rune('1'+i)) + " " + s.Title()
		if i == m.active {
			tabs[i] = active.Render(label)
		} else {
			tabs[i] = inactive.Render(label)
		}
	}
	header := theme.Title.Render("studyplan") + "  " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	bindings := m.Active().KeyBindings()
	if !m.Active().Capturing() {
		bindings = append(bindings, globalKeys.Next, globalKeys.Quit)
	}
	footer := m.help.ShortHelpView(bindings)

	content := m.Active().View(m.width, m.height)
	return strings.Join([]string{header, "", content, footer}, "\n")
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(svc *planner.Service) error {
	_, err := tea.NewProgram(New(svc)).Run()
	return err
}

// Package syllabus is the topic tree screen.
package syllabus

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/report"
	"github.com/abhisek/studyplan/internal/screen"
	tree "github.com/abhisek/studyplan/internal/syllabus"
	"github.com/abhisek/studyplan/internal/ui/components"
	"github.com/abhisek/studyplan/internal/ui/theme"
)

const barWidth = 40

var keys = struct {
	Up, Down, Toggle, Add, Remove key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle: key.NewBinding(key.WithKeys("space", " ", "enter"), key.WithHelp("space", "toggle complete")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add topic")),
	Remove: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
}

// TopicScreen shows the syllabus outline and edits it.
type TopicScreen struct {
	svc    *planner.Service
	cursor int
	form   *components.Form
	parent string
	status screen.Status
}

var _ screen.Screen = (*TopicScreen)(nil)

// New creates a TopicScreen over svc.
func New(svc *planner.Service) *TopicScreen {
	return &TopicScreen{svc: svc}
}

func (s *TopicScreen) Init() tea.Cmd { return nil }

func (s *TopicScreen) Title() string { return "Syllabus" }

func (s *TopicScreen) Capturing() bool { return s.form != nil }

func (s *TopicScreen) KeyBindings() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Toggle, keys.Add, keys.Remove}
}

func (s *TopicScreen) selected() (planner.TopicView, bool) {
	views := s.svc.Syllabus()
	if s.cursor < 0 || s.cursor >= len(views) {
		return planner.TopicView{}, false
	}
	return views[s.cursor], true
}

func (s *TopicScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.form != nil {
		res, cmd := s.form.Update(msg)
		switch res {
		case components.FormSubmitted:
			s.submit()
		case components.FormCancelled:
			s.form = nil
			s.status = screen.Status{}
		}
		return s, cmd
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, keys.Up):
		s.cursor = max(s.cursor-1, 0)
	case key.Matches(kmsg, keys.Down):
		s.cursor = min(s.cursor+1, max(len(s.svc.Syllabus())-1, 0))
	case key.Matches(kmsg, keys.Toggle):
		if v, ok := s.selected(); ok && s.svc.ToggleTopic(v.ID) {
			state := "complete"
			if v.Completed {
				state = "not complete"
			}
			s.status = screen.Info(fmt.Sprintf("%s marked %s", v.Title, state))
		}
	case key.Matches(kmsg, keys.Add):
		v, ok := s.selected()
		if !ok {
			return s, nil
		}
		s.parent = v.ID
		s.form = components.NewForm("Add topic under "+v.Title, "Title", "ID (optional)")
		return s, s.form.Init()
	case key.Matches(kmsg, keys.Remove):
		v, ok := s.selected()
		switch {
		case !ok:
		case v.ID == tree.RootID:
			s.status = screen.Error("The syllabus root cannot be removed")
		default:
			s.svc.RemoveSyllabusTopic(v.ID)
			s.status = screen.Info(fmt.Sprintf("Removed %s", v.Title))
			s.cursor = min(s.cursor, max(len(s.svc.Syllabus())-1, 0))
		}
	}
	return s, nil
}

func (s *TopicScreen) submit() {
	v := s.form.Values()
	title, id := v[0], v[1]
	if title == "" {
		s.form.Err = "title is required"
		return
	}
	if id == "" {
		id = uuid.NewString()
	}
	for _, t := range s.svc.Syllabus() {
		if t.ID == id {
			s.form.Err = fmt.Sprintf("topic ID %q is already used", id)
			return
		}
	}
	if !s.svc.AddSyllabusTopic(s.parent, id, title) {
		s.form.Err = fmt.Sprintf("parent topic %q no longer exists", s.parent)
		return
	}
	s.form = nil
	s.status = screen.Info(fmt.Sprintf("Added %s", title))
}

func (s *TopicScreen) View(width, height int) string {
	var b strings.Builder
	lines := strings.Split(strings.TrimRight(report.Syllabus(s.svc.Syllabus()), "\n"), "\n")
	for i, line := range lines {
		if i == s.cursor && s.form == nil {
			b.WriteString(theme.Title.Render("▸ "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("Overall", s.svc.Progress(), true, barWidth).View())
	b.WriteString("\n\n")
	if s.form != nil {
		b.WriteString(s.form.View())
		b.WriteString("\n")
	} else if st := s.status.View(); st != "" {
		b.WriteString(st)
		b.WriteString("\n")
	}
	return b.String()
}

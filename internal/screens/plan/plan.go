// Package plan is the study planner screen: dashboard stats, the ranked
// weakness list and the next topic to study.
package plan

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/report"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/ui/components"
	"github.com/abhisek/studyplan/internal/weakness"
)

var keys = struct {
	Next, Add key.Binding
}{
	Next: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "study weakest topic")),
	Add:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "add weakness")),
}

// PlanScreen ranks weak topics and hands out the next one to study.
type PlanScreen struct {
	svc     *planner.Service
	form    *components.Form
	current *weakness.Entry
	status  screen.Status
}

var _ screen.Screen = (*PlanScreen)(nil)

// New creates a PlanScreen over svc.
func New(svc *planner.Service) *PlanScreen {
	return &PlanScreen{svc: svc}
}

func (s *PlanScreen) Init() tea.Cmd { return nil }

func (s *PlanScreen) Title() string { return "Planner" }

func (s *PlanScreen) Capturing() bool { return s.form != nil }

func (s *PlanScreen) KeyBindings() []key.Binding {
	return []key.Binding{keys.Next, keys.Add}
}

// Current returns the topic most recently taken from the queue.
func (s *PlanScreen) Current() (weakness.Entry, bool) {
	if s.current == nil {
		return weakness.Entry{}, false
	}
	return *s.current, true
}

func (s *PlanScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
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
	case key.Matches(kmsg, keys.Next):
		e, ok := s.svc.NextWeakTopic()
		if !ok {
			s.current = nil
			s.status = screen.Info("No weak topics left.")
			return s, nil
		}
		s.current = &e
		s.status = screen.Status{}
	case key.Matches(kmsg, keys.Add):
		s.form = components.NewForm("Add Weakness", "Topic ID", "Topic name", "Weakness (0-100)", "Subject ID")
		return s, s.form.Init()
	}
	return s, nil
}

func (s *PlanScreen) submit() {
	v := s.form.Values()
	score, err := strconv.ParseFloat(v[2], 64)
	if err != nil {
		s.form.Err = "weakness must be a number"
		return
	}
	name := v[1]
	if name == "" {
		name = v[0]
	}
	if err := s.svc.AddWeakness(v[0], name, score, v[3]); err != nil {
		s.form.Err = err.Error()
		return
	}
	s.form = nil
	s.status = screen.Info(fmt.Sprintf("Queued %s", name))
}

func (s *PlanScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(report.Stats(s.svc.Stats()))
	b.WriteString("\n")
	if s.current != nil {
		b.WriteString(report.NextTopic(*s.current))
		b.WriteString("\n")
	}
	b.WriteString(report.Weaknesses(s.svc.Weaknesses()))
	b.WriteString("\n")
	if s.form != nil {
		b.WriteString(s.form.View())
		b.WriteString("\n")
	} else if st := s.status.View(); st != "" {
		b.WriteString(st)
		b.WriteString("\n")
	}
	return b.String()
}

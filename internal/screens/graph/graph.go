// Package graph is the subject screen: subjects in study order with their
// prerequisites, plus add and remove actions.
package graph

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/subjectgraph"
	"github.com/abhisek/studyplan/internal/ui/components"
	"github.com/abhisek/studyplan/internal/ui/theme"
)

var keys = struct {
	Up, Down, Add, Prereq, Remove key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add subject")),
	Prereq: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "add prerequisite")),
	Remove: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
}

type mode int

const (
	modeBrowse mode = iota
	modeAddSubject
	modeAddPrereq
)

// SubjectScreen lists subjects and edits the prerequisite graph.
type SubjectScreen struct {
	svc    *planner.Service
	cursor int
	mode   mode
	form   *components.Form
	status screen.Status
}

var _ screen.Screen = (*SubjectScreen)(nil)

// New creates a SubjectScreen over svc.
func New(svc *planner.Service) *SubjectScreen {
	return &SubjectScreen{svc: svc}
}

func (s *SubjectScreen) Init() tea.Cmd { return nil }

func (s *SubjectScreen) Title() string { return "Subjects" }

func (s *SubjectScreen) Capturing() bool { return s.form != nil }

func (s *SubjectScreen) KeyBindings() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Add, keys.Prereq, keys.Remove}
}

// rows is the study path, or insertion order if the graph cannot be
// ordered.
func (s *SubjectScreen) rows() []subjectgraph.Subject {
	if path := s.svc.StudyPath(); len(path) > 0 {
		return path
	}
	return s.svc.Subjects()
}

func (s *SubjectScreen) selected() (subjectgraph.Subject, bool) {
	rows := s.rows()
	if s.cursor < 0 || s.cursor >= len(rows) {
		return subjectgraph.Subject{}, false
	}
	return rows[s.cursor], true
}

func (s *SubjectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.form != nil {
		res, cmd := s.form.Update(msg)
		switch res {
		case components.FormSubmitted:
			s.submit()
		case components.FormCancelled:
			s.closeForm()
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
		s.cursor = min(s.cursor+1, max(len(s.rows())-1, 0))
	case key.Matches(kmsg, keys.Add):
		s.mode = modeAddSubject
		s.form = components.NewForm("Add Subject", "ID", "Name", "Score (0-100)")
		return s, s.form.Init()
	case key.Matches(kmsg, keys.Prereq):
		s.mode = modeAddPrereq
		s.form = components.NewForm("Add Prerequisite", "Subject ID", "Prerequisite ID")
		if subj, ok := s.selected(); ok {
			s.form.SetValue(0, subj.ID)
		}
		return s, s.form.Init()
	case key.Matches(kmsg, keys.Remove):
		if subj, ok := s.selected(); ok {
			s.svc.RemoveSubject(subj.ID)
			s.status = screen.Info(fmt.Sprintf("Removed %s", subj.Name))
			s.cursor = min(s.cursor, max(len(s.rows())-1, 0))
		}
	}
	return s, nil
}

func (s *SubjectScreen) submit() {
	v := s.form.Values()
	switch s.mode {
	case modeAddSubject:
		score, err := strconv.ParseFloat(v[2], 64)
		if err != nil {
			s.form.Err = "score must be a number"
			return
		}
		if err := s.svc.AddSubject(v[0], v[1], score); err != nil {
			s.form.Err = err.Error()
			return
		}
		s.closeForm()
		s.status = screen.Info(fmt.Sprintf("Added %s", v[1]))

	case modeAddPrereq:
		err := s.svc.AddPrerequisite(v[0], v[1])
		switch {
		case errors.Is(err, planner.ErrCycle):
			s.closeForm()
			s.status = screen.Error(fmt.Sprintf("Cannot add %s -> %s: it would create a cycle", v[1], v[0]))
		case err != nil:
			s.form.Err = err.Error()
		default:
			s.closeForm()
			s.status = screen.Info(fmt.Sprintf("%s is now a prerequisite of %s", v[1], v[0]))
		}
	}
}

func (s *SubjectScreen) closeForm() {
	s.form = nil
	s.mode = modeBrowse
	s.status = screen.Status{}
}

func (s *SubjectScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Subjects in study order"))
	b.WriteString("\n\n")

	rows := s.rows()
	if len(rows) == 0 {
		b.WriteString(theme.Hint.Render("No subjects yet. Press a to add one."))
		b.WriteString("\n")
	}
	for i, subj := range rows {
		cursor := "  "
		if i == s.cursor && s.form == nil {
			cursor = theme.Title.Render("▸ ")
		}
		line := fmt.Sprintf("%s%s %s", cursor,
			theme.Body.Render(subj.Name),
			theme.ScoreStyle(subj.Score).Render(fmt.Sprintf("[Score: %.0f%%]", subj.Score)))
		if pre := s.svc.Prerequisites(subj.ID); len(pre) > 0 {
			ids := make([]string, len(pre))
			for j, p := range pre {
				ids[j] = p.ID
			}
			line += " " + theme.Hint.Render("after "+strings.Join(ids, ", "))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

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

package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyplan/internal/config"
	"github.com/abhisek/studyplan/internal/logging"
	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/syllabus"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func send(t *testing.T, m AppModel, msgs ...tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(AppModel)
	}
	return m, cmd
}

func typeText(t *testing.T, m AppModel, text string) AppModel {
	t.Helper()
	for _, r := range text {
		m, _ = send(t, m, keyPress(r))
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func newService(t *testing.T) *planner.Service {
	t.Helper()
	return planner.New(config.DefaultConfig().Planner, logging.Discard())
}

func TestTabNavigation(t *testing.T) {
	m := New(newService(t))
	assert.Equal(t, "Subjects", m.Active().Title())

	m, _ = send(t, m, specialKey(tea.KeyTab))
	assert.Equal(t, "Syllabus", m.Active().Title())

	m, _ = send(t, m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	m, _ = send(t, m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, "Planner", m.Active().Title(), "shift+tab wraps")

	m, _ = send(t, m, keyPress('1'))
	assert.Equal(t, "Subjects", m.Active().Title())
}

func TestQuit(t *testing.T) {
	m := New(newService(t))
	_, cmd := send(t, m, keyPress('q'))
	assert.True(t, isQuit(cmd))

	_, cmd = send(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	assert.True(t, isQuit(cmd))
}

func TestFormCapturesGlobalKeys(t *testing.T) {
	svc := newService(t)
	m := New(svc)

	m, _ = send(t, m, keyPress('a'))
	m = typeText(t, m, "q1")
	m, cmd := send(t, m, specialKey(tea.KeyTab))
	assert.False(t, isQuit(cmd))
	assert.Equal(t, "Subjects", m.Active().Title(), "tab moves between fields while a form is open")

	m = typeText(t, m, "Quantum")
	m, _ = send(t, m, specialKey(tea.KeyEnter))
	m = typeText(t, m, "50")
	m, _ = send(t, m, specialKey(tea.KeyEnter))

	subj, ok := svc.Subject("q1")
	require.True(t, ok)
	assert.Equal(t, "Quantum", subj.Name)
	assert.False(t, m.Active().Capturing())
}

func TestSessionStateIsSharedAcrossTabs(t *testing.T) {
	svc := newService(t)
	require.True(t, svc.AddSyllabusTopic(syllabus.RootID, "t1", "Trees"))
	m := New(svc)

	// Subjects: add a weak subject.
	m, _ = send(t, m, keyPress('a'))
	m = typeText(t, m, "CS201")
	m, _ = send(t, m, specialKey(tea.KeyEnter))
	m = typeText(t, m, "Algorithms")
	m, _ = send(t, m, specialKey(tea.KeyEnter))
	m = typeText(t, m, "45")
	m, _ = send(t, m, specialKey(tea.KeyEnter))

	// Syllabus: complete the only topic.
	m, _ = send(t, m, keyPress('2'), specialKey(tea.KeyDown), keyPress(' '))
	assert.Equal(t, 100.0, svc.Progress())

	// Planner: the weak subject is queued and completion shows.
	m, _ = send(t, m, keyPress('3'))
	out := m.render()
	assert.Contains(t, out, "Algorithms (General)")
	assert.Contains(t, out, "100.0%")

	m, _ = send(t, m, keyPress('n'))
	assert.Empty(t, svc.Weaknesses())
	assert.Contains(t, m.render(), "Priority: 55.0")
}

func TestRenderShowsTabsAndHelp(t *testing.T) {
	out := New(newService(t)).render()
	for _, want := range []string{"Subjects", "Syllabus", "Planner", "add subject", "quit"} {
		assert.True(t, strings.Contains(out, want), "render missing %q", want)
	}
}

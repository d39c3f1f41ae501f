package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyplan/internal/planner"
)

var sample = filepath.Join("..", "internal", "curriculum", "testdata", "cs.yaml")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STUDYPLAN_CURRICULUM_PATH", "")
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPathCommand(t *testing.T) {
	out, err := run(t, "--curriculum", sample, "path")
	require.NoError(t, err)

	order := []string{"Programming Basics", "Data Structures", "Algorithms", "Databases", "Web Development"}
	last := -1
	for _, name := range order {
		i := strings.Index(out, name)
		require.GreaterOrEqual(t, i, 0, "missing %q", name)
		assert.Greater(t, i, last, "%q out of order", name)
		last = i
	}
}

func TestCheckCommand(t *testing.T) {
	out, err := run(t, "--curriculum", sample, "check", "CS101", "CS301")
	require.NoError(t, err)
	assert.Contains(t, out, "cycle")

	out, err = run(t, "--curriculum", sample, "check", "CS201", "CS101")
	require.NoError(t, err)
	assert.Contains(t, out, "safe")

	_, err = run(t, "--curriculum", sample, "check", "CS201")
	assert.Error(t, err)
}

func TestCheckCommand_UnknownSubject(t *testing.T) {
	for _, args := range [][]string{{"GHOST", "CS101"}, {"CS101", "GHOST"}} {
		_, err := run(t, append([]string{"--curriculum", sample, "check"}, args...)...)
		require.Error(t, err)
		assert.ErrorIs(t, err, planner.ErrUnknownSubject)
		assert.Contains(t, err.Error(), `"GHOST"`)
	}
}

func TestCycleInCurriculumIsReportedOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cycle.yaml")
	doc := "subjects:\n  - {id: A, name: A, score: 90, prerequisites: [B]}\n  - {id: B, name: B, score: 90, prerequisites: [A]}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := run(t, "--curriculum", path, "path")
	require.Error(t, err)
	assert.ErrorIs(t, err, planner.ErrCycle)
	assert.Equal(t, 1, strings.Count(err.Error(), "apply curriculum"))
}

func TestRunCommandRegistered(t *testing.T) {
	c, _, err := newRootCmd().Find([]string{"run"})
	require.NoError(t, err)
	assert.Equal(t, "run", c.Name())
	assert.NotNil(t, c.Flags().Lookup("log-file"))
}

func TestSyllabusToggle(t *testing.T) {
	out, err := run(t, "--curriculum", sample, "syllabus", "--toggle", "t2,t3")
	require.NoError(t, err)
	// mod1 = 100, mod2 = 50, electives = 0
	assert.Contains(t, out, "Computer Science")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "100.0%")
}

func TestWeakCommand(t *testing.T) {
	out, err := run(t, "--curriculum", sample, "weak")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "Graph Traversal"), strings.Index(out, "SQL Joins"))

	out, err = run(t, "--curriculum", sample, "weak", "--next", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Graph Traversal")
	assert.NotContains(t, out, "SQL Joins")

	out, err = run(t, "--curriculum", sample, "weak", "--next", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "No weak topics left.")

	_, err = run(t, "weak", "--next", "-1")
	assert.Error(t, err)
}

func TestStatsCommand(t *testing.T) {
	out, err := run(t, "--curriculum", sample, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Total subjects")
	assert.Contains(t, out, "16.7%")
}

func TestNoCurriculum(t *testing.T) {
	out, err := run(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "0.0%")
}

func TestMissingCurriculum(t *testing.T) {
	_, err := run(t, "--curriculum", filepath.Join(t.TempDir(), "gone.yaml"), "path")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "studyplan "))
}

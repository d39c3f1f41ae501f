package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/subjectgraph"
	"github.com/abhisek/studyplan/internal/weakness"
)

func TestStudyPath(t *testing.T) {
	out := StudyPath([]subjectgraph.Subject{
		{ID: "CS101", Name: "Programming Basics", Score: 85},
		{ID: "CS102", Name: "Data Structures", Score: 65},
	})
	assert.Contains(t, out, "Study Path")
	assert.Contains(t, out, "Programming Basics")
	assert.Contains(t, out, "[Score: 85%]")
	assert.Contains(t, out, "[Score: 65%]")
	assert.Less(t, strings.Index(out, "Programming Basics"), strings.Index(out, "Data Structures"))
}

func TestStudyPath_Empty(t *testing.T) {
	assert.Contains(t, StudyPath(nil), "cycle")
}

func TestWeaknesses(t *testing.T) {
	s := subjectgraph.NewSubject("CS201", "Algorithms", 45)
	out := Weaknesses([]weakness.Entry{
		weakness.NewEntry("graphs", "Graph Traversal", s),
	})
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "Graph Traversal")
	assert.Contains(t, out, "(Weakness: 55.0)")
	assert.Contains(t, out, "CS201")

	assert.Contains(t, Weaknesses(nil), "Nothing queued")
}

func TestNextTopic(t *testing.T) {
	s := subjectgraph.NewSubject("CS201", "Algorithms", 45)
	out := NextTopic(weakness.NewEntry("graphs", "Graph Traversal", s))
	assert.Contains(t, out, "Graph Traversal")
	assert.Contains(t, out, "Subject: Algorithms (CS201)")
	assert.Contains(t, out, "Priority: 55.0")

	orphan := NextTopic(weakness.Entry{TopicID: "x", TopicName: "X", Score: 10, SubjectID: "ghost"})
	assert.Contains(t, orphan, "Subject: ghost")
}

func TestSyllabus(t *testing.T) {
	out := Syllabus([]planner.TopicView{
		{ID: "root", Title: "Computer Science", Depth: 0, Percent: 25},
		{ID: "mod1", Title: "Fundamentals", Depth: 1, Percent: 50},
		{ID: "t1", Title: "Variables", Depth: 2, Leaf: true, Completed: true, Percent: 100},
		{ID: "t2", Title: "Loops", Depth: 2, Leaf: true},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "25.0%")
	assert.Contains(t, lines[1], "50.0%")
	assert.True(t, strings.HasPrefix(lines[2], "    "))
	assert.Contains(t, lines[2], "[x]")
	assert.Contains(t, lines[3], "[ ]")
}

func TestStats(t *testing.T) {
	out := Stats(planner.Stats{TotalSubjects: 5, StudyPathLength: 5, WeakTopics: 3, Completion: 25})
	assert.Contains(t, out, "Total subjects")
	assert.Contains(t, out, "25.0%")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "░")
}

func TestCheck(t *testing.T) {
	assert.Contains(t, Check("B", "A", true), "safe")
	assert.Contains(t, Check("A", "C", false), "C -> A")
	assert.Contains(t, Check("A", "C", false), "cycle")
}

package subjectgraph

import "fmt"

const (
	MinScore = 0.0
	MaxScore = 100.0
)

// Subject is a single node in the prerequisite graph.
type Subject struct {
	ID    string
	Name  string
	Score float64 // 0-100
}

// NewSubject creates a subject record.
func NewSubject(id, name string, score float64) *Subject {
	return &Subject{ID: id, Name: name, Score: score}
}

// Weakness returns how much study the subject still needs (100 - score).
// It is derived from Score on every call and never stored.
func (s *Subject) Weakness() float64 {
	return MaxScore - s.Score
}

// ValidScore reports whether score lies in [0, 100].
func ValidScore(score float64) bool {
	return score >= MinScore && score <= MaxScore
}

func (s *Subject) String() string {
	return fmt.Sprintf("%s (%.0f%%)", s.Name, s.Score)
}

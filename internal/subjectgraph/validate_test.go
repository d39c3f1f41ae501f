package subjectgraph

import (
	"strings"
	"testing"
)

func TestValidate_SampleGraphPasses(t *testing.T) {
	if err := sampleGraph().Validate(); err != nil {
		t.Fatalf("sample graph validation failed: %v", err)
	}
}

func TestValidate_DetectsCycle(t *testing.T) {
	g := chain()
	g.AddPrerequisite("A", "C")
	err := g.Validate()
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
	for _, id := range []string{"A", "B", "C"} {
		if !strings.Contains(err.Error(), id) {
			t.Errorf("error should name %q, got: %v", id, err)
		}
	}
}

func TestValidate_DetectsDanglingDependent(t *testing.T) {
	g := chain()
	g.dependents["A"] = append(g.dependents["A"], "ghost")
	err := g.Validate()
	if err == nil {
		t.Fatal("expected error for dangling dependent, got nil")
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error should mention the missing ID, got: %v", err)
	}
}

func TestValidate_DetectsOrphanEdgeList(t *testing.T) {
	g := chain()
	g.dependents["ghost"] = []string{"A"}
	err := g.Validate()
	if err == nil {
		t.Fatal("expected error for orphan edge list, got nil")
	}
	if !strings.Contains(err.Error(), "nonexistent subject \"ghost\"") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_DetectsDuplicateEdge(t *testing.T) {
	g := chain()
	g.dependents["A"] = append(g.dependents["A"], "B")
	err := g.Validate()
	if err == nil {
		t.Fatal("expected error for duplicate edge, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidate_DetectsScoreOutOfRange(t *testing.T) {
	g := chain()
	g.AddSubject(NewSubject("D", "Delta", 120))
	err := g.Validate()
	if err == nil {
		t.Fatal("expected error for score out of range, got nil")
	}
	if !strings.Contains(err.Error(), "score must be in [0, 100]") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidScore(t *testing.T) {
	tests := []struct {
		score float64
		want  bool
	}{
		{0, true},
		{100, true},
		{55.5, true},
		{-0.1, false},
		{100.01, false},
	}
	for _, tt := range tests {
		if got := ValidScore(tt.score); got != tt.want {
			t.Errorf("ValidScore(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

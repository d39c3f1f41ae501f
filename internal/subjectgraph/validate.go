package subjectgraph

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Validate checks the graph for structural issues.
// Returns a combined error describing all problems found, or nil if valid.
func (g *Graph) Validate() error {
	var errs []string

	for _, id := range g.order {
		s := g.subjects[id]
		if s == nil {
			errs = append(errs, fmt.Sprintf("subject %q is listed but has no record", id))
			continue
		}
		if s.ID != id {
			errs = append(errs, fmt.Sprintf("subject registered as %q carries ID %q", id, s.ID))
		}
		if !ValidScore(s.Score) {
			errs = append(errs, fmt.Sprintf("subject %q: score must be in [0, 100], got %.2f", id, s.Score))
		}
	}

	// Check for dangling endpoints and duplicate edges
	froms := slices.Sorted(maps.Keys(g.dependents))
	for _, from := range froms {
		if !g.has(from) {
			errs = append(errs, fmt.Sprintf("edge list for nonexistent subject %q", from))
		}
		seen := make(map[string]bool, len(g.dependents[from]))
		for _, to := range g.dependents[from] {
			if !g.has(to) {
				errs = append(errs, fmt.Sprintf("subject %q has dependent %q which does not exist", from, to))
			}
			if seen[to] {
				errs = append(errs, fmt.Sprintf("duplicate edge %q -> %q", from, to))
			}
			seen[to] = true
		}
	}

	if g.HasCycle() {
		errs = append(errs, fmt.Sprintf("cycle detected involving subjects: %s", strings.Join(g.cycleMembers(), ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("subject graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// cycleMembers returns the subjects Kahn's algorithm could not emit, in
// insertion order. These are the subjects on or downstream of a cycle.
func (g *Graph) cycleMembers() []string {
	emitted := make(map[string]bool, len(g.subjects))
	inDegree := make(map[string]int, len(g.subjects))
	for _, deps := range g.dependents {
		for _, to := range deps {
			inDegree[to]++
		}
	}
	var queue []string
	for _, id := range g.order {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		emitted[id] = true
		for _, to := range g.dependents[id] {
			inDegree[to]--
			if inDegree[to] == 0 && g.has(to) {
				queue = append(queue, to)
			}
		}
	}

	var members []string
	for _, id := range g.order {
		if !emitted[id] {
			members = append(members, id)
		}
	}
	return members
}

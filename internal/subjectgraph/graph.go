package subjectgraph

import (
	"maps"
	"slices"
)

// Graph holds subjects and their prerequisite edges. Edges point from a
// prerequisite to the subjects that depend on it.
//
// Graph is not safe for concurrent use. Callers that share a Graph across
// goroutines must serialize access and treat CanAddDependency followed by
// AddPrerequisite as one critical section.
type Graph struct {
	subjects   map[string]*Subject
	dependents map[string][]string
	order      []string // subject IDs in insertion order
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		subjects:   make(map[string]*Subject),
		dependents: make(map[string][]string),
	}
}

// AddSubject registers s. Re-adding an existing ID replaces the record but
// keeps its edges and its position in the enumeration order.
func (g *Graph) AddSubject(s *Subject) {
	if s == nil {
		return
	}
	if _, ok := g.subjects[s.ID]; !ok {
		g.order = append(g.order, s.ID)
	}
	g.subjects[s.ID] = s
	if _, ok := g.dependents[s.ID]; !ok {
		g.dependents[s.ID] = []string{}
	}
}

// AddPrerequisite adds the edge prerequisiteID -> subjectID. Unknown IDs and
// duplicate edges are ignored. It does not guard against cycles; use
// CanAddDependency first.
func (g *Graph) AddPrerequisite(subjectID, prerequisiteID string) {
	if !g.has(subjectID) || !g.has(prerequisiteID) {
		return
	}
	if slices.Contains(g.dependents[prerequisiteID], subjectID) {
		return
	}
	g.dependents[prerequisiteID] = append(g.dependents[prerequisiteID], subjectID)
}

// CanAddDependency reports whether the edge prerequisiteID -> subjectID can
// be added without creating a cycle. Self-loops are always refused.
//
// The check never mutates the graph: the new edge closes a cycle exactly
// when prerequisiteID is already reachable from subjectID.
func (g *Graph) CanAddDependency(subjectID, prerequisiteID string) bool {
	if subjectID == prerequisiteID {
		return false
	}
	if !g.has(subjectID) || !g.has(prerequisiteID) {
		return true
	}
	return !g.reachable(subjectID, prerequisiteID)
}

// reachable runs an iterative DFS along dependent edges from -> ... -> to.
func (g *Graph) reachable(from, to string) bool {
	visited := make(map[string]bool, len(g.subjects))
	stack := []string{from}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == to {
			return true
		}
		if visited[id] {
			continue
		}
		visited[id] = true
		for _, dep := range g.dependents[id] {
			if !visited[dep] {
				stack = append(stack, dep)
			}
		}
	}
	return false
}

// TopologicalOrder returns all subjects so that every prerequisite comes
// before its dependents (Kahn's algorithm). Ties are broken by insertion
// order. If the graph contains a cycle the result is empty, never a partial
// order.
func (g *Graph) TopologicalOrder() []*Subject {
	inDegree := make(map[string]int, len(g.subjects))
	for _, id := range g.order {
		inDegree[id] = 0
	}
	for _, deps := range g.dependents {
		for _, depID := range deps {
			inDegree[depID]++
		}
	}

	var queue []string
	for _, id := range g.order {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	result := make([]*Subject, 0, len(g.subjects))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		result = append(result, g.subjects[id])

		for _, depID := range g.dependents[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 && g.has(depID) {
				queue = append(queue, depID)
			}
		}
	}

	if len(result) != len(g.subjects) {
		return []*Subject{}
	}
	return result
}

// HasCycle reports whether the graph currently contains a cycle.
func (g *Graph) HasCycle() bool {
	return len(g.TopologicalOrder()) != len(g.subjects)
}

// RemoveSubject deletes the subject, its outgoing edges and every edge
// pointing at it.
func (g *Graph) RemoveSubject(id string) {
	if !g.has(id) {
		return
	}
	delete(g.subjects, id)
	delete(g.dependents, id)
	for from, deps := range g.dependents {
		g.dependents[from] = slices.DeleteFunc(deps, func(d string) bool { return d == id })
	}
	g.order = slices.DeleteFunc(g.order, func(o string) bool { return o == id })
}

// Subject returns the subject registered under id.
func (g *Graph) Subject(id string) (*Subject, bool) {
	s, ok := g.subjects[id]
	return s, ok
}

// Subjects returns all subjects in insertion order.
func (g *Graph) Subjects() []*Subject {
	result := make([]*Subject, 0, len(g.order))
	for _, id := range g.order {
		result = append(result, g.subjects[id])
	}
	return result
}

// Len returns the number of registered subjects.
func (g *Graph) Len() int {
	return len(g.subjects)
}

// Dependents returns the subjects that directly require id.
func (g *Graph) Dependents(id string) []*Subject {
	depIDs := g.dependents[id]
	result := make([]*Subject, 0, len(depIDs))
	for _, depID := range depIDs {
		if s, ok := g.subjects[depID]; ok {
			result = append(result, s)
		}
	}
	return result
}

// Prerequisites returns the direct prerequisites of id, in insertion order.
func (g *Graph) Prerequisites(id string) []*Subject {
	var result []*Subject
	for _, from := range g.order {
		if slices.Contains(g.dependents[from], id) {
			result = append(result, g.subjects[from])
		}
	}
	return result
}

// Roots returns all subjects with no prerequisites, in insertion order.
func (g *Graph) Roots() []*Subject {
	hasIncoming := make(map[string]bool, len(g.subjects))
	for _, deps := range g.dependents {
		for _, depID := range deps {
			hasIncoming[depID] = true
		}
	}
	var result []*Subject
	for _, id := range g.order {
		if !hasIncoming[id] {
			result = append(result, g.subjects[id])
		}
	}
	return result
}

// Edges returns a copy of the adjacency lists keyed by prerequisite ID.
func (g *Graph) Edges() map[string][]string {
	edges := maps.Clone(g.dependents)
	for id, deps := range edges {
		edges[id] = slices.Clone(deps)
	}
	return edges
}

func (g *Graph) has(id string) bool {
	_, ok := g.subjects[id]
	return ok
}

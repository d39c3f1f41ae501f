package planner

import "errors"

var (
	// ErrUnknownSubject indicates an ID that is not registered in the graph.
	ErrUnknownSubject = errors.New("unknown subject")

	// ErrCycle indicates a prerequisite that would close a dependency loop.
	ErrCycle = errors.New("prerequisite would create a cycle")

	// ErrInvalidScore indicates a score outside [0, 100].
	ErrInvalidScore = errors.New("score must be in [0, 100]")

	// ErrEmptyID indicates a subject or topic without an identifier.
	ErrEmptyID = errors.New("id must not be empty")
)

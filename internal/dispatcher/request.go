package dispatcher

import "github.com/dshills/circuitstorm/internal/engine"

// Mutation intents.

// AddComponentRequest asks for a new component in the given group.
// Callers validate Value > 0 before dispatching; the engine rejects bad
// values anyway.
type AddComponentRequest struct {
	Type  engine.Type
	Value float64
	Group engine.Group
}

// RemoveComponentRequest asks for the removal of a component by ID.
type RemoveComponentRequest struct {
	ID engine.ID
}

// UndoRequest asks for the most recent mutation to be rolled back.
type UndoRequest struct{}

// Query intents.

// FindComponentRequest looks a component up by ID.
type FindComponentRequest struct {
	ID engine.ID
}

// ListGroupsRequest asks for the current group membership ordering.
type ListGroupsRequest struct{}

// AnalyzeRequest asks for aggregate resistance and impedance magnitude
// at the given frequency. A zero or negative frequency falls back to the
// dispatcher's configured default.
type AnalyzeRequest struct {
	FrequencyHz float64
}

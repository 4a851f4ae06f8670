package engine

import (
	"fmt"
	"sync"

	"github.com/dshills/circuitstorm/internal/engine/circuit"
	"github.com/dshills/circuitstorm/internal/engine/history"
	"github.com/dshills/circuitstorm/internal/engine/impedance"
)

// Re-export commonly used types for convenience.
type (
	// ID is a component identifier.
	ID = circuit.ID

	// Type is the component kind.
	Type = circuit.Type

	// Group is the circuit group membership.
	Group = circuit.Group

	// Component is a single circuit element.
	Component = circuit.Component

	// Report aggregates circuit totals at one analysis frequency.
	Report = impedance.Report
)

// Re-export constants.
const (
	Resistor  = circuit.Resistor
	Capacitor = circuit.Capacitor
	Inductor  = circuit.Inductor

	Series   = circuit.Series
	Parallel = circuit.Parallel
)

// Engine is the main facade for the circuit core. It pairs the component
// registry with the undo history so that snapshot capture and mutation
// are observed atomically, and exposes analysis queries over the current
// group membership.
//
// All operations are thread-safe and can be called from multiple
// goroutines.
type Engine struct {
	mu sync.RWMutex

	// Core components
	reg     *circuit.Registry
	history *history.History

	// Configuration
	maxUndoDepth int
	logCapacity  int
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		maxUndoDepth: DefaultMaxUndoDepth,
		logCapacity:  DefaultLogCapacity,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.reg = circuit.NewRegistry()
	e.history = history.New(
		history.WithMaxDepth(e.maxUndoDepth),
		history.WithLogCapacity(e.logCapacity),
	)

	return e
}

// ============================================================================
// Mutations
// ============================================================================

// Add creates a component in the given group and returns its ID. The
// pre-mutation state is snapshotted for undo and the operation is logged.
// A non-positive value returns ErrInvalidValue with no state change.
func (e *Engine) Add(t Type, value float64, g Group) (ID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	snapshot := e.reg.Snapshot()
	id, err := e.reg.Add(t, value, g)
	if err != nil {
		return 0, err
	}

	e.history.Push(snapshot)
	e.history.Log(fmt.Sprintf("Added %s to %s circuit (ID=%d, value=%g)", t, g, id, value))
	return id, nil
}

// Remove deletes the component with the given ID, snapshotting the
// pre-mutation state and logging the operation. Removing an unknown ID
// returns false and leaves the registry, undo stack, and log untouched.
func (e *Engine) Remove(id ID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	snapshot := e.reg.Snapshot()
	if !e.reg.Remove(id) {
		return false
	}

	e.history.Push(snapshot)
	e.history.Log(fmt.Sprintf("Removed component ID=%d", id))
	return true
}

// Undo restores the most recent snapshot, replacing the live component
// set and rebuilding both group lists in stored order. An empty history
// returns ErrNothingToUndo; treat it as a benign boundary, not a fault.
// Undo itself is neither snapshotted nor logged.
func (e *Engine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	snapshot, err := e.history.Undo()
	if err != nil {
		return err
	}
	e.reg.Restore(snapshot)
	return nil
}

// ============================================================================
// Queries
// ============================================================================

// Find returns the component with the given ID. It never mutates state
// or history.
func (e *Engine) Find(id ID) (Component, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.reg.Find(id)
}

// Groups returns the series and parallel membership lists in insertion
// order.
func (e *Engine) Groups() (series, parallel []ID) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.reg.Groups()
}

// Components returns the component set in insertion order.
func (e *Engine) Components() []Component {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.reg.Components()
}

// Len returns the number of live components.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.reg.Len()
}

// Analyze computes aggregate resistance and impedance magnitude for both
// groups at the given frequency in hertz.
func (e *Engine) Analyze(freqHz float64) Report {
	e.mu.RLock()
	defer e.mu.RUnlock()

	series, parallel := e.reg.Groups()
	return impedance.Analyze(e.reg, series, parallel, freqHz)
}

// ============================================================================
// History inspection
// ============================================================================

// CanUndo returns true if undo is available.
func (e *Engine) CanUndo() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.history.CanUndo()
}

// UndoDepth returns the number of stored undo snapshots.
func (e *Engine) UndoDepth() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.history.Depth()
}

// OperationLog returns the bounded operation log, oldest entry first.
func (e *Engine) OperationLog() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.history.Entries()
}

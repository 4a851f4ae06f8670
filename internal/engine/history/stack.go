package history

import (
	"errors"

	"github.com/dshills/circuitstorm/internal/engine/circuit"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
)

// DefaultLogCapacity is the default bound of the operation log.
const DefaultLogCapacity = 20

// History manages the undo snapshot stack and the bounded operation log
// for a circuit registry. Snapshots are full copies of the component set
// taken before each mutation; the log is informational only and plays no
// part in undo reconstruction.
//
// History is not safe for concurrent use. The engine facade guards the
// registry/history pair with a single lock.
type History struct {
	snapshots [][]circuit.Component
	maxDepth  int

	log    []string
	logCap int
}

// Option configures a History during creation.
type Option func(*History)

// WithMaxDepth caps the undo stack at the given depth. Pushing beyond the
// cap discards the oldest snapshot. Zero (the default) leaves the stack
// unbounded, limited only by memory.
func WithMaxDepth(depth int) Option {
	return func(h *History) {
		if depth >= 0 {
			h.maxDepth = depth
		}
	}
}

// WithLogCapacity sets the operation log bound.
func WithLogCapacity(capacity int) Option {
	return func(h *History) {
		if capacity > 0 {
			h.logCap = capacity
		}
	}
}

// New creates a History with the given options.
func New(opts ...Option) *History {
	h := &History{logCap: DefaultLogCapacity}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Push stores a pre-mutation snapshot on the undo stack. The caller must
// hand over an independent copy; History never copies again and never
// mutates what it stores.
func (h *History) Push(snapshot []circuit.Component) {
	h.snapshots = append(h.snapshots, snapshot)

	if h.maxDepth > 0 && len(h.snapshots) > h.maxDepth {
		excess := len(h.snapshots) - h.maxDepth
		h.snapshots = h.snapshots[excess:]
	}
}

// Undo pops and returns the most recent snapshot. The caller is
// responsible for restoring it into the registry. An empty stack returns
// ErrNothingToUndo and changes nothing.
func (h *History) Undo() ([]circuit.Component, error) {
	if len(h.snapshots) == 0 {
		return nil, ErrNothingToUndo
	}

	snapshot := h.snapshots[len(h.snapshots)-1]
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return snapshot, nil
}

// CanUndo returns true if at least one snapshot is stored.
func (h *History) CanUndo() bool {
	return len(h.snapshots) > 0
}

// Depth returns the number of stored snapshots.
func (h *History) Depth() int {
	return len(h.snapshots)
}

// Log appends a human-readable operation description, evicting the
// oldest entry first when the log is at capacity.
func (h *History) Log(description string) {
	h.log = append(h.log, description)
	if len(h.log) > h.logCap {
		h.log = h.log[len(h.log)-h.logCap:]
	}
}

// Entries returns a copy of the operation log in insertion order, oldest
// first.
func (h *History) Entries() []string {
	out := make([]string, len(h.log))
	copy(out, h.log)
	return out
}

// LogCapacity returns the operation log bound.
func (h *History) LogCapacity() int {
	return h.logCap
}

package engine

// Default configuration values.
const (
	// DefaultMaxUndoDepth leaves the undo stack unbounded.
	DefaultMaxUndoDepth = 0

	// DefaultLogCapacity bounds the operation log.
	DefaultLogCapacity = 20
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithMaxUndoDepth caps the undo stack at the given depth. Zero leaves
// it unbounded.
func WithMaxUndoDepth(depth int) Option {
	return func(e *Engine) {
		if depth >= 0 {
			e.maxUndoDepth = depth
		}
	}
}

// WithLogCapacity sets the operation log bound.
func WithLogCapacity(capacity int) Option {
	return func(e *Engine) {
		if capacity > 0 {
			e.logCapacity = capacity
		}
	}
}

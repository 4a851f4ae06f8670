// Package history provides snapshot-based undo for the circuit registry.
//
// Undo works on whole states: a full copy of the component set is pushed
// before every mutation, and undoing pops the most recent copy back. This
// trades memory for simplicity and makes restoration trivially correct.
//
// The undo stack is unbounded by default but can be capped with
// WithMaxDepth for long-running hosts.
// Separately, a bounded FIFO log of operation descriptions (capacity 20
// by default) is kept for display; it never participates in undo.
package history

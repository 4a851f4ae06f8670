// Package circuit provides the circuit data model: component types,
// group membership, and the registry that owns both.
//
// # Components
//
// A Component is one of three kinds (Resistor, Capacitor, Inductor) with
// a positive value and a fixed group membership (Series or Parallel).
// Components are immutable after creation; to move a component between
// groups, remove it and add a new one.
//
// # Registry
//
// The Registry owns the component set and the two ordered membership
// lists. IDs are monotonic from 1 and never reused. Snapshot/Restore
// support whole-state undo: a snapshot is a full copy of the component
// set, and restoring one rebuilds both group lists in stored order.
package circuit

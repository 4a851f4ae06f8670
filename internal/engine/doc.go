// Package engine provides the circuit core: component registry, undo
// history, and impedance analysis behind a single thread-safe facade.
//
// The Engine pairs the registry and history under one lock so that a
// concurrent reader never observes a half-applied mutation (a component
// gone from a group list but still in the set, or the reverse).
//
// Subpackages:
//   - circuit: component data model and registry
//   - history: snapshot undo stack and bounded operation log
//   - impedance: pure per-component and aggregate impedance math
//
// A typical embedding:
//
//	eng := engine.New(engine.WithMaxUndoDepth(100))
//	id, err := eng.Add(engine.Resistor, 100, engine.Series)
//	report := eng.Analyze(50)
//	err = eng.Undo()
package engine

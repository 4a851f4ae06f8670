// Package impedance computes per-component complex impedance and
// series/parallel aggregates at a single analysis frequency.
//
// All functions are stateless and side-effect-free. Two families of
// aggregate exist: resistance-only summaries that count resistors alone,
// and full complex impedance magnitudes that include every component
// type. Degenerate inputs (empty groups, all-zero reciprocal sums)
// resolve to 0 by convention rather than signaling an error.
package impedance

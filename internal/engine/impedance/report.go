package impedance

import "github.com/dshills/circuitstorm/internal/engine/circuit"

// Report aggregates circuit totals at a single analysis frequency.
type Report struct {
	// FrequencyHz is the analysis frequency the report was computed at.
	FrequencyHz float64

	// ComponentCount is the total number of live components.
	ComponentCount int

	// SeriesCount and ParallelCount are per-group member counts.
	SeriesCount   int
	ParallelCount int

	// SeriesResistance is the resistor-only sum of the series group.
	SeriesResistance float64

	// SeriesMagnitude is |Z| of the series group, all types included.
	SeriesMagnitude float64

	// ParallelResistance is the resistor-only harmonic sum of the
	// parallel group.
	ParallelResistance float64

	// ParallelMagnitude is |Z| of the parallel group, all types included.
	ParallelMagnitude float64

	// Combined reports the two groups chained end to end. It is only
	// meaningful when both groups are non-empty.
	Combined           bool
	CombinedResistance float64
	CombinedMagnitude  float64
}

// Analyze computes a full Report for the given group memberships at the
// given frequency. It is pure: same inputs, same report.
func Analyze(lk Lookup, series, parallel []circuit.ID, freqHz float64) Report {
	r := Report{
		FrequencyHz:        freqHz,
		ComponentCount:     len(series) + len(parallel),
		SeriesCount:        len(series),
		ParallelCount:      len(parallel),
		SeriesResistance:   SeriesResistance(lk, series),
		SeriesMagnitude:    SeriesMagnitude(lk, series, freqHz),
		ParallelResistance: ParallelResistance(lk, parallel),
		ParallelMagnitude:  ParallelMagnitude(lk, parallel, freqHz),
	}

	if len(series) > 0 && len(parallel) > 0 {
		r.Combined = true
		r.CombinedResistance = r.SeriesResistance + r.ParallelResistance
		r.CombinedMagnitude = r.SeriesMagnitude + r.ParallelMagnitude
	}
	return r
}

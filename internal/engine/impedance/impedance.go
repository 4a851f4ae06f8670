package impedance

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"

	"github.com/dshills/circuitstorm/internal/engine/circuit"
)

// OpenCircuitOhms stands in for the infinite impedance of a zero-value
// capacitor. A large finite real value keeps downstream aggregation
// well-defined; callers comparing against it should treat anything at or
// above this magnitude as an open circuit.
const OpenCircuitOhms = 1e10

// Lookup resolves component IDs to components. *circuit.Registry
// satisfies it.
type Lookup interface {
	Find(id circuit.ID) (circuit.Component, bool)
}

// Of returns the complex impedance of a single component at the given
// frequency in hertz: R for resistors, jωL for inductors, -j/(ωC) for
// capacitors, with ω = 2πf. A zero-value capacitor yields the
// OpenCircuitOhms sentinel.
func Of(c circuit.Component, freqHz float64) complex128 {
	switch c.Type {
	case circuit.Resistor:
		return complex(c.Value, 0)
	case circuit.Inductor:
		omega := 2 * math.Pi * freqHz
		return complex(0, omega*c.Value)
	case circuit.Capacitor:
		if c.Value == 0 {
			return complex(OpenCircuitOhms, 0)
		}
		omega := 2 * math.Pi * freqHz
		return complex(0, -1/(omega*c.Value))
	default:
		return 0
	}
}

// SeriesResistance sums the values of the resistor members. Capacitors
// and inductors contribute nothing; this is a resistance summary, not an
// impedance summary. IDs that fail lookup are skipped.
func SeriesResistance(lk Lookup, ids []circuit.ID) float64 {
	values := resistorValues(lk, ids)
	if len(values) == 0 {
		return 0
	}
	return floats.Sum(values)
}

// ParallelResistance returns the harmonic sum of the resistor members'
// values, skipping zero values and non-resistors. With no eligible
// member the result is 0: no resistance contribution, not an error.
func ParallelResistance(lk Lookup, ids []circuit.ID) float64 {
	values := resistorValues(lk, ids)
	inv := 0.0
	for _, v := range values {
		if v != 0 {
			inv += 1 / v
		}
	}
	if inv == 0 {
		return 0
	}
	return 1 / inv
}

// SeriesMagnitude returns |Σ Z_k| over all members at the given
// frequency, every component type included.
func SeriesMagnitude(lk Lookup, ids []circuit.ID, freqHz float64) float64 {
	zs := memberImpedances(lk, ids, freqHz)
	if len(zs) == 0 {
		return 0
	}
	return cmplx.Abs(cmplxs.Sum(zs))
}

// ParallelMagnitude returns |1 / Σ (1/Z_k)| over all members, skipping
// any member whose impedance is exactly zero. If the reciprocal sum is
// exactly zero the result is 0.
func ParallelMagnitude(lk Lookup, ids []circuit.ID, freqHz float64) float64 {
	zs := memberImpedances(lk, ids, freqHz)
	recips := make([]complex128, 0, len(zs))
	for _, z := range zs {
		if z != 0 {
			recips = append(recips, 1/z)
		}
	}
	if len(recips) == 0 {
		return 0
	}
	inv := cmplxs.Sum(recips)
	if inv == 0 {
		return 0
	}
	return cmplx.Abs(1 / inv)
}

func resistorValues(lk Lookup, ids []circuit.ID) []float64 {
	values := make([]float64, 0, len(ids))
	for _, id := range ids {
		c, ok := lk.Find(id)
		if ok && c.Type == circuit.Resistor {
			values = append(values, c.Value)
		}
	}
	return values
}

func memberImpedances(lk Lookup, ids []circuit.ID, freqHz float64) []complex128 {
	zs := make([]complex128, 0, len(ids))
	for _, id := range ids {
		if c, ok := lk.Find(id); ok {
			zs = append(zs, Of(c, freqHz))
		}
	}
	return zs
}

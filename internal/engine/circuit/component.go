package circuit

// ID uniquely identifies a component within a registry.
// IDs are assigned monotonically starting at 1 and are never reused,
// even after the component is removed.
type ID int

// Type identifies the kind of a circuit component.
type Type int

const (
	// Resistor has a purely real impedance equal to its value in ohms.
	Resistor Type = iota
	// Capacitor has a purely imaginary, negative reactance of -1/(2πfC).
	Capacitor
	// Inductor has a purely imaginary, positive reactance of 2πfL.
	Inductor
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case Resistor:
		return "Resistor"
	case Capacitor:
		return "Capacitor"
	case Inductor:
		return "Inductor"
	default:
		return "Unknown"
	}
}

// Unit returns the SI unit symbol for the type's value.
func (t Type) Unit() string {
	switch t {
	case Resistor:
		return "Ohm"
	case Capacitor:
		return "F"
	case Inductor:
		return "H"
	default:
		return ""
	}
}

// ParseType parses a string into a Type.
// Accepts full names and single-letter abbreviations, case-insensitive.
func ParseType(s string) (Type, bool) {
	switch s {
	case "resistor", "Resistor", "RESISTOR", "r", "R":
		return Resistor, true
	case "capacitor", "Capacitor", "CAPACITOR", "c", "C":
		return Capacitor, true
	case "inductor", "Inductor", "INDUCTOR", "l", "L":
		return Inductor, true
	default:
		return Resistor, false
	}
}

// Group identifies which circuit group a component belongs to.
type Group int

const (
	// Series places the component in the flat series chain.
	Series Group = iota
	// Parallel places the component on its own parallel branch.
	Parallel
)

// String returns the group name in display form.
func (g Group) String() string {
	switch g {
	case Series:
		return "SERIES"
	case Parallel:
		return "PARALLEL"
	default:
		return "UNKNOWN"
	}
}

// ParseGroup parses a string into a Group, case-insensitive.
func ParseGroup(s string) (Group, bool) {
	switch s {
	case "series", "Series", "SERIES", "s", "S":
		return Series, true
	case "parallel", "Parallel", "PARALLEL", "p", "P":
		return Parallel, true
	default:
		return Series, false
	}
}

// Component is a single circuit element. Components are immutable once
// created; undo restores whole prior registry states rather than editing
// fields in place.
type Component struct {
	// ID is the unique identifier assigned at creation.
	ID ID

	// Type is the component kind.
	Type Type

	// Value is the positive magnitude: ohms, farads, or henries
	// depending on Type.
	Value float64

	// Group is the circuit group membership, fixed at creation.
	Group Group
}

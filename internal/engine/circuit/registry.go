package circuit

// Registry owns the component set and the two circuit group membership
// lists. Every live component's ID appears in exactly one of the two
// lists, in insertion order.
//
// Registry is not safe for concurrent use. The engine facade guards the
// registry/history pair with a single lock so snapshot capture and
// mutation are observed atomically.
type Registry struct {
	components []Component
	series     []ID
	parallel   []ID
	nextID     ID
}

// NewRegistry creates an empty registry. The first assigned ID is 1.
func NewRegistry() *Registry {
	return &Registry{nextID: 1}
}

// Add creates a component with the next ID and appends it to the
// component set and the matching group list. It returns ErrInvalidValue
// for a non-positive value; callers are expected to validate first, but
// the registry never accepts a bad value silently.
func (r *Registry) Add(t Type, value float64, g Group) (ID, error) {
	if value <= 0 {
		return 0, ErrInvalidValue
	}

	id := r.nextID
	r.nextID++

	r.components = append(r.components, Component{ID: id, Type: t, Value: value, Group: g})
	if g == Series {
		r.series = append(r.series, id)
	} else {
		r.parallel = append(r.parallel, id)
	}
	return id, nil
}

// Remove deletes the component with the given ID from the set and from
// whichever group list contains it. It returns false, with no state
// change, if the ID is unknown. The ID counter is never rewound.
func (r *Registry) Remove(id ID) bool {
	idx := -1
	for i, c := range r.components {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	if r.components[idx].Group == Series {
		r.series = removeID(r.series, id)
	} else {
		r.parallel = removeID(r.parallel, id)
	}
	r.components = append(r.components[:idx], r.components[idx+1:]...)
	return true
}

// Find returns the component with the given ID. It never mutates state.
func (r *Registry) Find(id ID) (Component, bool) {
	for _, c := range r.components {
		if c.ID == id {
			return c, true
		}
	}
	return Component{}, false
}

// Groups returns copies of the series and parallel membership lists in
// insertion order.
func (r *Registry) Groups() (series, parallel []ID) {
	series = make([]ID, len(r.series))
	copy(series, r.series)
	parallel = make([]ID, len(r.parallel))
	copy(parallel, r.parallel)
	return series, parallel
}

// Components returns a copy of the component set in insertion order.
func (r *Registry) Components() []Component {
	out := make([]Component, len(r.components))
	copy(out, r.components)
	return out
}

// Len returns the number of live components.
func (r *Registry) Len() int {
	return len(r.components)
}

// NextID returns the ID the next Add will assign.
func (r *Registry) NextID() ID {
	return r.nextID
}

// Snapshot returns an independent copy of the component set suitable for
// storing in undo history. Group lists are not captured; Restore rebuilds
// them from the stored set.
func (r *Registry) Snapshot() []Component {
	return r.Components()
}

// Restore replaces the live component set with the given snapshot and
// rebuilds both group lists by scanning the restored set in its stored
// order. The ID counter is left untouched so undone IDs are never
// reassigned.
func (r *Registry) Restore(snapshot []Component) {
	r.components = make([]Component, len(snapshot))
	copy(r.components, snapshot)

	r.series = r.series[:0]
	r.parallel = r.parallel[:0]
	for _, c := range r.components {
		if c.Group == Series {
			r.series = append(r.series, c.ID)
		} else {
			r.parallel = append(r.parallel, c.ID)
		}
	}
}

func removeID(ids []ID, id ID) []ID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

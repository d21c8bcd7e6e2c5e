package automata

// Handle is an opaque small integer identifying a state within one automaton.
// Handles are issued in order of registration, starting at 0, and are never
// re-used.
type Handle int

// NoState is the handle of a state which does not exist.
const NoState Handle = -1

// Registry assigns handles to state labels. Labels must be unique within a
// registry.
type Registry[S comparable] struct {
	labels []S          // handle -> label
	index  map[S]Handle // label -> handle
}

// NewRegistry creates an empty state registry.
func NewRegistry[S comparable]() *Registry[S] {
	return &Registry[S]{
		index: make(map[S]Handle),
	}
}

// Add registers a new label and returns its handle. Registering a label a second
// time is an error wrapping ErrDuplicateState; the existing handle stays valid.
func (r *Registry[S]) Add(label S) (Handle, error) {
	if h, exists := r.index[label]; exists {
		return h, stateError("add state", label, ErrDuplicateState)
	}
	h := Handle(len(r.labels))
	r.labels = append(r.labels, label)
	r.index[label] = h
	return h, nil
}

// Resolve returns the handle for a label, or an error wrapping ErrUnknownState.
func (r *Registry[S]) Resolve(label S) (Handle, error) {
	return r.resolve("resolve", label)
}

func (r *Registry[S]) resolve(op string, label S) (Handle, error) {
	if h, ok := r.index[label]; ok {
		return h, nil
	}
	return NoState, stateError(op, label, ErrUnknownState)
}

// Label returns the label of a handle. h must have been issued by r.
func (r *Registry[S]) Label(h Handle) S {
	return r.labels[h]
}

// Len returns the number of registered states.
func (r *Registry[S]) Len() int {
	return len(r.labels)
}

// Labels returns all labels in order of registration.
func (r *Registry[S]) Labels() []S {
	return append([]S(nil), r.labels...)
}

// labelsOf maps a set of handles to their labels, in handle order.
func (r *Registry[S]) labelsOf(set *StateSet) []S {
	labels := make([]S, 0, set.Len())
	set.Each(func(h Handle) {
		labels = append(labels, r.labels[h])
	})
	return labels
}

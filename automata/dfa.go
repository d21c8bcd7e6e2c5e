package automata

import (
	"github.com/npillmayer/lexa/automata/sparse"
)

// DFA is a deterministic finite automaton over states labeled with S, reading
// input symbols of type T.
//
// Transitions live in a sparse matrix with a row for every state and a column
// for every symbol of the alphabet. A missing entry means the DFA rejects.
type DFA[S comparable, T comparable] struct {
	states   *Registry[S]
	alphabet alphabet[T]
	trans    *sparse.IntMatrix // (source, symbol) -> destination
	start    Handle
	accept   *StateSet
}

// NewDFA creates an empty DFA.
func NewDFA[S comparable, T comparable]() *DFA[S, T] {
	return &DFA[S, T]{
		states:   NewRegistry[S](),
		alphabet: newAlphabet[T](),
		trans:    sparse.NewIntMatrix(int32(NoState)),
		start:    NoState,
		accept:   &StateSet{},
	}
}

// AddState registers a new state. Registering a label twice is an error
// wrapping ErrDuplicateState.
func (d *DFA[S, T]) AddState(label S) error {
	_, err := d.states.Add(label)
	return err
}

// AddStates registers a list of states, stopping at the first error.
func (d *DFA[S, T]) AddStates(labels ...S) error {
	for _, label := range labels {
		if err := d.AddState(label); err != nil {
			return err
		}
	}
	return nil
}

// AddTransition adds an edge from state `from` to state `to`, reading symbol.
// Both states have to be registered beforehand. A DFA has at most one
// destination for a (symbol, source) pair: adding the same edge again is a
// no-op, adding a different destination is an error wrapping
// ErrDuplicateTransition and leaves the existing edge in place.
func (d *DFA[S, T]) AddTransition(symbol T, from, to S) error {
	src, err := d.states.resolve("add transition", from)
	if err != nil {
		return err
	}
	dest, err := d.states.resolve("add transition", to)
	if err != nil {
		return err
	}
	col := d.alphabet.intern(symbol)
	if existing := d.trans.Value(int(src), col); existing != int32(NoState) {
		if Handle(existing) == dest {
			return nil
		}
		return stateError("add transition", from, ErrDuplicateTransition)
	}
	d.trans.Set(int(src), col, int32(dest))
	return nil
}

// SetStart sets the start state. It is an error to set a state not registered.
func (d *DFA[S, T]) SetStart(label S) error {
	h, err := d.states.resolve("set start state", label)
	if err != nil {
		return err
	}
	d.start = h
	return nil
}

// AddAccepting marks a state as accepting.
func (d *DFA[S, T]) AddAccepting(label S) error {
	h, err := d.states.resolve("add accepting state", label)
	if err != nil {
		return err
	}
	d.accept.Add(h)
	return nil
}

// Matches runs the DFA on a sequence of symbols. It returns true if the
// sequence ends in an accepting state. The DFA rejects as soon as there is no
// transition for a symbol. Calling Matches before a start state has been set
// is an error wrapping ErrNoStartState.
func (d *DFA[S, T]) Matches(symbols []T) (bool, error) {
	if d.start == NoState {
		return false, stateError("match", nil, ErrNoStartState)
	}
	current := d.start
	for i, sym := range symbols {
		next, ok := d.step(current, sym)
		if !ok {
			tracer().Debugf("DFA stuck in state %v at symbol #%d", d.states.Label(current), i)
			return false, nil
		}
		current = next
	}
	return d.accept.Contains(current), nil
}

func (d *DFA[S, T]) step(h Handle, symbol T) (Handle, bool) {
	col, ok := d.alphabet.lookup(symbol)
	if !ok {
		return NoState, false
	}
	next := d.trans.Value(int(h), col)
	if next == int32(NoState) {
		return NoState, false
	}
	return Handle(next), true
}

// Step returns the destination of the transition for (symbol, from), if any.
func (d *DFA[S, T]) Step(symbol T, from S) (S, bool) {
	var none S
	h, err := d.states.resolve("step", from)
	if err != nil {
		return none, false
	}
	next, ok := d.step(h, symbol)
	if !ok {
		return none, false
	}
	return d.states.Label(next), true
}

// Start returns the label of the start state, if set.
func (d *DFA[S, T]) Start() (S, bool) {
	var none S
	if d.start == NoState {
		return none, false
	}
	return d.states.Label(d.start), true
}

// IsAccepting is true if label denotes a registered accepting state.
func (d *DFA[S, T]) IsAccepting(label S) bool {
	h, err := d.states.resolve("is accepting", label)
	return err == nil && d.accept.Contains(h)
}

// Len returns the number of states.
func (d *DFA[S, T]) Len() int {
	return d.states.Len()
}

// Labels returns the state labels in order of registration.
func (d *DFA[S, T]) Labels() []S {
	return d.states.Labels()
}

// Alphabet returns the symbols used by transitions, in order of first use.
func (d *DFA[S, T]) Alphabet() []T {
	return d.alphabet.symbols()
}

// TransitionCount returns the number of edges.
func (d *DFA[S, T]) TransitionCount() int {
	return d.trans.ValueCount()
}

// --- Alphabet --------------------------------------------------------------

// alphabet numbers input symbols in order of first use. Symbol indices are the
// columns of transition tables.
type alphabet[T comparable] struct {
	syms []T
	pos  map[T]int
}

func newAlphabet[T comparable]() alphabet[T] {
	return alphabet[T]{pos: make(map[T]int)}
}

func (a *alphabet[T]) intern(sym T) int {
	if i, ok := a.pos[sym]; ok {
		return i
	}
	a.syms = append(a.syms, sym)
	a.pos[sym] = len(a.syms) - 1
	return len(a.syms) - 1
}

func (a *alphabet[T]) lookup(sym T) (int, bool) {
	i, ok := a.pos[sym]
	return i, ok
}

func (a *alphabet[T]) symbols() []T {
	return append([]T(nil), a.syms...)
}

func (a *alphabet[T]) size() int {
	return len(a.syms)
}

// Runes splits a string into its runes, for automata reading characters.
func Runes(s string) []rune {
	return []rune(s)
}

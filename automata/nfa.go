package automata

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// NFA is a non-deterministic finite automaton over states labeled with S,
// reading input symbols of type T. A (symbol, source) pair may lead to a set of
// destinations, and states may have epsilon transitions, which are taken
// without consuming input.
type NFA[S comparable, T comparable] struct {
	states   *Registry[S]
	alphabet alphabet[T]
	moves    []map[int]*StateSet // per state: symbol index -> destinations
	eps      []*StateSet         // per state: epsilon destinations
	start    Handle
	accept   *StateSet
}

// NewNFA creates an empty NFA.
func NewNFA[S comparable, T comparable]() *NFA[S, T] {
	return &NFA[S, T]{
		states:   NewRegistry[S](),
		alphabet: newAlphabet[T](),
		start:    NoState,
		accept:   &StateSet{},
	}
}

// AddState registers a new state. Registering a label twice is an error
// wrapping ErrDuplicateState.
func (n *NFA[S, T]) AddState(label S) error {
	if _, err := n.states.Add(label); err != nil {
		return err
	}
	n.moves = append(n.moves, nil)
	n.eps = append(n.eps, nil)
	return nil
}

// AddStates registers a list of states, stopping at the first error.
func (n *NFA[S, T]) AddStates(labels ...S) error {
	for _, label := range labels {
		if err := n.AddState(label); err != nil {
			return err
		}
	}
	return nil
}

// AddTransition adds an edge from state `from` to state `to`, reading symbol.
// Edges accumulate: a (symbol, source) pair may have any number of destinations.
func (n *NFA[S, T]) AddTransition(symbol T, from, to S) error {
	src, dest, err := n.edge("add transition", from, to)
	if err != nil {
		return err
	}
	col := n.alphabet.intern(symbol)
	if n.moves[src] == nil {
		n.moves[src] = make(map[int]*StateSet)
	}
	if n.moves[src][col] == nil {
		n.moves[src][col] = &StateSet{}
	}
	n.moves[src][col].Add(dest)
	return nil
}

// AddEpsilonTransition adds an edge from state `from` to state `to` which does
// not consume an input symbol.
func (n *NFA[S, T]) AddEpsilonTransition(from, to S) error {
	src, dest, err := n.edge("add epsilon transition", from, to)
	if err != nil {
		return err
	}
	if n.eps[src] == nil {
		n.eps[src] = &StateSet{}
	}
	n.eps[src].Add(dest)
	return nil
}

func (n *NFA[S, T]) edge(op string, from, to S) (Handle, Handle, error) {
	src, err := n.states.resolve(op, from)
	if err != nil {
		return NoState, NoState, err
	}
	dest, err := n.states.resolve(op, to)
	if err != nil {
		return NoState, NoState, err
	}
	return src, dest, nil
}

// SetStart sets the start state. It is an error to set a state not registered.
func (n *NFA[S, T]) SetStart(label S) error {
	h, err := n.states.resolve("set start state", label)
	if err != nil {
		return err
	}
	n.start = h
	return nil
}

// AddAccepting marks a state as accepting.
func (n *NFA[S, T]) AddAccepting(label S) error {
	h, err := n.states.resolve("add accepting state", label)
	if err != nil {
		return err
	}
	n.accept.Add(h)
	return nil
}

// Matches simulates the NFA on a sequence of symbols. It returns true if, after
// consuming all symbols, at least one active state is accepting. The NFA rejects
// as soon as the set of active states runs empty. Calling Matches before a
// start state has been set is an error wrapping ErrNoStartState.
func (n *NFA[S, T]) Matches(symbols []T) (bool, error) {
	if n.start == NoState {
		return false, stateError("match", nil, ErrNoStartState)
	}
	active := n.closure(NewStateSet(n.start))
	for i, sym := range symbols {
		col, ok := n.alphabet.lookup(sym)
		if !ok {
			tracer().Debugf("NFA: symbol #%d not in alphabet", i)
			return false, nil
		}
		next := n.move(active, col)
		if next.IsEmpty() {
			tracer().Debugf("NFA stuck in states %v at symbol #%d", n.states.labelsOf(active), i)
			return false, nil
		}
		active = n.closure(next)
	}
	return active.Intersects(n.accept), nil
}

// EpsilonClosure returns the labels of all states reachable from the given
// states by epsilon transitions only, including the given states themselves.
// Labels are returned in order of registration.
func (n *NFA[S, T]) EpsilonClosure(labels ...S) ([]S, error) {
	set := &StateSet{}
	for _, label := range labels {
		h, err := n.states.resolve("epsilon closure", label)
		if err != nil {
			return nil, err
		}
		set.Add(h)
	}
	return n.states.labelsOf(n.closure(set)), nil
}

// closure computes the epsilon closure of a set of states. The result is a new
// set; the argument is left unmodified.
func (n *NFA[S, T]) closure(set *StateSet) *StateSet {
	C := set.Clone()
	frontier := arraystack.New()
	set.Each(func(h Handle) {
		frontier.Push(h)
	})
	for !frontier.Empty() {
		x, _ := frontier.Pop()
		h := x.(Handle)
		n.eps[h].Each(func(dest Handle) {
			if !C.Contains(dest) {
				C.Add(dest)
				frontier.Push(dest)
			}
		})
	}
	return C
}

// move computes the set of states reachable from any state in set by reading
// the symbol with index col. Epsilon transitions are not followed.
func (n *NFA[S, T]) move(set *StateSet, col int) *StateSet {
	M := &StateSet{}
	set.Each(func(h Handle) {
		if dests := n.moves[h][col]; dests != nil {
			M.Union(dests)
		}
	})
	return M
}

// Start returns the label of the start state, if set.
func (n *NFA[S, T]) Start() (S, bool) {
	var none S
	if n.start == NoState {
		return none, false
	}
	return n.states.Label(n.start), true
}

// IsAccepting is true if label denotes a registered accepting state.
func (n *NFA[S, T]) IsAccepting(label S) bool {
	h, err := n.states.resolve("is accepting", label)
	return err == nil && n.accept.Contains(h)
}

// Len returns the number of states.
func (n *NFA[S, T]) Len() int {
	return n.states.Len()
}

// Labels returns the state labels in order of registration.
func (n *NFA[S, T]) Labels() []S {
	return n.states.Labels()
}

// Alphabet returns the symbols used by non-epsilon transitions, in order of
// first use.
func (n *NFA[S, T]) Alphabet() []T {
	return n.alphabet.symbols()
}

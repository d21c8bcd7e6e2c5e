package automata

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Option configures subset construction.
type Option func(*options)

type options struct {
	stateLimit int // 0 = unlimited
}

// StateLimit sets an upper bound for the number of DFA states subset
// construction may create. Exceeding it makes ToDFA return an error wrapping
// ErrStateLimit. The default is to create as many states as needed.
func StateLimit(n int) Option {
	return func(o *options) {
		o.stateLimit = n
	}
}

// ToDFA converts the NFA into an equivalent DFA by subset construction.
// Every state of the DFA represents an epsilon-closed set of NFA states.
// DFA states are labeled by integers in order of discovery, with 0 being the
// start state. A DFA state is accepting if its set contains an accepting NFA
// state.
//
// The NFA has to have a start state, otherwise an error wrapping
// ErrNoStartState is returned. Symbols are processed in order of their first
// use within the NFA, so the labeling of DFA states is reproducible.
func (n *NFA[S, T]) ToDFA(opts ...Option) (*DFA[int, T], error) {
	if n.start == NoState {
		return nil, stateError("subset construction", nil, ErrNoStartState)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	metricSubsetConstructions.Inc()
	tracer().Debugf("=== subset construction =========================================")
	sc := subsetConstruction[S, T]{
		nfa:   n,
		dfa:   NewDFA[int, T](),
		ids:   make(map[string]int),
		limit: o.stateLimit,
	}
	for _, sym := range n.alphabet.syms { // DFA gets the same symbol columns
		sc.dfa.alphabet.intern(sym)
	}
	worklist := arraystack.New()
	s0, _, err := sc.discover(n.closure(NewStateSet(n.start)))
	if err != nil {
		return nil, err
	}
	sc.dfa.SetStart(s0)
	worklist.Push(s0)
	for !worklist.Empty() {
		x, _ := worklist.Pop()
		id := x.(int)
		from := sc.sets[id]
		for col, sym := range n.alphabet.syms {
			to := n.move(from, col)
			if to.IsEmpty() {
				continue // no transition for sym
			}
			to = n.closure(to)
			tid, isNew, err := sc.discover(to)
			if err != nil {
				return nil, err
			}
			if isNew {
				worklist.Push(tid)
			}
			if err := sc.dfa.AddTransition(sym, id, tid); err != nil {
				panic(fmt.Sprintf("subset construction produced conflicting edge: %v", err))
			}
		}
	}
	tracer().Debugf("NFA with %d states -> DFA with %d states, %d edges",
		n.Len(), sc.dfa.Len(), sc.dfa.TransitionCount())
	return sc.dfa, nil
}

// subsetConstruction holds the bookkeeping for one run of ToDFA.
type subsetConstruction[S comparable, T comparable] struct {
	nfa   *NFA[S, T]
	dfa   *DFA[int, T]
	sets  []*StateSet    // DFA state id -> set of NFA states
	ids   map[string]int // StateSet.Key() -> DFA state id
	limit int
}

// discover returns the DFA state for a set of NFA states, creating it if the set
// has not been seen before. The flag is true for newly created states.
func (sc *subsetConstruction[S, T]) discover(set *StateSet) (int, bool, error) {
	key := set.Key()
	if id, ok := sc.ids[key]; ok {
		return id, false, nil
	}
	if sc.limit > 0 && len(sc.sets) >= sc.limit {
		return 0, false, fmt.Errorf("subset construction: %w (%d states)", ErrStateLimit, sc.limit)
	}
	id := len(sc.sets)
	sc.sets = append(sc.sets, set)
	sc.ids[key] = id
	sc.dfa.AddState(id)
	if set.Intersects(sc.nfa.accept) {
		sc.dfa.AddAccepting(id)
	}
	metricDFAStates.Inc()
	tracer().Debugf("DFA state %d = %v", id, sc.nfa.states.labelsOf(set))
	return id, true, nil
}

package automata

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// 0 -a-> {1,2}, 1 -a-> {2}; accepting 2
func makeFanOut(t *testing.T) *NFA[int, rune] {
	n := NewNFA[int, rune]()
	mustSucceed(t, n.AddStates(0, 1, 2, 3))
	mustSucceed(t, n.AddTransition('a', 0, 1))
	mustSucceed(t, n.AddTransition('a', 0, 2))
	mustSucceed(t, n.AddTransition('a', 1, 2))
	mustSucceed(t, n.SetStart(0))
	mustSucceed(t, n.AddAccepting(2))
	return n
}

// a*b*, with an epsilon transition between the loops
func makeAStarBStar(t *testing.T) *NFA[string, rune] {
	n := NewNFA[string, rune]()
	mustSucceed(t, n.AddStates("A", "B"))
	mustSucceed(t, n.AddTransition('a', "A", "A"))
	mustSucceed(t, n.AddEpsilonTransition("A", "B"))
	mustSucceed(t, n.AddTransition('b', "B", "B"))
	mustSucceed(t, n.SetStart("A"))
	mustSucceed(t, n.AddAccepting("B"))
	return n
}

// a, then epsilon, then b
func makeEpsilonInBetween(t *testing.T) *NFA[int, rune] {
	n := NewNFA[int, rune]()
	mustSucceed(t, n.AddStates(0, 1, 2, 3))
	mustSucceed(t, n.AddTransition('a', 0, 1))
	mustSucceed(t, n.AddEpsilonTransition(1, 2))
	mustSucceed(t, n.AddTransition('b', 2, 3))
	mustSucceed(t, n.SetStart(0))
	mustSucceed(t, n.AddAccepting(3))
	return n
}

func TestNFAFanOut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.automata")
	defer teardown()
	//
	n := makeFanOut(t)
	for i, test := range []struct {
		input  string
		accept bool
	}{
		{"a", true},
		{"aa", true},
		{"aaa", false},
		{"", false},
		{"b", false},
	} {
		ok, err := n.Matches([]rune(test.input))
		if err != nil {
			t.Fatal(err)
		}
		if ok != test.accept {
			t.Errorf("test %d: expected Matches(%q) to be %v", i, test.input, test.accept)
		}
	}
}

func TestNFAEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.automata")
	defer teardown()
	//
	n := makeAStarBStar(t)
	for _, input := range []string{"", "a", "b", "aab", "abbb", "bb"} {
		if ok, _ := n.Matches([]rune(input)); !ok {
			t.Errorf("expected a*b* to match %q", input)
		}
	}
	for _, input := range []string{"ba", "aba", "c"} {
		if ok, _ := n.Matches([]rune(input)); ok {
			t.Errorf("expected a*b* not to match %q", input)
		}
	}
	m := makeEpsilonInBetween(t)
	if ok, _ := m.Matches([]rune("ab")); !ok {
		t.Errorf("expected closure after each symbol, 'ab' not matched")
	}
	if ok, _ := m.Matches([]rune("a")); ok {
		t.Errorf("expected 'a' not to be matched")
	}
}

func TestNFANoStartState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.automata")
	defer teardown()
	//
	n := NewNFA[int, rune]()
	n.AddState(0)
	if _, err := n.Matches(nil); !errors.Is(err, ErrNoStartState) {
		t.Errorf("expected ErrNoStartState, have %v", err)
	}
	if _, err := n.ToDFA(); !errors.Is(err, ErrNoStartState) {
		t.Errorf("expected ErrNoStartState from subset construction, have %v", err)
	}
	if err := n.AddEpsilonTransition(0, 7); !errors.Is(err, ErrUnknownState) {
		t.Errorf("expected ErrUnknownState, have %v", err)
	}
	if err := n.AddState(0); !errors.Is(err, ErrDuplicateState) {
		t.Errorf("expected ErrDuplicateState, have %v", err)
	}
}

func TestEpsilonClosure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.automata")
	defer teardown()
	//
	n := NewNFA[int, rune]()
	mustSucceed(t, n.AddStates(0, 1, 2, 3, 4))
	mustSucceed(t, n.AddEpsilonTransition(0, 1))
	mustSucceed(t, n.AddEpsilonTransition(1, 0)) // cycle
	mustSucceed(t, n.AddEpsilonTransition(1, 2))
	mustSucceed(t, n.AddTransition('x', 2, 3))
	mustSucceed(t, n.AddEpsilonTransition(3, 4))
	C, err := n.EpsilonClosure(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(C) != 3 || C[0] != 0 || C[1] != 1 || C[2] != 2 {
		t.Errorf("expected closure of {0} to be [0 1 2], is %v", C)
	}
	// closure is idempotent for every subset of states
	for mask := 0; mask < 1<<5; mask++ {
		var labels []int
		for i := 0; i < 5; i++ {
			if mask&(1<<i) != 0 {
				labels = append(labels, i)
			}
		}
		once, _ := n.EpsilonClosure(labels...)
		twice, _ := n.EpsilonClosure(once...)
		if len(once) != len(twice) {
			t.Fatalf("closure not idempotent for %v: %v vs %v", labels, once, twice)
		}
		for i := range once {
			if once[i] != twice[i] {
				t.Fatalf("closure not idempotent for %v: %v vs %v", labels, once, twice)
			}
		}
	}
	if _, err := n.EpsilonClosure(9); !errors.Is(err, ErrUnknownState) {
		t.Errorf("expected ErrUnknownState, have %v", err)
	}
}

/*
Package automata implements deterministic and non-deterministic finite automata.

States are identified by labels chosen by the client. Labels may be of any
comparable type. Internally every state is assigned a small integer handle,
in order of registration, and all tables are indexed by these handles.
Input symbols may be of any comparable type, too; strings are usually matched
as sequences of runes.

Building a DFA

Clients add states, transitions, a start state and accepting states:

    d := automata.NewDFA[string, rune]()
    d.AddStates("S", "A")
    d.AddTransition('0', "S", "S")
    d.AddTransition('1', "S", "A")
    d.AddTransition('0', "A", "S")
    d.AddTransition('1', "A", "A")
    d.SetStart("S")
    d.AddAccepting("A")
    ok, err := d.Matches([]rune("0001"))   // ok = true

Registering a label twice is an error (ErrDuplicateState), as is referencing a
label which has never been registered (ErrUnknownState). Adding a second,
different destination for a (symbol, source) pair is an error
(ErrDuplicateTransition). Matching without a start state is an error
(ErrNoStartState).

Building an NFA

NFAs are built the same way, but a (symbol, source) pair may lead to any number
of destinations, and there may be epsilon transitions, i.e. transitions which
do not consume input:

    n := automata.NewNFA[int, rune]()
    n.AddStates(0, 1, 2, 3)
    n.AddTransition('a', 0, 1)
    n.AddTransition('a', 0, 2)
    n.AddEpsilonTransition(1, 3)
    n.SetStart(0)
    n.AddAccepting(3)

Matching simulates the NFA on sets of active states. Every set of active
states is closed under epsilon transitions, before the first symbol and after
each symbol consumed.

Subset Construction

An NFA may be converted into an equivalent DFA:

    d, err := n.ToDFA()

States of the resulting DFA are labeled with integers in order of discovery,
0 being the start state. Every DFA state represents a distinct epsilon-closed
set of NFA states.

Concurrency

Automata are not synchronized. Once built, an automaton may be used for
matching by any number of goroutines, as matching never mutates it.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package automata

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexa.automata'.
func tracer() tracing.Trace {
	return tracing.Select("lexa.automata")
}

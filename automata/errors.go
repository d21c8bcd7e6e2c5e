package automata

import (
	"errors"
	"fmt"
)

// Errors reported while building or running automata. Errors returned by this
// package wrap one of these and may be checked with errors.Is.
var (
	ErrUnknownState        = errors.New("unknown state")
	ErrDuplicateState      = errors.New("state already registered")
	ErrDuplicateTransition = errors.New("conflicting transition")
	ErrNoStartState        = errors.New("no start state set")
	ErrStateLimit          = errors.New("DFA state limit exceeded")
)

// StateError is an error concerning a single state, identified by its label.
type StateError struct {
	Op    string      // operation which failed, e.g. "add transition"
	Label interface{} // offending state label, if any
	Err   error       // one of the Err… values
}

func (e *StateError) Error() string {
	if e.Label == nil {
		return fmt.Sprintf("automata: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("automata: %s: %v %q", e.Op, e.Err, fmt.Sprint(e.Label))
}

func (e *StateError) Unwrap() error {
	return e.Err
}

func stateError(op string, label interface{}, err error) error {
	return &StateError{Op: op, Label: label, Err: err}
}

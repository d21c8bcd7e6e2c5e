package lexer

import "fmt"

// ActionKind tells what an action does with the text matched by a rule.
type ActionKind int8

const (
	Discard  ActionKind = iota // produce no token
	Constant                   // produce a fixed token value
	Derive                     // compute a token value from the matched text
)

func (k ActionKind) String() string {
	switch k {
	case Discard:
		return "discard"
	case Constant:
		return "constant"
	case Derive:
		return "derive"
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// Action is what a rule does with the text it matched. Create actions with
// Skip, Const, Map or DeriveErr. The zero value discards its match.
type Action[V any] struct {
	kind   ActionKind
	value  V
	derive func(lexeme string) (V, error)
}

// Skip creates an action which discards the matched text.
func Skip[V any]() Action[V] {
	return Action[V]{kind: Discard}
}

// Const creates an action which produces token value v for every match.
func Const[V any](v V) Action[V] {
	return Action[V]{kind: Constant, value: v}
}

// Map creates an action which computes a token value from the matched text.
func Map[V any](f func(lexeme string) V) Action[V] {
	return Action[V]{
		kind: Derive,
		derive: func(lexeme string) (V, error) {
			return f(lexeme), nil
		},
	}
}

// DeriveErr creates an action which computes a token value from the matched
// text and may fail, e.g. for numeric literals out of range. A failure stops
// the tokenizer with a LexicalError wrapping the cause.
func DeriveErr[V any](f func(lexeme string) (V, error)) Action[V] {
	return Action[V]{kind: Derive, derive: f}
}

// Kind returns the kind of the action.
func (a Action[V]) Kind() ActionKind {
	return a.kind
}

func (a Action[V]) apply(lexeme string) (V, error) {
	switch a.kind {
	case Constant:
		return a.value, nil
	case Derive:
		return a.derive(lexeme)
	}
	var none V
	return none, nil
}

package lexmach

import (
	"fmt"

	"github.com/npillmayer/lexa/lexer"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Matcher is a lexer.Matcher backed by a lexmachine DFA.
type Matcher struct {
	pattern string
	lexer   *lexmachine.Lexer
}

var _ lexer.Matcher = (*Matcher)(nil)

// Compile creates a matcher for a lexmachine pattern. It will return an error
// if compiling the DFA failed. Compile may be used as a lexer.MatcherFactory.
func Compile(pattern string) (lexer.Matcher, error) {
	m, err := NewMatcher(pattern)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// NewMatcher compiles pattern into a DFA.
func NewMatcher(pattern string) (*Matcher, error) {
	lm := lexmachine.NewLexer()
	lm.Add([]byte(pattern), matchAction)
	if err := lm.Compile(); err != nil {
		tracer().Errorf("error compiling DFA for %q: %v", pattern, err)
		return nil, fmt.Errorf("lexmach: cannot compile pattern %q: %w", pattern, err)
	}
	return &Matcher{pattern: pattern, lexer: lm}, nil
}

// Pattern returns the pattern the matcher has been compiled from.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// MatchAt is part of interface lexer.Matcher. The DFA runs from offset at and
// reports the longest match, if any.
func (m *Matcher) MatchAt(input []byte, at int) int {
	if at >= len(input) {
		return -1
	}
	sc, err := m.lexer.Scanner(input)
	if err != nil {
		return -1
	}
	sc.TC = at
	tok, err, eof := sc.Next()
	if err != nil || eof {
		if ui, is := err.(*machines.UnconsumedInput); is {
			tracer().Debugf("lexmachine: no match for %q at %d..%d", m.pattern, ui.StartTC, ui.FailTC)
		}
		return -1
	}
	match, ok := tok.(*machines.Match)
	if !ok || match.TC != at {
		return -1
	}
	return len(match.Bytes)
}

// matchAction hands the raw match through to MatchAt.
func matchAction(_ *lexmachine.Scanner, match *machines.Match) (interface{}, error) {
	return match, nil
}

package lexer

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/lexa"
)

// ErrNoMatch is wrapped by lexical errors where no rule matches the input.
var ErrNoMatch = errors.New("no rule matches")

// LexicalError is reported when the tokenizer cannot proceed at an input
// position: either no rule matches, or the action of the winning rule failed.
type LexicalError struct {
	Position lexa.Position // offset, line and column of the error
	Snippet  string        // input text starting at the error position, bounded
	Rule     string        // rule whose action failed, empty for ErrNoMatch
	Err      error         // ErrNoMatch or the error of a derive action
}

// Offset returns the byte offset of the error.
func (e *LexicalError) Offset() int {
	return e.Position.Offset
}

func (e *LexicalError) Error() string {
	if e.Rule != "" {
		return fmt.Sprintf("lexer: at %s (offset %d): rule %q: %v: %q", e.Position, e.Position.Offset,
			e.Rule, e.Err, e.Snippet)
	}
	return fmt.Sprintf("lexer: at %s (offset %d): %v: %q", e.Position, e.Position.Offset, e.Err, e.Snippet)
}

func (e *LexicalError) Unwrap() error {
	return e.Err
}

func newLexicalError(input []byte, offset, contextLength int, rule string, cause error) *LexicalError {
	return &LexicalError{
		Position: lexa.LineCol(input, offset),
		Snippet:  snippet(input, offset, contextLength),
		Rule:     rule,
		Err:      cause,
	}
}

// snippet returns at most n bytes of input starting at offset, cut back to a
// rune boundary.
func snippet(input []byte, offset, n int) string {
	if offset >= len(input) {
		return ""
	}
	end := offset + n
	if end >= len(input) {
		return string(input[offset:])
	}
	for end > offset && !utf8.RuneStart(input[end]) {
		end--
	}
	return string(input[offset:end])
}

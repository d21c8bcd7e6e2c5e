package lexa

import (
	"fmt"
	"unicode/utf8"
)

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. Tokenizers track
// which input positions a token covers. A span denotes a start position and
// the position just behind the end.
type Span [2]uint64 // (x…y)

// MakeSpan creates a span from two int offsets.
func MakeSpan(from, to int) Span {
	return Span{uint64(from), uint64(to)}
}

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Positions --------------------------------------------------------

// Position is a human readable location within an input text.
// Line and Column are 1-based, Column counts runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// LineCol computes the position of a byte offset within input.
// Offsets beyond the end of input are clipped.
func LineCol(input []byte, offset int) Position {
	if offset > len(input) {
		offset = len(input)
	}
	if offset < 0 {
		offset = 0
	}
	pos := Position{Offset: offset, Line: 1, Column: 1}
	for i := 0; i < offset; {
		r, sz := utf8.DecodeRune(input[i:])
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
		i += sz
	}
	return pos
}

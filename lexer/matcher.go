package lexer

// Matcher matches a single pattern against input text.
//
// MatchAt returns the length in bytes of the longest match of the pattern
// starting exactly at byte offset at. Matches starting elsewhere do not count.
// If the pattern does not match at offset at, MatchAt returns -1.
// A matcher may return 0 for patterns matching the empty string.
type Matcher interface {
	MatchAt(input []byte, at int) int
}

// MatcherFactory creates a matcher for a pattern. It returns an error if the
// pattern is malformed.
type MatcherFactory func(pattern string) (Matcher, error)

// MatcherFunc is an adapter to use an ordinary function as a Matcher.
type MatcherFunc func(input []byte, at int) int

// MatchAt calls f(input, at).
func (f MatcherFunc) MatchAt(input []byte, at int) int {
	return f(input, at)
}

// Literal is a matcher for a fixed string.
func Literal(s string) Matcher {
	return MatcherFunc(func(input []byte, at int) int {
		if at+len(s) > len(input) || string(input[at:at+len(s)]) != s {
			return -1
		}
		return len(s)
	})
}

package lexer

import (
	"unicode/utf8"

	"github.com/npillmayer/lexa"
	"github.com/npillmayer/schuko/gconf"
)

// Token is what a tokenizer produces: a value computed by a rule's action,
// together with the input position it has been derived from.
type Token[V any] struct {
	Value  V         // result of the rule's action
	Lexeme string    // matched text, empty if lexemes are not kept
	Span   lexa.Span // byte range of the matched text
	Rule   int       // index of the winning rule
}

// Tokenizer splits an input text into tokens, as directed by a rule set.
// Tokens are produced lazily, one per call to Next. A tokenizer runs through
// its input exactly once; to start over, create a new tokenizer.
//
// A tokenizer is not safe for concurrent use, but any number of tokenizers may
// share a rule set.
type Tokenizer[V any] struct {
	rules *RuleSet[V]
	input []byte
	pos   int   // scan cursor, always at a rune boundary
	err   error // sticky lexical error
	done  bool
	opts  options
}

// New creates a tokenizer for source, using a rule set.
func New[V any](rules *RuleSet[V], source string, opts ...Option) *Tokenizer[V] {
	t := &Tokenizer[V]{
		rules: rules,
		input: []byte(source),
		opts:  defaultOptions(),
	}
	for _, opt := range opts {
		opt(&t.opts)
	}
	return t
}

// Next produces the next token. It returns false if the input is exhausted
// or a lexical error occurred; check Err to tell the two apart. After
// returning false once, Next will always return false.
func (t *Tokenizer[V]) Next() (Token[V], bool) {
	var none Token[V]
	if t.done {
		return none, false
	}
	for t.pos < len(t.input) {
		start := t.pos
		rule, length := t.rules.Longest(t.input, start)
		if rule < 0 {
			t.fail(newLexicalError(t.input, start, t.opts.contextLength, "", ErrNoMatch))
			return none, false
		}
		t.advance(start + length)
		action := t.rules.rules[rule].Action
		if action.Kind() == Discard {
			tracer().Debugf("discard %v by rule %q", lexa.MakeSpan(start, t.pos), t.rules.RuleName(rule))
			metricDiscarded.Inc()
			continue
		}
		lexeme := string(t.input[start:t.pos])
		value, err := action.apply(lexeme)
		if err != nil {
			t.fail(newLexicalError(t.input, start, t.opts.contextLength, t.rules.RuleName(rule), err))
			return none, false
		}
		metricTokens.Inc()
		tok := Token[V]{
			Value: value,
			Span:  lexa.MakeSpan(start, t.pos),
			Rule:  rule,
		}
		if t.opts.keepLexemes {
			tok.Lexeme = lexeme
		}
		return tok, true
	}
	tracer().Debugf("tokenizer for %s reached end of input", t.rules.Name())
	t.done = true
	return none, false
}

// advance moves the cursor to pos, and then on to the next rune boundary.
// Matchers working on bytes may stop in the middle of a multi-byte rune.
func (t *Tokenizer[V]) advance(pos int) {
	for pos < len(t.input) && !utf8.RuneStart(t.input[pos]) {
		pos++
	}
	t.pos = pos
}

func (t *Tokenizer[V]) fail(err *LexicalError) {
	t.err = err
	t.done = true
	metricLexicalErrors.Inc()
	t.opts.errorHandler(err)
	if gconf.GetBool("panic-on-lexical-error") {
		panic(`Tokenizer stopped with a lexical error.

Configuration flag panic-on-lexical-error is set to true. It is aimed at helping
to debug a rule set and do a post-mortem of why the input has not been matched.
If you did not expect this to panic, please unset panic-on-lexical-error to its
default (false).

` + err.Error())
	}
}

// Err returns the lexical error which stopped the tokenizer, if any.
// It is nil while the tokenizer is running and after a successful run.
func (t *Tokenizer[V]) Err() error {
	return t.err
}

// Offset returns the current byte offset of the scan cursor.
func (t *Tokenizer[V]) Offset() int {
	return t.pos
}

// All collects the remaining tokens. On a lexical error it returns the tokens
// produced so far together with the error.
func (t *Tokenizer[V]) All() ([]Token[V], error) {
	var tokens []Token[V]
	for tok, ok := t.Next(); ok; tok, ok = t.Next() {
		tokens = append(tokens, tok)
	}
	return tokens, t.Err()
}

// Tokenize is a convenience function which runs a new tokenizer over source
// and collects all tokens.
func Tokenize[V any](rules *RuleSet[V], source string, opts ...Option) ([]Token[V], error) {
	return New(rules, source, opts...).All()
}

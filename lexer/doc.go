/*
Package lexer implements a rule based, longest-match tokenizer.

Clients declare an ordered list of rules, each consisting of a regular
expression pattern and an action. Actions either discard the matched text
(e.g., whitespace and comments), produce a constant token value, or derive a
token value from the matched text.

	rules := lexer.MustRuleSet("calc", []lexer.Rule[Kind]{
		lexer.R(`[ \t\n]+`, lexer.Skip[Kind]()),
		lexer.R(`let`, lexer.Const(LET)),
		lexer.R(`[A-Za-z_]+`, lexer.Const(IDENT)),
	})
	tz := lexer.New(rules, "let x")
	for tok, ok := tz.Next(); ok; tok, ok = tz.Next() {
		…
	}
	if err := tz.Err(); err != nil {
		// lexical error, see LexicalError
	}

At every input position the tokenizer tries all rules anchored at that position
and selects the rule with the longest match ("maximal munch"). If two or more
rules match text of equal length, the rule declared first wins. Zero-length
matches never win.

If no rule matches, tokenization stops with a LexicalError, carrying the offset
and a short snippet of the offending input. The tokenizer never skips input on
its own. Setting configuration flag `panic-on-lexical-error` turns lexical
errors into panics, which is sometimes helpful for post-mortem debugging.

Patterns are matched by a Matcher. The default matchers use package regexp
from the standard library, with compiled patterns shared by a cache.
Sub-package lexmach provides matchers built from lexmachine DFAs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexa.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("lexa.lexer")
}

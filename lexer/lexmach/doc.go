/*
Package lexmach provides matchers for package lexer, built with the lexmachine
scanner generator.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Every pattern of a rule set is compiled into a DFA of its own. Lexmachine
patterns use lexmachine's own regular expression syntax, which is a subset of
the syntax of package regexp. Clients select lexmachine matchers when creating
a rule set:

	rules, err := lexer.NewRuleSet("calc", myRules, lexer.WithMatcher(lexmach.Compile))
	if err != nil {
		// a pattern did not compile
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexa.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("lexa.lexer")
}

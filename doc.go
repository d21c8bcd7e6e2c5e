/*
Package lexa is a toolbox for finite automata and rule based tokenizers.

Lexa strives to be a small and predictable foundation for scanners of DSLs.
Package structure is as follows:

■ automata: Package automata implements deterministic and non-deterministic
finite automata over arbitrary comparable state labels and input symbols,
including the conversion of an NFA to an equivalent DFA by subset construction.

■ lexer: Package lexer implements a longest-match tokenizer driven by an ordered
set of rules, where earlier rules win ties.

■ lang: Sub-packages of lang contain two small vocabularies built on top of
package lexer, an expression language and a stack machine assembly dialect.

■ runtime: Package runtime provides some unsophisticated supporting data types
for interpreter runtimes.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexa

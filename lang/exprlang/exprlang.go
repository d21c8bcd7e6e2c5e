/*
Package exprlang defines the tokens of a small C-like expression language.

The language knows keywords (let, while, if, else, for, return), integer and
floating point numbers, string literals, identifiers, operators and
punctuation. Line comments start with a double slash, block comments are
C-style.

	rules := exprlang.RuleSet()
	tokens, err := lexer.Tokenize(rules, `let x = 3.5; // comment`)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package exprlang

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/lexa/lexer"
)

// Kind is the category of a token.
type Kind int

// Token kinds of the expression language.
const (
	Illegal Kind = iota
	Plus
	Minus
	Mul
	Div
	OpenParen
	CloseParen
	OpenBrace
	CloseBrace
	Semicolon
	Comma
	If
	Else
	While
	For
	Let
	Return
	Int
	Float
	String
	Var
	Equal
	CompareEquals
	CompareGreater
	CompareGreaterEquals
	CompareLess
	CompareLessEquals
	Increment
	Decrement
)

var kindNames = [...]string{
	"Illegal", "+", "-", "*", "/", "(", ")", "{", "}", ";", ",",
	"if", "else", "while", "for", "let", "return",
	"Int", "Float", "String", "Var",
	"=", "==", ">", ">=", "<", "<=", "++", "--",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Token is a token of the expression language. Depending on its kind, one of
// the value fields is set.
type Token struct {
	Kind  Kind
	Int   int64   // for Int
	Float float64 // for Float
	Text  string  // for String (without quotes) and Var
}

func (t Token) String() string {
	switch t.Kind {
	case Int:
		return fmt.Sprintf("Int(%d)", t.Int)
	case Float:
		return fmt.Sprintf("Float(%g)", t.Float)
	case String:
		return fmt.Sprintf("String(%q)", t.Text)
	case Var:
		return fmt.Sprintf("Var(%s)", t.Text)
	}
	return t.Kind.String()
}

func constant(k Kind) lexer.Action[Token] {
	return lexer.Const(Token{Kind: k})
}

// Rules returns the lexical rules of the expression language. Every call
// returns a fresh slice, which clients may extend before compiling it into a
// rule set.
func Rules() []lexer.Rule[Token] {
	return []lexer.Rule[Token]{
		{Name: "let", Pattern: `let`, Action: constant(Let)},
		{Name: "while", Pattern: `while`, Action: constant(While)},
		{Name: "if", Pattern: `if`, Action: constant(If)},
		{Name: "else", Pattern: `else`, Action: constant(Else)},
		{Name: "for", Pattern: `for`, Action: constant(For)},
		{Name: "return", Pattern: `return`, Action: constant(Return)},
		{Name: "int", Pattern: `0|[1-9][0-9]*`, Action: lexer.DeriveErr(func(lexeme string) (Token, error) {
			n, err := strconv.ParseInt(lexeme, 10, 64)
			return Token{Kind: Int, Int: n}, err
		})},
		{Name: "float", Pattern: `(0|[1-9][0-9]*)\.[0-9]+`, Action: lexer.DeriveErr(func(lexeme string) (Token, error) {
			f, err := strconv.ParseFloat(lexeme, 64)
			return Token{Kind: Float, Float: f}, err
		})},
		{Name: "whitespace", Pattern: `\s+`, Action: lexer.Skip[Token]()},
		{Name: ",", Pattern: `,`, Action: constant(Comma)},
		{Name: "+", Pattern: `\+`, Action: constant(Plus)},
		{Name: "++", Pattern: `\+\+`, Action: constant(Increment)},
		{Name: "-", Pattern: `-`, Action: constant(Minus)},
		{Name: "--", Pattern: `--`, Action: constant(Decrement)},
		{Name: "*", Pattern: `\*`, Action: constant(Mul)},
		{Name: "/", Pattern: `/`, Action: constant(Div)},
		{Name: "(", Pattern: `\(`, Action: constant(OpenParen)},
		{Name: ")", Pattern: `\)`, Action: constant(CloseParen)},
		{Name: "{", Pattern: `\{`, Action: constant(OpenBrace)},
		{Name: "}", Pattern: `\}`, Action: constant(CloseBrace)},
		{Name: ";", Pattern: `;`, Action: constant(Semicolon)},
		{Name: "=", Pattern: `=`, Action: constant(Equal)},
		{Name: "==", Pattern: `==`, Action: constant(CompareEquals)},
		{Name: ">", Pattern: `>`, Action: constant(CompareGreater)},
		{Name: ">=", Pattern: `>=`, Action: constant(CompareGreaterEquals)},
		{Name: "<", Pattern: `<`, Action: constant(CompareLess)},
		{Name: "<=", Pattern: `<=`, Action: constant(CompareLessEquals)},
		{Name: "line comment", Pattern: `//[^\n]*`, Action: lexer.Skip[Token]()},
		{Name: "block comment", Pattern: `/\*([^*]|\*+[^*/])*\*+/`, Action: lexer.Skip[Token]()},
		{Name: "string", Pattern: `"[^"\n]*"`, Action: lexer.Map(func(lexeme string) Token {
			return Token{Kind: String, Text: lexeme[1 : len(lexeme)-1]}
		})},
		{Name: "identifier", Pattern: `[A-Za-z_]+`, Action: lexer.Map(func(lexeme string) Token {
			return Token{Kind: Var, Text: lexeme}
		})},
	}
}

// RuleSet compiles the rules of the expression language into a rule set.
// Clients should create it once and share it between tokenizers.
func RuleSet(opts ...lexer.RuleSetOption) *lexer.RuleSet[Token] {
	return lexer.MustRuleSet("exprlang", Rules(), opts...)
}

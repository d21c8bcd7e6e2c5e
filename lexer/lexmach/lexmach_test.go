package lexmach

import (
	"testing"

	"github.com/npillmayer/lexa/lexer"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMatcher(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.lexer")
	defer teardown()
	//
	m, err := NewMatcher(`[a-z]+`)
	if err != nil {
		t.Fatal(err)
	}
	for i, test := range []struct {
		input string
		at    int
		l     int
	}{
		{"hello world", 0, 5},
		{"hello world", 6, 5},
		{"hello world", 5, -1},
		{"12ab", 0, -1},
		{"12ab", 2, 2},
		{"", 0, -1},
	} {
		if l := m.MatchAt([]byte(test.input), test.at); l != test.l {
			t.Errorf("test %d: expected match of length %d, have %d", i, test.l, l)
		}
	}
}

var inputStrings = []string{
	"1",
	"1+12",
	"hello world",
	`x="mystring" `,
	"1 22 333",
}

var tokenCounts = []int{1, 3, 2, 3, 3}

func TestLMRuleSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.lexer")
	defer teardown()
	//
	rules, err := lexer.NewRuleSet("lm", []lexer.Rule[string]{
		lexer.R(`( |\t|\n)+`, lexer.Skip[string]()),
		lexer.R(`"[^"]*"`, lexer.Const("STRING")),
		lexer.R(`[a-z]+`, lexer.Const("ID")),
		lexer.R(`[0-9]+`, lexer.Const("NUM")),
		lexer.R(`=`, lexer.Const("=")),
		lexer.R(`\+`, lexer.Const("+")),
	}, lexer.WithMatcher(Compile))
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		tokens, err := lexer.Tokenize(rules, input)
		if err != nil {
			t.Error(err)
		}
		for _, token := range tokens {
			t.Logf(" %4s | %15s | @%5d", token.Value, token.Lexeme, token.Span.From())
		}
		if len(tokens) != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], len(tokens))
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestBadPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.lexer")
	defer teardown()
	//
	if _, err := Compile(`[a-`); err == nil {
		t.Errorf("expected malformed pattern to be rejected")
	}
}

package rulespec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/d4l3k/messagediff"
	"github.com/npillmayer/lexa/lexer"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const calc = `
name: calc
rules:
  - name: space
    pattern: '[ \t\n]+'
    action: skip
  - name: let
    pattern: let
    action: const
  - name: ident
    pattern: '[a-z]+'
    action: derive
  - name: number
    pattern: '[0-9]+'
    action: derive
    derive: int
  - name: string
    pattern: '"[^"]*"'
    action: derive
    derive: unquote
  - pattern: '='
    action: const
    kind: ASSIGN
`

func TestParseAndTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.lexer")
	defer teardown()
	//
	spec, err := Parse([]byte(calc))
	if err != nil {
		t.Fatal(err)
	}
	rules, err := spec.RuleSet()
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := lexer.Tokenize(rules, `let x = 42 "hi"`)
	if err != nil {
		t.Fatal(err)
	}
	values := make([]Value, len(tokens))
	for i, tok := range tokens {
		values[i] = tok.Value
	}
	expected := []Value{
		{Kind: "let"},
		{Kind: "ident", Data: "x"},
		{Kind: "ASSIGN"},
		{Kind: "number", Data: int64(42)},
		{Kind: "string", Data: "hi"},
	}
	if diff, equal := messagediff.PrettyDiff(expected, values); !equal {
		t.Errorf("unexpected tokens:\n%s", diff)
	}
}

func TestLexmachineEngine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.lexer")
	defer teardown()
	//
	spec, err := Parse([]byte(`
name: words
engine: lexmachine
rules:
  - name: space
    pattern: ' +'
    action: skip
  - name: word
    pattern: '[a-z]+'
    action: derive
`))
	if err != nil {
		t.Fatal(err)
	}
	rules, err := spec.RuleSet()
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := lexer.Tokenize(rules, "hello lexmachine world")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 || tokens[1].Value.Data != "lexmachine" {
		t.Errorf("unexpected tokens %v", tokens)
	}
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.lexer")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "calc.yaml")
	if err := os.WriteFile(path, []byte(calc), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if spec.Name != "calc" || len(spec.Rules) != 6 {
		t.Errorf("unexpected spec %+v", spec)
	}
	if _, err = Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestInvalidSpecs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.lexer")
	defer teardown()
	//
	for i, doc := range []string{
		``,
		`rules: [{name: a, pattern: a, action: const}]`,
		`{name: x, rules: []}`,
		`{name: x, engine: pcre, rules: [{name: a, pattern: a, action: const}]}`,
		`{name: x, rules: [{name: a, action: const}]}`,
		`{name: x, rules: [{name: a, pattern: a, action: emit}]}`,
		`{name: x, rules: [{name: a, pattern: a, action: derive, derive: hex}]}`,
		`{name: x, rules: [{pattern: a, action: const}]}`,
	} {
		if _, err := Parse([]byte(doc)); !errors.Is(err, ErrInvalidSpec) {
			t.Errorf("test %d: expected ErrInvalidSpec, have %v", i, err)
		}
	}
	if _, err := Parse([]byte(`{name: x, colour: red}`)); err == nil {
		t.Errorf("expected unknown field to be rejected")
	}
}

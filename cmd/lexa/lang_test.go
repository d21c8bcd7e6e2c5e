package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuiltinLanguages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.cli")
	defer teardown()
	//
	for i, test := range []struct {
		lang  string
		input string
		count int
	}{
		{"expr", "let x = 1;", 5},
		{"stackvm", "PUSH 1\nPEEK", 2},
	} {
		tokenize, _, err := langOptions{Lang: test.lang, Engine: "regexp"}.tokenizer()
		if err != nil {
			t.Fatal(err)
		}
		rows, err := tokenize(test.input)
		if err != nil {
			t.Fatalf("test %d: %v", i, err)
		}
		if len(rows) != test.count {
			t.Errorf("test %d: expected %d tokens, have %d", i, test.count, len(rows))
		}
	}
}

func TestRuleSpecLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.cli")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "words.yaml")
	spec := "name: words\nrules:\n  - {name: space, pattern: ' +', action: skip}\n  - {name: word, pattern: '[a-z]+', action: derive}\n"
	if err := os.WriteFile(path, []byte(spec), 0o644); err != nil {
		t.Fatal(err)
	}
	tokenize, name, err := langOptions{Rules: path}.tokenizer()
	if err != nil {
		t.Fatal(err)
	}
	if name != "words" {
		t.Errorf("expected rule set 'words', have %q", name)
	}
	rows, err := tokenize("a bc 1")
	if err == nil {
		t.Errorf("expected lexical error for digit")
	}
	if len(rows) != 2 || rows[1].Value != "word(bc)" || rows[1].Rule != "word" {
		t.Errorf("unexpected rows %+v", rows)
	}
}

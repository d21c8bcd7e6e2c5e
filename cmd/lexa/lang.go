package main

import (
	"fmt"

	"github.com/npillmayer/lexa"
	"github.com/npillmayer/lexa/lang/exprlang"
	"github.com/npillmayer/lexa/lang/stackvm"
	"github.com/npillmayer/lexa/lexer"
	"github.com/npillmayer/lexa/lexer/lexmach"
	"github.com/npillmayer/lexa/lexer/rulespec"
	"github.com/pterm/pterm"
)

// langOptions select the rule set to tokenize with.
type langOptions struct {
	Lang   string `default:"expr" enum:"expr,stackvm" help:"Built-in language [expr|stackvm]"`
	Rules  string `placeholder:"SPEC" type:"existingfile" help:"YAML rule specification, overrides --lang"`
	Engine string `default:"regexp" enum:"regexp,lexmachine" help:"Pattern engine for built-in languages"`
}

// tokenRow is a token prepared for display, independent of the rule set's
// token type.
type tokenRow struct {
	Span   lexa.Span
	Rule   string
	Value  string
	Lexeme string
}

type tokenizeFunc func(input string) ([]tokenRow, error)

func rowsOf[V any](rules *lexer.RuleSet[V]) tokenizeFunc {
	return func(input string) ([]tokenRow, error) {
		tokens, err := lexer.Tokenize(rules, input, lexer.ErrorHandler(func(error) {}))
		rows := make([]tokenRow, len(tokens))
		for i, tok := range tokens {
			rows[i] = tokenRow{
				Span:   tok.Span,
				Rule:   rules.RuleName(tok.Rule),
				Value:  fmt.Sprint(tok.Value),
				Lexeme: tok.Lexeme,
			}
		}
		return rows, err
	}
}

// tokenizer builds the rule set selected by the options.
func (o langOptions) tokenizer() (tokenizeFunc, string, error) {
	if o.Rules != "" {
		spec, err := rulespec.Load(o.Rules)
		if err != nil {
			return nil, "", err
		}
		rules, err := spec.RuleSet()
		if err != nil {
			return nil, "", err
		}
		return rowsOf(rules), rules.Name(), nil
	}
	var opts []lexer.RuleSetOption
	if o.Engine == "lexmachine" {
		opts = append(opts, lexer.WithMatcher(lexmach.Compile))
	}
	switch o.Lang {
	case "stackvm":
		rules, err := lexer.NewRuleSet("stackvm", stackvm.Rules(), opts...)
		if err != nil {
			return nil, "", err
		}
		return rowsOf(rules), rules.Name(), nil
	default:
		rules, err := lexer.NewRuleSet("exprlang", exprlang.Rules(), opts...)
		if err != nil {
			return nil, "", err
		}
		return rowsOf(rules), rules.Name(), nil
	}
}

func printTokens(rows []tokenRow) {
	if len(rows) == 0 {
		pterm.Info.Println("no tokens")
		return
	}
	data := pterm.TableData{{"Span", "Rule", "Value", "Lexeme"}}
	for _, row := range rows {
		data = append(data, []string{row.Span.String(), row.Rule, row.Value, fmt.Sprintf("%q", row.Lexeme)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printLexicalError(err error) {
	pterm.Error.Println(err.Error())
}

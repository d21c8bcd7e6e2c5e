/*
Package rulespec reads rule sets for package lexer from YAML documents.

A rule specification names the rule set, selects a pattern engine and lists
the rules in order of priority:

	name: calc
	engine: regexp        # or: lexmachine
	rules:
	  - name: space
	    pattern: '[ \t\n]+'
	    action: skip
	  - name: let
	    pattern: let
	    action: const     # token kind defaults to the rule's name
	  - name: number
	    pattern: '[0-9]+'
	    action: derive
	    derive: int       # lexeme, int, float or unquote

Tokens produced by such rule sets carry a Value, consisting of the token kind
and, for derive actions, the converted lexeme.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rulespec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/lexa/lexer"
	"github.com/npillmayer/lexa/lexer/lexmach"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'lexa.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("lexa.lexer")
}

// ErrInvalidSpec is wrapped by all errors concerning the content of a rule
// specification.
var ErrInvalidSpec = errors.New("invalid rule specification")

// Value is the token value of rule sets built from specifications.
type Value struct {
	Kind string      // token kind, i.e. the rule's kind or name
	Data interface{} // converted lexeme for derive actions, nil otherwise
}

func (v Value) String() string {
	if v.Data == nil {
		return v.Kind
	}
	return fmt.Sprintf("%s(%v)", v.Kind, v.Data)
}

// Spec is a rule set specification.
type Spec struct {
	Name   string     `yaml:"name"`
	Engine string     `yaml:"engine,omitempty"`
	Rules  []RuleSpec `yaml:"rules"`
}

// RuleSpec specifies a single rule.
type RuleSpec struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	Action  string `yaml:"action"`           // skip, const or derive
	Kind    string `yaml:"kind,omitempty"`   // token kind, default is Name
	Derive  string `yaml:"derive,omitempty"` // conversion for derive actions
}

var derivations = map[string]func(string) (interface{}, error){
	"lexeme": func(s string) (interface{}, error) {
		return s, nil
	},
	"int": func(s string) (interface{}, error) {
		return strconv.ParseInt(s, 0, 64)
	},
	"float": func(s string) (interface{}, error) {
		return strconv.ParseFloat(s, 64)
	},
	"unquote": func(s string) (interface{}, error) {
		return strconv.Unquote(s)
	},
}

// Load reads a rule specification from a YAML file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rulespec: %w", err)
	}
	return Parse(data)
}

// Parse reads a rule specification from YAML. Unknown fields are rejected.
func Parse(data []byte) (*Spec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	spec := &Spec{}
	if err := dec.Decode(spec); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("rulespec: %w: empty document", ErrInvalidSpec)
		}
		return nil, fmt.Errorf("rulespec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	tracer().Debugf("rule specification %q with %d rules", spec.Name, len(spec.Rules))
	return spec, nil
}

// Validate checks a specification for completeness.
func (s *Spec) Validate() error {
	if s.Name == "" {
		return s.invalid("missing name")
	}
	switch s.Engine {
	case "", "regexp", "lexmachine":
	default:
		return s.invalid("unknown engine %q", s.Engine)
	}
	if len(s.Rules) == 0 {
		return s.invalid("no rules")
	}
	for i, r := range s.Rules {
		if r.Pattern == "" {
			return s.invalid("rule #%d: missing pattern", i)
		}
		switch r.Action {
		case "skip", "const":
		case "derive":
			if _, ok := derivations[r.derivation()]; !ok {
				return s.invalid("rule #%d: unknown derivation %q", i, r.Derive)
			}
		default:
			return s.invalid("rule #%d: unknown action %q", i, r.Action)
		}
		if r.Action != "skip" && r.kind() == "" {
			return s.invalid("rule #%d: token kind needs a name or kind", i)
		}
	}
	return nil
}

func (s *Spec) invalid(format string, args ...interface{}) error {
	return fmt.Errorf("rulespec %s: %w: %s", s.Name, ErrInvalidSpec, fmt.Sprintf(format, args...))
}

func (r RuleSpec) kind() string {
	if r.Kind != "" {
		return r.Kind
	}
	return r.Name
}

func (r RuleSpec) derivation() string {
	if r.Derive == "" {
		return "lexeme"
	}
	return r.Derive
}

// LexerRules converts the specification to lexer rules.
func (s *Spec) LexerRules() []lexer.Rule[Value] {
	rules := make([]lexer.Rule[Value], len(s.Rules))
	for i, r := range s.Rules {
		rules[i] = lexer.Rule[Value]{Name: r.Name, Pattern: r.Pattern}
		switch r.Action {
		case "skip":
			rules[i].Action = lexer.Skip[Value]()
		case "const":
			rules[i].Action = lexer.Const(Value{Kind: r.kind()})
		case "derive":
			kind, derive := r.kind(), derivations[r.derivation()]
			rules[i].Action = lexer.DeriveErr(func(lexeme string) (Value, error) {
				data, err := derive(lexeme)
				return Value{Kind: kind, Data: data}, err
			})
		}
	}
	return rules
}

// RuleSet compiles the specification into a rule set, using the pattern
// engine it names. Options given by the caller take precedence.
func (s *Spec) RuleSet(opts ...lexer.RuleSetOption) (*lexer.RuleSet[Value], error) {
	if s.Engine == "lexmachine" {
		opts = append([]lexer.RuleSetOption{lexer.WithMatcher(lexmach.Compile)}, opts...)
	}
	return lexer.NewRuleSet(s.Name, s.LexerRules(), opts...)
}

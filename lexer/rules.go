package lexer

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Rule is a pattern together with an action. Within a rule set, rules
// are ranked by their position: earlier rules win ties.
type Rule[V any] struct {
	Pattern string
	Action  Action[V]
	Name    string // optional, for diagnostics
}

// R is shorthand for creating an unnamed rule.
func R[V any](pattern string, action Action[V]) Rule[V] {
	return Rule[V]{Pattern: pattern, Action: action}
}

// RuleSet is an ordered, immutable list of rules, each with its pattern
// compiled into a matcher. A rule set is built once and may then be shared by
// any number of tokenizers, also concurrently.
type RuleSet[V any] struct {
	name     string
	rules    []Rule[V]
	matchers []Matcher
}

// RuleSetOption configures the construction of a rule set.
type RuleSetOption func(*ruleSetConfig)

type ruleSetConfig struct {
	factory  MatcherFactory
	matchers map[int]Matcher
}

// WithMatcher sets the factory used to compile patterns. The default is
// RegexpMatcher.
func WithMatcher(f MatcherFactory) RuleSetOption {
	return func(c *ruleSetConfig) {
		if f != nil {
			c.factory = f
		}
	}
}

// WithRuleMatcher installs a pre-built matcher for the rule at index i,
// bypassing pattern compilation for this rule.
func WithRuleMatcher(i int, m Matcher) RuleSetOption {
	return func(c *ruleSetConfig) {
		if c.matchers == nil {
			c.matchers = make(map[int]Matcher)
		}
		c.matchers[i] = m
	}
}

// NewRuleSet compiles a list of rules into a rule set. The order of rules is
// significant: if two rules match input of the same length, the earlier rule
// wins. NewRuleSet returns an error if a pattern does not compile.
func NewRuleSet[V any](name string, rules []Rule[V], opts ...RuleSetOption) (*RuleSet[V], error) {
	conf := ruleSetConfig{factory: RegexpMatcher}
	for _, opt := range opts {
		opt(&conf)
	}
	rs := &RuleSet[V]{
		name:     name,
		rules:    slices.Clone(rules),
		matchers: make([]Matcher, len(rules)),
	}
	for i, rule := range rs.rules {
		if m, ok := conf.matchers[i]; ok {
			rs.matchers[i] = m
			continue
		}
		m, err := conf.factory(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule set %s, rule #%d: %w", name, i, err)
		}
		rs.matchers[i] = m
	}
	tracer().Debugf("rule set %s compiled with %d rules", name, len(rules))
	return rs, nil
}

// MustRuleSet is like NewRuleSet, but panics on error. It is intended for rule
// sets known at compile time.
func MustRuleSet[V any](name string, rules []Rule[V], opts ...RuleSetOption) *RuleSet[V] {
	rs, err := NewRuleSet(name, rules, opts...)
	if err != nil {
		panic(err)
	}
	return rs
}

// Name returns the name of the rule set.
func (rs *RuleSet[V]) Name() string {
	return rs.name
}

// Len returns the number of rules.
func (rs *RuleSet[V]) Len() int {
	return len(rs.rules)
}

// Rule returns rule number i.
func (rs *RuleSet[V]) Rule(i int) Rule[V] {
	return rs.rules[i]
}

// RuleName returns the name of rule i, or its pattern if it is unnamed.
func (rs *RuleSet[V]) RuleName(i int) string {
	if rs.rules[i].Name != "" {
		return rs.rules[i].Name
	}
	return rs.rules[i].Pattern
}

// Longest finds the rule with the longest match anchored at offset at.
// Ties are won by the earlier rule; empty matches are ignored.
// If no rule matches, Longest returns (-1, 0).
func (rs *RuleSet[V]) Longest(input []byte, at int) (rule int, length int) {
	rule = -1
	for i, m := range rs.matchers {
		if l := m.MatchAt(input, at); l > length {
			rule, length = i, l
		}
	}
	return rule, length
}

package lexer

import (
	"fmt"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of compiled patterns held by the default
// regexp cache.
const DefaultCacheSize = 512

// RegexpCache creates regexp matchers and keeps compiled patterns in a
// least-recently-used cache. Rule sets built from the same pattern strings
// share compiled patterns. A RegexpCache is safe for concurrent use.
type RegexpCache struct {
	compiled *lru.Cache[string, *regexp.Regexp]
}

// NewRegexpCache creates a cache for up to size compiled patterns.
func NewRegexpCache(size int) *RegexpCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, err := lru.New[string, *regexp.Regexp](size)
	if err != nil { // cannot happen for positive sizes
		panic(err)
	}
	return &RegexpCache{compiled: c}
}

var defaultRegexpCache = NewRegexpCache(DefaultCacheSize)

// RegexpMatcher is the default MatcherFactory. It compiles patterns in the
// syntax of package regexp and uses a cache shared by all rule sets.
func RegexpMatcher(pattern string) (Matcher, error) {
	return defaultRegexpCache.Matcher(pattern)
}

// Matcher returns a matcher for pattern, compiling it if necessary. Method
// value c.Matcher may be used as a MatcherFactory.
//
// Patterns are anchored at the match position and use leftmost-longest
// semantics, i.e. alternatives do not shadow longer matches.
func (c *RegexpCache) Matcher(pattern string) (Matcher, error) {
	if re, ok := c.compiled.Get(pattern); ok {
		metricPatternCache.WithLabelValues("hit").Inc()
		return regexpMatcher{re}, nil
	}
	metricPatternCache.WithLabelValues("miss").Inc()
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return nil, fmt.Errorf("lexer: cannot compile pattern %q: %w", pattern, err)
	}
	re.Longest()
	c.compiled.Add(pattern, re)
	return regexpMatcher{re}, nil
}

// Len returns the number of cached patterns.
func (c *RegexpCache) Len() int {
	return c.compiled.Len()
}

type regexpMatcher struct {
	re *regexp.Regexp
}

func (m regexpMatcher) MatchAt(input []byte, at int) int {
	loc := m.re.FindIndex(input[at:])
	if loc == nil {
		return -1
	}
	return loc[1]
}

package lexer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricTokens = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lexa_lexer_tokens_total",
		Help: "Number of tokens emitted by tokenizers",
	})
	metricDiscarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lexa_lexer_discarded_spans_total",
		Help: "Number of matched spans discarded by tokenizers",
	})
	metricLexicalErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lexa_lexer_errors_total",
		Help: "Number of lexical errors",
	})
	metricPatternCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lexa_lexer_pattern_cache_total",
		Help: "Lookups of compiled patterns, by result",
	}, []string{"result"})
)

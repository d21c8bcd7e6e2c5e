package automata

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricSubsetConstructions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "lexa",
		Subsystem: "automata",
		Name:      "subset_constructions_total",
		Help:      "Total number of NFA to DFA conversions",
	})
	metricDFAStates = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "lexa",
		Subsystem: "automata",
		Name:      "dfa_states_total",
		Help:      "Total number of DFA states created by subset construction",
	})
)

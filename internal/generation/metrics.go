package generation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_generation_attempts_total",
			Help: "Schema validated completion attempts by schema and outcome.",
		},
		[]string{"schema", "outcome"},
	)
	generationResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_generation_results_total",
			Help: "Schema validated completion calls by schema and final status.",
		},
		[]string{"schema", "status"},
	)
)

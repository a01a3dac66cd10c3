// apps/go-solver/internal/solver/metrics.go
//
// Prometheus collectors for the engine, registered on the default registry and
// served by the HTTP /metrics endpoint.

package solver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	roundsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "solver_rounds_started_total",
		Help: "Rounds started by any engine",
	})

	roundsSolved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "solver_rounds_solved_total",
		Help: "Rounds that ended with all-correct feedback",
	})

	guessesPerRound = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "solver_guesses_per_round",
		Help:    "Guesses emitted in a solved round, opening guess included",
		Buckets: []float64{1, 2, 3, 4, 5, 6, 8, 10, 15, 20},
	})

	treeEdits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "solver_tree_edits_total",
		Help: "Structural edits applied to working trees, by operation",
	}, []string{"op"})
)

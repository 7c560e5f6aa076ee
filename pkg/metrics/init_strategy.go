package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initStrategyMetrics() {
	r.EvaluationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "offload_evaluations_total",
			Help: "Total number of strategy evaluations",
		},
		[]string{"strategy", "status"},
	)

	r.EvaluationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "offload_evaluation_duration_seconds",
			Help:    "Strategy evaluation duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
		[]string{"strategy"},
	)

	r.EndToEndDelay = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "offload_end_to_end_delay_ms",
			Help:    "End-to-end delay of feasible assignments in model ms",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
		[]string{"strategy"},
	)

	r.PathLength = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "offload_path_length_hops",
			Help:    "Hop count of returned paths",
			Buckets: []float64{1, 2, 4, 8, 16, 32},
		},
		[]string{"strategy"},
	)

	r.NoPathTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "offload_no_path_total",
			Help: "Total number of evaluations with no feasible assignment",
		},
		[]string{"strategy"},
	)
}

func (r *Registry) initExpansionMetrics() {
	r.ExpansionNodes = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "offload_expansion_nodes",
			Help:    "Node count of expanded graphs",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		},
		[]string{"variant"},
	)

	r.ExpansionEdges = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "offload_expansion_edges",
			Help:    "Edge count of expanded graphs",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		},
		[]string{"variant"},
	)

	r.ExpansionDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "offload_expansion_duration_seconds",
			Help:    "Expanded-graph construction duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0},
		},
		[]string{"variant"},
	)
}

// ObserveEvaluation records one strategy evaluation outcome
func (r *Registry) ObserveEvaluation(strategy, status string, seconds float64) {
	r.EvaluationsTotal.WithLabelValues(strategy, status).Inc()
	r.EvaluationDuration.WithLabelValues(strategy).Observe(seconds)
}

// ObserveResult records the delay and path shape of a feasible result
func (r *Registry) ObserveResult(strategy string, delay float64, hops int) {
	r.EndToEndDelay.WithLabelValues(strategy).Observe(delay)
	r.PathLength.WithLabelValues(strategy).Observe(float64(hops))
}

// ObserveExpansion records the size and build time of one expanded graph
func (r *Registry) ObserveExpansion(variant string, nodes, edges int, seconds float64) {
	r.ExpansionNodes.WithLabelValues(variant).Observe(float64(nodes))
	r.ExpansionEdges.WithLabelValues(variant).Observe(float64(edges))
	r.ExpansionDuration.WithLabelValues(variant).Observe(seconds)
}

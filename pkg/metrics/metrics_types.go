package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Strategy Metrics
	EvaluationsTotal   *prometheus.CounterVec
	EvaluationDuration *prometheus.HistogramVec
	EndToEndDelay      *prometheus.HistogramVec
	PathLength         *prometheus.HistogramVec
	NoPathTotal        *prometheus.CounterVec

	// Expansion Metrics
	ExpansionNodes    *prometheus.HistogramVec
	ExpansionEdges    *prometheus.HistogramVec
	ExpansionDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initStrategyMetrics()
	r.initExpansionMetrics()
	return r
}

// Gatherer exposes the underlying prometheus registry for scraping or
// test inspection
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

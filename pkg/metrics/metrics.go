package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the library
type Registry struct {
	// Energy computation metrics
	EnergyComputationsTotal   *prometheus.CounterVec
	EnergyComputationDuration *prometheus.HistogramVec

	// Augmentation metrics
	AugmentationsAppliedTotal *prometheus.CounterVec
	AugmentationsSkippedTotal *prometheus.CounterVec

	// Derived analysis metrics
	PageRankIterations   prometheus.Histogram
	CommunitySplitsTotal prometheus.Counter

	// Graph size metrics
	GraphNodes prometheus.Gauge
	GraphEdges prometheus.Gauge

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
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initEnergyMetrics()
	r.initAnalysisMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

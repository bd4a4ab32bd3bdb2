package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initEnergyMetrics() {
	r.EnergyComputationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "energygraph_energy_computations_total",
			Help: "Total number of per-graph energy computations",
		},
		[]string{"method", "status"},
	)

	r.EnergyComputationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "energygraph_energy_computation_duration_seconds",
			Help:    "Energy computation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"method"},
	)

	r.AugmentationsAppliedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "energygraph_augmentations_applied_total",
			Help: "Total number of augmentations computed and attached",
		},
		[]string{"scope"},
	)

	r.AugmentationsSkippedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "energygraph_augmentations_skipped_total",
			Help: "Total number of augmentations skipped as already applied",
		},
		[]string{"scope"},
	)
}

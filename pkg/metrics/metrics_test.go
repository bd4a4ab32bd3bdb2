package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_AllMetricsRegistered(t *testing.T) {
	r := NewRegistry()

	r.EnergyComputationsTotal.WithLabelValues("randic", "ok").Inc()
	r.EnergyComputationDuration.WithLabelValues("randic").Observe(0.01)
	r.AugmentationsAppliedTotal.WithLabelValues("node").Inc()
	r.AugmentationsSkippedTotal.WithLabelValues("edge").Inc()
	r.PageRankIterations.Observe(42)
	r.CommunitySplitsTotal.Inc()
	r.GraphNodes.Set(10)
	r.GraphEdges.Set(20)

	families, err := r.GetPrometheusRegistry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, expected := range []string{
		"energygraph_energy_computations_total",
		"energygraph_energy_computation_duration_seconds",
		"energygraph_augmentations_applied_total",
		"energygraph_augmentations_skipped_total",
		"energygraph_pagerank_iterations",
		"energygraph_community_splits_total",
		"energygraph_graph_nodes",
		"energygraph_graph_edges",
	} {
		assert.True(t, names[expected], "missing metric family %s", expected)
	}
}

func TestCounterValues(t *testing.T) {
	r := NewRegistry()

	r.EnergyComputationsTotal.WithLabelValues("laplacian", "error").Inc()
	r.EnergyComputationsTotal.WithLabelValues("laplacian", "error").Inc()

	value := testutil.ToFloat64(r.EnergyComputationsTotal.WithLabelValues("laplacian", "error"))
	assert.Equal(t, 2.0, value)
}

func TestDefaultRegistry_Singleton(t *testing.T) {
	assert.Same(t, DefaultRegistry(), DefaultRegistry())
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.PageRankIterations = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "energygraph_pagerank_iterations",
			Help:    "Iterations performed per rank propagation run",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	r.CommunitySplitsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "energygraph_community_splits_total",
			Help: "Total number of gradient-driven community split runs started",
		},
	)

	r.GraphNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "energygraph_graph_nodes",
			Help: "Node count of the most recently analyzed graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "energygraph_graph_edges",
			Help: "Edge count of the most recently analyzed graph",
		},
	)
}

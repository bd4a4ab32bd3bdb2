package gradient

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-energy/pkg/algorithms"
	"github.com/dd0wney/cluso-energy/pkg/energy"
	"github.com/dd0wney/cluso-energy/pkg/metrics"
	"github.com/dd0wney/cluso-energy/pkg/storage"
)

// ErrNoEdges is returned by the gradient selector when the working graph
// has no edges left to remove.
var ErrNoEdges = errors.New("no edges to select")

// SplitByGradient returns a splitter that repeatedly removes the edge
// with the highest energy gradient, in the manner of Girvan-Newman but
// with gradients standing in for betweenness. Gradients are recomputed on
// the shrinking working graph before every removal; ties resolve to the
// earliest-inserted edge. Each call to Next on the returned splitter
// yields the partition after the component count grows.
func SplitByGradient(g *storage.Graph, method energy.Name) (*algorithms.Splitter, error) {
	m, err := energy.Resolve(method)
	if err != nil {
		return nil, err
	}

	selector := func(working *storage.Graph) (uint64, uint64, error) {
		grads, err := Gradients(working, m, false, 1)
		if err != nil {
			return 0, 0, fmt.Errorf("select max gradient edge: %w", err)
		}

		best := EdgeKey{}
		bestValue := 0.0
		found := false
		for _, edge := range working.Edges() {
			value := grads[EdgeKey{From: edge.From, To: edge.To}]
			if !found || value > bestValue {
				best = EdgeKey{From: edge.From, To: edge.To}
				bestValue = value
				found = true
			}
		}
		if !found {
			return 0, 0, ErrNoEdges
		}

		metrics.DefaultRegistry().CommunitySplitsTotal.Inc()
		return best.From, best.To, nil
	}

	return algorithms.NewSplitter(g, selector), nil
}

// Package gradient derives per-edge energy gradients from per-node
// energies, memoizes both onto graphs through an idempotent augmentation
// engine, and composes them into gradient-weighted centrality and
// gradient-guided community detection.
package gradient

import (
	"errors"
	"fmt"
	"time"

	"github.com/dd0wney/cluso-energy/pkg/energy"
	"github.com/dd0wney/cluso-energy/pkg/metrics"
	"github.com/dd0wney/cluso-energy/pkg/storage"
)

// EdgeKey identifies an edge by its ordered endpoints. Gradients are
// directional: the key (u,v) carries energy(v) − energy(u).
type EdgeKey struct {
	From uint64
	To   uint64
}

// ErrMissingEnergy is returned when an energy method broke its contract
// and left a node out of its mapping. Gradients are never extrapolated.
var ErrMissingEnergy = errors.New("energy mapping missing node")

// Gradients computes the energy gradient of every edge: the energy of the
// target minus the energy of the source. With complete=true the graph is
// first converted to directed form, so every undirected edge contributes
// both orientations, each with its own sign. The result covers exactly the
// edge set of the (possibly converted) graph.
func Gradients(g *storage.Graph, m energy.Method, complete bool, radius int) (map[EdgeKey]float64, error) {
	if complete {
		g = g.ToDirected()
	}

	energies, err := computeEnergies(g, m, radius)
	if err != nil {
		return nil, fmt.Errorf("compute %s energies: %w", m.Name(), err)
	}

	result := make(map[EdgeKey]float64, g.NumEdges())
	for _, edge := range g.Edges() {
		source, ok := energies[edge.From]
		if !ok {
			return nil, fmt.Errorf("edge %d->%d: node %d: %w", edge.From, edge.To, edge.From, ErrMissingEnergy)
		}
		target, ok := energies[edge.To]
		if !ok {
			return nil, fmt.Errorf("edge %d->%d: node %d: %w", edge.From, edge.To, edge.To, ErrMissingEnergy)
		}
		result[EdgeKey{From: edge.From, To: edge.To}] = target - source
	}

	return result, nil
}

// computeEnergies runs an energy method with metrics instrumentation
func computeEnergies(g *storage.Graph, m energy.Method, radius int) (map[uint64]float64, error) {
	reg := metrics.DefaultRegistry()
	name := string(m.Name())

	start := time.Now()
	energies, err := m.Compute(g, radius)
	reg.EnergyComputationDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	status := "ok"
	if err != nil {
		status = "error"
	}
	reg.EnergyComputationsTotal.WithLabelValues(name, status).Inc()

	return energies, err
}

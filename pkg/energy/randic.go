package energy

import (
	"fmt"
	"math"

	"github.com/dd0wney/cluso-energy/pkg/storage"
)

// randicMethod assigns each node the Randić index of its ego network:
// the sum of (d(u)·d(v))^(-1/2) over the ego network's edges.
type randicMethod struct{}

func (randicMethod) Name() Name { return Randic }

func (randicMethod) Compute(g *storage.Graph, radius int) (map[uint64]float64, error) {
	energies := make(map[uint64]float64, g.NumNodes())
	for _, id := range g.NodeIDs() {
		ego, err := Ego(g, id, radius)
		if err != nil {
			return nil, fmt.Errorf("randic energy of node %d: %w", id, err)
		}
		energies[id] = randicIndex(ego)
	}
	return energies, nil
}

func randicIndex(g *storage.Graph) float64 {
	index := 0.0
	for _, edge := range g.Edges() {
		du := g.Degree(edge.From)
		dv := g.Degree(edge.To)
		if du == 0 || dv == 0 {
			continue
		}
		index += 1.0 / math.Sqrt(float64(du)*float64(dv))
	}
	return index
}

package energy

import (
	"fmt"

	"github.com/dd0wney/cluso-energy/pkg/storage"
)

// laplacianMethod assigns each node the drop in Laplacian energy its
// removal causes in its ego network. For a simple unweighted graph the
// Laplacian energy is tr(L²) = Σᵢ dᵢ² + dᵢ, so the drop is computable
// from degrees alone.
type laplacianMethod struct{}

func (laplacianMethod) Name() Name { return Laplacian }

func (laplacianMethod) Compute(g *storage.Graph, radius int) (map[uint64]float64, error) {
	energies := make(map[uint64]float64, g.NumNodes())
	for _, id := range g.NodeIDs() {
		ego, err := Ego(g, id, radius)
		if err != nil {
			return nil, fmt.Errorf("laplacian energy of node %d: %w", id, err)
		}
		energies[id] = laplacianDrop(ego, id, ego.Degree)
	}
	return energies, nil
}

// directedLaplacianMethod is the laplacian drop computed on the directed
// form of the graph with out-degrees.
type directedLaplacianMethod struct{}

func (directedLaplacianMethod) Name() Name { return DirectedLaplacian }

func (directedLaplacianMethod) Compute(g *storage.Graph, radius int) (map[uint64]float64, error) {
	directed := g.ToDirected()
	energies := make(map[uint64]float64, directed.NumNodes())
	for _, id := range directed.NodeIDs() {
		ego, err := Ego(directed, id, radius)
		if err != nil {
			return nil, fmt.Errorf("directed laplacian energy of node %d: %w", id, err)
		}
		energies[id] = laplacianDrop(ego, id, ego.OutDegree)
	}
	return energies, nil
}

// laplacianDrop computes LE(g) − LE(g∖{v}) where LE sums d² + d over the
// given degree function. Degrees of v's neighbors shrink by one when v is
// removed; no graph surgery needed.
func laplacianDrop(g *storage.Graph, v uint64, degree func(uint64) int) float64 {
	adjacent := make(map[uint64]bool)
	for _, edge := range g.Edges() {
		if edge.From == v && edge.To != v {
			adjacent[edge.To] = true
		}
		if edge.To == v && edge.From != v {
			adjacent[edge.From] = true
		}
	}

	total := 0.0
	remaining := 0.0
	for _, id := range g.NodeIDs() {
		d := float64(degree(id))
		total += d*d + d
		if id == v {
			continue
		}
		if adjacent[id] {
			d--
		}
		remaining += d*d + d
	}
	return total - remaining
}

package energy

import (
	"errors"
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/dd0wney/cluso-energy/pkg/storage"
)

// ErrEigenFailed is returned when the eigenvalue decomposition backing the
// graph energy method does not converge.
var ErrEigenFailed = errors.New("eigenvalue decomposition failed")

// graphEnergyMethod assigns each node the graph energy of its ego network:
// the sum of absolute eigenvalues of the adjacency matrix (complex modulus
// for directed ego networks).
type graphEnergyMethod struct{}

func (graphEnergyMethod) Name() Name { return GraphEnergy }

func (graphEnergyMethod) Compute(g *storage.Graph, radius int) (map[uint64]float64, error) {
	energies := make(map[uint64]float64, g.NumNodes())
	for _, id := range g.NodeIDs() {
		ego, err := Ego(g, id, radius)
		if err != nil {
			return nil, fmt.Errorf("graph energy of node %d: %w", id, err)
		}
		value, err := graphEnergy(ego)
		if err != nil {
			return nil, fmt.Errorf("graph energy of node %d: %w", id, err)
		}
		energies[id] = value
	}
	return energies, nil
}

func graphEnergy(g *storage.Graph) (float64, error) {
	ids := g.NodeIDs()
	n := len(ids)
	if n == 0 {
		return 0, nil
	}

	index := make(map[uint64]int, n)
	for i, id := range ids {
		index[id] = i
	}

	adjacency := mat.NewDense(n, n, nil)
	for _, edge := range g.Edges() {
		i := index[edge.From]
		j := index[edge.To]
		adjacency.Set(i, j, 1)
		if !g.IsDirected() {
			adjacency.Set(j, i, 1)
		}
	}

	var eigen mat.Eigen
	if ok := eigen.Factorize(adjacency, mat.EigenNone); !ok {
		return 0, ErrEigenFailed
	}

	energy := 0.0
	for _, value := range eigen.Values(nil) {
		energy += cmplx.Abs(value)
	}
	return energy, nil
}

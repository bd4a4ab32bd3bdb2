package algorithms

import (
	"errors"
	"fmt"
	"math"

	"github.com/dd0wney/cluso-energy/pkg/storage"
)

// PageRankOptions configures weighted rank propagation
type PageRankOptions struct {
	// WeightKey names the edge property read as weight. Edges without the
	// property contribute weight 1.0.
	WeightKey string

	DampingFactor float64 // Usually 0.85
	MaxIterations int
	Tolerance     float64 // Convergence threshold (scaled by node count)

	// Personalization biases the random jump. Nodes absent from the map
	// get zero jump probability. Nil means uniform.
	Personalization map[uint64]float64

	// NStart is the starting score vector. Nil means uniform.
	NStart map[uint64]float64

	// Dangling distributes the score of nodes with no outgoing weight.
	// Nil means the personalization vector (or uniform).
	Dangling map[uint64]float64
}

// DefaultPageRankOptions returns default rank propagation configuration
func DefaultPageRankOptions() PageRankOptions {
	return PageRankOptions{
		DampingFactor: 0.85,
		MaxIterations: 100,
		Tolerance:     1e-6,
	}
}

// PageRankResult contains rank propagation scores for all nodes
type PageRankResult struct {
	Scores     map[uint64]float64 // Node ID -> score; nil when not converged
	Iterations int                // Number of iterations performed
	Converged  bool               // Whether the iteration converged
}

// ErrZeroDistribution is returned when a supplied personalization, start,
// or dangling vector sums to zero and cannot be normalized.
var ErrZeroDistribution = errors.New("distribution sums to zero")

// PageRank computes weighted, personalized PageRank scores. Edges are
// treated as directed From→To; convert undirected graphs with ToDirected
// first. The iteration stops when the L1 change drops below Tolerance
// scaled by the node count; hitting MaxIterations first yields
// Converged=false with nil Scores.
func PageRank(g *storage.Graph, opts PageRankOptions) (*PageRankResult, error) {
	nodeIDs := g.NodeIDs()
	n := len(nodeIDs)
	if n == 0 {
		return &PageRankResult{
			Scores:    make(map[uint64]float64),
			Converged: true,
		}, nil
	}

	// Starting vector
	scores := make(map[uint64]float64, n)
	if opts.NStart == nil {
		uniform := 1.0 / float64(n)
		for _, id := range nodeIDs {
			scores[id] = uniform
		}
	} else {
		normalized, err := normalize(opts.NStart, "nstart")
		if err != nil {
			return nil, err
		}
		for _, id := range nodeIDs {
			scores[id] = normalized[id]
		}
	}

	// Jump distribution
	var personalization map[uint64]float64
	if opts.Personalization != nil {
		normalized, err := normalize(opts.Personalization, "personalization")
		if err != nil {
			return nil, err
		}
		personalization = normalized
	}

	// Dangling-node distribution: explicit, else personalization, else uniform
	var dangling map[uint64]float64
	if opts.Dangling != nil {
		normalized, err := normalize(opts.Dangling, "dangling")
		if err != nil {
			return nil, err
		}
		dangling = normalized
	} else {
		dangling = personalization
	}

	// Total outgoing weight per node
	outWeight := make(map[uint64]float64, n)
	for _, id := range nodeIDs {
		total := 0.0
		for _, edge := range g.OutEdges(id) {
			w, err := edgeWeight(edge, opts.WeightKey)
			if err != nil {
				return nil, err
			}
			total += w
		}
		outWeight[id] = total
	}

	danglingNodes := make([]uint64, 0)
	for _, id := range nodeIDs {
		if outWeight[id] == 0 {
			danglingNodes = append(danglingNodes, id)
		}
	}

	alpha := opts.DampingFactor
	uniform := 1.0 / float64(n)
	iterations := 0
	converged := false

	for iterations < opts.MaxIterations {
		iterations++

		next := make(map[uint64]float64, n)

		danglesum := 0.0
		for _, id := range danglingNodes {
			danglesum += scores[id]
		}
		danglesum *= alpha

		for _, id := range nodeIDs {
			total := outWeight[id]
			if total == 0 {
				continue
			}
			contribution := alpha * scores[id] / total
			for _, edge := range g.OutEdges(id) {
				w, _ := edgeWeight(edge, opts.WeightKey)
				next[edge.To] += contribution * w
			}
		}

		for _, id := range nodeIDs {
			next[id] += danglesum*distribution(dangling, id, uniform) +
				(1.0-alpha)*distribution(personalization, id, uniform)
		}

		change := 0.0
		for _, id := range nodeIDs {
			change += math.Abs(next[id] - scores[id])
		}
		scores = next

		if change < float64(n)*opts.Tolerance {
			converged = true
			break
		}
	}

	if !converged {
		return &PageRankResult{Iterations: iterations, Converged: false}, nil
	}

	return &PageRankResult{
		Scores:     scores,
		Iterations: iterations,
		Converged:  true,
	}, nil
}

// GetNodeRank returns the score for a specific node
func (pr *PageRankResult) GetNodeRank(nodeID uint64) float64 {
	return pr.Scores[nodeID]
}

// edgeWeight reads the weight property of an edge, defaulting to 1.0 when
// no key is configured or the edge lacks the property.
func edgeWeight(edge *storage.Edge, key string) (float64, error) {
	if key == "" {
		return 1.0, nil
	}
	value, ok := edge.GetProperty(key)
	if !ok {
		return 1.0, nil
	}
	w, err := value.AsFloat()
	if err != nil {
		return 0, fmt.Errorf("edge %d->%d weight %q: %w", edge.From, edge.To, key, err)
	}
	return w, nil
}

// normalize scales a distribution so it sums to one
func normalize(dist map[uint64]float64, what string) (map[uint64]float64, error) {
	sum := 0.0
	for _, v := range dist {
		sum += v
	}
	if sum == 0 {
		return nil, fmt.Errorf("%s: %w", what, ErrZeroDistribution)
	}
	normalized := make(map[uint64]float64, len(dist))
	for k, v := range dist {
		normalized[k] = v / sum
	}
	return normalized, nil
}

// distribution reads a normalized distribution, falling back to uniform
// when none was supplied and zero when the node is absent.
func distribution(dist map[uint64]float64, id uint64, uniform float64) float64 {
	if dist == nil {
		return uniform
	}
	return dist[id]
}

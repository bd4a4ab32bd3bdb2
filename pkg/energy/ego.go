package energy

import (
	"container/list"

	"github.com/dd0wney/cluso-energy/pkg/storage"
)

// Ego returns the induced subgraph of the nodes within radius hops of
// center. On directed graphs only successor edges are followed.
func Ego(g *storage.Graph, center uint64, radius int) (*storage.Graph, error) {
	if !g.HasNode(center) {
		return nil, storage.NodeNotFoundError("Ego", center)
	}

	depth := map[uint64]int{center: 0}

	queue := list.New()
	queue.PushBack(center)

	for queue.Len() > 0 {
		id := queue.Remove(queue.Front()).(uint64)
		if depth[id] >= radius {
			continue
		}
		for _, neighbor := range g.Neighbors(id) {
			if _, seen := depth[neighbor]; !seen {
				depth[neighbor] = depth[id] + 1
				queue.PushBack(neighbor)
			}
		}
	}

	var ego *storage.Graph
	if g.IsDirected() {
		ego = storage.NewDirectedGraph()
	} else {
		ego = storage.NewGraph()
	}

	for id := range depth {
		ego.AddNode(id)
	}
	for _, edge := range g.Edges() {
		if _, inFrom := depth[edge.From]; !inFrom {
			continue
		}
		if _, inTo := depth[edge.To]; !inTo {
			continue
		}
		ego.AddEdge(edge.From, edge.To)
	}

	return ego, nil
}

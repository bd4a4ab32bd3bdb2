package algorithms

import (
	"container/list"
	"sort"

	"github.com/dd0wney/cluso-energy/pkg/storage"
)

// ConnectedComponents finds all weakly connected components. Each component
// lists its members in ascending ID order; components are ordered by their
// smallest member.
func ConnectedComponents(g *storage.Graph) [][]uint64 {
	visited := make(map[uint64]bool)
	components := make([][]uint64, 0)

	for _, start := range g.NodeIDs() {
		if visited[start] {
			continue
		}

		component := make([]uint64, 0)

		queue := list.New()
		queue.PushBack(start)
		visited[start] = true

		for queue.Len() > 0 {
			id := queue.Remove(queue.Front()).(uint64)
			component = append(component, id)

			// Both directions: weak connectivity
			for _, edge := range g.OutEdges(id) {
				if !visited[edge.To] {
					visited[edge.To] = true
					queue.PushBack(edge.To)
				}
			}
			for _, edge := range g.InEdges(id) {
				if !visited[edge.From] {
					visited[edge.From] = true
					queue.PushBack(edge.From)
				}
			}
		}

		sort.Slice(component, func(i, j int) bool { return component[i] < component[j] })
		components = append(components, component)
	}

	return components
}

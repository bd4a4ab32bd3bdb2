package storage

// Clone creates a deep copy of the graph. Node and edge IDs, properties,
// and edge insertion order are preserved.
func (g *Graph) Clone() *Graph {
	clone := newGraph(g.directed)
	clone.nextEdgeID = g.nextEdgeID

	for id, node := range g.nodes {
		clone.nodes[id] = node.Clone()
	}
	for id, edge := range g.edges {
		clone.edges[id] = edge.Clone()
	}
	for id, list := range g.outgoing {
		clone.outgoing[id] = append([]uint64(nil), list...)
	}
	for id, list := range g.incoming {
		clone.incoming[id] = append([]uint64(nil), list...)
	}
	clone.edgeOrder = append([]uint64(nil), g.edgeOrder...)

	return clone
}

// ToDirected returns a directed deep copy of the graph. Every undirected
// edge contributes two directed edges carrying copies of its properties:
// the original orientation first, the reverse immediately after, so the
// result's insertion order follows the source's. Self-loops contribute a
// single edge. Directed graphs are returned as a plain clone.
func (g *Graph) ToDirected() *Graph {
	if g.directed {
		return g.Clone()
	}

	directed := newGraph(true)
	for _, id := range g.NodeIDs() {
		node := directed.AddNode(id)
		for k, v := range g.nodes[id].Properties {
			node.Properties[k] = v
		}
	}

	for _, edgeID := range g.edgeOrder {
		edge := g.edges[edgeID]

		forward, _ := directed.AddEdge(edge.From, edge.To)
		for k, v := range edge.Properties {
			forward.Properties[k] = v
		}

		if edge.From == edge.To {
			continue
		}
		reverse, _ := directed.AddEdge(edge.To, edge.From)
		for k, v := range edge.Properties {
			reverse.Properties[k] = v
		}
	}

	return directed
}

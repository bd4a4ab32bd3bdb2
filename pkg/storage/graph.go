package storage

import (
	"fmt"
	"sort"
)

// Graph is an in-memory property graph. Nodes and edges carry open-ended
// typed property maps. Edge iteration follows insertion order, which is the
// iteration order every algorithm in this module observes.
//
// Graph is not safe for concurrent use; callers that share an instance
// across goroutines must provide their own locking.
type Graph struct {
	directed bool

	nodes map[uint64]*Node
	edges map[uint64]*Edge

	// Adjacency: node ID -> edge IDs. For undirected graphs an edge appears
	// in outgoing of its From node and incoming of its To node; incident
	// edges are the union of both lists.
	outgoing map[uint64][]uint64
	incoming map[uint64][]uint64

	// Edge IDs in insertion order.
	edgeOrder []uint64

	nextEdgeID uint64
}

// Statistics summarizes graph size
type Statistics struct {
	NodeCount uint64
	EdgeCount uint64
}

// NewGraph creates an empty undirected graph
func NewGraph() *Graph {
	return newGraph(false)
}

// NewDirectedGraph creates an empty directed graph
func NewDirectedGraph() *Graph {
	return newGraph(true)
}

func newGraph(directed bool) *Graph {
	return &Graph{
		directed:   directed,
		nodes:      make(map[uint64]*Node),
		edges:      make(map[uint64]*Edge),
		outgoing:   make(map[uint64][]uint64),
		incoming:   make(map[uint64][]uint64),
		nextEdgeID: 1,
	}
}

// IsDirected reports whether the graph is directed
func (g *Graph) IsDirected() bool {
	return g.directed
}

// AddNode adds a node with the given ID. Adding an existing ID is a no-op
// and returns the existing node.
func (g *Graph) AddNode(id uint64) *Node {
	if node, exists := g.nodes[id]; exists {
		return node
	}
	node := &Node{
		ID:         id,
		Properties: make(map[string]Value),
	}
	g.nodes[id] = node
	return node
}

// AddEdge adds an edge between from and to, creating missing endpoints.
// Duplicate edges (same orientation, or either orientation on undirected
// graphs) are rejected with ErrDuplicateEdge.
func (g *Graph) AddEdge(from, to uint64) (*Edge, error) {
	if g.HasEdge(from, to) {
		return nil, &GraphError{Op: "AddEdge", Entity: "edge", Context: edgeContext(from, to), Cause: ErrDuplicateEdge}
	}

	g.AddNode(from)
	g.AddNode(to)

	edgeID := g.nextEdgeID
	g.nextEdgeID++

	edge := &Edge{
		ID:         edgeID,
		From:       from,
		To:         to,
		Properties: make(map[string]Value),
	}

	g.edges[edgeID] = edge
	g.outgoing[from] = append(g.outgoing[from], edgeID)
	g.incoming[to] = append(g.incoming[to], edgeID)
	g.edgeOrder = append(g.edgeOrder, edgeID)

	return edge, nil
}

// GetNode retrieves a node by ID
func (g *Graph) GetNode(id uint64) (*Node, error) {
	node, exists := g.nodes[id]
	if !exists {
		return nil, NodeNotFoundError("GetNode", id)
	}
	return node, nil
}

// HasNode reports whether a node exists
func (g *Graph) HasNode(id uint64) bool {
	_, exists := g.nodes[id]
	return exists
}

// GetEdge retrieves the edge between from and to. On undirected graphs
// either orientation matches.
func (g *Graph) GetEdge(from, to uint64) (*Edge, error) {
	if edge := g.findEdge(from, to); edge != nil {
		return edge, nil
	}
	return nil, EdgeNotFoundError("GetEdge", from, to)
}

// HasEdge reports whether an edge exists between from and to
func (g *Graph) HasEdge(from, to uint64) bool {
	return g.findEdge(from, to) != nil
}

func (g *Graph) findEdge(from, to uint64) *Edge {
	for _, edgeID := range g.outgoing[from] {
		if edge := g.edges[edgeID]; edge != nil && edge.To == to {
			return edge
		}
	}
	if !g.directed {
		for _, edgeID := range g.outgoing[to] {
			if edge := g.edges[edgeID]; edge != nil && edge.To == from {
				return edge
			}
		}
	}
	return nil
}

// RemoveEdge removes the edge between from and to
func (g *Graph) RemoveEdge(from, to uint64) error {
	edge := g.findEdge(from, to)
	if edge == nil {
		return EdgeNotFoundError("RemoveEdge", from, to)
	}

	g.outgoing[edge.From] = removeFromList(g.outgoing[edge.From], edge.ID)
	g.incoming[edge.To] = removeFromList(g.incoming[edge.To], edge.ID)
	g.edgeOrder = removeFromList(g.edgeOrder, edge.ID)
	delete(g.edges, edge.ID)

	return nil
}

// removeFromList removes the first occurrence of id, preserving order
func removeFromList(list []uint64, id uint64) []uint64 {
	for i, v := range list {
		if v == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Nodes returns all nodes in ascending ID order
func (g *Graph) Nodes() []*Node {
	ids := g.NodeIDs()
	nodes := make([]*Node, 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// NodeIDs returns all node IDs in ascending order
func (g *Graph) NodeIDs() []uint64 {
	ids := make([]uint64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Edges returns all edges in insertion order
func (g *Graph) Edges() []*Edge {
	edges := make([]*Edge, 0, len(g.edgeOrder))
	for _, edgeID := range g.edgeOrder {
		edges = append(edges, g.edges[edgeID])
	}
	return edges
}

// OutEdges returns the edges leaving a node. On undirected graphs this is
// the edges stored with the node as From.
func (g *Graph) OutEdges(id uint64) []*Edge {
	edges := make([]*Edge, 0, len(g.outgoing[id]))
	for _, edgeID := range g.outgoing[id] {
		edges = append(edges, g.edges[edgeID])
	}
	return edges
}

// InEdges returns the edges entering a node
func (g *Graph) InEdges(id uint64) []*Edge {
	edges := make([]*Edge, 0, len(g.incoming[id]))
	for _, edgeID := range g.incoming[id] {
		edges = append(edges, g.edges[edgeID])
	}
	return edges
}

// Neighbors returns the adjacent node IDs: successors on directed graphs,
// all incident nodes on undirected graphs. Each neighbor appears once.
func (g *Graph) Neighbors(id uint64) []uint64 {
	seen := make(map[uint64]bool)
	neighbors := make([]uint64, 0)

	for _, edgeID := range g.outgoing[id] {
		edge := g.edges[edgeID]
		if edge != nil && !seen[edge.To] {
			seen[edge.To] = true
			neighbors = append(neighbors, edge.To)
		}
	}
	if !g.directed {
		for _, edgeID := range g.incoming[id] {
			edge := g.edges[edgeID]
			if edge != nil && !seen[edge.From] {
				seen[edge.From] = true
				neighbors = append(neighbors, edge.From)
			}
		}
	}
	return neighbors
}

// Degree returns the number of edges incident to a node. On directed graphs
// this is in-degree plus out-degree.
func (g *Graph) Degree(id uint64) int {
	return len(g.outgoing[id]) + len(g.incoming[id])
}

// OutDegree returns the number of edges leaving a node
func (g *Graph) OutDegree(id uint64) int {
	return len(g.outgoing[id])
}

// NumNodes returns the node count
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

// NumEdges returns the edge count
func (g *Graph) NumEdges() int {
	return len(g.edges)
}

// GetStatistics returns graph size statistics
func (g *Graph) GetStatistics() Statistics {
	return Statistics{
		NodeCount: uint64(len(g.nodes)),
		EdgeCount: uint64(len(g.edges)),
	}
}

func edgeContext(from, to uint64) string {
	return fmt.Sprintf("%d->%d", from, to)
}

package energy

import (
	"testing"

	"github.com/dd0wney/cluso-energy/pkg/storage"
)

func pathGraph(n uint64) *storage.Graph {
	g := storage.NewGraph()
	for i := uint64(1); i < n; i++ {
		g.AddEdge(i, i+1)
	}
	return g
}

// TestEgo_Radius tests that the ego network honors the hop limit
func TestEgo_Radius(t *testing.T) {
	g := pathGraph(5)

	ego, err := Ego(g, 3, 1)
	if err != nil {
		t.Fatalf("Ego failed: %v", err)
	}
	if ego.NumNodes() != 3 {
		t.Errorf("Expected 3 nodes at radius 1, got %d", ego.NumNodes())
	}
	if ego.NumEdges() != 2 {
		t.Errorf("Expected 2 edges at radius 1, got %d", ego.NumEdges())
	}

	ego, err = Ego(g, 3, 2)
	if err != nil {
		t.Fatalf("Ego failed: %v", err)
	}
	if ego.NumNodes() != 5 {
		t.Errorf("Expected 5 nodes at radius 2, got %d", ego.NumNodes())
	}
}

// TestEgo_InducedEdges tests that edges between perimeter nodes survive
func TestEgo_InducedEdges(t *testing.T) {
	g := storage.NewGraph()
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 3) // perimeter edge of node 1's ego network

	ego, err := Ego(g, 1, 1)
	if err != nil {
		t.Fatalf("Ego failed: %v", err)
	}
	if !ego.HasEdge(2, 3) {
		t.Error("Expected perimeter edge 2-3 in the induced subgraph")
	}
	if ego.NumEdges() != 3 {
		t.Errorf("Expected 3 edges, got %d", ego.NumEdges())
	}
}

// TestEgo_DirectedFollowsSuccessors tests traversal direction on digraphs
func TestEgo_DirectedFollowsSuccessors(t *testing.T) {
	g := storage.NewDirectedGraph()
	g.AddEdge(1, 2)
	g.AddEdge(3, 1) // predecessor of the center, not reachable

	ego, err := Ego(g, 1, 1)
	if err != nil {
		t.Fatalf("Ego failed: %v", err)
	}
	if !ego.IsDirected() {
		t.Error("Expected a directed ego network")
	}
	if ego.HasNode(3) {
		t.Error("Expected predecessors to be excluded")
	}
	if !ego.HasNode(2) {
		t.Error("Expected successors to be included")
	}
}

// TestEgo_MissingCenter tests the error on an absent center node
func TestEgo_MissingCenter(t *testing.T) {
	g := pathGraph(3)

	if _, err := Ego(g, 99, 1); !storage.IsNotFound(err) {
		t.Errorf("Expected not-found error, got %v", err)
	}
}

// TestEgo_IsolatedCenter tests the single-node ego network
func TestEgo_IsolatedCenter(t *testing.T) {
	g := storage.NewGraph()
	g.AddNode(7)

	ego, err := Ego(g, 7, 1)
	if err != nil {
		t.Fatalf("Ego failed: %v", err)
	}
	if ego.NumNodes() != 1 || ego.NumEdges() != 0 {
		t.Errorf("Expected single isolated node, got %d nodes / %d edges",
			ego.NumNodes(), ego.NumEdges())
	}
}

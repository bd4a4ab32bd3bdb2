package storage

import (
	"errors"
	"testing"
)

// TestAddNode_Idempotent tests that re-adding a node keeps the original
func TestAddNode_Idempotent(t *testing.T) {
	g := NewGraph()

	first := g.AddNode(1)
	first.Properties["name"] = StringValue("a")

	second := g.AddNode(1)

	if first != second {
		t.Error("Expected AddNode to return the existing node")
	}
	if g.NumNodes() != 1 {
		t.Errorf("Expected 1 node, got %d", g.NumNodes())
	}
	if _, ok := second.Properties["name"]; !ok {
		t.Error("Expected existing properties to survive re-adding")
	}
}

// TestAddEdge_CreatesEndpoints tests that edges create missing nodes
func TestAddEdge_CreatesEndpoints(t *testing.T) {
	g := NewGraph()

	edge, err := g.AddEdge(1, 2)
	if err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}

	if edge.From != 1 || edge.To != 2 {
		t.Errorf("Expected edge 1->2, got %d->%d", edge.From, edge.To)
	}
	if !g.HasNode(1) || !g.HasNode(2) {
		t.Error("Expected endpoints to be created")
	}
	if g.NumEdges() != 1 {
		t.Errorf("Expected 1 edge, got %d", g.NumEdges())
	}
}

// TestAddEdge_DuplicateRejected tests duplicate edge detection
func TestAddEdge_DuplicateRejected(t *testing.T) {
	g := NewGraph()
	g.AddEdge(1, 2)

	if _, err := g.AddEdge(1, 2); !errors.Is(err, ErrDuplicateEdge) {
		t.Errorf("Expected ErrDuplicateEdge, got %v", err)
	}

	// Undirected graphs reject the reverse orientation too
	if _, err := g.AddEdge(2, 1); !errors.Is(err, ErrDuplicateEdge) {
		t.Errorf("Expected ErrDuplicateEdge for reverse orientation, got %v", err)
	}

	// Directed graphs allow both orientations
	d := NewDirectedGraph()
	d.AddEdge(1, 2)
	if _, err := d.AddEdge(2, 1); err != nil {
		t.Errorf("Expected reverse edge on directed graph, got %v", err)
	}
}

// TestGetEdge_UndirectedOrientation tests orientation-insensitive lookup
func TestGetEdge_UndirectedOrientation(t *testing.T) {
	g := NewGraph()
	g.AddEdge(1, 2)

	if _, err := g.GetEdge(2, 1); err != nil {
		t.Errorf("Expected reverse lookup to succeed on undirected graph, got %v", err)
	}

	d := NewDirectedGraph()
	d.AddEdge(1, 2)
	if _, err := d.GetEdge(2, 1); !errors.Is(err, ErrEdgeNotFound) {
		t.Errorf("Expected ErrEdgeNotFound for reverse lookup on directed graph, got %v", err)
	}
}

// TestRemoveEdge tests edge removal and adjacency cleanup
func TestRemoveEdge(t *testing.T) {
	g := NewGraph()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	if err := g.RemoveEdge(1, 2); err != nil {
		t.Fatalf("RemoveEdge failed: %v", err)
	}

	if g.HasEdge(1, 2) {
		t.Error("Expected edge 1-2 to be gone")
	}
	if g.NumEdges() != 1 {
		t.Errorf("Expected 1 edge, got %d", g.NumEdges())
	}
	if len(g.Neighbors(1)) != 0 {
		t.Errorf("Expected node 1 to have no neighbors, got %v", g.Neighbors(1))
	}

	if err := g.RemoveEdge(1, 2); !errors.Is(err, ErrEdgeNotFound) {
		t.Errorf("Expected ErrEdgeNotFound on second removal, got %v", err)
	}
}

// TestEdges_InsertionOrder tests the documented edge iteration order
func TestEdges_InsertionOrder(t *testing.T) {
	g := NewGraph()
	g.AddEdge(3, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.RemoveEdge(1, 2)
	g.AddEdge(1, 2)

	want := [][2]uint64{{3, 1}, {2, 3}, {1, 2}}
	edges := g.Edges()

	if len(edges) != len(want) {
		t.Fatalf("Expected %d edges, got %d", len(want), len(edges))
	}
	for i, edge := range edges {
		if edge.From != want[i][0] || edge.To != want[i][1] {
			t.Errorf("Edge %d: expected %d->%d, got %d->%d", i, want[i][0], want[i][1], edge.From, edge.To)
		}
	}
}

// TestToDirected tests undirected to directed conversion
func TestToDirected(t *testing.T) {
	g := NewGraph()
	edge, _ := g.AddEdge(1, 2)
	edge.Properties["w"] = FloatValue(0.5)
	g.AddEdge(2, 3)
	g.SetNodeProperty(1, "e", FloatValue(1.5))

	d := g.ToDirected()

	if !d.IsDirected() {
		t.Fatal("Expected directed graph")
	}
	if d.NumEdges() != 4 {
		t.Errorf("Expected 4 edges after conversion, got %d", d.NumEdges())
	}

	// Forward orientation comes first, reverse immediately after
	edges := d.Edges()
	if edges[0].From != 1 || edges[0].To != 2 || edges[1].From != 2 || edges[1].To != 1 {
		t.Errorf("Expected 1->2 then 2->1, got %d->%d then %d->%d",
			edges[0].From, edges[0].To, edges[1].From, edges[1].To)
	}

	// Both orientations carry the edge properties
	for _, e := range edges[:2] {
		w, ok := e.Properties["w"]
		if !ok {
			t.Fatalf("Expected property on edge %d->%d", e.From, e.To)
		}
		if f, _ := w.AsFloat(); f != 0.5 {
			t.Errorf("Expected property 0.5 on edge %d->%d, got %f", e.From, e.To, f)
		}
	}

	// Node properties survive
	if v, err := d.NodeProperty(1, "e"); err != nil {
		t.Errorf("Expected node property to survive conversion: %v", err)
	} else if f, _ := v.AsFloat(); f != 1.5 {
		t.Errorf("Expected node property 1.5, got %f", f)
	}

	// Conversion of a directed graph is a plain clone
	d2 := d.ToDirected()
	if d2.NumEdges() != d.NumEdges() {
		t.Errorf("Expected clone with %d edges, got %d", d.NumEdges(), d2.NumEdges())
	}
}

// TestClone_Independence tests that clones do not share mutable state
func TestClone_Independence(t *testing.T) {
	g := NewGraph()
	g.AddEdge(1, 2)
	g.SetNodeProperty(1, "e", FloatValue(1.0))

	clone := g.Clone()
	clone.SetNodeProperty(1, "e", FloatValue(9.0))
	clone.AddEdge(2, 3)

	if v, _ := g.NodeProperty(1, "e"); v.Data != nil {
		if f, _ := v.AsFloat(); f != 1.0 {
			t.Errorf("Expected original property untouched, got %f", f)
		}
	}
	if g.NumEdges() != 1 {
		t.Errorf("Expected original to keep 1 edge, got %d", g.NumEdges())
	}
	if g.HasNode(3) {
		t.Error("Expected original to not gain node 3")
	}
}

// TestClearProperties tests node and edge property clearing
func TestClearProperties(t *testing.T) {
	g := NewGraph()
	g.AddEdge(1, 2)
	g.SetNodeProperty(1, "e", FloatValue(1.0))
	g.SetEdgeProperty(1, 2, "grad", FloatValue(0.5))

	g.ClearNodeProperties()
	g.ClearEdgeProperties()

	if _, err := g.NodeProperty(1, "e"); !errors.Is(err, ErrPropertyNotFound) {
		t.Errorf("Expected ErrPropertyNotFound after clearing, got %v", err)
	}
	if _, err := g.EdgeProperty(1, 2, "grad"); !errors.Is(err, ErrPropertyNotFound) {
		t.Errorf("Expected ErrPropertyNotFound after clearing, got %v", err)
	}
}

// TestNodeProperty_Errors tests property lookup failures
func TestNodeProperty_Errors(t *testing.T) {
	g := NewGraph()
	g.AddNode(1)

	if _, err := g.NodeProperty(99, "e"); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("Expected ErrNodeNotFound, got %v", err)
	}
	if err := g.SetNodeProperty(99, "e", FloatValue(1)); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("Expected ErrNodeNotFound, got %v", err)
	}
	if _, err := g.NodeProperty(1, "missing"); !errors.Is(err, ErrPropertyNotFound) {
		t.Errorf("Expected ErrPropertyNotFound, got %v", err)
	}
}

// TestNeighbors_Directed tests neighbor semantics on directed graphs
func TestNeighbors_Directed(t *testing.T) {
	d := NewDirectedGraph()
	d.AddEdge(1, 2)
	d.AddEdge(3, 1)

	neighbors := d.Neighbors(1)
	if len(neighbors) != 1 || neighbors[0] != 2 {
		t.Errorf("Expected directed neighbors [2], got %v", neighbors)
	}

	if d.Degree(1) != 2 {
		t.Errorf("Expected degree 2 (in+out), got %d", d.Degree(1))
	}
	if d.OutDegree(1) != 1 {
		t.Errorf("Expected out-degree 1, got %d", d.OutDegree(1))
	}
}

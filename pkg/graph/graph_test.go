package graph

import (
	"errors"
	"testing"
)

func testNetwork(t *testing.T, edges ...DirectedEdge) *Network {
	t.Helper()
	n := NewNetwork()
	for _, e := range edges {
		if err := n.AddEdge(e); err != nil {
			t.Fatalf("AddEdge(%d): %v", e.ID, err)
		}
	}
	return n
}

func TestAddEdgeValidation(t *testing.T) {
	n := NewNetwork()
	if err := n.AddEdge(DirectedEdge{ID: InvalidEdge}); !errors.Is(err, ErrInvalidEdgeID) {
		t.Errorf("invalid id error = %v", err)
	}
	if err := n.AddEdge(DirectedEdge{ID: 1, From: 1, To: 2}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := n.AddEdge(DirectedEdge{ID: 1, From: 3, To: 4}); !errors.Is(err, ErrDuplicateEdgeID) {
		t.Errorf("duplicate id error = %v", err)
	}
}

func TestEdgeLookup(t *testing.T) {
	n := testNetwork(t, DirectedEdge{ID: 7, From: 1, To: 2, Length: 42})

	e, err := n.Edge(7)
	if err != nil {
		t.Fatalf("Edge(7): %v", err)
	}
	if e.Length != 42 {
		t.Errorf("Length = %f, want 42", e.Length)
	}

	if _, err := n.Edge(8); !errors.Is(err, ErrUnknownEdge) {
		t.Errorf("unknown edge error = %v", err)
	}
}

func TestAdjacent(t *testing.T) {
	// 1: A->B, 2: B->C, 3: B->D, 4: C->B
	n := testNetwork(t,
		DirectedEdge{ID: 1, From: 1, To: 2},
		DirectedEdge{ID: 2, From: 2, To: 3},
		DirectedEdge{ID: 3, From: 2, To: 4},
		DirectedEdge{ID: 4, From: 3, To: 2},
	)

	forward, err := n.Adjacent(1, Forward)
	if err != nil {
		t.Fatalf("Adjacent forward: %v", err)
	}
	if len(forward) != 2 {
		t.Errorf("forward adjacency of 1 = %v, want edges 2 and 3", forward)
	}

	reverse, err := n.Adjacent(2, Reverse)
	if err != nil {
		t.Fatalf("Adjacent reverse: %v", err)
	}
	if len(reverse) != 2 {
		t.Errorf("reverse adjacency of 2 = %v, want edges 1 and 4", reverse)
	}

	if _, err := n.Adjacent(99, Forward); !errors.Is(err, ErrUnknownEdge) {
		t.Errorf("unknown edge error = %v", err)
	}
}

func TestOpposing(t *testing.T) {
	n := testNetwork(t,
		DirectedEdge{ID: 1, From: 1, To: 2},
		DirectedEdge{ID: 2, From: 2, To: 1},
		DirectedEdge{ID: 3, From: 2, To: 1}, // parallel to 2
		DirectedEdge{ID: 4, From: 2, To: 3}, // one-way
	)

	opp, ok := n.Opposing(1)
	if !ok || opp != 2 {
		t.Errorf("Opposing(1) = %d, %v; want lowest parallel edge 2", opp, ok)
	}
	if _, ok := n.Opposing(4); ok {
		t.Error("Opposing(4) found an opposing edge for a one-way segment")
	}
	if _, ok := n.Opposing(99); ok {
		t.Error("Opposing(99) reported an edge for an unknown ID")
	}
}

func TestCounts(t *testing.T) {
	n := testNetwork(t,
		DirectedEdge{ID: 3, From: 1, To: 2, Class: ClassPrimary},
		DirectedEdge{ID: 1, From: 2, To: 3, Class: ClassResidential},
		DirectedEdge{ID: 2, From: 3, To: 1, Class: ClassResidential},
	)

	if n.EdgeCount() != 3 {
		t.Errorf("EdgeCount = %d, want 3", n.EdgeCount())
	}
	if n.NodeCount() != 3 {
		t.Errorf("NodeCount = %d, want 3", n.NodeCount())
	}

	ids := n.EdgeIDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("EdgeIDs not ascending: %v", ids)
		}
	}

	counts := n.ClassCounts()
	if counts[ClassResidential] != 2 || counts[ClassPrimary] != 1 {
		t.Errorf("ClassCounts = %v", counts)
	}
}

func TestClassRoundTrip(t *testing.T) {
	for _, class := range Classes() {
		parsed, err := ParseClass(class.String())
		if err != nil {
			t.Fatalf("ParseClass(%q): %v", class.String(), err)
		}
		if parsed != class {
			t.Errorf("ParseClass(%q) = %v, want %v", class.String(), parsed, class)
		}
	}
	if _, err := ParseClass("autobahn"); !errors.Is(err, ErrUnknownClass) {
		t.Errorf("unknown class error = %v", err)
	}
}

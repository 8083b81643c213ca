// Package graph models a routable road network as a set of directed edges.
//
// The network is edge-centric: reach estimation, costing, and expansion all
// operate on directed edges rather than nodes. A two-way street contributes
// two directed edges, one per travel direction, linked through Opposing.
//
// Network implements the Reader interface consumed by the expansion engine.
// A Network is immutable once built and safe for concurrent reads by any
// number of expansions.
package graph

import (
	"fmt"
	"maps"
	"slices"
)

// Network is an in-memory road network indexed for edge-to-edge traversal.
//
// The zero value is not usable - use NewNetwork. Building (AddEdge) is not
// safe for concurrent use; reading is.
type Network struct {
	edges    map[EdgeID]*DirectedEdge
	outgoing map[NodeID][]EdgeID // node -> edges leaving it
	incoming map[NodeID][]EdgeID // node -> edges entering it
}

// NewNetwork creates an empty network.
func NewNetwork() *Network {
	return &Network{
		edges:    make(map[EdgeID]*DirectedEdge),
		outgoing: make(map[NodeID][]EdgeID),
		incoming: make(map[NodeID][]EdgeID),
	}
}

// AddEdge adds a directed edge and indexes it at both endpoints.
// Returns ErrInvalidEdgeID if the ID is the invalid sentinel, or
// ErrDuplicateEdgeID if the ID is already present.
func (n *Network) AddEdge(e DirectedEdge) error {
	if e.ID == InvalidEdge {
		return ErrInvalidEdgeID
	}
	if _, exists := n.edges[e.ID]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateEdgeID, e.ID)
	}
	edge := &e
	n.edges[edge.ID] = edge
	n.outgoing[edge.From] = append(n.outgoing[edge.From], edge.ID)
	n.incoming[edge.To] = append(n.incoming[edge.To], edge.ID)
	return nil
}

// Edge resolves an edge ID to its directed-edge record.
// Returns an error wrapping ErrUnknownEdge if the ID is not present.
func (n *Network) Edge(id EdgeID) (*DirectedEdge, error) {
	e, ok := n.edges[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEdge, id)
	}
	return e, nil
}

// Adjacent returns the edges one traversal step from id: successors of the
// edge's end node in Forward mode, predecessors of its start node in Reverse
// mode. The seed edge's own opposing edge is included when present; costing
// decides whether a U-turn is permitted, not the graph.
//
// The returned slice is a read-only view and must not be modified.
func (n *Network) Adjacent(id EdgeID, dir Dir) ([]EdgeID, error) {
	e, err := n.Edge(id)
	if err != nil {
		return nil, err
	}
	if dir == Reverse {
		return n.incoming[e.From], nil
	}
	return n.outgoing[e.To], nil
}

// Opposing returns the directed edge traversing the same segment in the
// opposite direction (To->From), or InvalidEdge and false for one-way
// segments. When several parallel edges exist, the one with the lowest ID
// is returned for determinism.
func (n *Network) Opposing(id EdgeID) (EdgeID, bool) {
	e, ok := n.edges[id]
	if !ok {
		return InvalidEdge, false
	}
	opp := InvalidEdge
	for _, cand := range n.outgoing[e.To] {
		c := n.edges[cand]
		if c.To == e.From && cand != id && cand < opp {
			opp = cand
		}
	}
	return opp, opp != InvalidEdge
}

// EdgeCount returns the number of directed edges.
func (n *Network) EdgeCount() int { return len(n.edges) }

// NodeCount returns the number of distinct nodes referenced by edges.
func (n *Network) NodeCount() int {
	seen := make(map[NodeID]struct{}, len(n.outgoing)+len(n.incoming))
	for id := range n.outgoing {
		seen[id] = struct{}{}
	}
	for id := range n.incoming {
		seen[id] = struct{}{}
	}
	return len(seen)
}

// EdgeIDs returns all edge IDs in ascending order.
func (n *Network) EdgeIDs() []EdgeID {
	return slices.Sorted(maps.Keys(n.edges))
}

// ClassCounts returns the number of edges per road class.
func (n *Network) ClassCounts() map[Class]int {
	counts := make(map[Class]int)
	for _, e := range n.edges {
		counts[e.Class]++
	}
	return counts
}

// Ensure Network implements Reader.
var _ Reader = (*Network)(nil)

// Package costing scores and permits traversal of network edges.
//
// A costing model answers two questions per directed edge: may this travel
// mode traverse it, and at what cost. Permissibility is a tri-state - an
// edge can be allowed outright, permanently restricted, or conditionally
// restricted (passable or not depending on conditions only known at actual
// route time, such as time-of-day bans or destination-only access).
//
// Reach estimation leans on the tri-state: a fast conservative pass treats
// conditional edges as dead ends, and only an exact follow-up pass expands
// through them.
package costing

import (
	"github.com/wayreach/wayreach/pkg/graph"
)

// Permission is the tri-state traversal verdict for one edge.
type Permission int

const (
	// Allowed means the edge is traversable by this model unconditionally.
	Allowed Permission = iota
	// Restricted means the edge is never traversable by this model.
	Restricted
	// Conditional means traversability depends on conditions the model cannot
	// settle during a fast estimate. Such edges are restriction-skippable: a
	// conservative expansion may count them without exploring beyond them.
	Conditional
)

// String returns "allowed", "restricted" or "conditional".
func (p Permission) String() string {
	switch p {
	case Restricted:
		return "restricted"
	case Conditional:
		return "conditional"
	default:
		return "allowed"
	}
}

// Model scores and permits edge traversal for one travel mode.
// Implementations must be safe for concurrent use by independent expansions.
type Model interface {
	// Allowed reports the traversal verdict for the edge.
	Allowed(e *graph.DirectedEdge) Permission

	// Cost returns the traversal cost of the edge in seconds.
	// Costs must be non-negative; the expansion engine orders its frontier
	// by accumulated cost.
	Cost(e *graph.DirectedEdge) float64
}

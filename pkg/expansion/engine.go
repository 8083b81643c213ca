// Package expansion implements a generic label-correcting graph expansion.
//
// The engine runs a Dijkstra-family search over directed edges: it keeps a
// bucketed priority structure of frontier labels and repeatedly settles the
// lowest-cost one. What happens to a settled edge is not the engine's
// business - a Hooks value supplied by the caller decides per edge whether
// to keep expanding, prune, or stop the whole expansion. Reach estimation,
// isochrone-style sweeps, and similar bounded searches plug in through that
// interface without subclassing anything.
//
// The engine owns the pending (enqueued) edge set and never enqueues an edge
// twice; tracking settled edges is left to the hooks.
//
// Expansion is single-threaded and blocking: Expand does not return until
// the frontier empties, the hooks stop it, or a collaborator fails. There
// are no timeouts - bounding the work is the hooks' responsibility.
package expansion

import (
	"errors"
	"fmt"

	"github.com/wayreach/wayreach/pkg/costing"
	"github.com/wayreach/wayreach/pkg/graph"
	"github.com/wayreach/wayreach/pkg/observability"
)

var (
	// ErrNilReader is returned by Expand when no graph reader is supplied.
	ErrNilReader = errors.New("expansion: graph reader is nil")

	// ErrNilCosting is returned by Expand when no costing model is supplied.
	ErrNilCosting = errors.New("expansion: costing model is nil")

	// ErrNilHooks is returned by Expand when no hooks are supplied.
	ErrNilHooks = errors.New("expansion: hooks are nil")
)

// Label is a frontier entry: an edge, the accumulated cost of the cheapest
// known chain to it, and the costing verdict that put it on the frontier.
type Label struct {
	Edge graph.EdgeID // Edge identity
	Cost float64      // Accumulated cost in seconds

	// Conditional is true when the costing model marked the edge
	// restriction-skippable rather than allowed outright.
	Conditional bool
}

// Recommendation is the hooks' per-edge verdict.
type Recommendation int

const (
	// Continue settles the edge and expands its adjacent edges.
	Continue Recommendation = iota
	// Prune settles the edge but does not expand beyond it.
	Prune
	// Stop halts the entire expansion immediately.
	Stop
)

// String returns "continue", "prune" or "stop".
func (r Recommendation) String() string {
	switch r {
	case Prune:
		return "prune"
	case Stop:
		return "stop"
	default:
		return "continue"
	}
}

// Hints sizes the engine's internal structures before the first pop.
type Hints struct {
	// BucketCount is the number of priority buckets to allocate.
	BucketCount int
	// LabelReservation is the initial label arena capacity.
	LabelReservation int
}

// Hooks is the decision surface a caller plugs into the engine.
//
// Decide is invoked once per frontier edge popped from the priority
// structure. SizingHints is consulted once per expansion, before the first
// pop. Reset is invoked first of all, so a stateful hooks value can be
// reused across expansions.
type Hooks interface {
	Decide(label Label) Recommendation
	SizingHints() Hints
	Reset()
}

// Expand runs a label-correcting expansion seeded at the given edge.
//
// In Forward mode the expansion walks successor edges; in Reverse mode it
// walks predecessor edges. The seed edge becomes the first frontier label
// unless the costing model permanently restricts it, in which case the
// expansion settles nothing.
//
// Expand returns nil when the frontier empties or the hooks return Stop. A
// reader failure mid-expansion aborts immediately and is returned wrapped;
// no partial-result recovery is attempted.
func Expand(dir graph.Dir, seed graph.EdgeID, reader graph.Reader, model costing.Model, hooks Hooks) error {
	if reader == nil {
		return ErrNilReader
	}
	if model == nil {
		return ErrNilCosting
	}
	if hooks == nil {
		return ErrNilHooks
	}

	hooks.Reset()
	hints := hooks.SizingHints()
	front := newFrontier(hints.BucketCount, hints.LabelReservation)
	enqueued := make(map[graph.EdgeID]struct{}, hints.LabelReservation)

	observability.Expansion().OnExpandStart(dir.String(), uint64(seed))

	seedEdge, err := reader.Edge(seed)
	if err != nil {
		return fmt.Errorf("expansion: resolve seed edge %d: %w", seed, err)
	}
	if perm := model.Allowed(seedEdge); perm != costing.Restricted {
		front.push(Label{
			Edge:        seed,
			Cost:        model.Cost(seedEdge),
			Conditional: perm == costing.Conditional,
		})
		enqueued[seed] = struct{}{}
	}

	settled := 0
	defer func() {
		observability.Expansion().OnExpandComplete(dir.String(), uint64(seed), settled)
	}()

	for {
		label, ok := front.pop()
		if !ok {
			return nil
		}

		settled++
		observability.Expansion().OnEdgeSettled(dir.String(), uint64(label.Edge), label.Cost)

		switch hooks.Decide(label) {
		case Stop:
			return nil
		case Prune:
			continue
		}

		adjacent, err := reader.Adjacent(label.Edge, dir)
		if err != nil {
			return fmt.Errorf("expansion: adjacent edges of %d: %w", label.Edge, err)
		}
		for _, next := range adjacent {
			if _, seen := enqueued[next]; seen {
				continue
			}
			edge, err := reader.Edge(next)
			if err != nil {
				return fmt.Errorf("expansion: resolve edge %d: %w", next, err)
			}
			perm := model.Allowed(edge)
			if perm == costing.Restricted {
				continue
			}
			front.push(Label{
				Edge:        next,
				Cost:        label.Cost + model.Cost(edge),
				Conditional: perm == costing.Conditional,
			})
			enqueued[next] = struct{}{}
		}
	}
}

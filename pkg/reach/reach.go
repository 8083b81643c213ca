// Package reach bounds the directional connectivity of a single network edge.
//
// Given one directed edge, reach estimation counts how many distinct edges
// can be reached travelling outbound from it and how many can reach it
// inbound, saturating both counts at a caller-supplied threshold. Route
// endpoint candidates whose reach stays low in either direction sit on an
// effectively isolated micro-network - a private driveway loop, a gated
// parking structure - and should be rejected or down-weighted.
//
// Estimation is two-tier. A fast conservative pass treats every edge the
// costing model marks restriction-skippable as a dead end: the edge still
// counts, but nothing beyond it is explored. When that pass ends below the
// threshold *because* it pruned such edges, an exact pass reruns the
// expansion with the pruning disabled and its count replaces the
// conservative one. Callers only ever see the final count; the two-tier
// split is not part of the API.
//
// An Estimator reuses its settled-edge set across calls to avoid per-query
// allocation. It is strictly single-owner: concurrent Compute calls on one
// instance are rejected with ErrConcurrentUse. Give each concurrent query
// its own Estimator - the graph reader and costing model may be shared.
package reach

import (
	"errors"
	"sync/atomic"

	"github.com/wayreach/wayreach/pkg/costing"
	"github.com/wayreach/wayreach/pkg/expansion"
	"github.com/wayreach/wayreach/pkg/graph"
)

var (
	// ErrBadThreshold is returned when maxReach is not at least 1.
	ErrBadThreshold = errors.New("reach: max reach must be at least 1")

	// ErrBadDirection is returned when the direction mask selects neither
	// inbound nor outbound.
	ErrBadDirection = errors.New("reach: direction mask selects no direction")

	// ErrNilReader is returned when no graph reader is supplied.
	ErrNilReader = errors.New("reach: graph reader is nil")

	// ErrNilCosting is returned when no costing model is supplied.
	ErrNilCosting = errors.New("reach: costing model is nil")

	// ErrConcurrentUse is returned when Compute is called on an Estimator
	// that is already inside a Compute call.
	ErrConcurrentUse = errors.New("reach: estimator is already in use")
)

// Direction is a mask of expansion directions. Inbound and Outbound combine
// freely; Both covers the common case.
type Direction uint8

const (
	// Inbound counts edges from which the target edge can be reached.
	Inbound Direction = 1 << iota
	// Outbound counts edges reachable from the target edge.
	Outbound

	// Both requests inbound and outbound reach.
	Both = Inbound | Outbound
)

// String returns "inbound", "outbound", "both" or "none".
func (d Direction) String() string {
	switch d & Both {
	case Inbound:
		return "inbound"
	case Outbound:
		return "outbound"
	case Both:
		return "both"
	}
	return "none"
}

// Result is the directional reach of one edge. Each count is the number of
// distinct edges settled in that direction, including the edge itself, and
// saturates at the threshold passed to Compute. A direction that was not
// requested reports zero.
type Result struct {
	Outbound uint32 `json:"outbound"`
	Inbound  uint32 `json:"inbound"`
}

// Estimator computes directional reach. It carries reusable mutable state
// (the settled-edge set and active threshold) across calls; see the package
// comment for the single-owner contract.
type Estimator struct {
	inUse atomic.Bool

	settled  map[graph.EdgeID]struct{}
	maxReach uint32

	// conservative toggles the restriction-skip pruning for the current
	// expansion; provisional records that the pruning actually bit.
	conservative bool
	provisional  bool
	saturated    bool
}

// NewEstimator creates an Estimator ready for use.
func NewEstimator() *Estimator {
	return &Estimator{settled: make(map[graph.EdgeID]struct{})}
}

// Compute returns the directional reach of the given edge, each direction
// saturated at maxReach.
//
// The reader and costing model are used read-only for the duration of the
// call. Compute blocks until the requested directions are fully resolved or
// saturated; the threshold is the sole bound on work performed. A reader
// failure mid-expansion aborts the call and is returned wrapped - no
// partial counts are reported.
func (e *Estimator) Compute(edge graph.EdgeID, maxReach uint32, reader graph.Reader, model costing.Model, dir Direction) (Result, error) {
	if maxReach < 1 {
		return Result{}, ErrBadThreshold
	}
	if dir&Both == 0 {
		return Result{}, ErrBadDirection
	}
	if reader == nil {
		return Result{}, ErrNilReader
	}
	if model == nil {
		return Result{}, ErrNilCosting
	}
	if !e.inUse.CompareAndSwap(false, true) {
		return Result{}, ErrConcurrentUse
	}
	defer e.inUse.Store(false)

	e.maxReach = maxReach

	var res Result
	if dir&Outbound != 0 {
		count, err := e.direction(graph.Forward, edge, reader, model)
		if err != nil {
			return Result{}, err
		}
		res.Outbound = count
	}
	if dir&Inbound != 0 {
		count, err := e.direction(graph.Reverse, edge, reader, model)
		if err != nil {
			return Result{}, err
		}
		res.Inbound = count
	}
	return res, nil
}

// direction resolves one direction's reach: a conservative expansion first,
// then the exact fallback when the conservative pass ended below the
// threshold because it pruned restriction-skippable edges. The exact pass
// never reruns itself.
func (e *Estimator) direction(d graph.Dir, edge graph.EdgeID, reader graph.Reader, model costing.Model) (uint32, error) {
	e.conservative = true
	if err := expansion.Expand(d, edge, reader, model, e); err != nil {
		return 0, err
	}
	if e.saturated || !e.provisional {
		return e.count(), nil
	}

	e.conservative = false
	if err := expansion.Expand(d, edge, reader, model, e); err != nil {
		return 0, err
	}
	return e.count(), nil
}

// count is the settled-edge count saturated at the threshold.
func (e *Estimator) count() uint32 {
	if c := uint32(len(e.settled)); c < e.maxReach {
		return c
	}
	return e.maxReach
}

// =============================================================================
// Expansion Hooks
// =============================================================================

// Decide settles one frontier edge and tells the engine how to proceed:
// already-settled edges are pruned (no double counting), the edge that
// brings the settled count to the threshold stops the expansion, and in
// conservative mode a restriction-skippable edge is counted but pruned,
// marking the result provisional.
func (e *Estimator) Decide(label expansion.Label) expansion.Recommendation {
	if _, done := e.settled[label.Edge]; done {
		return expansion.Prune
	}
	e.settled[label.Edge] = struct{}{}
	if uint32(len(e.settled)) >= e.maxReach {
		e.saturated = true
		return expansion.Stop
	}
	if e.conservative && label.Conditional {
		e.provisional = true
		return expansion.Prune
	}
	return expansion.Continue
}

// SizingHints sizes the engine for an expansion expected to settle up to
// maxReach edges.
func (e *Estimator) SizingHints() expansion.Hints {
	return expansion.Hints{
		BucketCount:      int(e.maxReach),
		LabelReservation: int(e.maxReach),
	}
}

// Reset clears the settled set and the per-expansion flags. The engine owns
// and resets the pending set itself, so after Reset no state leaks between
// directions or between conservative and exact passes.
func (e *Estimator) Reset() {
	clear(e.settled)
	e.provisional = false
	e.saturated = false
}

// Ensure Estimator implements the expansion hooks.
var _ expansion.Hooks = (*Estimator)(nil)

// Compute is a convenience wrapper that runs one reach query on a fresh
// Estimator. Use an explicit Estimator to amortize allocations across
// sequential queries.
func Compute(edge graph.EdgeID, maxReach uint32, reader graph.Reader, model costing.Model, dir Direction) (Result, error) {
	return NewEstimator().Compute(edge, maxReach, reader, model, dir)
}

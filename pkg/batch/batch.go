// Package batch scores many candidate edges by directional reach.
//
// Candidate-edge discovery near a coordinate typically yields dozens of
// edges that must each be checked for useful connectivity before one is
// accepted as a route endpoint. Scorer fans the per-edge reach queries out
// across workers; estimator instances are single-owner, so each worker
// carries its own and amortizes its allocations over the candidates it
// processes. The graph reader and costing model are shared read-only.
package batch

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/wayreach/wayreach/pkg/costing"
	"github.com/wayreach/wayreach/pkg/graph"
	"github.com/wayreach/wayreach/pkg/reach"
)

// ErrBadCutoff is returned when the isolation cutoff exceeds the threshold,
// which would mark every candidate isolated.
var ErrBadCutoff = errors.New("batch: min reach must not exceed max reach")

// Score is the reach verdict for one candidate edge.
type Score struct {
	Edge   graph.EdgeID `json:"edge"`
	Result reach.Result `json:"result"`

	// Isolated is true when a requested direction stayed below the
	// scorer's MinReach cutoff: the candidate sits on a micro-network.
	Isolated bool `json:"isolated"`
}

// Scorer runs reach queries for batches of candidate edges.
type Scorer struct {
	// MaxReach is the saturation threshold per direction. Required, >= 1.
	MaxReach uint32

	// MinReach is the isolation cutoff: a candidate whose reach stays below
	// it in any requested direction is marked Isolated. Zero disables the
	// check.
	MinReach uint32

	// Direction selects the directions to compute. Zero value means Both.
	Direction reach.Direction

	// Workers caps concurrent estimators. Zero means GOMAXPROCS.
	Workers int
}

// Score computes reach for every candidate edge, preserving input order.
//
// The first failing query cancels the remaining work and its error is
// returned; no partial scores survive a reader or costing failure.
func (s *Scorer) Score(ctx context.Context, reader graph.Reader, model costing.Model, edges []graph.EdgeID) ([]Score, error) {
	if s.MaxReach < 1 {
		return nil, reach.ErrBadThreshold
	}
	if s.MinReach > s.MaxReach {
		return nil, ErrBadCutoff
	}
	dir := s.Direction
	if dir&reach.Both == 0 {
		dir = reach.Both
	}
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(edges) {
		workers = len(edges)
	}

	scores := make([]Score, len(edges))
	indexes := make(chan int)

	g, ctx := errgroup.WithContext(ctx)
	for range workers {
		g.Go(func() error {
			est := reach.NewEstimator()
			for i := range indexes {
				res, err := est.Compute(edges[i], s.MaxReach, reader, model, dir)
				if err != nil {
					return err
				}
				scores[i] = Score{
					Edge:     edges[i],
					Result:   res,
					Isolated: s.isolated(res, dir),
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(indexes)
		for i := range edges {
			select {
			case indexes <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

func (s *Scorer) isolated(res reach.Result, dir reach.Direction) bool {
	if s.MinReach == 0 {
		return false
	}
	if dir&reach.Outbound != 0 && res.Outbound < s.MinReach {
		return true
	}
	if dir&reach.Inbound != 0 && res.Inbound < s.MinReach {
		return true
	}
	return false
}

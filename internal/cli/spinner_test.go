package cli

import (
	"context"
	"testing"
)

func TestSpinnerCancelledTracksParentContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(ctx, "scoring")
	s.Start()

	if s.Cancelled() {
		t.Error("fresh spinner reports cancelled")
	}
	cancel()
	if !s.Cancelled() {
		t.Error("spinner missed parent cancellation")
	}
	s.Stop()
}

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinner(context.Background(), "scoring")
	s.Start()
	s.Stop()

	// A second Stop must be a safe no-op.
	s.Stop()
}

func TestSpinnerStopWithStatus(t *testing.T) {
	// Both variants stop the animation before printing; neither may block
	// or panic on an already-finished spinner goroutine.
	s := newSpinner(context.Background(), "scoring")
	s.Start()
	s.StopWithSuccess("done")

	s = newSpinner(context.Background(), "scoring")
	s.Start()
	s.StopWithError("failed")
}

package observability

import (
	"context"
	"testing"
)

type countingExpansionHooks struct {
	starts, settles, completes int
}

func (h *countingExpansionHooks) OnExpandStart(string, uint64)          { h.starts++ }
func (h *countingExpansionHooks) OnEdgeSettled(string, uint64, float64) { h.settles++ }
func (h *countingExpansionHooks) OnExpandComplete(string, uint64, int)  { h.completes++ }

type countingCacheHooks struct {
	hits, misses, sets int
}

func (h *countingCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *countingCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *countingCacheHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	// Must not panic
	Expansion().OnExpandStart("forward", 1)
	Expansion().OnEdgeSettled("forward", 1, 1.0)
	Expansion().OnExpandComplete("forward", 1, 1)
	Cache().OnCacheHit(context.Background(), "network")
	Cache().OnCacheMiss(context.Background(), "network")
	Cache().OnCacheSet(context.Background(), "network", 10)
}

func TestHookRegistration(t *testing.T) {
	defer Reset()

	eh := &countingExpansionHooks{}
	ch := &countingCacheHooks{}
	SetExpansionHooks(eh)
	SetCacheHooks(ch)

	Expansion().OnExpandStart("forward", 7)
	Expansion().OnEdgeSettled("forward", 7, 12.5)
	Expansion().OnExpandComplete("forward", 7, 1)
	Cache().OnCacheHit(context.Background(), "network")
	Cache().OnCacheSet(context.Background(), "network", 64)

	if eh.starts != 1 || eh.settles != 1 || eh.completes != 1 {
		t.Errorf("expansion hooks counts = %+v", *eh)
	}
	if ch.hits != 1 || ch.sets != 1 || ch.misses != 0 {
		t.Errorf("cache hooks counts = %+v", *ch)
	}
}

func TestNilRegistrationIgnored(t *testing.T) {
	defer Reset()

	SetExpansionHooks(nil)
	SetCacheHooks(nil)

	// Registry must still serve the no-op defaults
	Expansion().OnExpandStart("forward", 1)
	Cache().OnCacheMiss(context.Background(), "network")
}

func TestResetRestoresDefaults(t *testing.T) {
	eh := &countingExpansionHooks{}
	SetExpansionHooks(eh)
	Reset()

	Expansion().OnExpandStart("forward", 1)
	if eh.starts != 0 {
		t.Error("Reset did not detach custom hooks")
	}
}

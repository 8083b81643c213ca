// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about expansion runs and cache
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetExpansionHooks(&myExpansionHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Expansion().OnExpandStart(dir, seed)
//	// ... expansion loop ...
//	observability.Expansion().OnExpandComplete(dir, seed, settled)
package observability

import (
	"context"
	"sync"
)

// =============================================================================
// Expansion Hooks
// =============================================================================

// ExpansionHooks receives events from the expansion engine.
//
// OnEdgeSettled fires once per settled frontier edge, on the hot path of
// every expansion; implementations must be cheap and non-blocking.
type ExpansionHooks interface {
	// OnExpandStart records the start of one directional expansion.
	OnExpandStart(dir string, seed uint64)

	// OnEdgeSettled records one settled frontier edge and its accumulated cost.
	OnEdgeSettled(dir string, edge uint64, cost float64)

	// OnExpandComplete records the end of an expansion and how many edges settled.
	OnExpandComplete(dir string, seed uint64, settled int)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopExpansionHooks is a no-op implementation of ExpansionHooks.
type NoopExpansionHooks struct{}

func (NoopExpansionHooks) OnExpandStart(string, uint64)         {}
func (NoopExpansionHooks) OnEdgeSettled(string, uint64, float64) {}
func (NoopExpansionHooks) OnExpandComplete(string, uint64, int) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	expansionHooks ExpansionHooks = NoopExpansionHooks{}
	cacheHooks     CacheHooks     = NoopCacheHooks{}
	hooksMu        sync.RWMutex
)

// SetExpansionHooks registers custom expansion hooks.
// This should be called once at application startup before any expansions.
func SetExpansionHooks(h ExpansionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		expansionHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Expansion returns the registered expansion hooks.
func Expansion() ExpansionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return expansionHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	expansionHooks = NoopExpansionHooks{}
	cacheHooks = NoopCacheHooks{}
}

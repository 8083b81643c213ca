// Package cache provides a pluggable byte cache with TTL support.
//
// The cache stores opaque byte payloads - in Wayreach, serialized network
// files keyed by content hash - behind a small interface with file, Redis,
// MongoDB, and null implementations. The CLI uses the file backend; the API
// server can point at Redis or MongoDB for shared deployments. Reach results
// themselves are never cached or persisted.
package cache

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for caching operations.
var (
	// ErrNotFound is returned when a requested item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCacheMiss is returned when an item is not found in cache.
	ErrCacheMiss = errors.New("cache miss")
)

// Cache stores byte payloads under string keys with optional expiration.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any backend resources.
	Close() error
}

// Keyer generates cache keys for the payload types Wayreach stores.
type Keyer interface {
	// NetworkKey generates the key for a serialized network with the given
	// content hash.
	NetworkKey(contentHash string) string

	// ProfileKey generates the key for a costing profile by name and content
	// hash of its TOML source.
	ProfileKey(name, contentHash string) string
}

// DefaultKeyer generates namespaced, hash-based keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// NetworkKey generates a key for a serialized network.
func (k *DefaultKeyer) NetworkKey(contentHash string) string {
	return "network:" + contentHash
}

// ProfileKey generates a key for a costing profile.
func (k *DefaultKeyer) ProfileKey(name, contentHash string) string {
	return hashKey("profile", name, contentHash)
}

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// Different users or deployments sharing one Redis or MongoDB backend get
// separate cache namespaces.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// NetworkKey generates a prefixed key for a serialized network.
func (k *ScopedKeyer) NetworkKey(contentHash string) string {
	return k.prefix + k.inner.NetworkKey(contentHash)
}

// ProfileKey generates a prefixed key for a costing profile.
func (k *ScopedKeyer) ProfileKey(name, contentHash string) string {
	return k.prefix + k.inner.ProfileKey(name, contentHash)
}

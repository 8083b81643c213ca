package cache

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	payload := []byte(`{"edges":[]}`)
	if err := c.Set(ctx, "network:abc", payload, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, hit, err := c.Get(ctx, "network:abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("expected hit after Set")
	}
	if string(data) != string(payload) {
		t.Errorf("Get data = %q, want %q", data, payload)
	}

	// Missing key is a clean miss
	if _, hit, err := c.Get(ctx, "network:missing"); err != nil || hit {
		t.Errorf("missing key: hit=%v err=%v, want clean miss", hit, err)
	}

	// Delete removes the entry
	if err := c.Delete(ctx, "network:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "network:abc"); hit {
		t.Error("entry survived Delete")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "network:missing"); err != nil {
		t.Errorf("Delete missing key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, hit, err := c.Get(ctx, "key"); err != nil || hit {
		t.Errorf("expired entry: hit=%v err=%v, want miss", hit, err)
	}
}

func TestFileCacheCorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if err := c.Set(ctx, "network:abc", []byte("payload"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Corrupt the entry file on disk; Get must treat it as a clean miss
	// and remove it.
	fc := c.(*FileCache)
	if err := os.WriteFile(fc.path("network:abc"), []byte("not json"), 0644); err != nil {
		t.Fatalf("corrupt entry: %v", err)
	}
	if _, hit, err := c.Get(ctx, "network:abc"); err != nil || hit {
		t.Errorf("corrupt entry: hit=%v err=%v, want clean miss", hit, err)
	}
	if _, err := os.Stat(fc.path("network:abc")); !os.IsNotExist(err) {
		t.Error("corrupt entry not removed on Get")
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	if key := k.NetworkKey("abc123"); key != "network:abc123" {
		t.Errorf("NetworkKey unexpected: %s", key)
	}

	// ProfileKey should include both name and content hash
	p1 := k.ProfileKey("auto", "hash1")
	p2 := k.ProfileKey("auto", "hash2")
	p3 := k.ProfileKey("bicycle", "hash1")
	if p1 == p2 || p1 == p3 {
		t.Error("ProfileKey should vary with name and hash")
	}
}

func TestScopedKeyer(t *testing.T) {
	k := NewScopedKeyer(NewDefaultKeyer(), "tenant1:")

	key := k.NetworkKey("abc")
	if !strings.HasPrefix(key, "tenant1:") {
		t.Errorf("scoped key missing prefix: %s", key)
	}

	// Nil inner falls back to the default keyer
	fallback := NewScopedKeyer(nil, "t:")
	if fallback.NetworkKey("abc") != "t:network:abc" {
		t.Errorf("fallback key unexpected: %s", fallback.NetworkKey("abc"))
	}
}

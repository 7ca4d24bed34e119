package cache

import (
	"context"
	"os"
	"path/filepath"
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

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "cloud:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("unexpected hit before Set")
	}

	// Round trip
	if err := c.Set(ctx, "cloud:abc", []byte("payload"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "cloud:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected hit after Set")
	}
	if string(data) != "payload" {
		t.Errorf("data = %q, want %q", data, "payload")
	}

	// Expired entry is a miss
	if err := c.Set(ctx, "cloud:expired", []byte("old"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, err = c.Get(ctx, "cloud:expired")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expired entry should be a miss")
	}

	// Delete
	if err := c.Delete(ctx, "cloud:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "cloud:abc")
	if hit {
		t.Error("entry should be gone after Delete")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "cloud:never"); err != nil {
		t.Errorf("Delete of missing key should be nil, got %v", err)
	}
}

func TestFileCacheLayout(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	key := NewDefaultKeyer().CloudKey("dochash", CloudKeyOpts{MaxWords: 60})
	if err := c.Set(ctx, key, []byte("model"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	// Entries are grouped by key kind and stored as .entry files.
	want := filepath.Join(dir, "cloud", Hash([]byte(key))+".entry")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected entry at %s: %v", want, err)
	}
}

func TestKeyKind(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"cloud:abc123", "cloud"},
		{"heatmap:abc123", "heatmap"},
		{"project:novel:artifact:abc123", "artifact"},
		{"nodigest", "misc"},
		{"UPPER:abc123", "misc"},
		{"::abc123", "misc"},
	}
	for _, tt := range tests {
		if got := keyKind(tt.key); got != tt.want {
			t.Errorf("keyKind(%q) = %q, want %q", tt.key, got, tt.want)
		}
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

	// CloudKey should include options in hash
	ck1 := k.CloudKey("dochash", CloudKeyOpts{MaxWords: 50, MaxWidth: 800})
	ck2 := k.CloudKey("dochash", CloudKeyOpts{MaxWords: 80, MaxWidth: 800})
	if ck1 == ck2 {
		t.Error("Different CloudKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(ck1, "cloud:") {
		t.Errorf("CloudKey should be prefixed: %s", ck1)
	}

	// HeatmapKey
	hk1 := k.HeatmapKey("dochash", HeatmapKeyOpts{Segments: 20, Bands: 5})
	hk2 := k.HeatmapKey("dochash", HeatmapKeyOpts{Segments: 40, Bands: 5})
	if hk1 == hk2 {
		t.Error("Different HeatmapKeyOpts should produce different keys")
	}

	// ArtifactKey
	ak1 := k.ArtifactKey("modelhash", ArtifactKeyOpts{Format: "svg", Theme: "parchment"})
	ak2 := k.ArtifactKey("modelhash", ArtifactKeyOpts{Format: "png", Theme: "parchment"})
	if ak1 == ak2 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "project:novel:")

	key := scoped.CloudKey("dochash", CloudKeyOpts{})
	if !strings.HasPrefix(key, "project:novel:cloud:") {
		t.Errorf("ScopedKeyer CloudKey should be prefixed: %s", key)
	}

	// Should use DefaultKeyer when inner is nil
	fallback := NewScopedKeyer(nil, "p:")
	if !strings.HasPrefix(fallback.ArtifactKey("h", ArtifactKeyOpts{}), "p:artifact:") {
		t.Error("nil inner should fall back to DefaultKeyer")
	}
}

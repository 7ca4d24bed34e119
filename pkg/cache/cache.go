// Package cache provides content-addressed caching for analysis results
// and rendered artifacts.
//
// Analysis of a manuscript is deterministic, so results are keyed by a
// hash of the document content plus the options that produced them. The
// package offers three backends:
//   - FileCache: JSON files under a cache directory (CLI default)
//   - RedisCache: shared cache for multi-instance server deployments
//   - NullCache: caching disabled
//
// Keyers translate domain inputs into cache keys. Use ScopedKeyer to
// namespace keys when several users or projects share one backend.
package cache

import (
	"context"
	"time"
)

// TTLs per key type. Analysis models are cheap to recompute, rendered
// artifacts less so.
const (
	TTLCloud    = 24 * time.Hour
	TTLHeatmap  = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A TTL of 0 means the entry
	// never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// CloudKeyOpts are the option fields that affect word-cloud results.
type CloudKeyOpts struct {
	MaxWords int     `json:"max_words"`
	MaxWidth float64 `json:"max_width"`
	Spacing  float64 `json:"spacing"`
	MinFont  float64 `json:"min_font"`
	MaxFont  float64 `json:"max_font"`
}

// HeatmapKeyOpts are the option fields that affect character-arc heatmaps.
type HeatmapKeyOpts struct {
	Segments   int      `json:"segments"`
	Characters []string `json:"characters"`
	Bands      int      `json:"bands"`
}

// ArtifactKeyOpts are the option fields that affect rendered artifacts.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Theme  string `json:"theme"`
}

// Keyer generates cache keys from domain inputs.
type Keyer interface {
	// CloudKey generates a key for a word-cloud model computed from the
	// document with the given content hash.
	CloudKey(docHash string, opts CloudKeyOpts) string

	// HeatmapKey generates a key for a character-arc heatmap.
	HeatmapKey(docHash string, opts HeatmapKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact derived from
	// a model with the given content hash.
	ArtifactKey(modelHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the inputs into prefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// CloudKey generates a key for word-cloud results.
func (k *DefaultKeyer) CloudKey(docHash string, opts CloudKeyOpts) string {
	return hashKey("cloud", docHash, opts)
}

// HeatmapKey generates a key for heatmap results.
func (k *DefaultKeyer) HeatmapKey(docHash string, opts HeatmapKeyOpts) string {
	return hashKey("heatmap", docHash, opts)
}

// ArtifactKey generates a key for rendered artifacts.
func (k *DefaultKeyer) ArtifactKey(modelHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", modelHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
//
// Example usage:
//
//	// Project-specific keys
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "project:novel:")
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

// CloudKey generates a prefixed key for word-cloud results.
func (k *ScopedKeyer) CloudKey(docHash string, opts CloudKeyOpts) string {
	return k.prefix + k.inner.CloudKey(docHash, opts)
}

// HeatmapKey generates a prefixed key for heatmap results.
func (k *ScopedKeyer) HeatmapKey(docHash string, opts HeatmapKeyOpts) string {
	return k.prefix + k.inner.HeatmapKey(docHash, opts)
}

// ArtifactKey generates a prefixed key for rendered artifacts.
func (k *ScopedKeyer) ArtifactKey(modelHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(modelHash, opts)
}

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/arcs"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/cache"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/cloud"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/errors"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/observability"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/render"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/text"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete analyze → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	manuscript, err := opts.Manuscript()
	if err != nil {
		return nil, err
	}

	result := &Result{
		DocHash:   cache.Hash([]byte(manuscript)),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Analyze
	analyzeStart := time.Now()
	observability.Pipeline().OnAnalyzeStart(ctx, opts.Document)
	words := text.Frequencies(manuscript, opts.TextOptions())
	result.Stats.AnalyzeTime = time.Since(analyzeStart)
	result.Stats.WordCount = len(words)
	observability.Pipeline().OnAnalyzeComplete(ctx, opts.Document, len(words), result.Stats.AnalyzeTime, nil)

	r.Logger.Info("analyzed manuscript",
		"words", len(words),
		"duration", result.Stats.AnalyzeTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, len(words))

	c, cloudHit, err := r.BuildCloudWithCacheInfo(ctx, result.DocHash, words, opts)
	if err != nil {
		observability.Pipeline().OnLayoutComplete(ctx, len(words), time.Since(layoutStart), err)
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Cloud = c
	result.CacheInfo.CloudHit = cloudHit

	if opts.WantsHeatmap() {
		h, heatmapHit, err := r.BuildHeatmapWithCacheInfo(ctx, result.DocHash, manuscript, opts)
		if err != nil {
			observability.Pipeline().OnLayoutComplete(ctx, len(words), time.Since(layoutStart), err)
			return nil, fmt.Errorf("heatmap: %w", err)
		}
		result.Heatmap = &h
		result.CacheInfo.HeatmapHit = heatmapHit
	}

	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.ItemCount = len(c.Items)
	observability.Pipeline().OnLayoutComplete(ctx, len(words), result.Stats.LayoutTime, nil)

	r.Logger.Info("arranged cloud",
		"items", len(c.Items),
		"width", c.Width,
		"height", c.Height,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)

	artifacts, arcArtifacts, renderHit, err := r.RenderWithCacheInfo(ctx, c, result.Heatmap, opts)
	if err != nil {
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.ArcArtifacts = arcArtifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, nil)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// BuildCloudWithCacheInfo arranges ranked words into a cloud with caching
// and returns cache hit info. docHash keys the cache entry.
func (r *Runner) BuildCloudWithCacheInfo(ctx context.Context, docHash string, words []text.WordCount, opts Options) (cloud.Cloud, bool, error) {
	opts.SetLayoutDefaults()
	if opts.MaxWords == 0 {
		opts.MaxWords = DefaultMaxWords
	}

	cacheKey := r.Keyer.CloudKey(docHash, opts.CloudKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "cloud")
			if cached, err := cloud.UnmarshalCloud(data); err == nil {
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		} else {
			observability.Cache().OnCacheMiss(ctx, "cloud")
		}
	}

	c, err := cloud.Build(words, opts.BuildOptions())
	if err != nil {
		return cloud.Cloud{}, false, err
	}

	// Cache the result
	if data, err := cloud.MarshalCloud(c); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLCloud)
		observability.Cache().OnCacheSet(ctx, "cloud", len(data))
	}

	return c, false, nil // Cache miss
}

// BuildCloud is a convenience wrapper that discards the cache hit info.
func (r *Runner) BuildCloud(ctx context.Context, docHash string, words []text.WordCount, opts Options) (cloud.Cloud, error) {
	c, _, err := r.BuildCloudWithCacheInfo(ctx, docHash, words, opts)
	return c, err
}

// BuildHeatmapWithCacheInfo computes the character-arc heatmap with caching
// and returns cache hit info.
func (r *Runner) BuildHeatmapWithCacheInfo(ctx context.Context, docHash, manuscript string, opts Options) (arcs.Heatmap, bool, error) {
	cacheKey := r.Keyer.HeatmapKey(docHash, opts.HeatmapKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "heatmap")
			if cached, err := arcs.UnmarshalHeatmap(data); err == nil {
				return cached, true, nil // Cache hit
			}
		} else {
			observability.Cache().OnCacheMiss(ctx, "heatmap")
		}
	}

	h, err := arcs.Build(manuscript, opts.Characters, arcs.Options{
		Segments: opts.Segments,
		Bands:    opts.Bands,
	})
	if err != nil {
		return arcs.Heatmap{}, false, err
	}

	if data, err := arcs.MarshalHeatmap(h); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLHeatmap)
		observability.Cache().OnCacheSet(ctx, "heatmap", len(data))
	}

	return h, false, nil // Cache miss
}

// RenderWithCacheInfo generates artifacts with caching and returns cache
// hit info. The heatmap may be nil; arc artifacts are then empty.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, c cloud.Cloud, h *arcs.Heatmap, opts Options) (map[string][]byte, map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, nil, false, err
	}

	theme, err := render.ThemeByName(opts.Theme)
	if err != nil {
		return nil, nil, false, err
	}

	cloudData, err := cloud.MarshalCloud(c)
	if err != nil {
		return nil, nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize cloud for cache key")
	}
	cloudHash := cache.Hash(cloudData)

	var heatmapData []byte
	var heatmapHash string
	if h != nil {
		heatmapData, err = arcs.MarshalHeatmap(*h)
		if err != nil {
			return nil, nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize heatmap for cache key")
		}
		heatmapHash = cache.Hash(heatmapData)
	}

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)
	arcArtifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(cloudHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			allCached = false
			break
		}
		artifacts[format] = data

		if h != nil {
			key = r.Keyer.ArtifactKey(heatmapHash, opts.ArtifactKeyOpts(format))
			data, hit, err = r.Cache.Get(ctx, key)
			if err != nil || !hit {
				allCached = false
				break
			}
			arcArtifacts[format] = data
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, arcArtifacts, true, nil // All artifacts from cache
	}

	// Render all formats
	artifacts = make(map[string][]byte)
	arcArtifacts = make(map[string][]byte)
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[format] = render.RenderCloudSVG(c, theme)
			if h != nil {
				arcArtifacts[format] = render.RenderHeatmapSVG(*h, theme)
			}
		case FormatJSON:
			artifacts[format] = cloudData
			if h != nil {
				arcArtifacts[format] = heatmapData
			}
		}
	}

	// Cache each format
	for format, data := range artifacts {
		key := r.Keyer.ArtifactKey(cloudHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
	}
	for format, data := range arcArtifacts {
		key := r.Keyer.ArtifactKey(heatmapHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
	}

	return artifacts, arcArtifacts, false, nil // Cache miss
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

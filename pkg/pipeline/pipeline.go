// Package pipeline provides the core analysis pipeline for QuillPilot.
//
// This package implements the complete analyze → layout → render pipeline
// that can be used by CLI and server components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Analyze: tokenize the manuscript and rank word frequencies, plus
//     per-character mention counts when characters are requested
//  2. Layout: scale words to font sizes and arrange them with the flow
//     layout; band character mentions into a heatmap
//  3. Render: generate output in various formats (SVG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Document: "draft.txt",
//	    MaxWords: 80,
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/arcs"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/cache"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/cloud"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/errors"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/render"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/text"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultMaxWords caps how many ranked words enter the cloud. This is
	// intentionally lower than what the layout can handle to keep clouds
	// readable; callers can raise it explicitly.
	DefaultMaxWords = 60

	// DefaultMinLength drops very short words before stop-word filtering.
	DefaultMinLength = 2
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = []string{FormatSVG, FormatJSON}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the analysis pipeline.
// This struct supports JSON serialization for server requests.
type Options struct {
	// Analyze options
	Document   string   `json:"document,omitempty"` // manuscript file path
	Text       string   `json:"text,omitempty"`     // inline manuscript (overrides Document)
	MaxWords   int      `json:"max_words,omitempty"`
	MinLength  int      `json:"min_length,omitempty"`
	Characters []string `json:"characters,omitempty"` // enables the arc heatmap
	Segments   int      `json:"segments,omitempty"`
	Bands      int      `json:"bands,omitempty"`
	Refresh    bool     `json:"refresh,omitempty"`

	// Layout options
	MaxWidth    float64 `json:"max_width,omitempty"`
	Spacing     float64 `json:"spacing,omitempty"`
	MinFontSize float64 `json:"min_font_size,omitempty"`
	MaxFontSize float64 `json:"max_font_size,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Theme   string   `json:"theme,omitempty"`

	// Runtime options (not serialized)
	Logger   *log.Logger    `json:"-"`
	Measurer cloud.Measurer `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Cloud is the arranged word-cloud model.
	Cloud cloud.Cloud

	// Heatmap is the character-arc model, nil unless characters were
	// requested.
	Heatmap *arcs.Heatmap

	// DocHash is the content hash of the manuscript.
	DocHash string

	// Artifacts contains rendered cloud outputs keyed by format.
	Artifacts map[string][]byte

	// ArcArtifacts contains rendered heatmap outputs keyed by format,
	// empty unless characters were requested.
	ArcArtifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	WordCount   int // distinct ranked words entering the cloud
	ItemCount   int // items placed by the layout
	AnalyzeTime time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	CloudHit   bool // whether the arranged cloud came from cache
	HeatmapHit bool // whether the heatmap came from cache
	RenderHit  bool // whether all artifacts came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForAnalyze(); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForAnalyze checks required fields for analysis.
func (o *Options) ValidateForAnalyze() error {
	if o.Document == "" && o.Text == "" {
		return errors.New(errors.ErrCodeInvalidInput, "document or text is required")
	}
	if o.Document != "" {
		if err := errors.ValidateDocumentPath(o.Document); err != nil {
			return err
		}
	}

	// Analyze defaults
	if o.MaxWords == 0 {
		o.MaxWords = DefaultMaxWords
	}
	if o.MinLength == 0 {
		o.MinLength = DefaultMinLength
	}
	if len(o.Characters) > 0 {
		if o.Segments == 0 {
			o.Segments = arcs.DefaultSegments
		}
		if o.Bands == 0 {
			o.Bands = arcs.DefaultBands
		}
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.MaxWidth == 0 {
		o.MaxWidth = cloud.DefaultMaxWidth
	}
	if o.Spacing == 0 {
		o.Spacing = cloud.DefaultSpacing
	}
	if o.MinFontSize == 0 {
		o.MinFontSize = cloud.DefaultMinFontSize
	}
	if o.MaxFontSize == 0 {
		o.MaxFontSize = cloud.DefaultMaxFontSize
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Theme == "" {
		o.Theme = render.DefaultTheme.Name
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	for _, f := range o.Formats {
		if err := errors.ValidateFormat(f, ValidFormats); err != nil {
			return err
		}
	}
	if _, err := render.ThemeByName(o.Theme); err != nil {
		return err
	}
	return nil
}

// WantsHeatmap reports whether character arcs were requested.
func (o *Options) WantsHeatmap() bool {
	return len(o.Characters) > 0
}

// Manuscript returns the manuscript text, reading the document file when
// no inline text was supplied.
func (o *Options) Manuscript() (string, error) {
	if o.Text != "" {
		return o.Text, nil
	}
	data, err := os.ReadFile(o.Document)
	if err != nil {
		return "", fmt.Errorf("read document %s: %w", o.Document, err)
	}
	return string(data), nil
}

// BuildOptions returns the cloud construction options.
func (o *Options) BuildOptions() cloud.BuildOptions {
	return cloud.BuildOptions{
		MaxWidth:    o.MaxWidth,
		Spacing:     o.Spacing,
		MinFontSize: o.MinFontSize,
		MaxFontSize: o.MaxFontSize,
		Measurer:    o.Measurer,
	}
}

// CloudKeyOpts returns cache key options for the arranged cloud.
func (o *Options) CloudKeyOpts() cache.CloudKeyOpts {
	return cache.CloudKeyOpts{
		MaxWords: o.MaxWords,
		MaxWidth: o.MaxWidth,
		Spacing:  o.Spacing,
		MinFont:  o.MinFontSize,
		MaxFont:  o.MaxFontSize,
	}
}

// HeatmapKeyOpts returns cache key options for the arc heatmap.
func (o *Options) HeatmapKeyOpts() cache.HeatmapKeyOpts {
	return cache.HeatmapKeyOpts{
		Segments:   o.Segments,
		Characters: o.Characters,
		Bands:      o.Bands,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Theme:  o.Theme,
	}
}

// TextOptions returns the frequency-analysis options.
func (o *Options) TextOptions() text.Options {
	return text.Options{
		MaxWords:  o.MaxWords,
		MinLength: o.MinLength,
	}
}

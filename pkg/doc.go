// Package pkg provides the core libraries for QuillPilot manuscript analysis.
//
// # Overview
//
// QuillPilot turns manuscript text into visual summaries a writer can act
// on: word clouds, character-arc heatmaps, and relationship maps. The pkg
// directory is organized into four main areas:
//
//  1. Analysis - text statistics ([text], [arcs], [relations])
//  2. Layout - geometry ([layout], [cloud])
//  3. Rendering - output formats and themes ([render])
//  4. Infrastructure - caching, preferences, persistence ([cache], [prefs],
//     [notes], [recent], [tips], [gallery])
//
// # Architecture
//
// The typical data flow through QuillPilot:
//
//	Manuscript text
//	         ↓
//	    [text] package (tokenize, rank frequencies)
//	         ↓
//	    [cloud] package (scale words, arrange with [layout])
//	         ↓
//	    [render] package (SVG themes) or JSON
//	         ↓
//	    SVG/JSON output
//
// # Quick Start
//
// Build a word cloud from text:
//
//	import (
//	    "github.com/londailey6937/QuillPilot-Native-sub006/pkg/cloud"
//	    "github.com/londailey6937/QuillPilot-Native-sub006/pkg/render"
//	    "github.com/londailey6937/QuillPilot-Native-sub006/pkg/text"
//	)
//
//	// 1. Rank word frequencies
//	words := text.Frequencies(manuscript, text.Options{MaxWords: 60})
//
//	// 2. Scale and arrange
//	c, _ := cloud.Build(words, cloud.BuildOptions{MaxWidth: 800, Spacing: 8})
//
//	// 3. Render to SVG
//	theme, _ := render.ThemeByName("parchment")
//	svg := render.RenderCloudSVG(c, theme)
//
// Or run the whole thing with caching via [pipeline]:
//
//	runner := pipeline.NewRunner(fileCache, nil, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{Document: "draft.txt"})
//
// # Main Packages
//
// ## Analysis
//
// [text] - Tokenization, stop-word filtering, frequency ranking, mention
// counting, and manuscript segmentation. Everything downstream consumes
// its ranked word lists and segments.
//
// [arcs] - Character-arc heatmaps. Splits the manuscript into segments,
// counts mentions per character per segment, and normalizes each row
// against that character's own busiest segment.
//
// [relations] - Character co-occurrence graphs exported as Graphviz DOT
// and rendered to SVG or PNG.
//
// ## Layout
//
// [layout] - The flow arranger: places sized items left to right in
// reading order, wrapping at a maximum width, and reports the bounding
// frame. Pure geometry with no knowledge of words or fonts.
//
// [cloud] - Word-cloud models. Scales frequencies to font sizes and
// opacities, measures labels, and runs the measured sizes through the
// flow arranger.
//
// ## Rendering
//
// [render] - SVG sinks for clouds and heatmaps plus the named theme
// registry (parchment, midnight).
//
// ## Infrastructure
//
// [pipeline] - Complete analyze → layout → render pipeline used by CLI
// and server. Ensures consistent behavior across all entry points.
//
// [cache] - Content-addressed caching with file, Redis, and null
// backends. Keys are derived from the document hash plus the option
// fields that affect each stage's output.
//
// [prefs] - User preferences in TOML under the user config directory,
// with a Watcher for components that react to changes.
//
// [notes] - Theme notes stored as JSON files keyed by UUID.
//
// [recent] - The bounded recent-documents list behind the welcome screen.
//
// [tips] - The dialogue-tips catalog, built-in or loaded from TOML, with
// deterministic tip-of-the-day selection.
//
// [gallery] - Saved-cloud storage for the preview server with in-memory
// and MongoDB backends.
//
// [errors] - Structured errors with machine-readable codes shared by the
// CLI and the HTTP server.
//
// [observability] - Pluggable pipeline and cache event hooks.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/layout/...    # Specific package
//	go test -run Example        # Examples only
//
// [text]: https://pkg.go.dev/github.com/londailey6937/QuillPilot-Native-sub006/pkg/text
// [arcs]: https://pkg.go.dev/github.com/londailey6937/QuillPilot-Native-sub006/pkg/arcs
// [relations]: https://pkg.go.dev/github.com/londailey6937/QuillPilot-Native-sub006/pkg/relations
// [layout]: https://pkg.go.dev/github.com/londailey6937/QuillPilot-Native-sub006/pkg/layout
// [cloud]: https://pkg.go.dev/github.com/londailey6937/QuillPilot-Native-sub006/pkg/cloud
// [render]: https://pkg.go.dev/github.com/londailey6937/QuillPilot-Native-sub006/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/londailey6937/QuillPilot-Native-sub006/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/londailey6937/QuillPilot-Native-sub006/pkg/cache
// [prefs]: https://pkg.go.dev/github.com/londailey6937/QuillPilot-Native-sub006/pkg/prefs
// [notes]: https://pkg.go.dev/github.com/londailey6937/QuillPilot-Native-sub006/pkg/notes
// [recent]: https://pkg.go.dev/github.com/londailey6937/QuillPilot-Native-sub006/pkg/recent
// [tips]: https://pkg.go.dev/github.com/londailey6937/QuillPilot-Native-sub006/pkg/tips
// [gallery]: https://pkg.go.dev/github.com/londailey6937/QuillPilot-Native-sub006/pkg/gallery
// [errors]: https://pkg.go.dev/github.com/londailey6937/QuillPilot-Native-sub006/pkg/errors
// [observability]: https://pkg.go.dev/github.com/londailey6937/QuillPilot-Native-sub006/pkg/observability
package pkg

// Package render turns word-cloud and heatmap models into SVG artifacts.
//
// Rendering is configured by an explicit Theme value passed into each
// call. There is deliberately no process-wide current theme: whatever
// composes the UI owns theme selection and change notification (see
// pkg/prefs), and rendering stays a pure data-in, bytes-out transform.
package render

import (
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/errors"
)

// Theme is a named color scheme for rendered artifacts.
type Theme struct {
	Name string

	// Background fills the frame.
	Background string

	// Ink is the primary text color.
	Ink string

	// Muted is the secondary text color (labels, captions).
	Muted string

	// Palette colors word-cloud items, cycled by rank.
	Palette []string

	// HeatRamp colors heatmap bands from cold (index 0) to hot.
	HeatRamp []string
}

// Built-in themes.
var (
	// Parchment is the default light theme.
	Parchment = Theme{
		Name:       "parchment",
		Background: "#f7f1e3",
		Ink:        "#3d3229",
		Muted:      "#8a7e70",
		Palette:    []string{"#3d3229", "#7a5c3e", "#4a6741", "#5b4a68", "#8c5b4a"},
		HeatRamp:   []string{"#efe7d7", "#e4c9a8", "#d9a06b", "#c4703f", "#a4432a"},
	}

	// Midnight is the dark theme.
	Midnight = Theme{
		Name:       "midnight",
		Background: "#1b1e28",
		Ink:        "#e8e6e3",
		Muted:      "#8f94a3",
		Palette:    []string{"#e8e6e3", "#9ecbff", "#a3d9a5", "#d7a8e8", "#ffc98f"},
		HeatRamp:   []string{"#252a38", "#31456b", "#3e6a9e", "#5b93c4", "#8fc1e8"},
	}
)

// DefaultTheme is used when no theme is configured.
var DefaultTheme = Parchment

// themes indexes the built-in themes by name.
var themes = map[string]Theme{
	Parchment.Name: Parchment,
	Midnight.Name:  Midnight,
}

// ThemeByName looks up a built-in theme.
func ThemeByName(name string) (Theme, error) {
	if name == "" {
		return DefaultTheme, nil
	}
	if err := errors.ValidateThemeName(name); err != nil {
		return Theme{}, err
	}
	t, ok := themes[name]
	if !ok {
		return Theme{}, errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q", name)
	}
	return t, nil
}

// ThemeNames returns the built-in theme names in stable order.
func ThemeNames() []string {
	return []string{Parchment.Name, Midnight.Name}
}

// HeatColor selects the ramp color for a band index. Band indexes beyond
// the ramp clamp to its ends, so a heatmap with more bands than ramp
// entries still renders.
func (t Theme) HeatColor(band, bands int) string {
	if len(t.HeatRamp) == 0 {
		return t.Ink
	}
	if bands < 2 {
		return t.HeatRamp[0]
	}
	idx := band * (len(t.HeatRamp) - 1) / (bands - 1)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(t.HeatRamp) {
		idx = len(t.HeatRamp) - 1
	}
	return t.HeatRamp[idx]
}

// WordColor selects the palette color for an item rank.
func (t Theme) WordColor(rank int) string {
	if len(t.Palette) == 0 {
		return t.Ink
	}
	return t.Palette[rank%len(t.Palette)]
}

// Package arcs computes character-arc heatmaps from manuscripts.
//
// A heatmap tracks how strongly each character is present across the
// manuscript: the text is split into equal segments, mentions of each
// character are counted per segment, and counts are normalized per
// character so a protagonist and a minor character both show the shape
// of their arc. Intensities are then banded into a small discrete scale
// that rendering maps onto a color ramp.
package arcs

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/errors"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/text"
)

// Cell is one character/segment intersection.
type Cell struct {
	Mentions  int     `json:"mentions" bson:"mentions"`
	Intensity float64 `json:"intensity" bson:"intensity"`
	Band      int     `json:"band" bson:"band"`
}

// Heatmap is a complete character-arc model. Rows correspond to
// Characters in order; each row has Segments cells.
type Heatmap struct {
	Characters []string `json:"characters" bson:"characters"`
	Segments   int      `json:"segments" bson:"segments"`
	Bands      int      `json:"bands" bson:"bands"`
	Rows       [][]Cell `json:"rows" bson:"rows"`
}

// Default heatmap parameters.
const (
	DefaultSegments = 20
	DefaultBands    = 5
)

// Options configures heatmap construction.
type Options struct {
	// Segments is the number of equal-word-count slices the manuscript
	// is divided into.
	Segments int

	// Bands is the number of discrete intensity levels.
	Bands int
}

// SetDefaults fills zero-valued fields with the package defaults.
func (o *Options) SetDefaults() {
	if o.Segments == 0 {
		o.Segments = DefaultSegments
	}
	if o.Bands == 0 {
		o.Bands = DefaultBands
	}
}

// Build splits the manuscript and counts per-segment mentions of each
// character. Intensities are normalized per character: a character's
// busiest segment is 1.0 regardless of how often they appear overall.
// Characters with no mentions at all get a row of zero cells.
func Build(manuscript string, characters []string, opts Options) (Heatmap, error) {
	opts.SetDefaults()
	if opts.Segments < 1 {
		return Heatmap{}, errors.New(errors.ErrCodeInvalidInput, "segments must be at least 1, got %d", opts.Segments)
	}
	if opts.Bands < 2 {
		return Heatmap{}, errors.New(errors.ErrCodeInvalidInput, "bands must be at least 2, got %d", opts.Bands)
	}
	if len(characters) == 0 {
		return Heatmap{}, errors.New(errors.ErrCodeInvalidInput, "at least one character name is required")
	}
	for _, name := range characters {
		if strings.TrimSpace(name) == "" {
			return Heatmap{}, errors.New(errors.ErrCodeInvalidInput, "character names cannot be blank")
		}
	}

	segments := text.Segments(manuscript, opts.Segments)

	h := Heatmap{
		Characters: characters,
		Segments:   opts.Segments,
		Bands:      opts.Bands,
		Rows:       make([][]Cell, len(characters)),
	}

	for i, name := range characters {
		row := make([]Cell, opts.Segments)
		max := 0
		for j, seg := range segments {
			m := text.Mentions(seg, name)
			row[j].Mentions = m
			if m > max {
				max = m
			}
		}
		if max > 0 {
			for j := range row {
				row[j].Intensity = float64(row[j].Mentions) / float64(max)
				row[j].Band = BandFor(row[j].Intensity, opts.Bands)
			}
		}
		h.Rows[i] = row
	}

	return h, nil
}

// BandFor maps an intensity in [0, 1] to a band index in [0, bands-1].
// Intensity 0 always lands in band 0 and intensity 1 in the top band.
func BandFor(intensity float64, bands int) int {
	if intensity <= 0 {
		return 0
	}
	if intensity >= 1 {
		return bands - 1
	}
	b := int(intensity * float64(bands))
	if b >= bands {
		b = bands - 1
	}
	return b
}

// =============================================================================
// Serialization API
// =============================================================================

// MarshalHeatmap serializes a Heatmap to pretty-printed JSON bytes.
func MarshalHeatmap(h Heatmap) ([]byte, error) {
	return json.MarshalIndent(h, "", "  ")
}

// UnmarshalHeatmap deserializes JSON bytes into a Heatmap.
func UnmarshalHeatmap(data []byte) (Heatmap, error) {
	var h Heatmap
	if err := json.Unmarshal(data, &h); err != nil {
		return Heatmap{}, fmt.Errorf("unmarshal heatmap: %w", err)
	}
	if len(h.Characters) == 0 || len(h.Rows) != len(h.Characters) {
		return Heatmap{}, errors.New(errors.ErrCodeInvalidDocument, "heatmap rows must match characters")
	}
	return h, nil
}

// WriteHeatmapFile writes a Heatmap to a JSON file.
func WriteHeatmapFile(h Heatmap, path string) error {
	data, err := MarshalHeatmap(h)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadHeatmapFile reads a Heatmap from a JSON file.
func ReadHeatmapFile(path string) (Heatmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Heatmap{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalHeatmap(data)
}

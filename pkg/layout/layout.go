// Package layout computes flow arrangements for measured items.
//
// A flow arrangement places fixed-size boxes left to right, wrapping to a
// new line whenever the next box would overflow the available width - the
// same behavior as inline text wrapping, at the box level rather than the
// glyph level. It is the positioning engine behind the word-cloud view:
// callers measure their items (words, tags, swatches), run Arrange, and
// paint each item at its returned position.
//
// Arrange is a pure function: it holds no state between calls, always
// produces identical output for identical input, and is safe to call
// concurrently.
//
// # Usage
//
//	items := []layout.Size{{W: 50, H: 20}, {W: 60, H: 20}, {W: 60, H: 20}}
//	arr, err := layout.Arrange(items, layout.Options{MaxWidth: 100, Spacing: 10})
//	if err != nil {
//	    return err
//	}
//	for i, p := range arr.Positions {
//	    draw(items[i], p.X, p.Y)
//	}
package layout

import (
	"math"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/errors"
)

// Size is a measured width/height pair.
type Size struct {
	W float64 `json:"w" bson:"w"`
	H float64 `json:"h" bson:"h"`
}

// Point is an x/y position. The origin is the top-left corner of the
// arrangement; y grows downward.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Unbounded returns the max-width sentinel meaning "no wrap limit".
// With an unbounded width, Arrange produces exactly one line.
func Unbounded() float64 {
	return math.Inf(1)
}

// Options configures an arrangement.
type Options struct {
	// MaxWidth is the available line width. Must be positive; use
	// Unbounded() to disable wrapping entirely.
	MaxWidth float64

	// Spacing is the gap between adjacent items on a line and between
	// consecutive lines. Must be finite and non-negative.
	Spacing float64
}

// Arrangement is the result of a flow layout pass. Positions and Sizes
// have exactly the same length and index order as the input items.
type Arrangement struct {
	Positions []Point `json:"positions" bson:"positions"`
	Sizes     []Size  `json:"sizes" bson:"sizes"`

	// Width is the maximum right edge reached by any placed item.
	Width float64 `json:"width" bson:"width"`

	// Height is the bottom edge of the last line.
	Height float64 `json:"height" bson:"height"`
}

// Len returns the number of placed items.
func (a Arrangement) Len() int { return len(a.Positions) }

// Bounds returns the minimal size enclosing all placed items.
func (a Arrangement) Bounds() Size { return Size{W: a.Width, H: a.Height} }

// Arrange places items in input order using left-to-right, top-to-bottom
// flow wrapping and returns their positions plus the overall bounding size.
//
// A new line starts only when the current line already holds at least one
// item and the next item would overflow MaxWidth. The first item on a line
// is always placed, so an item wider than MaxWidth still lands at x = 0 of
// its own line rather than being rejected.
//
// Zero-area items are legal and occupy no footprint beyond spacing.
// Negative or NaN inputs are rejected with an INVALID_*-coded error;
// over the valid domain the computation has no failure path.
func Arrange(items []Size, opts Options) (Arrangement, error) {
	if err := validate(items, opts); err != nil {
		return Arrangement{}, err
	}

	arr := Arrangement{
		Positions: make([]Point, 0, len(items)),
		Sizes:     make([]Size, 0, len(items)),
	}
	if len(items) == 0 {
		return arr, nil
	}

	var (
		cx, cy     float64
		lineHeight float64
		maxRight   float64
	)

	for _, it := range items {
		// Wrap only when the line is non-empty, so oversized items
		// still make forward progress.
		if cx > 0 && cx+it.W > opts.MaxWidth {
			cx = 0
			cy += lineHeight + opts.Spacing
			lineHeight = 0
		}

		arr.Positions = append(arr.Positions, Point{X: cx, Y: cy})
		arr.Sizes = append(arr.Sizes, it)

		maxRight = math.Max(maxRight, cx+it.W)
		lineHeight = math.Max(lineHeight, it.H)
		cx += it.W + opts.Spacing
	}

	arr.Width = maxRight
	arr.Height = cy + lineHeight
	return arr, nil
}

// validate rejects malformed options and item sizes at the boundary,
// so the placement loop never sees NaN or negative values.
func validate(items []Size, opts Options) error {
	if math.IsNaN(opts.MaxWidth) {
		return errors.New(errors.ErrCodeInvalidWidth, "max width is NaN")
	}
	if opts.MaxWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidWidth, "max width must be positive, got %v", opts.MaxWidth)
	}
	if math.IsNaN(opts.Spacing) || math.IsInf(opts.Spacing, 0) {
		return errors.New(errors.ErrCodeInvalidSpacing, "spacing must be finite, got %v", opts.Spacing)
	}
	if opts.Spacing < 0 {
		return errors.New(errors.ErrCodeInvalidSpacing, "spacing must be non-negative, got %v", opts.Spacing)
	}
	for i, it := range items {
		if math.IsNaN(it.W) || math.IsInf(it.W, 0) || it.W < 0 {
			return errors.New(errors.ErrCodeInvalidSize, "item %d has invalid width %v", i, it.W)
		}
		if math.IsNaN(it.H) || math.IsInf(it.H, 0) || it.H < 0 {
			return errors.New(errors.ErrCodeInvalidSize, "item %d has invalid height %v", i, it.H)
		}
	}
	return nil
}

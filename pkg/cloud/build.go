package cloud

import (
	"unicode/utf8"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/errors"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/layout"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/text"
)

// Measurer converts a word at a font size into a box size.
//
// The surrounding application derives sizes from real font metrics; the
// default EstimateMeasurer approximates them from average glyph ratios,
// which is adequate for SVG output where the renderer scales text to fit.
type Measurer interface {
	Measure(word string, fontSize float64) layout.Size
}

// EstimateMeasurer estimates label sizes from per-glyph width and line
// height ratios relative to the font size.
type EstimateMeasurer struct {
	// CharWidthRatio is the average glyph advance as a fraction of the
	// font size. 0.6 matches common proportional faces.
	CharWidthRatio float64

	// LineHeightRatio is the label height as a fraction of the font size.
	LineHeightRatio float64
}

// Measure returns the estimated box for word at fontSize.
func (m EstimateMeasurer) Measure(word string, fontSize float64) layout.Size {
	return layout.Size{
		W: float64(utf8.RuneCountInString(word)) * fontSize * m.CharWidthRatio,
		H: fontSize * m.LineHeightRatio,
	}
}

// Default build parameters.
const (
	DefaultMaxWidth    = 800.0
	DefaultSpacing     = 8.0
	DefaultMinFontSize = 12.0
	DefaultMaxFontSize = 48.0
	DefaultMinOpacity  = 0.45
	DefaultMaxOpacity  = 1.0
)

// BuildOptions configures word-cloud construction.
type BuildOptions struct {
	// MaxWidth and Spacing are passed to the flow arranger.
	MaxWidth float64
	Spacing  float64

	// Font size range the frequency scale maps onto.
	MinFontSize float64
	MaxFontSize float64

	// Opacity range the frequency scale maps onto.
	MinOpacity float64
	MaxOpacity float64

	// Measurer sizes each label. Nil selects the default estimator.
	Measurer Measurer
}

// SetDefaults fills zero-valued fields with the package defaults.
func (o *BuildOptions) SetDefaults() {
	if o.MaxWidth == 0 {
		o.MaxWidth = DefaultMaxWidth
	}
	if o.Spacing == 0 {
		o.Spacing = DefaultSpacing
	}
	if o.MinFontSize == 0 {
		o.MinFontSize = DefaultMinFontSize
	}
	if o.MaxFontSize == 0 {
		o.MaxFontSize = DefaultMaxFontSize
	}
	if o.MinOpacity == 0 {
		o.MinOpacity = DefaultMinOpacity
	}
	if o.MaxOpacity == 0 {
		o.MaxOpacity = DefaultMaxOpacity
	}
	if o.Measurer == nil {
		o.Measurer = EstimateMeasurer{CharWidthRatio: 0.6, LineHeightRatio: 1.2}
	}
}

func (o BuildOptions) validate() error {
	if o.MinFontSize <= 0 || o.MaxFontSize <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "font sizes must be positive")
	}
	if o.MinFontSize > o.MaxFontSize {
		return errors.New(errors.ErrCodeInvalidInput,
			"min font size %v exceeds max %v", o.MinFontSize, o.MaxFontSize)
	}
	if o.MinOpacity < 0 || o.MaxOpacity > 1 || o.MinOpacity > o.MaxOpacity {
		return errors.New(errors.ErrCodeInvalidInput,
			"opacity range [%v, %v] must lie within [0, 1]", o.MinOpacity, o.MaxOpacity)
	}
	return nil
}

// Build scales, measures, and arranges ranked word counts into a Cloud.
// Words keep their input (rank) order, so the most frequent word is the
// first item placed. An empty input produces an empty Cloud.
func Build(words []text.WordCount, opts BuildOptions) (Cloud, error) {
	opts.SetDefaults()
	if err := opts.validate(); err != nil {
		return Cloud{}, err
	}

	c := Cloud{
		Items:    make([]Item, 0, len(words)),
		MaxWidth: opts.MaxWidth,
		Spacing:  opts.Spacing,
	}
	if len(words) == 0 {
		return c, nil
	}

	minCount, maxCount := words[0].Count, words[0].Count
	for _, w := range words {
		if w.Count < minCount {
			minCount = w.Count
		}
		if w.Count > maxCount {
			maxCount = w.Count
		}
	}

	sizes := make([]layout.Size, len(words))
	for i, w := range words {
		t := normalize(w.Count, minCount, maxCount)
		fontSize := opts.MinFontSize + t*(opts.MaxFontSize-opts.MinFontSize)
		box := opts.Measurer.Measure(w.Word, fontSize)

		sizes[i] = box
		c.Items = append(c.Items, Item{
			Word:     w.Word,
			Count:    w.Count,
			FontSize: fontSize,
			Opacity:  opts.MinOpacity + t*(opts.MaxOpacity-opts.MinOpacity),
			W:        box.W,
			H:        box.H,
		})
	}

	arr, err := layout.Arrange(sizes, layout.Options{
		MaxWidth: opts.MaxWidth,
		Spacing:  opts.Spacing,
	})
	if err != nil {
		return Cloud{}, err
	}

	for i := range c.Items {
		c.Items[i].X = arr.Positions[i].X
		c.Items[i].Y = arr.Positions[i].Y
	}
	c.Width = arr.Width
	c.Height = arr.Height
	return c, nil
}

// normalize maps count into [0, 1] over the observed range. When every
// word has the same count the scale degenerates; all words get full
// weight rather than dividing by zero.
func normalize(count, min, max int) float64 {
	if max == min {
		return 1.0
	}
	return float64(count-min) / float64(max-min)
}

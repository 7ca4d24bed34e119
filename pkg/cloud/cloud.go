// Package cloud builds word-cloud models from ranked word frequencies.
//
// A word cloud is produced in three steps: scale each word's frequency to
// a font size and opacity, measure the resulting label, and run the
// measured sizes through the flow arranger to obtain positions. The
// output is a serializable Cloud that rendering sinks consume; this
// package performs no drawing itself.
package cloud

import (
	"encoding/json"
	"fmt"
	"os"

	qperrors "github.com/londailey6937/QuillPilot-Native-sub006/pkg/errors"
)

// Item is a single placed word.
type Item struct {
	Word  string `json:"word" bson:"word"`
	Count int    `json:"count" bson:"count"`

	// Scaled presentation attributes.
	FontSize float64 `json:"font_size" bson:"font_size"`
	Opacity  float64 `json:"opacity" bson:"opacity"`

	// Placement from the flow arranger.
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
	W float64 `json:"w" bson:"w"`
	H float64 `json:"h" bson:"h"`
}

// Cloud is a complete word-cloud model: placed items plus the bounding
// frame that encloses them.
type Cloud struct {
	Items  []Item  `json:"items" bson:"items"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`

	// Options echoed for provenance.
	MaxWidth float64 `json:"max_width,omitempty" bson:"max_width,omitempty"`
	Spacing  float64 `json:"spacing,omitempty" bson:"spacing,omitempty"`
}

// =============================================================================
// Serialization API
// =============================================================================

// MarshalCloud serializes a Cloud to pretty-printed JSON bytes.
func MarshalCloud(c Cloud) ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// UnmarshalCloud deserializes JSON bytes into a Cloud.
func UnmarshalCloud(data []byte) (Cloud, error) {
	var c Cloud
	if err := json.Unmarshal(data, &c); err != nil {
		return Cloud{}, fmt.Errorf("unmarshal cloud: %w", err)
	}
	if len(c.Items) == 0 {
		return Cloud{}, qperrors.New(qperrors.ErrCodeInvalidDocument, "cloud must contain items")
	}
	return c, nil
}

// WriteCloudFile writes a Cloud to a JSON file.
func WriteCloudFile(c Cloud, path string) error {
	data, err := MarshalCloud(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadCloudFile reads a Cloud from a JSON file.
func ReadCloudFile(path string) (Cloud, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Cloud{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalCloud(data)
}

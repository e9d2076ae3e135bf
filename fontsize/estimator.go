// Package fontsize estimates point sizes and semantic text classes for
// OCR fragments from their bounding-box geometry.
//
// OCR providers report where text sits on the page but not how large it
// was rendered. The estimator converts a fragment's normalized box
// height into an approximate point size using a configurable
// calibration factor, then classifies the result into a semantic text
// type (body, heading, title, and so on). Estimation is a pure function
// of geometry; it is independent of reading-order analysis and may run
// before, after, or interleaved with it.
package fontsize

import (
	"math"

	"github.com/tsawler/relayout/model"
)

// TextType is the semantic size class derived from an estimated font size.
type TextType int

const (
	TypeSmall TextType = iota
	TypeBody
	TypeHeading
	TypeSubheading
	TypeTitle
	TypeLargeTitle
)

// String returns a string representation of the text type.
func (t TextType) String() string {
	switch t {
	case TypeSmall:
		return "small"
	case TypeBody:
		return "body"
	case TypeHeading:
		return "heading"
	case TypeSubheading:
		return "subheading"
	case TypeTitle:
		return "title"
	case TypeLargeTitle:
		return "large_title"
	default:
		return "unknown"
	}
}

// Classification holds the estimated font size and semantic class for
// one fragment.
type Classification struct {
	// FontSize is the estimated size in points, rounded to the nearest 0.5.
	FontSize float64

	// Type is the semantic class derived from FontSize.
	Type TextType
}

// Config holds configuration for font size estimation.
type Config struct {
	// BaseSize is the assumed body text size in points. The estimate is
	// never clamped below 70% of this value.
	// Default: 11.0
	BaseSize float64

	// MaxSize is the upper clamp for estimated sizes in points.
	// Default: 48.0
	MaxSize float64

	// CalibrationFactor converts normalized box height into points.
	// It depends on the scan resolution and document type, and is meant
	// to be tuned per deployment.
	// Default: 400.0
	CalibrationFactor float64
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		BaseSize:          11.0,
		MaxSize:           48.0,
		CalibrationFactor: 400.0,
	}
}

// Estimator estimates font sizes from fragment geometry.
type Estimator struct {
	config Config
}

// NewEstimator creates an estimator with default configuration.
func NewEstimator() *Estimator {
	return &Estimator{config: DefaultConfig()}
}

// NewEstimatorWithConfig creates an estimator with custom configuration.
func NewEstimatorWithConfig(config Config) *Estimator {
	return &Estimator{config: config}
}

// Estimate returns the estimated point size for a normalized box height.
// The result is clamped to [0.7*BaseSize, MaxSize] and rounded to the
// nearest half point. All operations are total: degenerate or inverted
// geometry (negative height) simply clamps to the minimum size.
func (e *Estimator) Estimate(height float64) float64 {
	estimated := height * e.config.CalibrationFactor

	minSize := e.config.BaseSize * 0.7
	if estimated < minSize {
		estimated = minSize
	}
	if estimated > e.config.MaxSize {
		estimated = e.config.MaxSize
	}

	return roundToHalf(estimated)
}

// Classify returns the full classification for a single fragment.
func (e *Estimator) Classify(fragment model.TextFragment) Classification {
	size := e.Estimate(fragment.Box.Height())
	return Classification{
		FontSize: size,
		Type:     ClassifySize(size),
	}
}

// ClassifyAll classifies each fragment independently. The result is
// aligned 1:1 with the input slice.
func (e *Estimator) ClassifyAll(fragments []model.TextFragment) []Classification {
	if len(fragments) == 0 {
		return nil
	}

	classifications := make([]Classification, len(fragments))
	for i, f := range fragments {
		classifications[i] = e.Classify(f)
	}
	return classifications
}

// ClassifySize maps a point size to its semantic text type.
func ClassifySize(fontSize float64) TextType {
	switch {
	case fontSize < 10.0:
		return TypeSmall
	case fontSize < 13.0:
		return TypeBody
	case fontSize < 18.0:
		return TypeHeading
	case fontSize < 24.0:
		return TypeSubheading
	case fontSize < 36.0:
		return TypeTitle
	default:
		return TypeLargeTitle
	}
}

// roundToHalf rounds to the nearest 0.5.
func roundToHalf(v float64) float64 {
	return math.Round(v*2) / 2
}

package relayout

import (
	"fmt"

	"github.com/tsawler/relayout/fontsize"
	"github.com/tsawler/relayout/layout"
	"github.com/tsawler/relayout/model"
)

// Engine provides a fluent interface for layout reconstruction.
// Each configuration method returns a new Engine instance, making it
// safe for concurrent use and allowing method chaining. A single
// document is processed per invocation; the whole run is an in-memory,
// CPU-bound transformation with no I/O, so independent documents can be
// reconstructed in parallel without coordination.
type Engine struct {
	// Parsed fragments (immutable after construction)
	fragments []model.TextFragment

	// Configuration
	options ReconstructOptions

	// Accumulated error (fail-fast, set only by FromJSON)
	err error

	// composeHook replaces the composition step when non-nil. Used by
	// tests to induce internal failures.
	composeHook func([]model.TextFragment) string
}

// Result bundles the three outputs of a full reconstruction run.
type Result struct {
	// Text is the reading-order text stream with column and page markers.
	Text string

	// Classifications holds per-fragment font size and text type,
	// aligned 1:1 with Fragments.
	Classifications []fontsize.Classification

	// Structure summarizes page and column counts for diagnostics.
	Structure layout.DocumentStructure
}

// clone creates a copy of the Engine. The fragment slice is shared;
// fragments are immutable so this is safe.
func (e *Engine) clone() *Engine {
	return &Engine{
		fragments:   e.fragments,
		options:     e.options,
		err:         e.err,
		composeHook: e.composeHook,
	}
}

// ============================================================================
// Configuration Methods (return new Engine instance)
// ============================================================================

// ColumnGap sets the column clustering threshold as a fraction of
// normalized page width. Fragments whose horizontal centers are further
// apart than this from the open column's first member start a new column.
//
// Example:
//
//	text, _, err := relayout.FromJSON(data).ColumnGap(0.25).Text()
func (e *Engine) ColumnGap(threshold float64) *Engine {
	newEng := e.clone()
	newEng.options.columnGap = threshold
	return newEng
}

// ParagraphGap sets the paragraph break threshold as a fraction of
// normalized page height.
//
// Example:
//
//	text, _, err := relayout.FromJSON(data).ParagraphGap(0.08).Text()
func (e *Engine) ParagraphGap(threshold float64) *Engine {
	newEng := e.clone()
	newEng.options.paragraphGap = threshold
	return newEng
}

// JoinParagraphs configures the engine to join fragments within a
// paragraph using spaces instead of newlines. This produces flowed text
// where paragraph breaks are preserved but line structure within a
// paragraph is collapsed.
//
// Example:
//
//	text, _, err := relayout.FromJSON(data).JoinParagraphs().Text()
func (e *Engine) JoinParagraphs() *Engine {
	newEng := e.clone()
	newEng.options.joinParagraphs = true
	return newEng
}

// CalibrationFactor sets the multiplier converting normalized box
// height into an estimated font size in points. It depends on scan
// resolution and document type and is meant to be tuned per deployment.
//
// Example:
//
//	result, _, err := relayout.FromJSON(data).CalibrationFactor(320).Result()
func (e *Engine) CalibrationFactor(factor float64) *Engine {
	newEng := e.clone()
	newEng.options.calibrationFactor = factor
	return newEng
}

// BaseFontSize sets the assumed body text size in points. Estimates are
// never clamped below 70% of this value.
func (e *Engine) BaseFontSize(points float64) *Engine {
	newEng := e.clone()
	newEng.options.baseFontSize = points
	return newEng
}

// MaxFontSize sets the upper clamp for estimated font sizes in points.
func (e *Engine) MaxFontSize(points float64) *Engine {
	newEng := e.clone()
	newEng.options.maxFontSize = points
	return newEng
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Text returns the reading-order text stream for the document.
//
// Returns the composed text, any warnings encountered, and an error if
// the input could not be decoded. Reconstruction itself never errors:
// if anything fails inside clustering, segmentation, or composition,
// the output degrades to fragment texts in original input order (no
// column or page markers) and a warning is recorded.
//
// Example:
//
//	text, warnings, err := relayout.FromJSON(data).Text()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", relayout.FormatWarnings(warnings))
//	}
func (e *Engine) Text() (string, []Warning, error) {
	if e.err != nil {
		return "", nil, e.err
	}
	text, warnings := e.composeText()
	return text, warnings, nil
}

// Classifications returns the per-fragment font size estimates and
// semantic text classes, aligned 1:1 with Fragments. Classification is
// a pure function of geometry and never fails.
//
// Example:
//
//	classes, _, err := relayout.FromJSON(data).Classifications()
func (e *Engine) Classifications() ([]fontsize.Classification, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	return e.estimator().ClassifyAll(e.fragments), nil, nil
}

// Structure returns page and column count metadata for diagnostics.
//
// Example:
//
//	structure, _, err := relayout.FromJSON(data).Structure()
func (e *Engine) Structure() (layout.DocumentStructure, []Warning, error) {
	if e.err != nil {
		return layout.DocumentStructure{}, nil, e.err
	}
	return layout.ExtractStructure(e.fragments, e.columnConfig()), nil, nil
}

// Result runs the full pipeline and returns text, classifications, and
// structure metadata together.
//
// Example:
//
//	result, warnings, err := relayout.FromJSON(data).Result()
func (e *Engine) Result() (*Result, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	text, warnings := e.composeText()
	return &Result{
		Text:            text,
		Classifications: e.estimator().ClassifyAll(e.fragments),
		Structure:       layout.ExtractStructure(e.fragments, e.columnConfig()),
	}, warnings, nil
}

// Fragments returns the parsed fragments the engine operates on.
//
// Example:
//
//	fragments, err := relayout.FromJSON(data).Fragments()
func (e *Engine) Fragments() ([]model.TextFragment, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.fragments, nil
}

// ============================================================================
// Internals
// ============================================================================

// composeText is the single degradation boundary of the pipeline. The
// layout stages are total functions, but if anything inside them does
// fail, the panic is converted into an input-order concatenation plus a
// warning instead of propagating to the caller.
func (e *Engine) composeText() (text string, warnings []Warning) {
	defer func() {
		if r := recover(); r != nil {
			text = layout.FallbackText(e.fragments)
			warnings = append(warnings, Warning{
				Code: WarnReconstructionFailed,
				Message: fmt.Sprintf(
					"layout reconstruction failed (%v); output degraded to input-order concatenation", r),
			})
		}
	}()

	if e.composeHook != nil {
		return e.composeHook(e.fragments), nil
	}

	composer := layout.NewComposerWithConfig(layout.ComposerConfig{
		ColumnConfig: e.columnConfig(),
		ParagraphConfig: layout.ParagraphConfig{
			GapThreshold:   e.options.paragraphGap,
			JoinWithSpaces: e.options.joinParagraphs,
		},
	})
	return composer.Compose(e.fragments), nil
}

func (e *Engine) columnConfig() layout.ColumnConfig {
	return layout.ColumnConfig{GapThreshold: e.options.columnGap}
}

func (e *Engine) estimator() *fontsize.Estimator {
	return fontsize.NewEstimatorWithConfig(fontsize.Config{
		BaseSize:          e.options.baseFontSize,
		MaxSize:           e.options.maxFontSize,
		CalibrationFactor: e.options.calibrationFactor,
	})
}

// Package relayout reconstructs the human reading order of OCR output
// and classifies each fragment's font size from its geometry.
//
// OCR providers return a flat list of text fragments, each carrying a
// page number and a normalized bounding box. relayout recovers the
// order a person would read them in (pages ascending, columns left to
// right, fragments top to bottom with paragraph breaks) and, separately,
// estimates a point size and semantic class for every fragment.
//
// Basic usage:
//
//	text, warnings, err := relayout.FromJSON(data).Text()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", relayout.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := relayout.FromRecords(records).
//	    CalibrationFactor(320).
//	    JoinParagraphs().
//	    Result()
//
// Reconstruction never fails: any unexpected internal failure degrades
// to a plain input-order concatenation and surfaces as a warning rather
// than an error. For advanced use the lower-level ingest, layout and
// fontsize packages are also available.
package relayout

import (
	"github.com/tsawler/relayout/ingest"
	"github.com/tsawler/relayout/model"
)

// FromRecords creates an Engine from raw OCR records. The records are
// parsed immediately: geometry defaults are resolved and empty or
// whitespace-only records are dropped.
//
// Example:
//
//	text, warnings, err := relayout.FromRecords(records).Text()
func FromRecords(records []ingest.RawRecord) *Engine {
	return &Engine{
		fragments: ingest.Parse(records),
		options:   defaultOptions(),
	}
}

// FromJSON creates an Engine from a JSON array of raw OCR records.
// A decode failure is reported by the terminal operation; it is the
// only error this package produces.
//
// Example:
//
//	text, warnings, err := relayout.FromJSON(data).Text()
func FromJSON(data []byte) *Engine {
	records, err := ingest.DecodeRecords(data)
	if err != nil {
		return &Engine{err: err, options: defaultOptions()}
	}
	return FromRecords(records)
}

// FromFragments creates an Engine from already-parsed fragments. This
// is useful when fragments come from an adapter such as the hocr or ocr
// packages, or when the caller built them directly.
//
// Example:
//
//	text, warnings, err := relayout.FromFragments(fragments).Text()
func FromFragments(fragments []model.TextFragment) *Engine {
	return &Engine{
		fragments: fragments,
		options:   defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	records := relayout.Must(ingest.DecodeRecords(data))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to a terminal operation and
// panics if the error is non-nil. It discards warnings and returns just
// the value. It is intended for use in scripts or tests where error
// handling would be cumbersome.
//
// Example:
//
//	text := relayout.MustText(relayout.FromJSON(data).Text())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

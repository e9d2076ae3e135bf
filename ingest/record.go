package ingest

import (
	"encoding/json"
	"fmt"
)

// RawRecord is one OCR result record as delivered by a provider.
// Every field beyond Text is optional; missing geometry is resolved to
// full-page defaults by Parse rather than treated as an error.
type RawRecord struct {
	// Text is the recognized text content.
	Text string `json:"text"`

	// Grounding holds the positional metadata, if the provider supplied any.
	Grounding *Grounding `json:"grounding,omitempty"`
}

// Grounding is the page number and bounding box attached to a record.
type Grounding struct {
	// Page is the zero-based page number. Nil means page 0.
	Page *int `json:"page,omitempty"`

	// Box is the normalized bounding box. Nil or partially-populated
	// boxes are filled with full-page defaults field by field.
	Box *Box `json:"box,omitempty"`
}

// Box is a possibly-partial normalized bounding box. Each edge is
// optional so that providers emitting sparse geometry can still be
// consumed; Parse fills absent edges with the full-page defaults
// (left 0, top 0, right 1, bottom 1).
type Box struct {
	Left   *float64 `json:"left,omitempty"`
	Top    *float64 `json:"top,omitempty"`
	Right  *float64 `json:"right,omitempty"`
	Bottom *float64 `json:"bottom,omitempty"`
}

// DecodeRecords decodes a JSON array of raw OCR records.
// This is the only operation in this package that can fail; everything
// downstream of a successful decode resolves malformed values to
// defaults instead of erroring.
func DecodeRecords(data []byte) ([]RawRecord, error) {
	var records []RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding OCR records: %w", err)
	}
	return records, nil
}

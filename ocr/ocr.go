//go:build ocr

// Package ocr adapts the Tesseract OCR engine to the relayout input
// format: it recognizes text in page images and emits raw OCR records
// with normalized bounding boxes, ready for ingest.Parse.
//
// This package wraps Tesseract via gosseract and requires Tesseract to
// be installed on the system, plus the "ocr" build tag:
//
//	go build -tags ocr
//
// On macOS, install Tesseract via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/relayout/ingest"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// RecognizeRecords performs OCR on one page image and returns a raw
// record per recognized text line, with bounding boxes normalized to
// the image dimensions. The page number is attached to every record so
// that records from multiple page images can be concatenated before
// parsing:
//
//	var records []ingest.RawRecord
//	for i, img := range pageImages {
//	    recs, err := client.RecognizeRecords(img, i)
//	    if err != nil {
//	        // handle error
//	    }
//	    records = append(records, recs...)
//	}
//	text, warnings, err := relayout.FromRecords(records).Text()
func (c *Client) RecognizeRecords(imageData []byte, page int) ([]ingest.RawRecord, error) {
	width, height, err := imageSize(imageData)
	if err != nil {
		return nil, fmt.Errorf("reading image dimensions: %w", err)
	}

	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	records := make([]ingest.RawRecord, 0, len(boxes))
	for _, b := range boxes {
		records = append(records, recordFromRect(b.Word, b.Box, page, width, height))
	}
	return records, nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract analyzes the page layout.
// See gosseract.PageSegMode constants for available modes.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}

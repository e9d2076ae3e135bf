// Package model provides the core value types shared across relayout:
// normalized bounding boxes and text fragments.
//
// All geometry uses normalized page coordinates: edges in [0,1] with the
// origin at the top-left of the page and Y increasing downward. This is
// the coordinate convention emitted by OCR providers and differs from
// the PDF convention (origin bottom-left, Y increasing upward).
//
// The types here are small, flat value types with no references back
// into the pipeline; they are safe to copy and to share across
// goroutines processing independent documents.
package model

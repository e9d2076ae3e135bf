// Package layout reconstructs human reading order from OCR text
// fragments.
//
// OCR providers return fragments in no guaranteed order. This package
// analyzes fragment geometry to recover the order a person would read
// the document in: pages in ascending order, columns left to right
// within a page, and fragments top to bottom within a column with
// paragraph breaks inserted on large vertical gaps.
//
// # Pipeline
//
// The stages run leaves-first over parsed fragments:
//
//   - GroupByPage partitions fragments into pages
//   - [ColumnDetector] splits a page into left-to-right columns
//   - [Segmenter] orders a column top-to-bottom and inserts paragraph breaks
//   - [Composer] concatenates columns and pages with break markers
//   - [ExtractStructure] summarizes page and column counts for diagnostics
//
// # Configuration
//
// Each stage has a config struct with a DefaultXxxConfig constructor:
//
//	detector := layout.NewColumnDetectorWithConfig(layout.ColumnConfig{
//	    GapThreshold: 0.25,
//	})
//
// All functions in this package are total: malformed geometry has been
// resolved to defaults upstream by the ingest package, and every stage
// produces output for any input it can receive. Degradation on
// unexpected failure is handled at the engine boundary in the root
// relayout package, not here.
package layout

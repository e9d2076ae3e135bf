// Package ingest normalizes raw OCR provider records into typed text
// fragments. All defaulting happens here, at the parse boundary: every
// fragment leaving this package carries a fully-populated page number
// and bounding box, so downstream layout analysis never deals with
// optional geometry.
package ingest

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/relayout/model"
)

// Parse converts raw OCR records into text fragments.
//
// Records with empty or whitespace-only text are dropped. Missing
// grounding data resolves to page 0 with a full-page bounding box;
// a partially-populated box is filled edge by edge with the full-page
// defaults. Parse never fails: every malformation resolves to a default.
//
// Text is normalized to Unicode NFC, since OCR backends emit mixed
// compositions for accented characters.
func Parse(records []RawRecord) []model.TextFragment {
	fragments := make([]model.TextFragment, 0, len(records))

	for _, rec := range records {
		if strings.TrimSpace(rec.Text) == "" {
			continue
		}

		fragments = append(fragments, model.TextFragment{
			Text: norm.NFC.String(rec.Text),
			Page: pageOf(rec.Grounding),
			Box:  boxOf(rec.Grounding),
		})
	}

	return fragments
}

// pageOf resolves the page number of a record, defaulting to 0.
func pageOf(g *Grounding) int {
	if g == nil || g.Page == nil {
		return 0
	}
	if *g.Page < 0 {
		return 0
	}
	return *g.Page
}

// boxOf resolves the bounding box of a record, filling missing edges
// with the full-page defaults.
func boxOf(g *Grounding) model.BBox {
	box := model.FullPage()
	if g == nil || g.Box == nil {
		return box
	}

	if g.Box.Left != nil {
		box.Left = *g.Box.Left
	}
	if g.Box.Top != nil {
		box.Top = *g.Box.Top
	}
	if g.Box.Right != nil {
		box.Right = *g.Box.Right
	}
	if g.Box.Bottom != nil {
		box.Bottom = *g.Box.Bottom
	}
	return box
}

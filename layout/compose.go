package layout

import (
	"strings"

	"github.com/tsawler/relayout/model"
)

// Markers used in composed output. A serializer downstream splits on
// these to re-create column and page structure.
const (
	// ColumnBreakMarker separates adjacent column blocks within a page.
	ColumnBreakMarker = "[Column Break]"

	// PageBreakMarker separates adjacent page blocks.
	PageBreakMarker = "--- Page Break ---"
)

// ComposerConfig holds configuration for reading-order composition.
type ComposerConfig struct {
	// ColumnConfig configures column clustering within each page.
	ColumnConfig ColumnConfig

	// ParagraphConfig configures paragraph segmentation within each column.
	ParagraphConfig ParagraphConfig
}

// DefaultComposerConfig returns sensible default configuration.
func DefaultComposerConfig() ComposerConfig {
	return ComposerConfig{
		ColumnConfig:    DefaultColumnConfig(),
		ParagraphConfig: DefaultParagraphConfig(),
	}
}

// Composer assembles parsed fragments into a single reading-order text
// stream: pages ascending, columns left to right within a page, and
// fragments top to bottom within a column.
type Composer struct {
	columns   *ColumnDetector
	segmenter *Segmenter
}

// NewComposer creates a composer with default configuration.
func NewComposer() *Composer {
	return NewComposerWithConfig(DefaultComposerConfig())
}

// NewComposerWithConfig creates a composer with custom configuration.
func NewComposerWithConfig(config ComposerConfig) *Composer {
	return &Composer{
		columns:   NewColumnDetectorWithConfig(config.ColumnConfig),
		segmenter: NewSegmenterWithConfig(config.ParagraphConfig),
	}
}

// Compose returns the full reading-order text for the fragments.
//
// Adjacent column blocks within a page are separated by the literal
// ColumnBreakMarker; a single-column page contains no such marker.
// Adjacent pages are separated by the literal PageBreakMarker, so an
// N-page document contains exactly N-1 page markers. An empty fragment
// list produces an empty string.
func (c *Composer) Compose(fragments []model.TextFragment) string {
	pages := GroupByPage(fragments)
	if len(pages) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(pages))
	for _, page := range pages {
		blocks = append(blocks, c.composePage(page))
	}

	return strings.Join(blocks, "\n\n"+PageBreakMarker+"\n\n")
}

// composePage assembles one page's columns left to right.
func (c *Composer) composePage(page PageFragments) string {
	columns := c.columns.Detect(page.Fragments)

	blocks := make([]string, 0, len(columns))
	for _, col := range columns {
		blocks = append(blocks, c.segmenter.ColumnText(col))
	}

	return strings.Join(blocks, "\n\n"+ColumnBreakMarker+"\n\n")
}

// FallbackText is the degraded rendition used when reconstruction
// fails: fragment texts in original input order, one per line, with no
// column or page markers. It is total for any input.
func FallbackText(fragments []model.TextFragment) string {
	texts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		texts = append(texts, f.Text)
	}
	return strings.Join(texts, "\n")
}

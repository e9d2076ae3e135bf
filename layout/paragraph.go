package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/relayout/model"
)

// ParagraphConfig holds configuration for paragraph segmentation.
type ParagraphConfig struct {
	// GapThreshold is the vertical gap, as a fraction of normalized
	// page height, between one fragment's bottom edge and the next
	// fragment's top edge that triggers a paragraph break.
	// Default: 0.05 (5% of page height)
	GapThreshold float64

	// JoinWithSpaces joins fragments within a paragraph with single
	// spaces instead of line breaks, producing flowed text. Paragraph
	// breaks are preserved either way.
	// Default: false (one fragment per line)
	JoinWithSpaces bool
}

// DefaultParagraphConfig returns sensible default configuration.
func DefaultParagraphConfig() ParagraphConfig {
	return ParagraphConfig{
		GapThreshold:   0.05,
		JoinWithSpaces: false,
	}
}

// Segmenter orders a column's fragments top to bottom and assembles
// them into a text block with paragraph breaks on large vertical gaps.
type Segmenter struct {
	config ParagraphConfig
}

// NewSegmenter creates a segmenter with default configuration.
func NewSegmenter() *Segmenter {
	return &Segmenter{config: DefaultParagraphConfig()}
}

// NewSegmenterWithConfig creates a segmenter with custom configuration.
func NewSegmenterWithConfig(config ParagraphConfig) *Segmenter {
	return &Segmenter{config: config}
}

// ColumnText returns the reading-order text block for one column.
//
// Fragments are stable-sorted by top edge (ties keep input order) and
// joined by line breaks. Whenever the gap between a fragment's top edge
// and the previous fragment's bottom edge exceeds the configured
// threshold, a blank line is inserted before it to mark a paragraph
// break. Empty columns produce an empty string.
func (s *Segmenter) ColumnText(col Column) string {
	if len(col.Fragments) == 0 {
		return ""
	}

	sorted := make([]model.TextFragment, len(col.Fragments))
	copy(sorted, col.Fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Box.Top < sorted[j].Box.Top
	})

	joiner := "\n"
	if s.config.JoinWithSpaces {
		joiner = " "
	}

	var sb strings.Builder
	for i, f := range sorted {
		if i > 0 {
			if f.Box.Top-sorted[i-1].Box.Bottom > s.config.GapThreshold {
				sb.WriteString("\n\n")
			} else {
				sb.WriteString(joiner)
			}
		}
		sb.WriteString(f.Text)
	}

	return sb.String()
}

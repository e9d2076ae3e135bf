package layout

import (
	"sort"

	"github.com/tsawler/relayout/model"
)

// Column represents a detected text column on a page.
type Column struct {
	// BBox is the bounding box of the column's content.
	BBox model.BBox

	// Fragments contained in this column, in cluster order.
	Fragments []model.TextFragment

	// Index of the column (0-based, left to right).
	Index int
}

// ColumnConfig holds configuration for column clustering.
type ColumnConfig struct {
	// GapThreshold is the maximum horizontal distance, as a fraction of
	// normalized page width, between a fragment's center and the center
	// of the first fragment in the open column. A fragment further away
	// starts a new column.
	// Default: 0.2 (20% of page width)
	GapThreshold float64
}

// DefaultColumnConfig returns sensible default configuration.
func DefaultColumnConfig() ColumnConfig {
	return ColumnConfig{
		GapThreshold: 0.2,
	}
}

// ColumnDetector clusters a page's fragments into left-to-right columns
// by horizontal position.
//
// This is a single-pass 1-D threshold clustering, not a general
// clustering algorithm: fragments are stable-sorted by horizontal
// center and walked once, opening a new column whenever the distance to
// the open column's first member exceeds the gap threshold. Columns are
// never re-merged once split.
type ColumnDetector struct {
	config ColumnConfig
}

// NewColumnDetector creates a column detector with default configuration.
func NewColumnDetector() *ColumnDetector {
	return &ColumnDetector{config: DefaultColumnConfig()}
}

// NewColumnDetectorWithConfig creates a column detector with custom configuration.
func NewColumnDetectorWithConfig(config ColumnConfig) *ColumnDetector {
	return &ColumnDetector{config: config}
}

// Detect clusters one page's fragments into columns. A page whose
// fragments all sit within the gap threshold yields exactly one column.
// Empty input yields no columns. Ties in horizontal position keep the
// original input order (stable sort), so identical input always
// produces identical output.
func (d *ColumnDetector) Detect(fragments []model.TextFragment) []Column {
	if len(fragments) == 0 {
		return nil
	}

	sorted := make([]model.TextFragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Box.CenterX() < sorted[j].Box.CenterX()
	})

	var columns []Column
	anchor := sorted[0].Box.CenterX()
	current := []model.TextFragment{sorted[0]}

	for _, f := range sorted[1:] {
		if f.Box.CenterX()-anchor > d.config.GapThreshold {
			columns = append(columns, makeColumn(current, len(columns)))
			anchor = f.Box.CenterX()
			current = []model.TextFragment{f}
			continue
		}
		current = append(current, f)
	}
	columns = append(columns, makeColumn(current, len(columns)))

	return columns
}

// makeColumn builds a Column from clustered fragments.
func makeColumn(fragments []model.TextFragment, index int) Column {
	return Column{
		BBox:      model.FragmentsBBox(fragments),
		Fragments: fragments,
		Index:     index,
	}
}

package layout

import "github.com/tsawler/relayout/model"

// PageStructure summarizes the detected layout of one page.
type PageStructure struct {
	// Chunks is the number of fragments on the page.
	Chunks int `json:"chunks"`

	// Columns is the number of detected columns.
	Columns int `json:"columns"`

	// MultiColumn is true when more than one column was detected.
	MultiColumn bool `json:"has_multi_column"`
}

// DocumentStructure summarizes page and column counts for a document.
// It is purely diagnostic: callers use it to inspect what the
// reconstruction saw, and nothing in the composition path consumes it.
type DocumentStructure struct {
	// TotalPages is the number of distinct pages with fragments.
	TotalPages int `json:"total_pages"`

	// TotalChunks is the total fragment count after parsing.
	TotalChunks int `json:"total_chunks"`

	// Pages maps page number to its per-page summary.
	Pages map[int]PageStructure `json:"pages"`
}

// ExtractStructure computes document structure metadata from parsed
// fragments by re-running column detection per page. Empty input yields
// empty metadata, not an error.
func ExtractStructure(fragments []model.TextFragment, config ColumnConfig) DocumentStructure {
	structure := DocumentStructure{
		TotalChunks: len(fragments),
		Pages:       make(map[int]PageStructure),
	}

	detector := NewColumnDetectorWithConfig(config)
	pages := GroupByPage(fragments)
	structure.TotalPages = len(pages)

	for _, page := range pages {
		columns := detector.Detect(page.Fragments)
		structure.Pages[page.Page] = PageStructure{
			Chunks:      len(page.Fragments),
			Columns:     len(columns),
			MultiColumn: len(columns) > 1,
		}
	}

	return structure
}

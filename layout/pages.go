package layout

import (
	"sort"

	"github.com/tsawler/relayout/model"
)

// PageFragments holds the fragments belonging to one page, in their
// original input order.
type PageFragments struct {
	// Page is the zero-based page number.
	Page int

	// Fragments on this page, input order preserved.
	Fragments []model.TextFragment
}

// GroupByPage partitions fragments into pages, ascending by page
// number. Within a page the original input order is preserved. Empty
// input yields an empty (nil) result, not an error.
func GroupByPage(fragments []model.TextFragment) []PageFragments {
	if len(fragments) == 0 {
		return nil
	}

	byPage := make(map[int][]model.TextFragment)
	for _, f := range fragments {
		byPage[f.Page] = append(byPage[f.Page], f)
	}

	numbers := make([]int, 0, len(byPage))
	for n := range byPage {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	pages := make([]PageFragments, 0, len(numbers))
	for _, n := range numbers {
		pages = append(pages, PageFragments{Page: n, Fragments: byPage[n]})
	}
	return pages
}

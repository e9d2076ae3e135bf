package model

// TextFragment represents a single piece of OCR text with its position.
// Fragments are immutable once parsed: the ingest package creates them
// from raw provider records and no downstream component mutates them.
type TextFragment struct {
	// Text is the fragment content. Always non-empty after trimming;
	// whitespace-only records are dropped at the parse boundary.
	Text string

	// Page is the zero-based page number the fragment appears on.
	Page int

	// Box is the fragment's bounding box in normalized page coordinates.
	Box BBox
}

// FragmentsBBox returns the bounding box covering all fragments.
// Returns the zero BBox for an empty slice.
func FragmentsBBox(fragments []TextFragment) BBox {
	if len(fragments) == 0 {
		return BBox{}
	}

	bbox := fragments[0].Box
	for _, f := range fragments[1:] {
		bbox = bbox.Union(f.Box)
	}
	return bbox
}

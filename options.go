package relayout

// ReconstructOptions holds configuration for a reconstruction run.
type ReconstructOptions struct {
	// Column clustering threshold (fraction of page width)
	columnGap float64

	// Paragraph break threshold (fraction of page height)
	paragraphGap float64

	// Join fragments within a paragraph with spaces instead of newlines
	joinParagraphs bool

	// Font estimation parameters
	baseFontSize      float64
	maxFontSize       float64
	calibrationFactor float64
}

// defaultOptions returns the default reconstruction options.
func defaultOptions() ReconstructOptions {
	return ReconstructOptions{
		columnGap:         0.2,
		paragraphGap:      0.05,
		joinParagraphs:    false,
		baseFontSize:      11.0,
		maxFontSize:       48.0,
		calibrationFactor: 400.0,
	}
}

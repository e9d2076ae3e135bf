package ocr

import (
	"bytes"
	"fmt"
	"image"

	// Register decoders for the image formats scanners commonly produce.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/relayout/ingest"
)

// imageSize returns the pixel dimensions of encoded image data without
// decoding the full image.
func imageSize(data []byte) (width, height int, err error) {
	config, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("decoding image config: %w", err)
	}
	return config.Width, config.Height, nil
}

// recordFromRect converts one recognized text region into a raw record,
// normalizing its pixel rectangle against the image dimensions. A
// degenerate image size yields a record without a box; the geometry
// defaults resolve downstream in ingest.Parse.
func recordFromRect(text string, rect image.Rectangle, page, width, height int) ingest.RawRecord {
	p := page
	record := ingest.RawRecord{
		Text:      text,
		Grounding: &ingest.Grounding{Page: &p},
	}

	if width <= 0 || height <= 0 {
		return record
	}

	left := float64(rect.Min.X) / float64(width)
	top := float64(rect.Min.Y) / float64(height)
	right := float64(rect.Max.X) / float64(width)
	bottom := float64(rect.Max.Y) / float64(height)

	record.Grounding.Box = &ingest.Box{
		Left:   &left,
		Top:    &top,
		Right:  &right,
		Bottom: &bottom,
	}
	return record
}

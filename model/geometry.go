package model

// BBox represents a bounding box in normalized page coordinates.
// All four edges lie in [0,1], with the origin at the top-left of the
// page and Y increasing downward (the convention used by OCR providers,
// as opposed to the PDF convention where Y increases upward).
//
// Upstream producers do not strictly validate geometry, so a BBox may be
// inverted (Left > Right or Top > Bottom) or degenerate. Derived values
// are computed as-is and may be negative; no method panics.
type BBox struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// FullPage returns the bounding box covering an entire page.
// It is the default geometry for records with missing grounding data.
func FullPage() BBox {
	return BBox{Left: 0, Top: 0, Right: 1, Bottom: 1}
}

// Width returns the horizontal extent of the box (Right - Left).
func (b BBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box (Bottom - Top).
func (b BBox) Height() float64 {
	return b.Bottom - b.Top
}

// CenterX returns the horizontal center of the box.
func (b BBox) CenterX() float64 {
	return (b.Left + b.Right) / 2
}

// CenterY returns the vertical center of the box.
func (b BBox) CenterY() float64 {
	return (b.Top + b.Bottom) / 2
}

// Center returns the center point of the box.
func (b BBox) Center() Point {
	return Point{X: b.CenterX(), Y: b.CenterY()}
}

// Contains checks if a point is inside the bounding box.
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right &&
		p.Y >= b.Top && p.Y <= b.Bottom
}

// Union returns the smallest box covering both boxes.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		Left:   minFloat(b.Left, other.Left),
		Top:    minFloat(b.Top, other.Top),
		Right:  maxFloat(b.Right, other.Right),
		Bottom: maxFloat(b.Bottom, other.Bottom),
	}
}

// IsValid returns true if the box has positive width and height.
func (b BBox) IsValid() bool {
	return b.Width() > 0 && b.Height() > 0
}

// Point represents a 2D point in normalized page coordinates.
type Point struct {
	X, Y float64
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

package model

import (
	"math"
	"testing"
)

func TestBBox_Derived(t *testing.T) {
	b := BBox{Left: 0.1, Top: 0.2, Right: 0.5, Bottom: 0.3}

	if got := b.Width(); math.Abs(got-0.4) > 1e-9 {
		t.Errorf("Width = %v, want 0.4", got)
	}
	if got := b.Height(); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("Height = %v, want 0.1", got)
	}
	if got := b.CenterX(); math.Abs(got-0.3) > 1e-9 {
		t.Errorf("CenterX = %v, want 0.3", got)
	}
	if got := b.CenterY(); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("CenterY = %v, want 0.25", got)
	}
}

func TestBBox_InvertedDoesNotPanic(t *testing.T) {
	// Upstream geometry is not validated; inverted boxes must be tolerated.
	b := BBox{Left: 0.8, Top: 0.9, Right: 0.2, Bottom: 0.1}

	if got := b.Width(); got >= 0 {
		t.Errorf("expected negative width for inverted box, got %v", got)
	}
	if got := b.Height(); got >= 0 {
		t.Errorf("expected negative height for inverted box, got %v", got)
	}
	if b.IsValid() {
		t.Error("inverted box should not be valid")
	}
	// Center is still well-defined
	if got := b.CenterX(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("CenterX = %v, want 0.5", got)
	}
}

func TestFullPage(t *testing.T) {
	b := FullPage()

	want := BBox{Left: 0, Top: 0, Right: 1, Bottom: 1}
	if b != want {
		t.Errorf("FullPage() = %+v, want %+v", b, want)
	}
	if !b.IsValid() {
		t.Error("full-page box should be valid")
	}
}

func TestBBox_Union(t *testing.T) {
	a := BBox{Left: 0.1, Top: 0.1, Right: 0.3, Bottom: 0.2}
	b := BBox{Left: 0.5, Top: 0.05, Right: 0.9, Bottom: 0.4}

	u := a.Union(b)
	want := BBox{Left: 0.1, Top: 0.05, Right: 0.9, Bottom: 0.4}
	if u != want {
		t.Errorf("Union = %+v, want %+v", u, want)
	}
}

func TestBBox_Contains(t *testing.T) {
	b := BBox{Left: 0.2, Top: 0.2, Right: 0.6, Bottom: 0.5}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{X: 0.4, Y: 0.35}, true},
		{"edge", Point{X: 0.2, Y: 0.2}, true},
		{"outside left", Point{X: 0.1, Y: 0.35}, false},
		{"outside below", Point{X: 0.4, Y: 0.6}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestFragmentsBBox(t *testing.T) {
	fragments := []TextFragment{
		{Text: "a", Box: BBox{Left: 0.1, Top: 0.1, Right: 0.4, Bottom: 0.15}},
		{Text: "b", Box: BBox{Left: 0.5, Top: 0.3, Right: 0.9, Bottom: 0.35}},
	}

	bbox := FragmentsBBox(fragments)
	want := BBox{Left: 0.1, Top: 0.1, Right: 0.9, Bottom: 0.35}
	if bbox != want {
		t.Errorf("FragmentsBBox = %+v, want %+v", bbox, want)
	}

	if got := FragmentsBBox(nil); got != (BBox{}) {
		t.Errorf("FragmentsBBox(nil) = %+v, want zero box", got)
	}
}

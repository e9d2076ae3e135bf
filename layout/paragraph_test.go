package layout

import (
	"strings"
	"testing"

	"github.com/tsawler/relayout/model"
)

func columnOf(fragments ...model.TextFragment) Column {
	return Column{
		BBox:      model.FragmentsBBox(fragments),
		Fragments: fragments,
	}
}

func TestSegmenter_EmptyColumn(t *testing.T) {
	seg := NewSegmenter()

	if got := seg.ColumnText(Column{}); got != "" {
		t.Errorf("expected empty string for empty column, got %q", got)
	}
}

func TestSegmenter_OrdersTopToBottom(t *testing.T) {
	seg := NewSegmenter()

	// Input order is bottom-up; output must be top-down
	col := columnOf(
		makeFragment(0, 0.1, 0.30, 0.9, 0.33, "third line"),
		makeFragment(0, 0.1, 0.10, 0.9, 0.13, "first line"),
		makeFragment(0, 0.1, 0.14, 0.9, 0.17, "second line"),
	)

	got := seg.ColumnText(col)
	want := "first line\nsecond line\n\nthird line"
	if got != want {
		t.Errorf("ColumnText = %q, want %q", got, want)
	}
}

func TestSegmenter_ParagraphBreakOnLargeGap(t *testing.T) {
	seg := NewSegmenter()

	// Gap 0.40 - 0.13 = 0.27 > 0.05: paragraph break expected
	col := columnOf(
		makeFragment(0, 0.1, 0.10, 0.9, 0.13, "end of first paragraph"),
		makeFragment(0, 0.1, 0.40, 0.9, 0.43, "start of second paragraph"),
	)

	got := seg.ColumnText(col)
	want := "end of first paragraph\n\nstart of second paragraph"
	if got != want {
		t.Errorf("ColumnText = %q, want %q", got, want)
	}
}

func TestSegmenter_NoBreakOnSmallGap(t *testing.T) {
	seg := NewSegmenter()

	// Fragment tops at 0.10 and 0.12 with the first bottom at 0.115:
	// gap 0.005 < 0.05, no blank line
	col := columnOf(
		makeFragment(0, 0.1, 0.10, 0.9, 0.115, "line one"),
		makeFragment(0, 0.1, 0.12, 0.9, 0.135, "line two"),
	)

	got := seg.ColumnText(col)
	want := "line one\nline two"
	if got != want {
		t.Errorf("ColumnText = %q, want %q", got, want)
	}
}

func TestSegmenter_StableTieBreak(t *testing.T) {
	seg := NewSegmenter()

	// Same top edge: input order preserved
	col := columnOf(
		makeFragment(0, 0.1, 0.10, 0.4, 0.13, "alpha"),
		makeFragment(0, 0.5, 0.10, 0.9, 0.13, "beta"),
	)

	got := seg.ColumnText(col)
	if got != "alpha\nbeta" {
		t.Errorf("ColumnText = %q, want %q", got, "alpha\nbeta")
	}
}

func TestSegmenter_JoinWithSpaces(t *testing.T) {
	seg := NewSegmenterWithConfig(ParagraphConfig{
		GapThreshold:   0.05,
		JoinWithSpaces: true,
	})

	col := columnOf(
		makeFragment(0, 0.1, 0.10, 0.9, 0.13, "flowed text"),
		makeFragment(0, 0.1, 0.14, 0.9, 0.17, "continues on"),
		makeFragment(0, 0.1, 0.40, 0.9, 0.43, "new paragraph"),
	)

	got := seg.ColumnText(col)
	want := "flowed text continues on\n\nnew paragraph"
	if got != want {
		t.Errorf("ColumnText = %q, want %q", got, want)
	}
}

func TestSegmenter_InvertedBoxDoesNotPanic(t *testing.T) {
	seg := NewSegmenter()

	// Inverted vertical geometry must be tolerated, not crash
	col := columnOf(
		makeFragment(0, 0.1, 0.50, 0.9, 0.40, "inverted"),
		makeFragment(0, 0.1, 0.10, 0.9, 0.13, "normal"),
	)

	got := seg.ColumnText(col)
	if !strings.Contains(got, "inverted") || !strings.Contains(got, "normal") {
		t.Errorf("expected both fragments present, got %q", got)
	}
}

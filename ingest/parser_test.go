package ingest

import (
	"testing"

	"github.com/tsawler/relayout/model"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestParse_MissingGrounding(t *testing.T) {
	records := []RawRecord{
		{Text: "orphan fragment"},
	}

	fragments := Parse(records)

	if len(fragments) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(fragments))
	}
	if fragments[0].Page != 0 {
		t.Errorf("expected page 0, got %d", fragments[0].Page)
	}
	if fragments[0].Box != model.FullPage() {
		t.Errorf("expected full-page box, got %+v", fragments[0].Box)
	}
}

func TestParse_PartialBox(t *testing.T) {
	records := []RawRecord{
		{
			Text: "partial geometry",
			Grounding: &Grounding{
				Page: intPtr(2),
				Box: &Box{
					Left: floatPtr(0.25),
					Top:  floatPtr(0.5),
					// Right and Bottom absent
				},
			},
		},
	}

	fragments := Parse(records)

	if len(fragments) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(fragments))
	}

	want := model.BBox{Left: 0.25, Top: 0.5, Right: 1, Bottom: 1}
	if fragments[0].Box != want {
		t.Errorf("box = %+v, want %+v", fragments[0].Box, want)
	}
	if fragments[0].Page != 2 {
		t.Errorf("page = %d, want 2", fragments[0].Page)
	}
}

func TestParse_GroundingWithoutBox(t *testing.T) {
	records := []RawRecord{
		{Text: "page only", Grounding: &Grounding{Page: intPtr(3)}},
	}

	fragments := Parse(records)

	if len(fragments) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(fragments))
	}
	if fragments[0].Page != 3 {
		t.Errorf("page = %d, want 3", fragments[0].Page)
	}
	if fragments[0].Box != model.FullPage() {
		t.Errorf("expected full-page box, got %+v", fragments[0].Box)
	}
}

func TestParse_DropsEmptyText(t *testing.T) {
	records := []RawRecord{
		{Text: "keep me"},
		{Text: ""},
		{Text: "   \t\n  "},
		{Text: "also kept"},
	}

	fragments := Parse(records)

	if len(fragments) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(fragments))
	}
	if fragments[0].Text != "keep me" || fragments[1].Text != "also kept" {
		t.Errorf("unexpected fragments: %q, %q", fragments[0].Text, fragments[1].Text)
	}
}

func TestParse_NegativePageDefaultsToZero(t *testing.T) {
	records := []RawRecord{
		{Text: "bad page", Grounding: &Grounding{Page: intPtr(-4)}},
	}

	fragments := Parse(records)

	if len(fragments) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(fragments))
	}
	if fragments[0].Page != 0 {
		t.Errorf("page = %d, want 0", fragments[0].Page)
	}
}

func TestParse_NormalizesToNFC(t *testing.T) {
	// "é" as 'e' + combining acute accent (NFD)
	records := []RawRecord{
		{Text: "café"},
	}

	fragments := Parse(records)

	if len(fragments) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(fragments))
	}
	if fragments[0].Text != "café" {
		t.Errorf("expected NFC-normalized text, got %q", fragments[0].Text)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	if got := Parse(nil); len(got) != 0 {
		t.Errorf("expected no fragments for nil input, got %d", len(got))
	}
	if got := Parse([]RawRecord{}); len(got) != 0 {
		t.Errorf("expected no fragments for empty input, got %d", len(got))
	}
}

func TestDecodeRecords(t *testing.T) {
	data := []byte(`[
		{"text": "Title", "grounding": {"page": 0, "box": {"left": 0.1, "top": 0.05, "right": 0.9, "bottom": 0.1}}},
		{"text": "No grounding"},
		{"text": "Sparse box", "grounding": {"page": 1, "box": {"top": 0.4}}}
	]`)

	records, err := DecodeRecords(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	if records[0].Grounding == nil || records[0].Grounding.Box == nil {
		t.Fatal("expected full grounding on first record")
	}
	if *records[0].Grounding.Box.Right != 0.9 {
		t.Errorf("right = %v, want 0.9", *records[0].Grounding.Box.Right)
	}
	if records[1].Grounding != nil {
		t.Error("expected nil grounding on second record")
	}
	if records[2].Grounding.Box.Left != nil {
		t.Error("expected nil left edge on sparse box")
	}
}

func TestDecodeRecords_InvalidJSON(t *testing.T) {
	_, err := DecodeRecords([]byte(`{"not": "an array"`))
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

// Package hocr parses hOCR documents into raw OCR records.
//
// hOCR is an HTML-based interchange format for OCR results, emitted by
// engines such as Tesseract. Pages carry the class "ocr_page", text
// lines "ocr_line", and words "ocrx_word"; positional data lives in the
// title attribute as "bbox x0 y0 x1 y1" in pixel coordinates.
//
// The reader extracts one record per text line, normalizing pixel
// coordinates against the page bounding box so the output plugs
// directly into the ingest parser:
//
//	records, err := hocr.Parse(file)
//	if err != nil {
//	    // handle error
//	}
//	text, warnings, err := relayout.FromRecords(records).Text()
package hocr

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/relayout/ingest"
)

// Parse reads an hOCR document and returns one raw record per text
// line, with bounding boxes normalized to the page dimensions. Lines
// without positional data are still emitted; their geometry defaults
// are resolved later by ingest.Parse.
func Parse(r io.Reader) ([]ingest.RawRecord, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing hOCR HTML: %w", err)
	}

	var records []ingest.RawRecord
	pageIndex := 0

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocr_page") {
			records = append(records, pageRecords(n, pageIndex)...)
			pageIndex++
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return records, nil
}

// ParseBytes parses hOCR data from a byte slice.
func ParseBytes(data []byte) ([]ingest.RawRecord, error) {
	return Parse(bytes.NewReader(data))
}

// pageRecords extracts line records from one ocr_page element.
func pageRecords(page *html.Node, pageIndex int) []ingest.RawRecord {
	pageBox, hasPageBox := parseBBox(attrValue(page, "title"))

	var records []ingest.RawRecord

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocr_line") {
			records = append(records, lineRecord(n, pageIndex, pageBox, hasPageBox))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := page.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}

	return records
}

// lineRecord builds a raw record from one ocr_line element.
func lineRecord(line *html.Node, pageIndex int, pageBox pixelBox, hasPageBox bool) ingest.RawRecord {
	page := pageIndex
	record := ingest.RawRecord{
		Text:      lineText(line),
		Grounding: &ingest.Grounding{Page: &page},
	}

	lineBox, ok := parseBBox(attrValue(line, "title"))
	if !ok || !hasPageBox || pageBox.width() <= 0 || pageBox.height() <= 0 {
		// No usable geometry; ingest.Parse fills full-page defaults
		return record
	}

	left := float64(lineBox.x0-pageBox.x0) / pageBox.width()
	top := float64(lineBox.y0-pageBox.y0) / pageBox.height()
	right := float64(lineBox.x1-pageBox.x0) / pageBox.width()
	bottom := float64(lineBox.y1-pageBox.y0) / pageBox.height()

	record.Grounding.Box = &ingest.Box{
		Left:   &left,
		Top:    &top,
		Right:  &right,
		Bottom: &bottom,
	}
	return record
}

// lineText assembles the text of a line, joining word elements with
// single spaces.
func lineText(line *html.Node) string {
	var words []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocrx_word") {
			if w := strings.TrimSpace(textContent(n)); w != "" {
				words = append(words, w)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(line)

	if len(words) == 0 {
		// Some producers put bare text in the line element
		return strings.TrimSpace(textContent(line))
	}
	return strings.Join(words, " ")
}

// pixelBox is an hOCR bounding box in pixel coordinates.
type pixelBox struct {
	x0, y0, x1, y1 int
}

func (b pixelBox) width() float64  { return float64(b.x1 - b.x0) }
func (b pixelBox) height() float64 { return float64(b.y1 - b.y0) }

// parseBBox extracts the "bbox x0 y0 x1 y1" property from an hOCR
// title attribute. Title attributes hold semicolon-separated
// properties, e.g. "bbox 105 66 823 113; baseline 0.015 -18".
func parseBBox(title string) (pixelBox, bool) {
	for _, prop := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(prop))
		if len(fields) != 5 || fields[0] != "bbox" {
			continue
		}

		coords := make([]int, 4)
		ok := true
		for i, f := range fields[1:] {
			v, err := strconv.Atoi(f)
			if err != nil {
				ok = false
				break
			}
			coords[i] = v
		}
		if !ok {
			continue
		}

		return pixelBox{x0: coords[0], y0: coords[1], x1: coords[2], y1: coords[3]}, true
	}
	return pixelBox{}, false
}

// hasClass checks whether an element node carries the given class.
func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// textContent returns the concatenated text of a node's subtree.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

// Package pdf renders a persisted itinerary into a paginated PDF document.
// Layout is driven entirely by the per-line classification of the generated
// narrative; malformed narrative text degrades the layout, never the request.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"parksexplorer/internal/domain/itinerary"
)

const (
	pageMargin = 15.0

	titleFontSize     = 24.0
	dayHeaderFontSize = 18.0
	timeBlockFontSize = 12.0
	bodyFontSize      = 11.0
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderItinerary produces the PDF bytes for one itinerary.
func (r *Renderer) RenderItinerary(it *itinerary.Itinerary) ([]byte, error) {
	doc := fpdf.New("P", "mm", "Letter", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")

	// Title, centered
	doc.SetFont("Helvetica", "B", titleFontSize)
	doc.SetTextColor(0, 0, 0)
	doc.MultiCell(0, 12, tr(it.Title()), "", "C", false)
	doc.Ln(8)

	for _, block := range itinerary.ClassifyNarrative(it.Description()) {
		switch block.Kind {
		case itinerary.BlockBlank:
			continue
		case itinerary.BlockDayHeading:
			doc.Ln(5)
			doc.SetFont("Helvetica", "B", dayHeaderFontSize)
			doc.SetTextColor(0x2E, 0x7D, 0x32)
			doc.MultiCell(0, 9, tr(stripMarker(block.Text)), "", "L", false)
			doc.Ln(2)
		case itinerary.BlockTimeOfDay:
			doc.Ln(2)
			doc.SetFont("Helvetica", "B", timeBlockFontSize)
			doc.SetTextColor(0x33, 0x33, 0x33)
			doc.SetX(pageMargin + 5)
			doc.MultiCell(0, 6, tr(block.Text), "", "L", false)
		case itinerary.BlockHighlight:
			doc.SetFont("Helvetica", "I", timeBlockFontSize)
			doc.SetTextColor(0x33, 0x33, 0x33)
			doc.SetX(pageMargin + 5)
			doc.MultiCell(0, 6, tr(stripMarker(block.Text)), "", "L", false)
		default:
			doc.SetFont("Helvetica", "", bodyFontSize)
			doc.SetTextColor(0, 0, 0)
			doc.MultiCell(0, 6, tr(block.Text), "", "L", false)
			doc.Ln(1)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render itinerary PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// stripMarker drops a leading emoji marker, which the PDF core fonts cannot
// render; the heading style carries the emphasis instead.
func stripMarker(line string) string {
	runes := []rune(line)
	for i, r := range runes {
		if r < 0x2000 {
			return strings.TrimSpace(string(runes[i:]))
		}
	}
	return line
}

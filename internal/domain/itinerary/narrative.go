package itinerary

import "strings"

// BlockKind classifies one line of generated narrative text for rendering.
type BlockKind int

const (
	// BlockBody is plain narrative text.
	BlockBody BlockKind = iota
	// BlockDayHeading is a line beginning with the day marker ("📅 Day ...").
	BlockDayHeading
	// BlockTimeOfDay is a line containing a Morning:/Afternoon:/Evening: label.
	BlockTimeOfDay
	// BlockHighlight is a lodging or dining line ("🏨 ..." / "🍽️ ...").
	BlockHighlight
	// BlockBlank is an empty line; renderers may skip it.
	BlockBlank
)

// Block is one classified line of narrative text.
type Block struct {
	Kind BlockKind
	Text string
}

const dayMarker = "📅 Day"

var timeOfDayLabels = []string{"Morning:", "Afternoon:", "Evening:"}

var highlightMarkers = []string{"🍽️", "🏨"}

// ClassifyLine assigns a block kind to a single narrative line. Each line is
// classified independently; there is no cross-line state.
func ClassifyLine(line string) BlockKind {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return BlockBlank
	}
	if strings.HasPrefix(trimmed, dayMarker) {
		return BlockDayHeading
	}
	for _, label := range timeOfDayLabels {
		if strings.Contains(line, label) {
			return BlockTimeOfDay
		}
	}
	for _, marker := range highlightMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return BlockHighlight
		}
	}
	return BlockBody
}

// ClassifyNarrative splits narrative text into lines and classifies each one.
// The transform is order-preserving and line-count-preserving.
func ClassifyNarrative(text string) []Block {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, len(lines))
	for i, line := range lines {
		blocks[i] = Block{
			Kind: ClassifyLine(line),
			Text: strings.TrimSpace(line),
		}
	}
	return blocks
}

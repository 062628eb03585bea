package ukadmin

import (
	"context"
	"strings"
)

// PreviewSlot names a field of an extraction result and the display slot it
// is rendered into.
type PreviewSlot string

// Preview slots.
const (
	SlotTitle       PreviewSlot = "title"
	SlotContent     PreviewSlot = "content"
	SlotRichContent PreviewSlot = "rich_content"
	SlotExcerpt     PreviewSlot = "excerpt"
)

// PreviewSlots lists the slots in display order.
var PreviewSlots = []PreviewSlot{SlotTitle, SlotContent, SlotRichContent, SlotExcerpt}

// PreviewResult is the outcome of a single extraction run. Only the slots
// present in the service response are set.
type PreviewResult struct {
	URL    string
	Fields map[PreviewSlot]string
}

// Field returns the HTML for a slot and whether the response carried it.
func (r *PreviewResult) Field(slot PreviewSlot) (string, bool) {
	if r == nil || r.Fields == nil {
		return "", false
	}
	v, ok := r.Fields[slot]
	return v, ok
}

// Extractor runs the service's extraction against a URL.
type Extractor interface {
	// Extract returns the extracted fields for url.
	Extract(ctx context.Context, url string) (*PreviewResult, error)
}

// Renderer turns slot HTML into displayable text.
type Renderer interface {
	Render(html string) (string, error)
}

// PageRenderer is a Renderer that can resolve root-relative links and
// images against the page the HTML was extracted from.
type PageRenderer interface {
	Renderer
	RenderPage(html, pageURL string) (string, error)
}

// LineAtCursor returns the line of text that contains the cursor. The
// cursor is a character offset and is clamped to the text bounds.
func LineAtCursor(text string, cursor int) string {
	runes := []rune(text)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}

	index := len(strings.Split(string(runes[:cursor]), "\n"))
	lines := strings.Split(text, "\n")
	return lines[index-1]
}

// LineOffset returns the cursor offset of the start of the 1-based line n.
// Lines past the end resolve to the end of the text.
func LineOffset(text string, n int) int {
	runes := []rune(text)
	line := 1
	for i, c := range runes {
		if line >= n {
			return i
		}
		if c == '\n' {
			line++
		}
	}
	return len(runes)
}

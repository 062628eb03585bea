// Package goquery renders extracted HTML slots as plain text.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ukeeper/ukadmin"
)

// Ensure TextRenderer implements ukadmin.Renderer at compile time.
var _ ukadmin.Renderer = (*TextRenderer)(nil)

// blockSelector matches elements rendered on their own line.
const blockSelector = "p, div, li, h1, h2, h3, h4, h5, h6, blockquote, pre, tr, br"

// TextRenderer reduces HTML to its text. Block elements start a new line and
// runs of whitespace inside a line collapse to one space.
type TextRenderer struct{}

// NewTextRenderer creates a new TextRenderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render returns the text content of html.
func (r *TextRenderer) Render(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", ukadmin.Errorf(ukadmin.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("script, style, noscript").Remove()
	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		sel.BeforeHtml("\n")
		sel.AfterHtml("\n")
	})

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

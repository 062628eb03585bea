// Package htmltomarkdown renders extracted rich content as Markdown for
// display in a terminal.
package htmltomarkdown

import (
	"net/url"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/ukeeper/ukadmin"
)

// Ensure Renderer implements ukadmin.PageRenderer at compile time.
var _ ukadmin.PageRenderer = (*Renderer)(nil)

// Renderer wraps html-to-markdown to render HTML slots as Markdown.
// Extracted content keeps the page's own hrefs, so RenderPage resolves
// root-relative links against the previewed page.
type Renderer struct {
	conv *converter.Converter
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Renderer{conv: conv}
}

// Render converts html into Markdown. Blank input renders as an empty string.
func (r *Renderer) Render(html string) (string, error) {
	return r.render(html, "")
}

// RenderPage converts html extracted from pageURL into Markdown with links
// and images pointing at pageURL's host. An unparsable or host-less pageURL
// renders like Render.
func (r *Renderer) RenderPage(html, pageURL string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return r.render(html, "")
	}
	scheme := u.Scheme
	if scheme == "" {
		scheme = "https"
	}
	return r.render(html, scheme+"://"+u.Host)
}

func (r *Renderer) render(html, domain string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	var md string
	var err error
	if domain == "" {
		md, err = r.conv.ConvertString(html)
	} else {
		md, err = r.conv.ConvertString(html, converter.WithDomain(domain))
	}
	if err != nil {
		return "", ukadmin.Errorf(ukadmin.EINVALID, "failed to render content: %v", err)
	}

	return strings.TrimSpace(md), nil
}

package mock

import (
	"context"

	"github.com/ukeeper/ukadmin"
)

var _ ukadmin.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of ukadmin.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, url string) (*ukadmin.PreviewResult, error)
}

func (e *Extractor) Extract(ctx context.Context, url string) (*ukadmin.PreviewResult, error) {
	return e.ExtractFn(ctx, url)
}

var _ ukadmin.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of ukadmin.Renderer.
type Renderer struct {
	RenderFn func(html string) (string, error)
}

func (r *Renderer) Render(html string) (string, error) {
	return r.RenderFn(html)
}

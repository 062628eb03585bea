package admin

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/ukeeper/ukadmin"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// EmptySelectionMessage is shown when the cursor sits on an empty line.
const EmptySelectionMessage = "selected line is empty"

// DefaultPreviewConcurrency limits RunAll.
const DefaultPreviewConcurrency = 4

// Preview runs an extraction for the test URL under the cursor and renders
// the result into the preview panel.
type Preview struct {
	Extractor ukadmin.Extractor
	View      ukadmin.PreviewView
	Logger    *slog.Logger

	// Concurrency limits RunAll. Defaults to DefaultPreviewConcurrency.
	Concurrency int

	group singleflight.Group
	seq   atomic.Uint64
}

// Run previews the line of text that contains cursor. An empty line shows a
// tip and makes no call. Otherwise the button and the shared loader show the
// loading state for the duration of the call, and both are reset on every
// exit path. Only the most recent run renders its result.
func (p *Preview) Run(ctx context.Context, text string, cursor int) error {
	url := ukadmin.LineAtCursor(text, cursor)
	if url == "" {
		p.View.ShowTip(EmptySelectionMessage)
		return nil
	}

	p.View.HideTip()
	p.View.ShowLoader()
	return p.load(ctx, url)
}

func (p *Preview) load(ctx context.Context, url string) error {
	logger := loggerOrDiscard(p.Logger)
	seq := p.seq.Add(1)

	p.View.SetButtonLoading(true)
	defer func() {
		p.View.SetButtonLoading(false)
		p.View.HideLoader()
	}()

	res, err := p.extract(ctx, url)
	if err != nil {
		logger.Error("error while loading preview", "url", url, "err", err)
		return err
	}

	if seq != p.seq.Load() {
		logger.Debug("dropping stale preview", "url", url)
		return nil
	}

	for _, slot := range ukadmin.PreviewSlots {
		if html, ok := res.Field(slot); ok {
			p.View.SetSlot(slot, html)
		}
	}
	p.View.Show()
	p.View.ScrollIntoView()
	return nil
}

// extract collapses concurrent calls for the same URL into one request.
func (p *Preview) extract(ctx context.Context, url string) (*ukadmin.PreviewResult, error) {
	v, err, _ := p.group.Do(url, func() (any, error) {
		return p.Extractor.Extract(ctx, url)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ukadmin.PreviewResult), nil
}

// PreviewOutcome is the result of previewing one test URL in RunAll.
type PreviewOutcome struct {
	URL    string
	Result *ukadmin.PreviewResult
	Err    error
}

// RunAll extracts every non-empty line of text concurrently and returns the
// outcomes in line order. Per-URL failures are reported in the outcome and
// do not stop the other extractions. The preview panel is not touched.
func (p *Preview) RunAll(ctx context.Context, text string) []PreviewOutcome {
	var urls []string
	for _, line := range ukadmin.SplitLines(text) {
		if line = strings.TrimSpace(line); line != "" {
			urls = append(urls, line)
		}
	}

	limit := p.Concurrency
	if limit <= 0 {
		limit = DefaultPreviewConcurrency
	}

	outcomes := make([]PreviewOutcome, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, url := range urls {
		g.Go(func() error {
			res, err := p.extract(gctx, url)
			if err != nil {
				loggerOrDiscard(p.Logger).Warn("failed to preview", "url", url, "err", err)
			}
			outcomes[i] = PreviewOutcome{URL: url, Result: res, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ukeeper/ukadmin"
)

// Ensure LoggingExtractor implements ukadmin.Extractor.
var _ ukadmin.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   ukadmin.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next ukadmin.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the slots returned.
func (e *LoggingExtractor) Extract(ctx context.Context, url string) (res *ukadmin.PreviewResult, err error) {
	defer func(begin time.Time) {
		var slots int
		if res != nil {
			slots = len(res.Fields)
		}
		e.logger.Info("extract",
			"url", url,
			"slots", slots,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, url)
}

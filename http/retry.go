package http

import (
	"context"
	"errors"
	"time"

	"github.com/ukeeper/ukadmin"
)

// DefaultRetryDelays returns the backoff delays for read retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// retryable reports whether a failed read may succeed when repeated.
// Transport failures and server errors qualify; rejections do not.
func retryable(err error) bool {
	var e *ukadmin.Error
	if errors.As(err, &e) {
		return e.Code == ukadmin.EINTERNAL
	}
	return true
}

// withRetry calls fn until it succeeds, fails with a non-retryable error or
// runs out of delays. It waits delays[i] before attempt i+2.
func (c *Client) withRetry(ctx context.Context, what string, fn func() error) error {
	maxAttempts := len(c.retryDelays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || !retryable(err) {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		c.logger.Warn("retrying", "call", what, "attempt", attempt+2, "err", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.retryDelays[attempt]):
		}
	}

	return lastErr
}

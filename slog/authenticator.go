package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ukeeper/ukadmin"
)

// Ensure LoggingAuthenticator implements ukadmin.Authenticator.
var _ ukadmin.Authenticator = (*LoggingAuthenticator)(nil)

// LoggingAuthenticator wraps an Authenticator with logging. Only the login
// is logged.
type LoggingAuthenticator struct {
	next   ukadmin.Authenticator
	logger *slog.Logger
}

// NewLoggingAuthenticator creates a new LoggingAuthenticator.
func NewLoggingAuthenticator(next ukadmin.Authenticator, logger *slog.Logger) *LoggingAuthenticator {
	return &LoggingAuthenticator{next: next, logger: logger}
}

// Authenticate delegates to the wrapped authenticator and logs the outcome.
func (a *LoggingAuthenticator) Authenticate(ctx context.Context, creds ukadmin.Credentials) (err error) {
	defer func(begin time.Time) {
		a.logger.Info("authenticate",
			"login", creds.Login,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Authenticate(ctx, creds)
}

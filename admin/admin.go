// Package admin implements the controllers behind the administration pages:
// the session manager, the rules list, the rule editor and the preview panel.
// Controllers talk to the service through ukadmin interfaces and draw through
// ukadmin views, so the same code drives the terminal client and the tests.
package admin

import (
	"log/slog"
	"net/url"
)

// QueryParam returns the named parameter of a raw query string.
// A query that cannot be decoded yields "".
func QueryParam(rawQuery, name string) string {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return ""
	}
	return values.Get(name)
}

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}

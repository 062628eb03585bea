// Package http provides a client for the REST API of the ukeeper extraction
// service. Client implements ukadmin.RuleService, ukadmin.Authenticator and
// ukadmin.Extractor.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/ukeeper/ukadmin"
	"golang.org/x/time/rate"
)

// DefaultTimeout is the default timeout for API requests. Extraction fetches
// the target page server-side, so it is longer than a plain page fetch.
const DefaultTimeout = 30 * time.Second

// DefaultBaseURL is the API root of a locally running service.
const DefaultBaseURL = "http://localhost:8080/api"

// Compile-time interface verification.
var (
	_ ukadmin.RuleService   = (*Client)(nil)
	_ ukadmin.Authenticator = (*Client)(nil)
	_ ukadmin.Extractor     = (*Client)(nil)
)

// Client talks to the extraction service. Calls that change rules or run
// extraction carry the session's Authorization header.
type Client struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
	session *ukadmin.Session
	logger  *slog.Logger

	retryDelays []time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for API requests.
// Defaults to DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithBaseURL sets the API root, e.g. "https://ureadability.example.com/api".
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithRateLimit limits the client to rps requests per second.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithRetryDelays sets the backoff between attempts of read calls. Reads are
// retried on transport failures and server errors; no delays disables
// retries. Defaults to DefaultRetryDelays.
func WithRetryDelays(delays ...time.Duration) Option {
	return func(c *Client) {
		c.retryDelays = delays
	}
}

// WithLogger sets the logger used to report retries.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a Client that authorizes calls with session.
func NewClient(session *ukadmin.Session, opts ...Option) *Client {
	c := &Client{
		baseURL:     DefaultBaseURL,
		timeout:     DefaultTimeout,
		session:     session,
		logger:      slog.New(slog.DiscardHandler),
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// Authenticate checks creds against the protected auth endpoint.
func (c *Client) Authenticate(ctx context.Context, creds ukadmin.Credentials) error {
	_, err := c.do(ctx, http.MethodPost, "/auth", nil, creds.BasicAuth())
	return err
}

// FindRules returns all rules.
func (c *Client) FindRules(ctx context.Context) ([]*ukadmin.Rule, error) {
	body, err := c.get(ctx, "/rules")
	if err != nil {
		return nil, err
	}

	var rules []*ukadmin.Rule
	if err := json.Unmarshal(body, &rules); err != nil {
		return nil, fmt.Errorf("failed to decode rules: %w", err)
	}
	return rules, nil
}

// FindRuleByID returns the rule with the given id.
func (c *Client) FindRuleByID(ctx context.Context, id string) (*ukadmin.Rule, error) {
	if !ukadmin.ValidRuleID(id) {
		return nil, ukadmin.Errorf(ukadmin.EINVALID, "invalid rule id %q", id)
	}

	body, err := c.get(ctx, "/rule/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	var rule ukadmin.Rule
	if err := json.Unmarshal(body, &rule); err != nil {
		return nil, fmt.Errorf("failed to decode rule: %w", err)
	}
	return &rule, nil
}

// SaveRule upserts the rule. A new rule takes the id assigned by the service.
func (c *Client) SaveRule(ctx context.Context, rule *ukadmin.Rule) error {
	body, err := c.do(ctx, http.MethodPost, "/rule", rule, c.session.AuthorizationHeader())
	if err != nil {
		return err
	}

	if rule.IsNew() {
		if id := gjson.GetBytes(body, "id"); id.Exists() {
			rule.ID = id.String()
		}
	}
	return nil
}

// DisableRule disables the rule through the service's DELETE endpoint.
func (c *Client) DisableRule(ctx context.Context, id string) error {
	if !ukadmin.ValidRuleID(id) {
		return ukadmin.Errorf(ukadmin.EINVALID, "invalid rule id %q", id)
	}

	_, err := c.do(ctx, http.MethodDelete, "/rule/"+url.PathEscape(id), nil, c.session.AuthorizationHeader())
	return err
}

// Extract runs the service's extraction for rawURL. Fields missing from the
// response are left out of the result.
func (c *Client) Extract(ctx context.Context, rawURL string) (*ukadmin.PreviewResult, error) {
	req := struct {
		URL string `json:"url"`
	}{URL: rawURL}

	body, err := c.do(ctx, http.MethodPost, "/extract", req, c.session.AuthorizationHeader())
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid extract response for %s", rawURL)
	}

	res := &ukadmin.PreviewResult{
		URL:    rawURL,
		Fields: make(map[ukadmin.PreviewSlot]string),
	}
	for _, slot := range ukadmin.PreviewSlots {
		if v := gjson.GetBytes(body, string(slot)); v.Exists() {
			res.Fields[slot] = v.String()
		}
	}
	return res, nil
}

// get reads path with retries.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	var body []byte
	err := c.withRetry(ctx, "GET "+path, func() error {
		var err error
		body, err = c.do(ctx, http.MethodGet, path, nil, "")
		return err
	})
	return body, err
}

// do sends a request and returns the response body of a 2xx response.
// payload, if not nil, is sent as JSON.
func (c *Client) do(ctx context.Context, method, path string, payload any, authorization string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	var reqBody io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, responseError(method, path, resp.StatusCode, body)
	}
	return body, nil
}

// responseError maps a non-2xx response to an application error. The
// service reports lookups of unknown rules as 400 "not found".
func responseError(method, path string, status int, body []byte) error {
	msg := gjson.GetBytes(body, "error").String()
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch {
	case status == http.StatusNotFound, status == http.StatusBadRequest && msg == "not found":
		return ukadmin.Errorf(ukadmin.ENOTFOUND, "%s %s: %s", method, path, msg)
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return ukadmin.Errorf(ukadmin.EUNAUTHORIZED, "%s %s: %s", method, path, msg)
	case status == http.StatusBadRequest, status == http.StatusExpectationFailed:
		return ukadmin.Errorf(ukadmin.EINVALID, "%s %s: %s", method, path, msg)
	}
	return ukadmin.Errorf(ukadmin.EINTERNAL, "%s %s: HTTP %d: %s", method, path, status, msg)
}

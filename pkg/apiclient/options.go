package apiclient

import (
	"log/slog"
	"net/http"
	"time"
)

// TokenSource yields the current bearer credential, or "" when the client is
// unauthenticated. It is consulted once per request so a sign-in or sign-out
// between calls takes effect immediately.
type TokenSource func() string

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default pooled HTTP client. Nil clients are
// ignored so option lists can be built conditionally.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTokenSource sets the bearer credential provider.
func WithTokenSource(source TokenSource) Option {
	return func(c *Client) {
		if source != nil {
			c.tokenSource = source
		}
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
// It has no effect when combined with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithLogger sets the logger for request tracing. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHeader adds a default header applied to every request. Per-request
// headers override it.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		if key != "" {
			c.defaultHeaders[key] = value
		}
	}
}

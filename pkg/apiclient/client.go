package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client is the single gateway to the HealthLens backend. It attaches the
// bearer credential to every outbound request, serializes JSON bodies, and
// normalizes failures into APIError / TransportError.
//
// Requests are single-attempt: the backend contract has no idempotency keys,
// so retrying a failed mutation could double-apply it. Zero value is not
// usable; use New.
type Client struct {
	baseURL        *url.URL
	httpClient     *http.Client
	tokenSource    TokenSource
	defaultHeaders map[string]string
	timeout        time.Duration
	logger         *slog.Logger
}

// New creates a client for the backend at baseURL.
//
// The default HTTP client carries a cookie jar so the backend may use either
// bearer-header or cookie authentication, and a pooled transport sized for a
// single-host API.
func New(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL:        parsed,
		defaultHeaders: make(map[string]string),
		timeout:        30 * time.Second,
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("apiclient: create cookie jar: %w", err)
		}
		c.httpClient = &http.Client{
			Timeout: c.timeout,
			Jar:     jar,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	return c, nil
}

// RequestOption customizes a single request.
type RequestOption func(*requestOptions)

type requestOptions struct {
	headers map[string]string
}

// WithRequestHeader sets a header on this request only, overriding client
// defaults including Content-Type and Authorization.
func WithRequestHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.headers[key] = value
	}
}

// Get issues a GET request to endpoint.
func (c *Client) Get(ctx context.Context, endpoint string, opts ...RequestOption) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, endpoint, nil, opts...)
}

// Post issues a POST request with a JSON-encoded body.
func (c *Client) Post(ctx context.Context, endpoint string, body any, opts ...RequestOption) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, endpoint, body, opts...)
}

// Put issues a PUT request with a JSON-encoded body.
func (c *Client) Put(ctx context.Context, endpoint string, body any, opts ...RequestOption) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPut, endpoint, body, opts...)
}

// Delete issues a DELETE request to endpoint.
func (c *Client) Delete(ctx context.Context, endpoint string, opts ...RequestOption) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodDelete, endpoint, nil, opts...)
}

// Do issues a single request and returns the raw JSON response body.
//
// A nil body sends no payload; any other value is JSON-encoded. Non-2xx
// responses become *APIError with the message taken from the body's "detail"
// field when present. Failures before a response arrives become
// *TransportError.
func (c *Client) Do(ctx context.Context, method, endpoint string, body any, opts ...RequestOption) (json.RawMessage, error) {
	if endpoint == "" || !strings.HasPrefix(endpoint, "/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEndpoint, endpoint)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("apiclient: marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(endpoint).String(), reader)
	if err != nil {
		return nil, fmt.Errorf("apiclient: build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	c.applyHeaders(req, opts)

	return c.send(req)
}

// applyHeaders layers headers lowest-precedence first: defaults, then the
// bearer credential, then per-request overrides.
func (c *Client) applyHeaders(req *http.Request, opts []RequestOption) {
	for key, value := range c.defaultHeaders {
		req.Header.Set(key, value)
	}

	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	reqOpts := &requestOptions{headers: make(map[string]string)}
	for _, opt := range opts {
		opt(reqOpts)
	}
	for key, value := range reqOpts.headers {
		req.Header.Set(key, value)
	}

	if req.Header.Get("X-Request-ID") == "" {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}
}

// send executes the request and normalizes the outcome.
func (c *Client) send(req *http.Request) (json.RawMessage, error) {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.LogAttrs(req.Context(), slog.LevelWarn, "request failed before response",
			slog.String("method", req.Method),
			slog.String("endpoint", req.URL.Path),
			slog.String("request_id", req.Header.Get("X-Request-ID")),
			slog.Any("error", err),
		)
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	c.logger.LogAttrs(req.Context(), slog.LevelDebug, "request completed",
		slog.String("method", req.Method),
		slog.String("endpoint", req.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.String("request_id", req.Header.Get("X-Request-ID")),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Status:  resp.StatusCode,
			Message: detailMessage(data),
		}
	}

	return data, nil
}

// detailMessage extracts the backend's human-readable error detail. Failure
// bodies are parsed unconditionally; anything unparsable falls back to a
// generic message.
func detailMessage(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return fallbackMessage
}

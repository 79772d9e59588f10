package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/atomicstack/bizray-tui/internal/logging/events"
	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
)

const (
	apiPrefix        = "/api/v1"
	DefaultUserAgent = "bizray-tui"
)

// Client talks to the BizRay HTTP API. A Client is immutable once built;
// WithToken returns an authorised copy, so a value can be handed to a
// background task without synchronisation.
type Client struct {
	baseURL   string
	token     string
	userAgent string
	http      *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if strings.TrimSpace(ua) != "" {
			c.userAgent = ua
		}
	}
}

// NewClient builds a client for baseURL with a per-request timeout.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	hc := cleanhttp.DefaultPooledClient()
	hc.Timeout = timeout
	c := &Client{
		baseURL:   strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		userAgent: DefaultUserAgent,
		http:      hc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithToken returns a copy of c that sends token as a bearer credential.
func (c *Client) WithToken(token string) *Client {
	dup := *c
	dup.token = token
	return &dup
}

// HasToken reports whether requests carry a credential.
func (c *Client) HasToken() bool { return c.token != "" }

// BaseURL returns the configured endpoint without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindDecode, Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &Error{Kind: KindConfig, Err: err}
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	started := time.Now()
	events.HTTP.Request(requestID, method, path)
	resp, err := c.http.Do(req)
	if err != nil {
		events.HTTP.Failure(requestID, err)
		return &Error{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	events.HTTP.Response(requestID, resp.StatusCode, time.Since(started))
	if err != nil {
		return &Error{Kind: KindNetwork, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return FromHTTPResponse(resp.StatusCode, errorDetail(data))
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Kind: KindAPI, Message: fmt.Sprintf("Failed to parse response: %v", err), Err: err}
	}
	return nil
}

// errorDetail extracts the "detail" field of an error body, falling back to
// the raw body text.
func errorDetail(data []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err == nil && len(body.Detail) > 0 {
		var text string
		if err := json.Unmarshal(body.Detail, &text); err == nil {
			return text
		}
		return string(body.Detail)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "Unknown error"
	}
	return text
}

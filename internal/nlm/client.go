// Package nlm provides a base HTTP client for NLM web services.
// The DailyMed resource client wraps this to share the base URL, timeout,
// request pacing, and response size guards.
package nlm

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

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the DailyMed v2 web services base URL.
	DefaultBaseURL = "https://dailymed.nlm.nih.gov/dailymed/services/v2"

	// DefaultTimeout bounds each request end to end.
	DefaultTimeout = 10 * time.Second

	// DefaultRequestsPerSecond paces requests when the client is used as a
	// library issuing more than one call. DailyMed publishes no hard limit;
	// this keeps bulk callers polite.
	DefaultRequestsPerSecond = 5

	// DefaultMaxResponseBytes is the maximum response body size (50 MB).
	// Full label XML documents run to several megabytes.
	DefaultMaxResponseBytes int64 = 50 * 1024 * 1024
)

// Client is a shared HTTP client for NLM web services. It dispatches each
// response as raw XML, parsed JSON, or a no-content marker based on the
// requested endpoint's suffix.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	MaxBytes   int64
	Logger     *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the base URL for requests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.BaseURL = u }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.HTTPClient.Timeout = d }
}

// WithMaxResponseBytes sets the maximum allowed response body size.
func WithMaxResponseBytes(n int64) Option {
	return func(c *Client) { c.MaxBytes = n }
}

// WithLogger sets the logger used for the per-request progress line.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.Logger = l }
}

// NewClient creates a new NLM base client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		BaseURL:  DefaultBaseURL,
		MaxBytes: DefaultMaxResponseBytes,
		Limiter:  rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a GET request against endpoint with the given query
// parameters and dispatches the response body.
//
// Endpoints ending in ".xml" return the body verbatim as KindXML. All other
// endpoints are decoded as JSON, except that an empty body yields a
// KindNoContent response rather than a decode failure.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
	u, err := url.JoinPath(c.BaseURL, endpoint)
	if err != nil {
		return nil, fmt.Errorf("building URL: %w", err)
	}
	fullURL := u
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	if c.Logger != nil {
		c.Logger.Info("requesting", "endpoint", endpoint)
		c.Logger.Debug("request URL", "url", fullURL)
	}

	// Wait for a pacing token (respects context cancellation).
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(fullURL, err)
	}
	defer resp.Body.Close()

	// Guard against unbounded reads: read up to MaxBytes+1 to detect
	// oversized responses.
	r := io.LimitReader(resp.Body, c.MaxBytes+1)
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, classifyTransportError(fullURL, err)
	}
	if int64(len(body)) > c.MaxBytes {
		return nil, fmt.Errorf("response exceeds maximum size of %d bytes", c.MaxBytes)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        fullURL,
			Body:       string(body),
		}
	}

	if strings.HasSuffix(endpoint, ".xml") {
		return &Response{Kind: KindXML, XML: string(body)}, nil
	}

	// Whitespace-only bodies count as empty too; they carry no JSON value
	// and would otherwise surface as a spurious DecodeError.
	if len(bytes.TrimSpace(body)) == 0 {
		return &Response{Kind: KindNoContent}, nil
	}

	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &DecodeError{URL: fullURL, Err: err, Snippet: snippet(body)}
	}

	return &Response{Kind: KindJSON, JSON: raw}, nil
}

// snippet returns the leading bytes of a body for error messages.
func snippet(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

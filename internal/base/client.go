// Package base provides shared HTTP client infrastructure for the Reddit API:
// concurrency limiting, request deduplication, circuit breaking, and retries.
package base

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/olgasafonova/reddit-mcp-server/internal/infra"
	"github.com/olgasafonova/reddit-mcp-server/metrics"
)

const (
	// DefaultTimeout for API requests
	DefaultTimeout = 30 * time.Second

	// MaxConcurrentRequests limits parallel API calls
	MaxConcurrentRequests = 5

	// MaxResponseSize caps how much of a response body is read
	MaxResponseSize = 10 << 20

	// DefaultUserAgent is sent when a request does not set one
	DefaultUserAgent = "reddit-mcp-server/1.0"
)

// Client provides common HTTP client infrastructure with rate limiting,
// request deduplication, circuit breaking, and retries.
type Client struct {
	HTTPClient     *http.Client
	Logger         *slog.Logger
	CircuitBreaker *infra.CircuitBreaker
	Dedup          *infra.RequestDeduplicator
	Semaphore      chan struct{}
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.HTTPClient = c
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		client.Logger = l
	}
}

// WithTimeout sets the overall per-request timeout of the HTTP client
func WithTimeout(d time.Duration) ClientOption {
	return func(client *Client) {
		if d > 0 && client.HTTPClient != nil {
			client.HTTPClient.Timeout = d
		}
	}
}

// WithCircuitBreaker replaces the default circuit breaker
func WithCircuitBreaker(cb *infra.CircuitBreaker) ClientOption {
	return func(client *Client) {
		client.CircuitBreaker = cb
	}
}

// WithMaxConcurrent sets how many upstream requests may run at once
func WithMaxConcurrent(n int) ClientOption {
	return func(client *Client) {
		if n > 0 {
			client.Semaphore = make(chan struct{}, n)
		}
	}
}

// NewClient creates a new base client with default settings
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		HTTPClient: newHTTPClient(DefaultTimeout),
		Logger:     slog.Default(),
		Dedup:      infra.NewRequestDeduplicator(),
		Semaphore:  make(chan struct{}, MaxConcurrentRequests),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.CircuitBreaker == nil {
		logger := c.Logger
		c.CircuitBreaker = infra.NewCircuitBreaker(
			infra.WithStateChangeHook(func(from, to infra.CircuitState) {
				metrics.SetCircuitState(int(to))
				logger.Warn("Circuit breaker state changed", "from", from.String(), "to", to.String())
			}),
		)
	}

	return c
}

// CircuitBreakerStats returns the current circuit breaker state
func (c *Client) CircuitBreakerStats() infra.CircuitBreakerStats {
	return c.CircuitBreaker.Stats()
}

// DedupStats returns the request deduplicator counters
func (c *Client) DedupStats() infra.DedupStats {
	return c.Dedup.Stats()
}

// DoShared is Do for read requests: concurrent calls with the same method and
// URL share one upstream request. shared reports whether this caller waited
// on another caller's request.
func (c *Client) DoShared(ctx context.Context, cfg RequestConfig) (resp Response, shared bool, err error) {
	key := cfg.Method + " " + cfg.URL
	v, shared, err := c.Dedup.Do(ctx, key, func() (any, error) {
		return c.Do(ctx, cfg)
	})
	if r, ok := v.(Response); ok {
		resp = r
	}
	return resp, shared, err
}

// AcquireSlot blocks until a request slot is available or context is canceled
func (c *Client) AcquireSlot(ctx context.Context) error {
	select {
	case c.Semaphore <- struct{}{}:
		return nil
	default:
	}

	metrics.RateLimitWaits.Inc()
	select {
	case c.Semaphore <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("context canceled while waiting for rate limiter: %w", ctx.Err())
	}
}

// ReleaseSlot releases a request slot
func (c *Client) ReleaseSlot() {
	<-c.Semaphore
}

// CheckCircuitBreaker returns nil if requests are allowed, or an error if the circuit is open
func (c *Client) CheckCircuitBreaker() error {
	if !c.CircuitBreaker.Allow() {
		metrics.CircuitBreakerRejections.Inc()
		stats := c.CircuitBreaker.Stats()
		return &infra.ErrCircuitOpen{
			State:    stats.State,
			RetryAt:  stats.RetryAt,
			Failures: stats.ConsecutiveFails,
		}
	}
	return nil
}

// RequestConfig configures a single HTTP request
type RequestConfig struct {
	Method      string // defaults to GET
	URL         string
	Body        []byte
	ContentType string
	Header      http.Header
	UserAgent   string
	MaxRetry    int    // defaults to 3
	Tool        string // for logs only

	// Idempotent allows transport failures and 5xx responses to be retried
	// for methods that are not idempotent by definition (POST, PATCH).
	Idempotent bool
}

// replayable reports whether a request may be sent again after the server
// might already have acted on it.
func (cfg RequestConfig) replayable(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	}
	return cfg.Idempotent
}

// Response is the final upstream answer of a request.
type Response struct {
	Body       []byte
	StatusCode int
	Attempts   int
}

// DoRequest performs an HTTP request with circuit breaker, rate limiting, and retries.
// It returns the body and status of Do.
func (c *Client) DoRequest(ctx context.Context, cfg RequestConfig) ([]byte, int, error) {
	resp, err := c.Do(ctx, cfg)
	return resp.Body, resp.StatusCode, err
}

// Do performs an HTTP request with circuit breaker, rate limiting, and retries.
// A 429 is always retried, waiting for Retry-After when present. Transport
// failures and 5xx responses are retried with quadratic backoff only when the
// request is replayable, so a write Reddit may already have stored is never
// sent twice. Any other status is returned together with its body, including
// a 429 on the final attempt. Attempts is set on every return path.
func (c *Client) Do(ctx context.Context, cfg RequestConfig) (Response, error) {
	var out Response

	if err := c.CheckCircuitBreaker(); err != nil {
		return out, err
	}

	if err := c.AcquireSlot(ctx); err != nil {
		return out, err
	}
	defer c.ReleaseSlot()

	method := cfg.Method
	if method == "" {
		method = http.MethodGet
	}
	replay := cfg.replayable(method)

	maxRetry := cfg.MaxRetry
	if maxRetry <= 0 {
		maxRetry = 3
	}

	var (
		lastErr error
		delay   time.Duration
	)
	for attempt := 0; attempt < maxRetry; attempt++ {
		if attempt > 0 {
			if err := infra.Sleep(ctx, delay); err != nil {
				return out, fmt.Errorf("context canceled during backoff: %w", err)
			}
		}
		out.Attempts = attempt + 1
		last := attempt == maxRetry-1

		req, err := c.newRequest(ctx, method, cfg)
		if err != nil {
			return out, fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return out, fmt.Errorf("request canceled: %w", ctx.Err())
			}
			lastErr = fmt.Errorf("request failed: %w", err)
			if last || !replay {
				break
			}
			delay = infra.Backoff(attempt + 1)
			metrics.RecordRetry("transport")
			c.Logger.Warn("API request failed, retrying",
				"attempt", attempt+1,
				"tool", cfg.Tool,
				"method", method,
				"error", err)
			continue
		}

		body, err := readAndClose(resp)
		if err != nil {
			lastErr = fmt.Errorf("failed to read response: %w", err)
			if !replay {
				break
			}
			delay = infra.Backoff(attempt + 1)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			if last {
				out.Body, out.StatusCode = body, resp.StatusCode
				return out, nil
			}
			delay = infra.Backoff(attempt + 1)
			if wait, ok := infra.ParseRetryAfter(resp.Header.Get("Retry-After"), time.Now()); ok {
				delay = wait
			}
			metrics.RecordRetry("rate_limited")
			c.Logger.Warn("Rate limited by Reddit, waiting",
				"attempt", attempt+1,
				"tool", cfg.Tool,
				"wait", delay.String())
			continue
		}

		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error %d: %s", resp.StatusCode, truncate(string(body), 200))
			if last || !replay {
				break
			}
			delay = infra.Backoff(attempt + 1)
			metrics.RecordRetry("server_error")
			continue
		}

		out.Body, out.StatusCode = body, resp.StatusCode
		return out, nil
	}

	c.CircuitBreaker.RecordFailure()
	return out, lastErr
}

// newRequest builds a fresh request for one attempt so the body can be replayed.
func (c *Client) newRequest(ctx context.Context, method string, cfg RequestConfig) (*http.Request, error) {
	var body io.Reader
	if cfg.Body != nil {
		body = bytes.NewReader(cfg.Body)
	}
	req, err := http.NewRequestWithContext(ctx, method, cfg.URL, body)
	if err != nil {
		return nil, err
	}

	for key, values := range cfg.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if cfg.ContentType != "" && cfg.Body != nil {
		req.Header.Set("Content-Type", cfg.ContentType)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	} else {
		req.Header.Set("User-Agent", DefaultUserAgent)
	}
	return req, nil
}

// RecordSuccess records a successful request with the circuit breaker
func (c *Client) RecordSuccess() {
	c.CircuitBreaker.RecordSuccess()
}

// RecordFailure records a failed request with the circuit breaker
func (c *Client) RecordFailure() {
	c.CircuitBreaker.RecordFailure()
}

// readAndClose reads the response body, up to MaxResponseSize, and closes it
func readAndClose(resp *http.Response) ([]byte, error) {
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > MaxResponseSize {
		return nil, fmt.Errorf("response exceeds %d bytes", MaxResponseSize)
	}
	return body, nil
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// newHTTPClient creates an HTTP client with optimized transport settings
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		MaxConnsPerHost:       50,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		DisableCompression:    false,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

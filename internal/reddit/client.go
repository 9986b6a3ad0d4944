// Package reddit is the Reddit OAuth API client behind the MCP tools.
package reddit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/olgasafonova/reddit-mcp-server/internal/base"
	"github.com/olgasafonova/reddit-mcp-server/internal/catalog"
	"github.com/olgasafonova/reddit-mcp-server/internal/config"
	apperrors "github.com/olgasafonova/reddit-mcp-server/internal/errors"
	"github.com/olgasafonova/reddit-mcp-server/internal/infra"
	"github.com/olgasafonova/reddit-mcp-server/metrics"
	"github.com/olgasafonova/reddit-mcp-server/tracing"
)

// Client provides access to the Reddit OAuth API
type Client struct {
	*base.Client

	baseURL    string
	userAgent  string
	maxRetries int
	tokens     oauth2.TokenSource
	grant      Grant
}

// ClientOption configures the Client (re-export base.ClientOption)
type ClientOption = base.ClientOption

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return base.WithHTTPClient(c)
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return base.WithLogger(l)
}

// WithCircuitBreaker sets a custom circuit breaker
func WithCircuitBreaker(cb *infra.CircuitBreaker) ClientOption {
	return base.WithCircuitBreaker(cb)
}

// NewClient creates a Reddit client. It fails when cfg carries no usable credentials.
func NewClient(cfg config.RedditConfig, opts ...ClientOption) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.DefaultBaseURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = config.DefaultTokenURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = config.DefaultUserAgent
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	all := append([]ClientOption{
		base.WithTimeout(cfg.Timeout.Duration),
		base.WithMaxConcurrent(cfg.MaxConcurrent),
	}, opts...)
	bc := base.NewClient(all...)

	tokens, grant, err := newTokenSource(cfg, bc.HTTPClient)
	if err != nil {
		return nil, err
	}

	return &Client{
		Client:     bc,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
		tokens:     tokens,
		grant:      grant,
	}, nil
}

// Grant reports which OAuth2 flow the client authenticates with.
func (c *Client) Grant() Grant {
	return c.grant
}

// CallTool invokes the catalog tool called name with raw arguments.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (json.RawMessage, error) {
	d, ok := catalog.Lookup(name)
	if !ok {
		return nil, apperrors.NewValidationError("tool", name, "unknown tool")
	}
	return c.Call(ctx, d, args)
}

// Call resolves args against d, sends the request and returns the response
// JSON. An empty 2xx body is returned as {}.
func (c *Client) Call(ctx context.Context, d *catalog.Descriptor, args map[string]any) (json.RawMessage, error) {
	req, err := catalog.Resolve(d, args)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, d, req)
}

func (c *Client) send(ctx context.Context, d *catalog.Descriptor, req catalog.Request) (json.RawMessage, error) {
	if req.Method == http.MethodGet {
		if req.Query == nil {
			req.Query = url.Values{}
		}
		req.Query.Set("raw_json", "1")
	}

	ctx, span := tracing.StartSpan(ctx, "reddit.api")
	defer span.End()
	tracing.AddRedditAttributes(span, req.Method, d.Name, req.Path)

	token, err := c.tokens.Token()
	if err != nil {
		err = authError(err)
		tracing.RecordError(span, err)
		return nil, err
	}

	reqURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		reqURL += "?" + req.Query.Encode()
	}

	rc := base.RequestConfig{
		Method:      req.Method,
		URL:         reqURL,
		Body:        req.Body,
		ContentType: req.ContentType,
		Header:      http.Header{"Authorization": {token.Type() + " " + token.AccessToken}},
		UserAgent:   c.userAgent,
		MaxRetry:    c.maxRetries + 1,
		Tool:        d.Name,
	}

	start := time.Now()
	var resp base.Response
	if d.ReadOnly() {
		var shared bool
		resp, shared, err = c.DoShared(ctx, rc)
		if shared {
			metrics.DedupShared.WithLabelValues(d.Name).Inc()
		}
	} else {
		resp, err = c.Do(ctx, rc)
	}
	duration := time.Since(start).Seconds()
	if resp.Attempts > 0 {
		tracing.AddAttemptAttributes(span, resp.Attempts)
	}
	if err != nil {
		metrics.RecordAPICall(d.Name, duration, false, errorCode(err))
		tracing.RecordError(span, err)
		return nil, err
	}
	body, status := resp.Body, resp.StatusCode
	tracing.AddStatusAttributes(span, status)
	metrics.RecordResponseSize(d.Name, len(body))

	result, err := c.classify(req, status, body)
	metrics.RecordAPICall(d.Name, duration, err == nil, errorCode(err))
	if !d.ReadOnly() {
		metrics.RecordWrite(d.Name, err == nil)
	}
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	return result, nil
}

// classify maps a final upstream status onto a result or a typed error.
// None of these outcomes count against the circuit breaker.
func (c *Client) classify(req catalog.Request, status int, body []byte) (json.RawMessage, error) {
	c.RecordSuccess()

	switch {
	case status >= 200 && status < 300:
		return normalizeBody(body), nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		metrics.AuthFailures.WithLabelValues("status_" + strconv.Itoa(status)).Inc()
		msg := http.StatusText(status)
		if apiErr := parseAPIError(status, body); apiErr.Message != "" {
			msg = apiErr.Message
		}
		return nil, &apperrors.AuthError{StatusCode: status, Message: msg}
	case status == http.StatusNotFound:
		return nil, apperrors.NewNotFoundError("endpoint", req.Method+" "+req.Path)
	case status == http.StatusTooManyRequests:
		return nil, apperrors.NewRateLimitError(string(body))
	default:
		return nil, parseAPIError(status, body)
	}
}

// normalizeBody guarantees the result is JSON: empty bodies become {} and
// non-JSON text is returned as a JSON string.
func normalizeBody(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return json.RawMessage("{}")
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	quoted, _ := json.Marshal(string(trimmed))
	return json.RawMessage(quoted)
}

// parseAPIError reads {"error": code, "message": ...}, {"reason": ...,
// "explanation": ...} or {"json": {"errors": [...]}} error bodies.
func parseAPIError(status int, body []byte) *apperrors.APIError {
	apiErr := &apperrors.APIError{StatusCode: status}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		apiErr.Message = truncate(strings.TrimSpace(string(body)), 200)
		return apiErr
	}

	if eb.JSON != nil && len(eb.JSON.Errors) > 0 {
		apiErr.Message = joinErrors(eb.JSON.Errors)
		return apiErr
	}

	apiErr.Code = errorCodeField(eb.Error, status)
	if eb.Reason != "" && apiErr.Code == "" {
		apiErr.Code = eb.Reason
	}
	switch {
	case eb.Explanation != "":
		apiErr.Message = eb.Explanation
	case eb.Message != "" && eb.Message != apiErr.Code:
		apiErr.Message = eb.Message
	}
	return apiErr
}

// errorCodeField returns the "error" member when it is a string code. A
// numeric member that only repeats the HTTP status is dropped.
func errorCodeField(raw json.RawMessage, status int) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var n int
	if json.Unmarshal(raw, &n) == nil && n != status {
		return strconv.Itoa(n)
	}
	return ""
}

// joinErrors formats Reddit json.errors triples as "CODE: message, ...".
func joinErrors(errs [][]string) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		switch len(e) {
		case 0:
			continue
		case 1:
			parts = append(parts, e[0])
		default:
			parts = append(parts, e[0]+": "+e[1])
		}
	}
	return strings.Join(parts, ", ")
}

// errorCode is the low-cardinality label recorded for failed API calls.
func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case apperrors.IsAuth(err):
		return "auth"
	case apperrors.IsNotFound(err):
		return "not_found"
	case apperrors.IsRateLimit(err):
		return "rate_limited"
	case apperrors.IsAPI(err):
		return "api_error"
	case apperrors.IsValidation(err):
		return "validation"
	}
	var open *infra.ErrCircuitOpen
	if errors.As(err, &open) {
		return "circuit_open"
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "canceled"
	}
	return "upstream"
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

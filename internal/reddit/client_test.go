package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/olgasafonova/reddit-mcp-server/internal/catalog"
	"github.com/olgasafonova/reddit-mcp-server/internal/config"
	apperrors "github.com/olgasafonova/reddit-mcp-server/internal/errors"
)

// newTestClient points a static-token client at a fake Reddit server.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(config.RedditConfig{
		BaseURL:     server.URL,
		UserAgent:   "test-agent/1.0",
		AccessToken: "test-token",
	}, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client, server
}

func TestNewClient_NoCredentials(t *testing.T) {
	_, err := NewClient(config.RedditConfig{})
	if err == nil {
		t.Fatal("expected error without credentials")
	}
	if !apperrors.IsAuth(err) {
		t.Errorf("expected AuthError, got %T: %v", err, err)
	}
}

func TestGrantFor(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.RedditConfig
		want    Grant
		wantErr bool
	}{
		{"static token", config.RedditConfig{AccessToken: "t", ClientID: "id", ClientSecret: "s"}, GrantStatic, false},
		{"password", config.RedditConfig{ClientID: "id", ClientSecret: "s", Username: "u", Password: "p"}, GrantPassword, false},
		{"client credentials", config.RedditConfig{ClientID: "id", ClientSecret: "s"}, GrantClientCredentials, false},
		{"username without secret", config.RedditConfig{ClientID: "id", Username: "u", Password: "p"}, "", true},
		{"nothing", config.RedditConfig{}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := grantFor(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("grantFor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("grantFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCall_SendsAuthUserAgentAndRawJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/r/golang/hot" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "test-agent/1.0" {
			t.Errorf("User-Agent = %q", got)
		}
		q := r.URL.Query()
		if q.Get("raw_json") != "1" {
			t.Errorf("raw_json = %q, want 1", q.Get("raw_json"))
		}
		if q.Get("limit") != "10" {
			t.Errorf("limit = %q, want 10", q.Get("limit"))
		}
		_, _ = w.Write([]byte(`{"kind":"Listing","data":{"children":[]}}`))
	})

	body, err := client.Call(context.Background(), catalog.MustLookup("r_subreddit_hot"), map[string]any{
		"subreddit": "golang",
		"limit":     10,
	})
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if !strings.Contains(string(body), `"Listing"`) {
		t.Errorf("body = %s", body)
	}
}

func TestCall_FormBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Query().Get("raw_json") != "" {
			t.Error("raw_json should only be added to GET requests")
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if r.PostForm.Get("parent") != "t3_abc" || r.PostForm.Get("text") != "hello" {
			t.Errorf("form = %v", r.PostForm)
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	_, err := client.CallTool(context.Background(), "post_comment", map[string]any{
		"parent": "t3_abc",
		"text":   "hello",
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
}

func TestCall_EmptyBodyBecomesObject(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	body, err := client.CallTool(context.Background(), "api_v1_me", nil)
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if string(body) != "{}" {
		t.Errorf("body = %s, want {}", body)
	}
}

func TestCall_NonJSONBodyIsQuoted(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain text"))
	})

	body, err := client.CallTool(context.Background(), "api_v1_me", nil)
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	var s string
	if err := json.Unmarshal(body, &s); err != nil || s != "plain text" {
		t.Errorf("body = %s", body)
	}
}

func TestCall_MissingRequiredParamSendsNothing(t *testing.T) {
	var hits atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})

	_, err := client.CallTool(context.Background(), "r_subreddit_hot", map[string]any{})
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if hits.Load() != 0 {
		t.Errorf("no request should be sent, got %d", hits.Load())
	}
}

func TestCallTool_UnknownTool(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := client.CallTool(context.Background(), "does_not_exist", nil)
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(err.Error(), "unknown tool") {
		t.Errorf("error = %v", err)
	}
}

func TestCall_StatusClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		check   func(error) bool
		wantMsg string
	}{
		{"unauthorized", 401, `{"message": "Unauthorized", "error": 401}`, apperrors.IsAuth, "reddit authorization failed (HTTP 401): Unauthorized"},
		{"forbidden", 403, ``, apperrors.IsAuth, "reddit authorization failed (HTTP 403): Forbidden"},
		{"not found", 404, `{"message": "Not Found", "error": 404}`, apperrors.IsNotFound, "endpoint not found: GET /api/v1/me"},
		{"rate limited with text", 429, "slow down", apperrors.IsRateLimit, "slow down"},
		{"rate limited empty", 429, "", apperrors.IsRateLimit, "Rate limit exceeded. Please try again later."},
		{"json errors", 400, `{"json":{"errors":[["BAD_SR_NAME","that name isn't going to work","sr"]]}}`, apperrors.IsAPI, "Reddit API error: BAD_SR_NAME: that name isn't going to work"},
		{"string error code", 400, `{"error":"INVALID_OPTION","message":"bad option"}`, apperrors.IsAPI, "Reddit API error: INVALID_OPTION: bad option"},
		{"reason and explanation", 409, `{"reason":"ALREADY_EXISTS","explanation":"already there"}`, apperrors.IsAPI, "Reddit API error: ALREADY_EXISTS: already there"},
		{"plain text", 400, "nope", apperrors.IsAPI, "Reddit API error: nope"},
		{"empty", 400, "", apperrors.IsAPI, "Reddit API error: HTTP 400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.CallTool(context.Background(), "api_v1_me", nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !tt.check(err) {
				t.Errorf("unexpected error type %T: %v", err, err)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantMsg)
			}
			if !apperrors.IsClientError(err) && !apperrors.IsRateLimit(err) {
				t.Errorf("%v should be a client error", err)
			}
			if stats := client.CircuitBreakerStats(); stats.ConsecutiveFails != 0 {
				t.Errorf("client errors should not trip the breaker, got %d failures", stats.ConsecutiveFails)
			}
		})
	}
}

func TestCall_ServerErrorRecordsFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.CallTool(context.Background(), "api_v1_me", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if apperrors.IsClientError(err) {
		t.Errorf("5xx should not be a client error: %v", err)
	}
	if stats := client.CircuitBreakerStats(); stats.ConsecutiveFails != 1 {
		t.Errorf("consecutive fails = %d, want 1", stats.ConsecutiveFails)
	}
}

func TestCall_RetriesConfigured(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"name":"spez"}`))
	}))
	defer server.Close()

	client, err := NewClient(config.RedditConfig{
		BaseURL:     server.URL,
		AccessToken: "tok",
		MaxRetries:  1,
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	body, err := client.CallTool(context.Background(), "api_v1_me", nil)
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if string(body) != `{"name":"spez"}` {
		t.Errorf("body = %s", body)
	}
	if hits.Load() != 2 {
		t.Errorf("hits = %d, want 2", hits.Load())
	}
}

func TestCall_WriteNotReplayedAfterServerError(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"json":{"errors":[]}}`))
	}))
	defer server.Close()

	cfg := config.NewDefaultConfig().Reddit
	cfg.BaseURL = server.URL
	cfg.AccessToken = "tok"
	client, err := NewClient(cfg, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	_, err = client.PostCommentMCP(context.Background(), PostCommentArgs{ParentID: "t3_abc", Text: "hi"})
	if err == nil {
		t.Error("expected the 502 to surface as an error")
	}
	if hits.Load() != 1 {
		t.Errorf("upstream hits = %d, want 1: a write must not be sent twice", hits.Load())
	}
}

func TestCall_WriteRetriedAfterRateLimit(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"json":{"errors":[]}}`))
	}))
	defer server.Close()

	client, err := NewClient(config.RedditConfig{BaseURL: server.URL, AccessToken: "tok", MaxRetries: 1})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if _, err := client.PostCommentMCP(context.Background(), PostCommentArgs{ParentID: "t3_abc", Text: "hi"}); err != nil {
		t.Fatalf("PostCommentMCP failed: %v", err)
	}
	if hits.Load() != 2 {
		t.Errorf("upstream hits = %d, want 2", hits.Load())
	}
}

func TestCall_RecordsAttempts(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter)))
	defer otel.SetTracerProvider(prev)

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"name":"spez"}`))
	}))
	defer server.Close()

	client, err := NewClient(config.RedditConfig{BaseURL: server.URL, AccessToken: "tok", MaxRetries: 2})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if _, err := client.CallTool(context.Background(), "api_v1_me", nil); err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}

	var attempts, status int64 = -1, -1
	for _, span := range exporter.GetSpans() {
		if span.Name != "reddit.api" {
			continue
		}
		for _, kv := range span.Attributes {
			switch kv.Key {
			case "reddit.api.attempts":
				attempts = kv.Value.AsInt64()
			case "http.response.status_code":
				status = kv.Value.AsInt64()
			}
		}
	}
	if attempts != 2 {
		t.Errorf("reddit.api.attempts = %d, want 2", attempts)
	}
	if status != http.StatusOK {
		t.Errorf("http.response.status_code = %d, want 200", status)
	}
}

func TestCall_ConcurrentReadsShareOneRequest(t *testing.T) {
	release := make(chan struct{})
	var hits atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		_, _ = w.Write([]byte(`{"name":"spez"}`))
	})

	const callers = 5
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body, err := client.CallTool(context.Background(), "api_v1_me", nil)
			if err == nil && string(body) != `{"name":"spez"}` {
				err = fmt.Errorf("body = %s", body)
			}
			errs <- err
		}()
	}

	deadline := time.Now().Add(5 * time.Second)
	for client.DedupStats().Shared < callers-1 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Error(err)
		}
	}
	if hits.Load() != 1 {
		t.Errorf("upstream hits = %d, want 1", hits.Load())
	}
	if stats := client.DedupStats(); stats.InFlight != 0 {
		t.Errorf("in-flight after completion = %d, want 0", stats.InFlight)
	}
}

// fakeReddit serves both the token endpoint and the API from one server.
func fakeReddit(t *testing.T, wantGrant string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/access_token":
			user, pass, ok := r.BasicAuth()
			if !ok || user != "client-id" || pass != "client-secret" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
				return
			}
			if got := r.Header.Get("User-Agent"); got != "token-agent/1.0" {
				t.Errorf("token request User-Agent = %q", got)
			}
			if err := r.ParseForm(); err != nil {
				t.Fatalf("ParseForm: %v", err)
			}
			if got := r.PostForm.Get("grant_type"); got != wantGrant {
				t.Errorf("grant_type = %q, want %q", got, wantGrant)
			}
			if wantGrant == "password" && (r.PostForm.Get("username") != "spez" || r.PostForm.Get("password") != "hunter2") {
				t.Errorf("password grant form = %v", r.PostForm)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"issued-token","token_type":"bearer","expires_in":3600}`))
		case "/api/v1/me":
			if got := r.Header.Get("Authorization"); got != "Bearer issued-token" {
				t.Errorf("Authorization = %q", got)
			}
			_, _ = w.Write([]byte(`{"name":"spez"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestOAuthGrants(t *testing.T) {
	tests := []struct {
		name      string
		cfg       func(url string) config.RedditConfig
		grant     Grant
		wireGrant string
	}{
		{
			name: "password",
			cfg: func(url string) config.RedditConfig {
				return config.RedditConfig{
					BaseURL: url, TokenURL: url + "/api/v1/access_token", UserAgent: "token-agent/1.0",
					ClientID: "client-id", ClientSecret: "client-secret", Username: "spez", Password: "hunter2",
				}
			},
			grant:     GrantPassword,
			wireGrant: "password",
		},
		{
			name: "client credentials",
			cfg: func(url string) config.RedditConfig {
				return config.RedditConfig{
					BaseURL: url, TokenURL: url + "/api/v1/access_token", UserAgent: "token-agent/1.0",
					ClientID: "client-id", ClientSecret: "client-secret",
				}
			},
			grant:     GrantClientCredentials,
			wireGrant: "client_credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := fakeReddit(t, tt.wireGrant)
			client, err := NewClient(tt.cfg(server.URL))
			if err != nil {
				t.Fatalf("NewClient failed: %v", err)
			}
			if client.Grant() != tt.grant {
				t.Errorf("Grant() = %q, want %q", client.Grant(), tt.grant)
			}

			body, err := client.CallTool(context.Background(), "api_v1_me", nil)
			if err != nil {
				t.Fatalf("CallTool failed: %v", err)
			}
			if string(body) != `{"name":"spez"}` {
				t.Errorf("body = %s", body)
			}
		})
	}
}

func TestOAuthRejectedCredentials(t *testing.T) {
	server := fakeReddit(t, "client_credentials")
	client, err := NewClient(config.RedditConfig{
		BaseURL:      server.URL,
		TokenURL:     server.URL + "/api/v1/access_token",
		UserAgent:    "token-agent/1.0",
		ClientID:     "client-id",
		ClientSecret: "wrong",
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	_, err = client.CallTool(context.Background(), "api_v1_me", nil)
	if !apperrors.IsAuth(err) {
		t.Fatalf("expected AuthError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "invalid_client") {
		t.Errorf("error should carry the OAuth error code: %v", err)
	}
}

func TestParseAPIError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode string
		wantMsg  string
	}{
		{"numeric error equal to status", 403, `{"error":403,"message":"Forbidden"}`, "", "Forbidden"},
		{"numeric error differing from status", 400, `{"error":500,"message":"odd"}`, "500", "odd"},
		{"message repeats code", 400, `{"error":"USER_REQUIRED","message":"USER_REQUIRED"}`, "USER_REQUIRED", ""},
		{"multiple json errors", 400, `{"json":{"errors":[["A","first","x"],["B","second",null]]}}`, "", "A: first, B: second"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseAPIError(tt.status, []byte(tt.body))
			if got.Code != tt.wantCode || got.Message != tt.wantMsg {
				t.Errorf("parseAPIError() = {%q, %q}, want {%q, %q}", got.Code, got.Message, tt.wantCode, tt.wantMsg)
			}
			if got.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", got.StatusCode, tt.status)
			}
		})
	}
}

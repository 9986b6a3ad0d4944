// Package metrics provides Prometheus metrics for the Reddit MCP server.
// It tracks tool calls, Reddit API traffic, retries, circuit breaker state and error rates.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "reddit_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// RedditAPILatency measures Reddit API call latency by endpoint
	RedditAPILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "reddit_api_latency_seconds",
		Help:      "Reddit API call latency by endpoint",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	// RedditAPIRequestsTotal counts Reddit API requests
	RedditAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "reddit_api_requests_total",
		Help:      "Total Reddit API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	// RedditAPIErrors counts Reddit API errors by error code
	RedditAPIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "reddit_api_errors_total",
		Help:      "Reddit API errors by endpoint and error code",
	}, []string{"endpoint", "error_code"})

	// RedditAPIRetries counts API request retries
	RedditAPIRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "reddit_api_retries_total",
		Help:      "Reddit API retry count by reason",
	}, []string{"reason"})

	// CircuitBreakerRejections counts calls refused while the circuit was open
	CircuitBreakerRejections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "circuit_breaker_rejections_total",
		Help:      "Reddit API calls rejected by the open circuit breaker",
	})

	// CircuitBreakerState reports the breaker state (0 closed, 1 open, 2 half-open)
	CircuitBreakerState = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "circuit_breaker_state",
		Help:      "Circuit breaker state: 0 closed, 1 open, 2 half-open",
	})

	// RateLimitRejections counts HTTP requests rejected by the per-IP limiter
	RateLimitRejections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "rate_limit_rejections_total",
		Help:      "Requests rejected due to rate limiting",
	})

	// RateLimitWaits counts requests that had to wait for a free upstream slot
	RateLimitWaits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "rate_limit_waits_total",
		Help:      "Requests that waited for the upstream concurrency semaphore",
	})

	// DedupShared counts read calls answered by an identical in-flight request
	DedupShared = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "dedup_shared_total",
		Help:      "Read requests served from an identical in-flight request",
	}, []string{"endpoint"})

	// AuthFailures counts authentication failures
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "auth_failures_total",
		Help:      "Authentication failure count by reason",
	}, []string{"reason"})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})

	// HTTPRequestsTotal counts HTTP transport requests
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by method and status",
	}, []string{"method", "status"})

	// HTTPRequestDuration measures HTTP request latency
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency distribution",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path"})

	// WriteOperations counts state-changing Reddit calls (POST, PATCH, PUT, DELETE)
	WriteOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "write_operations_total",
		Help:      "Write operations by tool and status",
	}, []string{"tool", "status"})

	// ResponseSize tracks Reddit response body sizes
	ResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "response_size_bytes",
		Help:      "Reddit response size distribution in bytes",
		Buckets:   []float64{100, 1000, 10000, 50000, 100000, 250000, 500000, 1000000},
	}, []string{"endpoint"})
)

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "error"
}

// RecordRequest records a completed tool call with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	RequestsTotal.WithLabelValues(tool, statusLabel(success)).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordAPICall records one Reddit API call. endpoint is the catalog tool name,
// which keeps label cardinality bounded.
func RecordAPICall(endpoint string, duration float64, success bool, errorCode string) {
	RedditAPIRequestsTotal.WithLabelValues(endpoint, statusLabel(success)).Inc()
	RedditAPILatency.WithLabelValues(endpoint).Observe(duration)
	if errorCode != "" {
		RedditAPIErrors.WithLabelValues(endpoint, errorCode).Inc()
	}
}

// RecordRetry records a retried upstream request ("transport", "server_error", "rate_limited")
func RecordRetry(reason string) {
	RedditAPIRetries.WithLabelValues(reason).Inc()
}

// RecordWrite records a state-changing call
func RecordWrite(tool string, success bool) {
	WriteOperations.WithLabelValues(tool, statusLabel(success)).Inc()
}

// RecordResponseSize observes a response body size
func RecordResponseSize(endpoint string, size int) {
	ResponseSize.WithLabelValues(endpoint).Observe(float64(size))
}

// SetCircuitState updates the circuit breaker state gauge
func SetCircuitState(state int) {
	CircuitBreakerState.Set(float64(state))
}

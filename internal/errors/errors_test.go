package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotFoundError
		expected string
	}{
		{
			name: "with resource",
			err: &NotFoundError{
				Resource:   "comment",
				Identifier: "t1_abc123",
			},
			expected: "comment not found: t1_abc123",
		},
		{
			name: "without resource",
			err: &NotFoundError{
				Identifier: "/r/nosuchsub/about",
			},
			expected: "not found: /r/nosuchsub/about",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("NotFoundError.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("comment", "t1_abc123")

	if err.Resource != "comment" {
		t.Errorf("Resource = %q, want %q", err.Resource, "comment")
	}
	if err.Identifier != "t1_abc123" {
		t.Errorf("Identifier = %q, want %q", err.Identifier, "t1_abc123")
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name: "with field and value",
			err: &ValidationError{
				Field:   "timeframe",
				Value:   "decade",
				Message: "must be one of hour, day, week, month, year, all",
			},
			expected: "validation failed for timeframe=\"decade\": must be one of hour, day, week, month, year, all",
		},
		{
			name: "with field only",
			err: &ValidationError{
				Field:   "subreddit",
				Message: "is required",
			},
			expected: "validation failed for subreddit: is required",
		},
		{
			name: "message only",
			err: &ValidationError{
				Message: "invalid input",
			},
			expected: "validation failed: invalid input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRateLimitError_Error(t *testing.T) {
	if got := NewRateLimitError("  ").Error(); got != "Rate limit exceeded. Please try again later." {
		t.Errorf("empty body: got %q", got)
	}
	if got := NewRateLimitError("Too Many Requests\n").Error(); got != "Too Many Requests" {
		t.Errorf("with body: got %q", got)
	}
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{"code and message", &APIError{StatusCode: 200, Code: "SUBREDDIT_NOEXIST", Message: "that subreddit doesn't exist"}, "Reddit API error: SUBREDDIT_NOEXIST: that subreddit doesn't exist"},
		{"code only", &APIError{StatusCode: 400, Code: "BAD_REQUEST"}, "Reddit API error: BAD_REQUEST"},
		{"message only", &APIError{StatusCode: 409, Message: "conflict"}, "Reddit API error: conflict"},
		{"status only", &APIError{StatusCode: 500}, "Reddit API error: HTTP 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("APIError.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIsHelpers(t *testing.T) {
	plainErr := errors.New("some error")
	wrapped := fmt.Errorf("call failed: %w", &AuthError{StatusCode: 401, Message: "invalid token"})

	if !IsNotFound(NewNotFoundError("comment", "t1_x")) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
	if IsNotFound(plainErr) || IsNotFound(nil) {
		t.Error("IsNotFound should return false for plain error and nil")
	}
	if !IsValidation(fmt.Errorf("wrap: %w", NewValidationError("f", "", "bad"))) {
		t.Error("IsValidation should see through wrapping")
	}
	if !IsAuth(wrapped) {
		t.Error("IsAuth should return true for wrapped AuthError")
	}
	if !IsRateLimit(NewRateLimitError("")) {
		t.Error("IsRateLimit should return true for RateLimitError")
	}
	if !IsAPI(&APIError{StatusCode: 400}) {
		t.Error("IsAPI should return true for APIError")
	}
}

func TestIsClientError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"validation", NewValidationError("limit", "0", "out of range"), true},
		{"not found", NewNotFoundError("", "/x"), true},
		{"auth", &AuthError{StatusCode: 403}, true},
		{"api 400", &APIError{StatusCode: 400}, true},
		{"api 502", &APIError{StatusCode: 502}, false},
		{"rate limit", NewRateLimitError(""), false},
		{"plain", errors.New("connection reset"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsClientError(tt.err); got != tt.want {
				t.Errorf("IsClientError() = %v, want %v", got, tt.want)
			}
		})
	}
}

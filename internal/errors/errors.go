// Package errors provides the typed errors returned by the Reddit client and tool layer.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError indicates the requested Reddit resource does not exist.
type NotFoundError struct {
	Resource   string // "comment", "post", "subreddit", "endpoint"
	Identifier string // fullname, subreddit name or request path
}

func (e *NotFoundError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.Identifier)
	}
	return fmt.Sprintf("not found: %s", e.Identifier)
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(resource, identifier string) *NotFoundError {
	return &NotFoundError{
		Resource:   resource,
		Identifier: identifier,
	}
}

// ValidationError indicates invalid input parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value (may be empty for sensitive data)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// AuthError indicates Reddit rejected the credentials (HTTP 401 or 403),
// or that no usable credentials were configured.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("reddit authorization failed (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return "reddit authorization failed: " + e.Message
}

// RateLimitError is returned when Reddit keeps answering 429 after all retries.
// Message carries the response text Reddit sent, if any.
type RateLimitError struct {
	Message string
}

const defaultRateLimitMessage = "Rate limit exceeded. Please try again later."

func (e *RateLimitError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return defaultRateLimitMessage
	}
	return e.Message
}

// NewRateLimitError creates a RateLimitError from the response body.
func NewRateLimitError(body string) *RateLimitError {
	return &RateLimitError{Message: strings.TrimSpace(body)}
}

// APIError is a Reddit-level failure: an HTTP error status, an
// {"error": ...} body or a non-empty json.errors array.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("Reddit API error: %s: %s", e.Code, e.Message)
	case e.Code != "":
		return "Reddit API error: " + e.Code
	case e.Message != "":
		return "Reddit API error: " + e.Message
	default:
		return fmt.Sprintf("Reddit API error: HTTP %d", e.StatusCode)
	}
}

// IsNotFound returns true if the error is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsValidation returns true if the error is or wraps a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsAuth returns true if the error is or wraps an AuthError.
func IsAuth(err error) bool {
	var target *AuthError
	return errors.As(err, &target)
}

// IsRateLimit returns true if the error is or wraps a RateLimitError.
func IsRateLimit(err error) bool {
	var target *RateLimitError
	return errors.As(err, &target)
}

// IsAPI returns true if the error is or wraps an APIError.
func IsAPI(err error) bool {
	var target *APIError
	return errors.As(err, &target)
}

// IsClientError reports whether err was caused by the caller rather than by
// Reddit being unavailable. The circuit breaker ignores these.
func IsClientError(err error) bool {
	if IsValidation(err) || IsNotFound(err) || IsAuth(err) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode < 500
	}
	return false
}

// Package clients provides HTTP client adapters for downstream services.
package clients

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Client errors represent failures in the HTTP client layer.
// These are distinct from domain errors - they represent infrastructure failures
// that should be translated to domain errors by the calling code.
var (
	// ErrRequestFailed is returned when no HTTP response was received
	// (DNS failure, connection refused, timeout, cancellation).
	// The underlying error is wrapped for context.
	ErrRequestFailed = errors.New("request failed")

	// ErrDecode is returned when a successful response body cannot be decoded.
	ErrDecode = errors.New("decoding response body")
)

// StatusError is returned when the downstream service answers with a 4xx or 5xx status.
// It carries the raw status and body so callers can translate it.
type StatusError struct {
	StatusCode int
	Reason     string
	Body       string
}

// NewStatusError builds a StatusError, filling the reason phrase from the status code
// when the response did not carry one.
func NewStatusError(statusCode int, status, body string) *StatusError {
	reason := strings.TrimSpace(strings.TrimPrefix(status, fmt.Sprintf("%d", statusCode)))
	if reason == "" {
		reason = http.StatusText(statusCode)
	}

	return &StatusError{
		StatusCode: statusCode,
		Reason:     reason,
		Body:       strings.TrimSpace(body),
	}
}

// Error renders `<code> <reason>: "<body>"`; the body part is omitted when empty.
func (e *StatusError) Error() string {
	head := strings.TrimSpace(fmt.Sprintf("%d %s", e.StatusCode, e.Reason))
	if e.Body == "" {
		return head
	}

	return fmt.Sprintf("%s: \"%s\"", head, e.Body)
}

// IsNotFound reports whether the downstream answered 404.
func (e *StatusError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// AsStatusError extracts a *StatusError from an error chain.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}

	return nil, false
}

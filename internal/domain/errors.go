// Package domain contains business types and errors.
// Domain errors describe what went wrong and which HTTP status the failure is
// intended to surface as; adapters decide how that reaches the wire.
package domain

import (
	"errors"
	"net/http"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable indicates the upstream failed without a usable client-side status.
	ErrUnavailable = errors.New("unavailable")
)

// Titles carried by domain errors.
const (
	// TitleAPIError marks an upstream failure other than not-found.
	TitleAPIError = "API Error"

	// TitleResourceNotFound marks an upstream 404.
	TitleResourceNotFound = "Resource Not Found"

	// TitleBadRequest marks a local validation failure.
	TitleBadRequest = "Bad Request"

	// TitleNotFound marks a missing resource detected locally.
	TitleNotFound = "Not Found"
)

// Error is the single error carrier between the upstream adapter, the
// application layer and the HTTP error translator.
//
// StatusCode is the intended local HTTP status. Zero means the status is
// unknown and the translator falls back to 500.
type Error struct {
	Detail     string
	Title      string
	StatusCode int
	Cause      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}

	return e.Title
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is maps the intended status onto the package sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnavailable:
		return e.StatusCode == 0 || e.StatusCode >= http.StatusInternalServerError
	default:
		return false
	}
}

// HasStatus reports whether an intended status was recorded.
func (e *Error) HasStatus() bool {
	return e.StatusCode != 0
}

// NewError creates a domain error. A zero statusCode records an unknown status.
func NewError(detail, title string, statusCode int, cause error) error {
	return &Error{
		Detail:     detail,
		Title:      title,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

// NewAPIError creates an "API Error" for a failed upstream call.
func NewAPIError(detail string, statusCode int, cause error) error {
	return NewError(detail, TitleAPIError, statusCode, cause)
}

// NewResourceNotFoundError creates a 404 "Resource Not Found" for an upstream 404.
func NewResourceNotFoundError(detail string, cause error) error {
	return NewError(detail, TitleResourceNotFound, http.StatusNotFound, cause)
}

// NewBadRequestError creates a 400 "Bad Request" for invalid local input.
func NewBadRequestError(detail string) error {
	return NewError(detail, TitleBadRequest, http.StatusBadRequest, nil)
}

// NewNotFoundError creates a 404 "Not Found" for a missing resource detected locally.
func NewNotFoundError(detail string) error {
	return NewError(detail, TitleNotFound, http.StatusNotFound, nil)
}

// AsError extracts a *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr, true
	}

	return nil, false
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnavailable reports whether err is a server-side failure: an upstream 5xx
// or a call that produced no status at all.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

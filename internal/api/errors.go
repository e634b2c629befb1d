package api

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// ErrorType represents the category of error that occurred while talking
// to the inventory backend.
type ErrorType int

const (
	// ErrTypeNetwork indicates a transport-level error (connection
	// refused, timeout, DNS failure).
	ErrTypeNetwork ErrorType = iota
	// ErrTypeAuth indicates an authentication failure (401).
	ErrTypeAuth
	// ErrTypeHTTP indicates a non-2xx response.
	ErrTypeHTTP
	// ErrTypeParse indicates an undecodable response body.
	ErrTypeParse
	// ErrTypeApp indicates an application-level failure: a 2xx response
	// whose payload carries success=false.
	ErrTypeApp
)

// String returns a human-readable name for the error type.
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeAuth:
		return "Authentication Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeApp:
		return "Request Failed"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error represents an error from a backend operation.
type Error struct {
	Type       ErrorType
	Message    string
	StatusCode int    // HTTP status code, when applicable
	Err        error  // underlying error, when any
	Body       []byte // raw response body, kept for diagnostic display
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a transport-level error, classifying common
// net errors into a friendlier message.
func NewNetworkError(message string, err error) *Error {
	return &Error{Type: ErrTypeNetwork, Message: refineNetworkMessage(message, err), Err: err}
}

// NewAuthError creates an authentication error.
func NewAuthError(message string) *Error {
	return &Error{Type: ErrTypeAuth, Message: message, StatusCode: 401}
}

// NewHTTPError creates an HTTP status error.
func NewHTTPError(statusCode int, message string, body []byte) *Error {
	return &Error{Type: ErrTypeHTTP, Message: message, StatusCode: statusCode, Body: body}
}

// NewParseError creates a response parsing error.
func NewParseError(message string, err error) *Error {
	return &Error{Type: ErrTypeParse, Message: message, Err: err}
}

// NewAppError creates an application-level failure from a success=false
// payload. message should already be the extracted human-readable reason.
func NewAppError(message string, body []byte) *Error {
	return &Error{Type: ErrTypeApp, Message: message, Body: body}
}

// AsError extracts an *Error from an error chain. Returns nil when the
// chain contains no backend error.
func AsError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// IsAuthError reports whether the error chain contains an authentication
// failure. Callers use this to prompt for new credentials rather than
// surfacing a generic failure.
func IsAuthError(err error) bool {
	apiErr := AsError(err)
	return apiErr != nil && apiErr.Type == ErrTypeAuth
}

// refineNetworkMessage sharpens the message for well-known transport
// failures so operators see "connection refused" rather than Go's full
// syscall error text.
func refineNetworkMessage(message string, err error) string {
	if err == nil {
		return message
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return message + ": request timed out"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return message + ": request timed out"
	}

	s := err.Error()
	switch {
	case strings.Contains(s, "connection refused"):
		return message + ": connection refused (is the backend running?)"
	case strings.Contains(s, "no such host"):
		return message + ": cannot resolve backend hostname"
	}
	return message
}

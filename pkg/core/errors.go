package core

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the category of a client error.
type ErrorType int

// Error type constants categorize every failure the client reports.
const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeNotAuthenticated indicates an authenticated call was attempted without a token.
	ErrorTypeNotAuthenticated
	// ErrorTypeTransport indicates a network error, timeout or non-2xx response.
	ErrorTypeTransport
	// ErrorTypeDecode indicates the response body did not fit the expected shape.
	ErrorTypeDecode
	// ErrorTypeUnsupportedVerb indicates a verb the dispatcher does not send.
	ErrorTypeUnsupportedVerb
	// ErrorTypeNoNextPage indicates a paginated list was advanced past its last page.
	ErrorTypeNoNextPage
	// ErrorTypeAccountResolution indicates login got a token but no account number.
	ErrorTypeAccountResolution
	// ErrorTypeInvalidRequest indicates a malformed request descriptor.
	ErrorTypeInvalidRequest
	// ErrorTypeNotFound indicates a lookup matched nothing.
	ErrorTypeNotFound
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	names := [...]string{
		"UNKNOWN",
		"NOT_AUTHENTICATED",
		"TRANSPORT_FAILURE",
		"DECODE_FAILURE",
		"UNSUPPORTED_VERB",
		"NO_NEXT_PAGE",
		"ACCOUNT_RESOLUTION_FAILED",
		"INVALID_REQUEST",
		"NOT_FOUND",
	}
	if t < 0 || int(t) >= len(names) {
		return "UNKNOWN"
	}
	return names[t]
}

// Sentinel errors for common error conditions.
var (
	// ErrClientClosed is returned when attempting to use a closed client.
	ErrClientClosed = errors.New("client is closed")
)

// Error is the structured error returned by every client operation.
type Error struct {
	// Type categorizes the error for programmatic handling.
	Type ErrorType `json:"type"`
	// StatusCode is the HTTP status code, when a response was received.
	StatusCode int `json:"status_code,omitempty"`
	// Message is the human-readable error description.
	Message string `json:"message"`
	// Body holds the raw response body for diagnostics.
	Body []byte `json:"body,omitempty"`
	// Cause is the underlying error, if any.
	Cause error `json:"-"`
	// Timestamp is when the error occurred.
	Timestamp time.Time `json:"timestamp"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	var msg string
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (%d): %s", e.Type, e.StatusCode, e.Message)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithStatus sets the HTTP status code and returns the error for chaining.
func (e *Error) WithStatus(code int) *Error {
	e.StatusCode = code
	return e
}

// WithBody attaches the raw response body and returns the error for chaining.
func (e *Error) WithBody(body []byte) *Error {
	e.Body = body
	return e
}

// NewError creates an Error of the given type. The timestamp is set to now.
func NewError(errorType ErrorType, message string) *Error {
	return &Error{
		Type:      errorType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Errorf creates an Error with a formatted message.
func Errorf(errorType ErrorType, format string, args ...any) *Error {
	return NewError(errorType, fmt.Sprintf(format, args...))
}

// WrapError creates an Error that wraps cause.
func WrapError(errorType ErrorType, message string, cause error) *Error {
	e := NewError(errorType, message)
	e.Cause = cause
	return e
}

// TypeOf returns the ErrorType carried by err, or ErrorTypeUnknown.
func TypeOf(err error) ErrorType {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return ErrorTypeUnknown
}

// IsType reports whether err carries the given ErrorType.
func IsType(err error, t ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == t
}

// IsNotAuthenticated returns true if err is a missing-token failure.
func IsNotAuthenticated(err error) bool {
	return IsType(err, ErrorTypeNotAuthenticated)
}

// IsTransportFailure returns true if err is a network or HTTP status failure.
func IsTransportFailure(err error) bool {
	return IsType(err, ErrorTypeTransport)
}

// IsDecodeFailure returns true if the response body could not be decoded.
func IsDecodeFailure(err error) bool {
	return IsType(err, ErrorTypeDecode)
}

// IsUnsupportedVerb returns true if err rejects the request verb.
func IsUnsupportedVerb(err error) bool {
	return IsType(err, ErrorTypeUnsupportedVerb)
}

// IsNoNextPage returns true if err reports an exhausted paginated list.
func IsNoNextPage(err error) bool {
	return IsType(err, ErrorTypeNoNextPage)
}

// IsAccountResolutionFailed returns true if login could not resolve an account.
func IsAccountResolutionFailed(err error) bool {
	return IsType(err, ErrorTypeAccountResolution)
}

// IsNotFound returns true if a lookup matched nothing.
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

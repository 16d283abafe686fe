package apiclient

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBaseURL indicates the configured base URL cannot be parsed.
	ErrInvalidBaseURL = errors.New("apiclient.invalid_base_url")

	// ErrInvalidEndpoint indicates the endpoint is empty or malformed.
	ErrInvalidEndpoint = errors.New("apiclient.invalid_endpoint")
)

// fallbackMessage is used when a failure response carries no parsable detail.
const fallbackMessage = "An error occurred"

// APIError is an application-level failure: the backend answered with a
// non-success status and, usually, a human-readable detail message.
type APIError struct {
	// Status is the HTTP status code returned by the backend.
	Status int
	// Message is the body's "detail" field when present, otherwise a
	// generic fallback.
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// TransportError is a network-level failure: the request never produced a
// response (DNS failure, connection refused, timeout, cancelled context).
// Callers distinguish it from APIError with errors.As.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsAPIError reports whether err is an application-level backend failure.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsTransportError reports whether err is a network-level failure.
func IsTransportError(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

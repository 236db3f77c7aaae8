package rpc

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport indicates the upstream answered with a non-success status.
	ErrTransport = errors.New("upstream request failed")

	// ErrUnavailable indicates the upstream API is unreachable.
	ErrUnavailable = errors.New("upstream api unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("upstream request timed out")

	// ErrNotFound indicates the upstream resource does not exist.
	ErrNotFound = errors.New("upstream resource not found")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("upstream retry attempts exhausted")

	// ErrDecode indicates the response body could not be decoded.
	ErrDecode = errors.New("invalid upstream response body")
)

// StatusError carries the HTTP status of a failed call. It unwraps to
// ErrTransport, or ErrNotFound for 404.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	if e.Code == 404 {
		return ErrNotFound
	}
	return ErrTransport
}

// IsTransportFailure reports whether err came from the transport layer
// rather than from local validation or decoding.
func IsTransportFailure(err error) bool {
	return errors.Is(err, ErrTransport) ||
		errors.Is(err, ErrUnavailable) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrRetryExhausted)
}

package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers transport failures, timeouts and 5xx responses
	// where the backend could not be reached or gave no usable answer.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized maps 401/403 responses on authenticated calls.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response the caller is expected to handle locally
// (validation messages, "plan not found", ...). The boundary never swallows
// or transforms these beyond decoding the envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

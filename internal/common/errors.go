package common

import "errors"

// Sentinel errors shared between client layers. Callers should use
// errors.Is to match these values.

var (
	// Validation / input errors.
	ErrEmptyInput   = errors.New("empty input")
	ErrInvalidRole  = errors.New("invalid role")
	ErrInvalidPrice = errors.New("invalid price")

	// Session errors.
	ErrNotAuthenticated = errors.New("not authenticated")
)

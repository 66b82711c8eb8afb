// Package common contains shared constants and sentinel errors used across
// Anuncia client components.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix is prepended to the token inside the authorization header.
	BearerPrefix = "Bearer "

	// IdempotencyKeyHeaderName lets the backend deduplicate retried mutations.
	IdempotencyKeyHeaderName = "X-Idempotency-Key"
)

// Package common defines shared constants and sentinel errors used across
// the MessMate client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Remote API failure classes. ErrUnauthorized means the server
	// explicitly rejected the credentials or token (HTTP 401/403).
	// ErrUnavailable covers timeouts, connectivity failures and server
	// errors, where the credential itself is not known to be bad.
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")

	// Session errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrNotSignedIn  = errors.New("not signed in")
)

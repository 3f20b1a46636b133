package common

import "errors"

// Sentinel errors for the engine's failure taxonomy. Callers should use
// errors.Is to match these values; call sites add context with fmt.Errorf
// and %w so the sentinel survives wrapping.
var (
	// Validation / local flow control.
	ErrValidation        = errors.New("please fill in all fields")
	ErrDuplicateUsername = errors.New("username already exists")

	// Provider-originated failures.
	ErrAuth   = errors.New("authentication failed")
	ErrUpload = errors.New("upload failed")
	ErrFetch  = errors.New("fetch failed")
	ErrWrite  = errors.New("write failed")

	// ErrSession means an operation that requires a signed-in user found
	// no user id. Handlers force a sign-out to return to a known-good state.
	ErrSession = errors.New("session unavailable")

	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Token lifecycle errors (shared with the backend contract).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

package session

import "errors"

var (
	// ErrSessionNotFound indicates no session credential was presented or
	// the credential does not map to a stored session.
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrSessionExpired indicates the session has expired.
	ErrSessionExpired = errors.New("session.expired")

	// ErrInvalidSession indicates a malformed or unusable session record.
	ErrInvalidSession = errors.New("session.invalid")

	// ErrTokenGeneration indicates random token generation failed.
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrStoreUnavailable indicates the backing store could not be reached.
	// Distinct from ErrSessionNotFound so callers can tell "anonymous"
	// apart from "infrastructure down".
	ErrStoreUnavailable = errors.New("session.store_unavailable")
)

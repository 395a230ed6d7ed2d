package cookie

import "errors"

var (
	// ErrNoSecret is returned when the manager is created without secrets.
	ErrNoSecret = errors.New("cookie.no_secret")

	// ErrSecretTooShort is returned for secrets under the minimum length.
	ErrSecretTooShort = errors.New("cookie.secret_too_short")

	// ErrCookieNotFound is returned when the request has no such cookie.
	ErrCookieNotFound = errors.New("cookie.not_found")

	// ErrDecryptionFailed is returned when no configured secret can decrypt
	// the cookie value. Tampered or truncated values end up here too.
	ErrDecryptionFailed = errors.New("cookie.decryption_failed")
)

package fleetbackend

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/manyinyire/fleetbackend-sub008/pkg/auth"
	"github.com/manyinyire/fleetbackend-sub008/pkg/pg"
	"github.com/manyinyire/fleetbackend-sub008/pkg/rbac"
	"github.com/manyinyire/fleetbackend-sub008/pkg/tenant"
)

// Error is an error with an explicit HTTP status. Handlers return it when
// the default translation is not specific enough; Message is the client-
// visible text, the wrapped error stays server-side.
type Error struct {
	Status  int
	Message string
	err     error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Message, e.err)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.err }

// NewError creates an Error with an HTTP status and client-visible message,
// optionally wrapping a cause.
func NewError(status int, message string, cause error) *Error {
	return &Error{Status: status, Message: message, err: cause}
}

// NotFound is a 404 Error.
func NotFound(message string) *Error {
	return NewError(http.StatusNotFound, message, nil)
}

// BadRequest is a 400 Error.
func BadRequest(message string) *Error {
	return NewError(http.StatusBadRequest, message, nil)
}

// translate maps a handler or guard error to an HTTP status and the
// client-visible message. Internal detail never leaks: anything unrecognized
// collapses to a generic 500.
func translate(err error) (int, string) {
	var httpErr *Error
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Status, httpErr.Message
	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized, "Authentication required"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, auth.ErrForbidden),
		errors.Is(err, rbac.ErrInsufficientPermissions),
		errors.Is(err, rbac.ErrInvalidRole),
		errors.Is(err, tenant.ErrTenantNotFound),
		errors.Is(err, tenant.ErrTenantInactive),
		pg.IsInsufficientPrivilegeError(err):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, auth.ErrTenantRequired):
		return http.StatusBadRequest, "Tenant required"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

package tenantdb

import "errors"

var (
	// ErrInvalidTenant indicates a scoped handle was requested for the zero
	// tenant id. Binding an empty id would silently widen the row filter, so
	// it is rejected before touching the database.
	ErrInvalidTenant = errors.New("tenantdb.invalid_tenant")

	// ErrBindFailed indicates the tenant session variable could not be set.
	// The transaction is rolled back; no statement runs unscoped.
	ErrBindFailed = errors.New("tenantdb.bind_failed")

	// ErrBeginFailed indicates a transaction could not be started.
	ErrBeginFailed = errors.New("tenantdb.begin_failed")
)

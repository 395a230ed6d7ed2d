// Package tenantdb enforces tenant isolation at the database layer.
//
// Isolation rides on postgres row-level security: every tenant-owned table
// carries a policy comparing its tenant_id column against the
// app.current_tenant session variable. Bind sets that variable
// transaction-locally, so a binding can never outlive its transaction or
// leak across pooled connections, and the Factory is the only source of
// handles, so no statement path can skip the bind. A failed bind rolls the
// transaction back rather than proceeding unscoped.
package tenantdb

// Package rbac maps role names to permission scopes with inheritance.
//
// It complements the coarse role hierarchy enforced by the auth guards:
// guards answer "is this at least a tenant admin", rbac answers "may this
// role manage members". Roles stay separate composable checks rather than a
// single declarative policy table.
package rbac

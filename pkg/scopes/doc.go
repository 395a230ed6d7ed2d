// Package scopes implements hierarchical permission scope matching with
// wildcard support ("vehicles.*", "*"). It backs the rbac package.
package scopes

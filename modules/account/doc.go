// Package account serves the authentication endpoints: password login,
// logout, the current principal, and bulk session revocation.
package account

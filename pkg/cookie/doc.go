// Package cookie manages HTTP cookies with optional AES-GCM encryption and
// key rotation support. The session cookie transport is built on top of it.
package cookie

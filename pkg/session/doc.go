// Package session recovers server-side sessions from request credentials.
//
// Credentials travel over pluggable transports (encrypted cookie for
// browsers, signed JWT bearer token for API clients); session state lives
// in a pluggable store (Redis in production, memory in tests). The
// authorization core reads sessions on every request and never caches them,
// so bans and logouts take effect immediately.
package session

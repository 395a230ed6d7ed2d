// Package redis provides Redis connectivity with startup retry and a
// health check compatible with the server's readiness probes.
package redis

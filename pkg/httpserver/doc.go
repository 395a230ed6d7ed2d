// Package httpserver runs the HTTP listener with graceful shutdown on
// context cancellation or OS signals, plus liveness and readiness probes.
package httpserver

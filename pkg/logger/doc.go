// Package logger builds configured slog loggers with automatic injection of
// request-scoped attributes (request id, tenant id, principal id) via
// context extractors.
package logger

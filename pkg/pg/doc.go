// Package pg provides PostgreSQL connectivity: pooled connections with
// startup retry, goose migrations, health checks, and helpers for
// classifying common postgres errors.
package pg

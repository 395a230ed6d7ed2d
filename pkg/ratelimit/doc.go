// Package ratelimit is a fixed-window rate limiter used to throttle
// credential guessing on the login endpoint. Counters live in redis in
// production and in memory for tests.
package ratelimit

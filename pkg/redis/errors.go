package redis

import "errors"

var (
	// ErrFailedToParseConnString is returned for malformed connection URLs.
	ErrFailedToParseConnString = errors.New("redis.failed_to_parse_connection_string")

	// ErrRedisNotReady is returned when all connection attempts fail.
	ErrRedisNotReady = errors.New("redis.not_ready")

	// ErrHealthcheckFailed is returned when the ping fails after connect.
	ErrHealthcheckFailed = errors.New("redis.healthcheck_failed")
)

// Package requestid correlates log lines across a request. The middleware
// picks or generates an id per request, propagates it through the context
// and echoes it back in the X-Request-ID response header.
package requestid

package session

import (
	"net/http"
	"time"
)

// CompositeTransport tries multiple transports in order. The first transport
// that yields a token wins on reads; the primary (first) transport is used
// for writes.
type CompositeTransport struct {
	transports []Transport
}

// NewCompositeTransport creates a transport chain. Typical setup: cookie
// first for browsers, bearer second for API clients.
func NewCompositeTransport(transports ...Transport) *CompositeTransport {
	return &CompositeTransport{transports: transports}
}

func (t *CompositeTransport) GetToken(r *http.Request) (string, error) {
	for _, transport := range t.transports {
		if token, err := transport.GetToken(r); err == nil && token != "" {
			return token, nil
		}
	}
	return "", ErrSessionNotFound
}

func (t *CompositeTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	if len(t.transports) == 0 {
		return ErrSessionNotFound
	}
	return t.transports[0].SetToken(w, token, ttl)
}

func (t *CompositeTransport) ClearToken(w http.ResponseWriter) error {
	var firstErr error
	for _, transport := range t.transports {
		if err := transport.ClearToken(w); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

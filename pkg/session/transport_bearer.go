package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

// bearerClaims wraps the opaque session token in a signed JWT so API
// clients cannot forge or tamper with the credential in transit.
type bearerClaims struct {
	SessionToken string `json:"sid"`
	jwt.RegisteredClaims
}

// BearerTransport carries the session token inside a signed JWT in the
// Authorization header, for API clients that do not use cookies.
type BearerTransport struct {
	secret []byte
	issuer string
}

// NewBearerTransport creates a header-based transport signing tokens with
// HMAC-SHA256.
func NewBearerTransport(secret, issuer string) *BearerTransport {
	return &BearerTransport{secret: []byte(secret), issuer: issuer}
}

func (t *BearerTransport) GetToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", ErrSessionNotFound
	}

	raw := strings.TrimPrefix(header, bearerPrefix)

	claims := &bearerClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithIssuer(t.issuer), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid || claims.SessionToken == "" {
		// An unparseable bearer token is indistinguishable from no
		// credential for the caller; the store decides expiry.
		return "", ErrSessionNotFound
	}

	return claims.SessionToken, nil
}

func (t *BearerTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	now := time.Now()
	claims := &bearerClaims{
		SessionToken: token,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return err
	}

	w.Header().Set("Authorization", bearerPrefix+signed)
	return nil
}

func (t *BearerTransport) ClearToken(w http.ResponseWriter) error {
	w.Header().Del("Authorization")
	return nil
}

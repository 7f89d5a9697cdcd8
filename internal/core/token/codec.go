// Package token issues and verifies the signed, time-limited credentials that
// identify users and admins. A credential carries a username and a role claim
// and is signed with a process-wide symmetric secret (HS256).
//
// There is no revocation list: logout only clears the client's cookie, so an
// issued token stays verifiable until it expires.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// sessionTTL applies when the client did not ask to be remembered.
	// The same pair of TTLs applies to admin credentials.
	sessionTTL = 30 * time.Minute
	// persistentTTL applies when the client checked "remember me".
	persistentTTL = 10 * 24 * time.Hour
)

var ErrEmptySecret = errors.New("token: signing secret is empty")
var ErrTokenMissing = errors.New("token: no token supplied")
var ErrTokenInvalid = errors.New("token: invalid token")
var ErrTokenExpired = errors.New("token: token expired")

// Claims is the payload embedded in every credential.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies credentials. The secret is loaded once at startup
// and read-only afterwards, so a Codec is safe for concurrent use.
type Codec struct {
	secret []byte
	now    func() time.Time
}

// NewCodec returns a Codec signing with the given secret. An empty secret is
// a configuration error and must abort startup.
func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Codec{secret: []byte(secret), now: time.Now}, nil
}

// WithClock overrides the codec's time source. Intended for tests.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	c.now = now
	return c
}

// Issue produces a signed credential for the given identity and role.
// Expiry is persistentTTL when persistent is true, sessionTTL otherwise.
func (c *Codec) Issue(username, role string, persistent bool) (string, time.Time, error) {
	ttl := sessionTTL
	if persistent {
		ttl = persistentTTL
	}

	now := c.now().UTC()
	expiresAt := now.Add(ttl)

	claims := Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify decodes raw and checks its signature and expiry. It is a pure
// function of the token, the secret, and the current time; no state is read
// or written.
//
// Errors are one of ErrTokenMissing (empty input), ErrTokenExpired (past
// expiry, distinguished so callers can message it), or ErrTokenInvalid
// (anything else).
func (c *Codec) Verify(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrTokenMissing
	}

	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !tkn.Valid || claims.Username == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

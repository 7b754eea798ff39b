// Package token creates and verifies the signed, time-bound identity tokens
// used by the auth guard. Tokens are stateless: a valid signature and an
// unexpired timestamp are the only proof of identity, and expiry is the only
// invalidation mechanism.
package token

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shelterworks/shelter-api/internal/core/domain"
)

const defaultTTL = time.Hour

// Claims is the identity payload carried by every issued token.
// The user id travels in the registered "sub" claim.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the subject as a numeric user id, or 0 when malformed.
func (c *Claims) UserID() int {
	id, err := strconv.Atoi(c.Subject)
	if err != nil {
		return 0
	}
	return id
}

// Codec signs and verifies identity tokens with a process-wide secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec returns a Codec signing HS256 tokens that expire after ttl.
// A non-positive ttl falls back to one hour.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue encodes the identity fields plus an expiry of now + TTL and signs
// the result, returning an opaque token string.
func (c *Codec) Issue(userID int, username, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify decodes a token and checks its signature and expiry. It fails with
// domain.ErrInvalidToken on a tampered signature, malformed encoding, wrong
// signing algorithm, or expiry in the past.
func (c *Codec) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// Package auth provides the identity token service: signing and verifying
// the stateless bearer tokens that carry a user's email.
//
// Tokens are HS256 JWTs with a 7-day validity window. There is no server-side
// revocation list; an issued token stays valid until it expires. That is a
// documented limitation of the stateless design, not something to patch here.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the validity window of every issued token.
const TokenTTL = 7 * 24 * time.Hour

// Role is the access level stored on a user record.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// Claims is the typed JWT payload. Email is the only application claim;
// everything else lives in the registered claims.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ErrInvalidToken is returned by Verify for any token that does not pass:
// malformed, expired, or carrying a bad signature.
var ErrInvalidToken = errors.New("auth: invalid token")

// Tokens signs and verifies session tokens with an injected secret.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

// NewTokens builds a token service around the process-wide signing secret.
func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: TokenTTL}
}

// Sign issues a token embedding the given email, expiring after TokenTTL.
func (t *Tokens) Sign(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses and validates a token string and returns its claims.
// It is a pure function of (token, secret, current time).
func (t *Tokens) Verify(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

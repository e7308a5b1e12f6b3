package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wazihas/boutique/pkg/auth"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	tokens := auth.NewTokens("test-secret")

	signed, err := tokens.Sign("shopper@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "shopper@example.com", claims.Email)

	exp := claims.ExpiresAt.Time
	assert.WithinDuration(t, time.Now().Add(auth.TokenTTL), exp, time.Minute)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := auth.NewTokens("secret-a").Sign("shopper@example.com")
	require.NoError(t, err)

	_, err = auth.NewTokens("secret-b").Verify(signed)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tokens := auth.NewTokens("test-secret")

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := tokens.Verify(tok)
		assert.ErrorIs(t, err, auth.ErrInvalidToken, "token %q", tok)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	// Sign an already-expired token with the same secret and algorithm.
	claims := auth.Claims{
		Email: "shopper@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = auth.NewTokens("test-secret").Verify(signed)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	// alg=none must never pass, whatever the payload says.
	claims := auth.Claims{
		Email: "shopper@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = auth.NewTokens("test-secret").Verify(signed)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRoleValid(t *testing.T) {
	assert.True(t, auth.RoleUser.Valid())
	assert.True(t, auth.RoleAdmin.Valid())
	assert.False(t, auth.Role("superadmin").Valid())
	assert.False(t, auth.Role("").Valid())
}

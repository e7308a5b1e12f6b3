package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wazihas/boutique/pkg/auth"
	"github.com/wazihas/boutique/pkg/middleware"
)

// fakeVerifier accepts exactly one token string.
type fakeVerifier struct {
	valid  string
	claims *auth.Claims
}

func (f *fakeVerifier) Verify(token string) (*auth.Claims, error) {
	if token == f.valid {
		return f.claims, nil
	}
	return nil, auth.ErrInvalidToken
}

// fakeRoles maps emails to roles; lookupErr forces a store failure.
type fakeRoles struct {
	roles     map[string]auth.Role
	lookupErr error
}

func (f *fakeRoles) RoleByEmail(_ context.Context, email string) (auth.Role, error) {
	if f.lookupErr != nil {
		return "", f.lookupErr
	}
	if role, ok := f.roles[email]; ok {
		return role, nil
	}
	return auth.RoleUser, nil
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["message"]
}

func TestAuthenticateMissingHeader(t *testing.T) {
	calls := 0
	handler := middleware.Authenticate(&fakeVerifier{})(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) { calls++ }))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized access", messageOf(t, rec))
	assert.Zero(t, calls, "handler must not run without a token")
}

func TestAuthenticateBadToken(t *testing.T) {
	calls := 0
	handler := middleware.Authenticate(&fakeVerifier{valid: "good"})(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) { calls++ }))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Forbidden access", messageOf(t, rec))
	assert.Zero(t, calls)
}

func TestAuthenticateAttachesPrincipal(t *testing.T) {
	claims := &auth.Claims{Email: "shopper@example.com"}
	verifier := &fakeVerifier{valid: "good", claims: claims}

	var got *auth.Claims
	handler := middleware.Authenticate(verifier)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			got, _ = middleware.Principal(r.Context())
		}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "shopper@example.com", got.Email)
}

func adminRequest(email string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	ctx := middleware.WithPrincipal(req.Context(), &auth.Claims{Email: email})
	return req.WithContext(ctx)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	roles := &fakeRoles{roles: map[string]auth.Role{"boss@example.com": auth.RoleAdmin}}

	calls := 0
	handler := middleware.RequireAdmin(roles)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) { calls++ }))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, adminRequest("boss@example.com"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, calls)
}

func TestRequireAdminRejectsRegularUser(t *testing.T) {
	roles := &fakeRoles{roles: map[string]auth.Role{}}

	calls := 0
	handler := middleware.RequireAdmin(roles)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) { calls++ }))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, adminRequest("shopper@example.com"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Admin only access", messageOf(t, rec))
	assert.Zero(t, calls)
}

func TestRequireAdminRejectsUnknownRoleValue(t *testing.T) {
	roles := &fakeRoles{roles: map[string]auth.Role{"odd@example.com": "superuser"}}

	handler := middleware.RequireAdmin(roles)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, adminRequest("odd@example.com"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Admin only access", messageOf(t, rec))
}

func TestRequireAdminWithoutPrincipal(t *testing.T) {
	// Composed without Authenticate in front: a wiring bug, not a client error.
	handler := middleware.RequireAdmin(&fakeRoles{})(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequireAdminLookupFailure(t *testing.T) {
	roles := &fakeRoles{lookupErr: errors.New("store down")}

	handler := middleware.RequireAdmin(roles)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, adminRequest("boss@example.com"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "store down", messageOf(t, rec))
}

func TestAuthenticateThenRequireAdminChain(t *testing.T) {
	claims := &auth.Claims{Email: "boss@example.com"}
	verifier := &fakeVerifier{valid: "good", claims: claims}
	roles := &fakeRoles{roles: map[string]auth.Role{"boss@example.com": auth.RoleAdmin}}

	calls := 0
	var handler http.Handler = http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) { calls++ })
	handler = middleware.RequireAdmin(roles)(handler)
	handler = middleware.Authenticate(verifier)(handler)

	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, calls)
}

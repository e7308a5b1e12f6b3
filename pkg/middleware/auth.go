package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/wazihas/boutique/pkg/auth"
	"github.com/wazihas/boutique/pkg/logger"
	"github.com/wazihas/boutique/pkg/response"
)

// principalKey is the unexported context key holding the decoded claims.
type principalKey struct{}

// Principal returns the claims attached by Authenticate. The second return
// is false when the request never passed the authentication guard.
func Principal(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(principalKey{}).(*auth.Claims)
	return claims, ok
}

// WithPrincipal stores claims in ctx. Exposed for handler tests.
func WithPrincipal(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, principalKey{}, claims)
}

// TokenVerifier verifies a bearer token string. *auth.Tokens satisfies it.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// RoleFinder resolves the role stored for an email. Unknown emails resolve
// to the default role rather than an error.
type RoleFinder interface {
	RoleByEmail(ctx context.Context, email string) (auth.Role, error)
}

// Authenticate requires an `Authorization: Bearer <token>` header.
//
// A missing header short-circuits with 401; a header whose token fails
// verification (expired, malformed, bad signature) short-circuits with 403.
// On success the decoded claims are attached to the request context and the
// chain continues.
func Authenticate(tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				response.Message(w, http.StatusUnauthorized, "Unauthorized access")
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")

			claims, err := tokens.Verify(token)
			if err != nil {
				response.Message(w, http.StatusForbidden, "Forbidden access")
				return
			}

			ctx := WithPrincipal(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin allows the request through only when the principal's stored
// role is admin. It must be composed after Authenticate; a request without a
// principal is a wiring bug and fails with 500. Role-lookup failures also
// surface as 500 rather than being swallowed.
func RequireAdmin(roles RoleFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := Principal(r.Context())
			if !ok {
				logger.WithCtx(r.Context()).Error("RequireAdmin mounted without Authenticate")
				response.Message(w, http.StatusInternalServerError, "Internal Server Error")
				return
			}

			role, err := roles.RoleByEmail(r.Context(), claims.Email)
			if err != nil {
				response.Message(w, http.StatusInternalServerError, err.Error())
				return
			}

			switch role {
			case auth.RoleAdmin:
				next.ServeHTTP(w, r)
			case auth.RoleUser:
				response.Message(w, http.StatusForbidden, "Admin only access")
			default:
				// Unknown role value in the store; treat as not elevated.
				response.Message(w, http.StatusForbidden, "Admin only access")
			}
		})
	}
}

// Package controllers holds the HTTP handlers. Controllers accept the
// narrow interfaces they need so tests can substitute fakes for the store
// and the blob store.
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wazihas/boutique/app/repositories"
	"github.com/wazihas/boutique/pkg/logger"
	"github.com/wazihas/boutique/pkg/response"
)

// TokenIssuer issues a session token for a registered email.
type TokenIssuer interface {
	IssueToken(ctx context.Context, email string) (string, error)
}

// AuthController serves the token-issuance endpoint.
type AuthController struct {
	service TokenIssuer
}

func NewAuthController(service TokenIssuer) *AuthController {
	return &AuthController{service: service}
}

// IssueToken handles POST /jwt. The email must belong to a registered user;
// the response is `{"token": ...}`.
func (c *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
		response.Message(w, http.StatusBadRequest, "Email required")
		return
	}

	token, err := c.service.IssueToken(r.Context(), body.Email)
	if errors.Is(err, repositories.ErrNotFound) {
		response.Message(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("issue token", "error", err)
		response.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"token": token})
}

package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wazihas/boutique/app/models"
	"github.com/wazihas/boutique/app/repositories"
	"github.com/wazihas/boutique/pkg/auth"
	"github.com/wazihas/boutique/pkg/logger"
	"github.com/wazihas/boutique/pkg/response"
	"github.com/wazihas/boutique/pkg/validate"
)

// UserStore is the slice of the user repository the controller consumes.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	All(ctx context.Context) ([]models.User, error)
	SetRole(ctx context.Context, id string, role auth.Role) (repositories.UpdateCounts, error)
	Delete(ctx context.Context, id string) (int64, error)
	RoleByEmail(ctx context.Context, email string) (auth.Role, error)
}

// UserController serves registration, listing, role management and the
// Google-federated login.
type UserController struct {
	users UserStore
}

func NewUserController(users UserStore) *UserController {
	return &UserController{users: users}
}

type registerInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Mobile    string `json:"mobile" validate:"required,min=6"`
}

// Register handles POST /register. A duplicate email or mobile is a soft
// failure: `{"success": false, "message": "User already registered"}` with
// no second record created. The store's unique indexes make that hold even
// for two concurrent registrations of the same email.
func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var body registerInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errs := validate.Struct(body); validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	user := models.User{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Mobile:    body.Mobile,
		Role:      auth.RoleUser,
	}

	err := c.users.Create(r.Context(), &user)
	if errors.Is(err, repositories.ErrDuplicate) {
		response.JSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"message": "User already registered",
		})
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("register user", "error", err)
		response.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.WithCtx(r.Context()).Info("user registered", "email", user.Email)
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "User registered successfully",
		"user":    user,
	})
}

// List handles GET /users, newest first.
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.users.All(r.Context())
	if err != nil {
		response.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"users":   users,
	})
}

// GrantAdmin handles PATCH /users/admin/{id}.
func (c *UserController) GrantAdmin(w http.ResponseWriter, r *http.Request) {
	c.setRole(w, r, auth.RoleAdmin)
}

// RevokeAdmin handles PATCH /users/remove-admin/{id}.
func (c *UserController) RevokeAdmin(w http.ResponseWriter, r *http.Request) {
	c.setRole(w, r, auth.RoleUser)
}

func (c *UserController) setRole(w http.ResponseWriter, r *http.Request, role auth.Role) {
	id := chi.URLParam(r, "id")

	counts, err := c.users.SetRole(r.Context(), id, role)
	if errors.Is(err, repositories.ErrInvalidID) {
		response.InvalidID(w)
		return
	}
	if err != nil {
		response.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.WithCtx(r.Context()).Info("role changed", "user_id", id, "role", role)
	response.JSON(w, http.StatusOK, counts)
}

// Delete handles DELETE /users/{id}.
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := c.users.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, repositories.ErrInvalidID) {
		response.InvalidID(w)
		return
	}
	if err != nil {
		response.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}

type googleLoginInput struct {
	DisplayName string `json:"displayName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhotoURL    string `json:"photoURL" validate:"nullable"`
}

// GoogleLogin handles POST /google-login. The endpoint is idempotent: an
// already-registered email returns the existing user, and an insert that
// loses a race against a concurrent registration re-reads and does the same.
func (c *UserController) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var body googleLoginInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errs := validate.Struct(body); validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	existing, err := c.users.FindByEmail(r.Context(), body.Email)
	if err == nil {
		response.JSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "User already exists",
			"user":    existing,
		})
		return
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		response.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	user := models.User{
		Name:  body.DisplayName,
		Email: body.Email,
		Photo: body.PhotoURL,
		Role:  auth.RoleUser,
	}

	err = c.users.Create(r.Context(), &user)
	if errors.Is(err, repositories.ErrDuplicate) {
		// Lost the race to a concurrent registration of the same email.
		existing, err := c.users.FindByEmail(r.Context(), body.Email)
		if err != nil {
			response.Fail(w, http.StatusInternalServerError, err.Error())
			return
		}
		response.JSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "User already exists",
			"user":    existing,
		})
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("google login", "error", err)
		response.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.WithCtx(r.Context()).Info("user registered via google", "email", user.Email)
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "User registered via Google",
		"user":    user,
	})
}

// Role handles GET /users/role/{email}. An unknown email reports the
// default role; this query never reports "not found" and never writes.
func (c *UserController) Role(w http.ResponseWriter, r *http.Request) {
	role, err := c.users.RoleByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		response.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	response.JSON(w, http.StatusOK, map[string]auth.Role{"role": role})
}

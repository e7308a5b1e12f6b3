// Package services holds the business logic between controllers and the
// store layer.
package services

import (
	"context"

	"github.com/wazihas/boutique/app/models"
	"github.com/wazihas/boutique/pkg/auth"
)

// UserFinder is the slice of the user repository the auth service needs.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// AuthService issues session tokens for registered users.
type AuthService struct {
	users  UserFinder
	tokens *auth.Tokens
}

func NewAuthService(users UserFinder, tokens *auth.Tokens) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// IssueToken looks the email up and, when a user exists, signs a token
// embedding it. An unknown email propagates repositories.ErrNotFound.
func (s *AuthService) IssueToken(ctx context.Context, email string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return s.tokens.Sign(user.Email)
}

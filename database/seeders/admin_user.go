package seeders

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wazihas/boutique/app/models"
	"github.com/wazihas/boutique/app/repositories"
	"github.com/wazihas/boutique/config"
	"github.com/wazihas/boutique/pkg/auth"
)

func init() {
	Register("admin-user", SeedAdminUser)
}

// SeedAdminUser creates (or promotes) the bootstrap administrator named by
// ADMIN_EMAIL. It is idempotent: an existing account is promoted in place,
// and an unset ADMIN_EMAIL is a no-op.
func SeedAdminUser(ctx context.Context, db *mongo.Database) error {
	email := config.AdminEmail()
	if email == "" {
		return nil
	}

	users := repositories.NewUserRepository(db)

	existing, err := users.FindByEmail(ctx, email)
	if err == nil {
		if existing.Role == auth.RoleAdmin {
			return nil
		}
		_, err := users.SetRole(ctx, existing.ID.Hex(), auth.RoleAdmin)
		return err
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("lookup %s: %w", email, err)
	}

	return users.Create(ctx, &models.User{
		Name:  config.AdminName(),
		Email: email,
		Role:  auth.RoleAdmin,
	})
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wazihas/boutique/app/repositories"
	"github.com/wazihas/boutique/pkg/auth"
)

func setRoleByEmail(email string, role auth.Role) error {
	return withDB(func(ctx context.Context, db *mongo.Database) error {
		users := repositories.NewUserRepository(db)

		user, err := users.FindByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("lookup %s: %w", email, err)
		}

		counts, err := users.SetRole(ctx, user.ID.Hex(), role)
		if err != nil {
			return err
		}
		if counts.ModifiedCount == 0 {
			fmt.Printf("%s already has role %q\n", email, role)
			return nil
		}
		fmt.Printf("✅  %s is now %q\n", email, role)
		return nil
	})
}

// boutique admin:grant <email>
var adminGrantCmd = &cobra.Command{
	Use:   "admin:grant <email>",
	Short: "Promote a user to administrator",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setRoleByEmail(args[0], auth.RoleAdmin)
	},
}

// boutique admin:revoke <email>
var adminRevokeCmd = &cobra.Command{
	Use:   "admin:revoke <email>",
	Short: "Demote an administrator back to a regular user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setRoleByEmail(args[0], auth.RoleUser)
	},
}

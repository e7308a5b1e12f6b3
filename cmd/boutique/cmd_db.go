package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wazihas/boutique/app/repositories"
	"github.com/wazihas/boutique/config"
	"github.com/wazihas/boutique/database/seeders"
	"github.com/wazihas/boutique/pkg/database"
)

// withDB loads config, opens the store connection, runs fn, and tears the
// connection down again. One-shot commands share this instead of the server
// lifecycle.
func withDB(fn func(ctx context.Context, db *mongo.Database) error) error {
	if err := config.Load(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, config.MongoURI(), config.MongoDatabase())
	if err != nil {
		return err
	}
	defer database.Disconnect(context.Background(), db) //nolint:errcheck

	return fn(ctx, db)
}

// boutique index:ensure
var indexCmd = &cobra.Command{
	Use:   "index:ensure",
	Short: "Create the store indexes (unique email/mobile, catalogue sort)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(ctx context.Context, db *mongo.Database) error {
			fmt.Println("Ensuring indexes…")
			if err := repositories.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
				return fmt.Errorf("users: %w", err)
			}
			if err := repositories.NewProductRepository(db).EnsureIndexes(ctx); err != nil {
				return fmt.Errorf("products: %w", err)
			}
			fmt.Println("✅  Indexes in place")
			return nil
		})
	},
}

// boutique seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(ctx context.Context, db *mongo.Database) error {
			fmt.Println("Running seeders…")
			return seeders.RunAll(ctx, db)
		})
	},
}

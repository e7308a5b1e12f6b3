// Package server owns the process lifecycle: configuration, store
// connections, index creation, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wazihas/boutique/app/repositories"
	"github.com/wazihas/boutique/config"
	"github.com/wazihas/boutique/internal/kernel"
	"github.com/wazihas/boutique/pkg/database"
	"github.com/wazihas/boutique/pkg/logger"
	"github.com/wazihas/boutique/pkg/storage"
)

// Start boots the service and blocks until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx := context.Background()

	db, err := database.Connect(ctx, config.MongoURI(), config.MongoDatabase())
	if err != nil {
		return err
	}
	defer database.Disconnect(context.Background(), db) //nolint:errcheck

	logger.Info("mongodb connected", "database", config.MongoDatabase())

	// Optional: mirror logs into MongoDB next to the application data.
	if config.LogToMongo() {
		mh := logger.NewMongoHandler(db, "logs")
		defer mh.Close()
		logger.SetHandler(logger.NewMultiHandler(logger.L.Handler(), mh))
	}

	// Uniqueness lives in the store, not in handler-level checks.
	if err := repositories.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}
	if err := repositories.NewProductRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("product indexes: %w", err)
	}

	disk, err := storage.FromConfig()
	if err != nil {
		return err
	}
	logger.Info("storage ready", "disk", config.StorageDisk())

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           kernel.Build(db, disk),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

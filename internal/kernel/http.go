// Package kernel assembles the HTTP handler: repositories, services,
// controllers, and the global middleware stack.
package kernel

import (
	"net/http"

	"github.com/go-chi/cors"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wazihas/boutique/app/controllers"
	"github.com/wazihas/boutique/app/repositories"
	"github.com/wazihas/boutique/app/routes"
	"github.com/wazihas/boutique/app/services"
	"github.com/wazihas/boutique/config"
	"github.com/wazihas/boutique/pkg/auth"
	"github.com/wazihas/boutique/pkg/metrics"
	"github.com/wazihas/boutique/pkg/middleware"
	"github.com/wazihas/boutique/pkg/reqid"
	"github.com/wazihas/boutique/pkg/router"
	"github.com/wazihas/boutique/pkg/storage"
	"github.com/wazihas/boutique/pkg/upload"
)

// Build wires the application graph onto a router and returns the handler.
// Both stores arrive as explicit handles; nothing here reaches for globals.
func Build(db *mongo.Database, disk storage.Disk) http.Handler {
	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)

	tokens := auth.NewTokens(config.JWTSecret())
	authService := services.NewAuthService(userRepo, tokens)
	ingestor := upload.NewIngestor(disk, "products")

	r := router.New()

	// Global middleware, outermost first:
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery           — catches panics before they kill the process
	//  3. Request ID         — inject the ID before anything logs
	//  4. Logger             — per-request logger tagged with the ID
	//  5. CORS
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Handle("/metrics", metrics.Handler())

	// When images live on the local disk the server serves them itself;
	// the S3 driver hands out provider URLs instead.
	if local, ok := disk.(*storage.LocalDisk); ok {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/",
			http.FileServer(http.Dir(local.Root()))))
	}

	routes.RegisterAPI(r, routes.Deps{
		Auth:     controllers.NewAuthController(authService),
		Products: controllers.NewProductController(productRepo, ingestor),
		Users:    controllers.NewUserController(userRepo),
		Tokens:   tokens,
		Roles:    userRepo,
	})

	return r.Handler()
}

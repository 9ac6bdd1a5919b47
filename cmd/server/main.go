package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"vetclinic-api/internal/adapters/http/middleware"
	"vetclinic-api/internal/adapters/http/routes"
	"vetclinic-api/internal/adapters/persistence/models"
	"vetclinic-api/internal/adapters/persistence/repositories"
	"vetclinic-api/internal/config"
	"vetclinic-api/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	_ "vetclinic-api/docs" // Swagger docs
)

// @title Vet Clinic API
// @version 1.0
// @description Back-office API for a veterinary clinic: owners, pets, visits, diagnoses and treatments.

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	if err := prepareDatabase(db, cfg); err != nil {
		log.Fatalf("❌ Database setup failed: %v", err)
	}

	// Pending approval digest; an empty PENDING_DIGEST_CRON disables it
	digest := services.NewCronService(
		services.NewAdminService(repositories.NewUserRepository(db)),
		cfg.Cron.PendingDigest,
	)
	if err := digest.Start(); err != nil {
		log.Printf("⚠️ Warning: cron not started: %v", err)
	}
	defer digest.Stop()

	app := newApp(db, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Println("🛑 Shutting down server...")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Printf("❌ Error during shutdown: %v", err)
		}
	}()

	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}

// prepareDatabase creates missing tables, then the roles and the bootstrap admin
func prepareDatabase(db *gorm.DB, cfg *config.Config) error {
	if err := models.AutoMigrate(db); err != nil {
		return err
	}
	log.Println("✅ Database migration completed")

	return config.NewSeeder(db, cfg.Seed).Run()
}

// newApp builds the fiber app with middleware and every route
func newApp(db *gorm.DB, cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Vet Clinic API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	middleware.Setup(app, cfg)
	routes.Setup(app, db, cfg)
	return app
}

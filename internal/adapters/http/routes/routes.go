package routes

import (
	"vetclinic-api/internal/adapters/http/handlers"
	"vetclinic-api/internal/adapters/http/middleware"
	"vetclinic-api/internal/adapters/persistence/repositories"
	"vetclinic-api/internal/config"
	"vetclinic-api/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	ownerRepo := repositories.NewOwnerRepository(db)
	petRepo := repositories.NewPetRepository(db)
	visitRepo := repositories.NewVisitRepository(db)
	diagnosisRepo := repositories.NewDiagnosisRepository(db)
	treatmentRepo := repositories.NewTreatmentRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, roleRepo, cfg)
	adminService := services.NewAdminService(userRepo)
	ownerService := services.NewOwnerService(ownerRepo)
	petService := services.NewPetService(petRepo, ownerRepo)
	visitService := services.NewVisitService(visitRepo, petRepo, userRepo)
	diagnosisService := services.NewDiagnosisService(diagnosisRepo, visitRepo)
	treatmentService := services.NewTreatmentService(treatmentRepo, visitRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg, func() error { return config.Ping(db) })
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(adminService)
	ownerHandler := handlers.NewOwnerHandler(ownerService)
	petHandler := handlers.NewPetHandler(petService)
	visitHandler := handlers.NewVisitHandler(visitService)
	recordHandler := handlers.NewRecordHandler(diagnosisService, treatmentService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes (public)
	auth := apiV1.Group("/auth", middleware.AuthRateLimiter(cfg.RateLimit.AuthMax), middleware.NoCacheHeaders())
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Everything below needs a valid access token
	authRequired := middleware.AuthMiddleware(cfg)

	// Veterinarian approval (Admin only)
	admin := apiV1.Group("/admin/veterinarians", authRequired, middleware.AdminOnly())
	admin.Get("/pending", adminHandler.ListPending)
	admin.Put("/:userId/approve", adminHandler.Approve)

	// Owners
	owners := apiV1.Group("/owners", authRequired)
	owners.Get("/", ownerHandler.List)
	owners.Get("/:id", ownerHandler.Get)
	owners.Post("/", ownerHandler.Create)
	owners.Put("/:id", ownerHandler.Update)
	owners.Delete("/:id", middleware.AdminOnly(), ownerHandler.Delete)

	// Pets
	pets := apiV1.Group("/pets", authRequired)
	pets.Get("/", petHandler.List)
	pets.Get("/:id", petHandler.Get)
	pets.Get("/:id/history", petHandler.History)
	pets.Post("/", petHandler.Create)
	pets.Put("/:id", petHandler.Update)
	pets.Delete("/:id", middleware.AdminOrVeterinarian(), petHandler.Delete)

	// Visits with their diagnoses and treatments (Admin or Veterinarian)
	visits := apiV1.Group("/visits", authRequired, middleware.AdminOrVeterinarian())
	visits.Get("/", visitHandler.List)
	visits.Get("/:id", visitHandler.Get)
	visits.Post("/", visitHandler.Create)
	visits.Put("/:id", visitHandler.Update)
	visits.Delete("/:id", middleware.AdminOnly(), visitHandler.Delete)

	visits.Get("/:visitId/diagnoses", recordHandler.ListDiagnoses)
	visits.Post("/:visitId/diagnoses", recordHandler.CreateDiagnosis)
	visits.Get("/:visitId/treatments", recordHandler.ListTreatments)
	visits.Post("/:visitId/treatments", recordHandler.CreateTreatment)
}

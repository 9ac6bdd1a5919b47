package handlers

import (
	"vetclinic-api/internal/config"

	"github.com/gofiber/fiber/v2"
)

var apiResources = []string{"/auth", "/admin/veterinarians", "/owners", "/pets", "/visits"}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	cfg  *config.Config
	ping func() error
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config, ping func() error) *HealthHandler {
	return &HealthHandler{cfg: cfg, ping: ping}
}

// Root handles root endpoint
// @Summary Root endpoint
// @Description Returns API status
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "running",
		"message": "🚀 Vet Clinic API v1.0 is running",
		"mode":    h.cfg.AppMode,
		"docs":    "/swagger/index.html",
	})
}

// HealthCheck handles health check
// @Summary Health check
// @Description Check API and database health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	// Check database
	status, dbStatus, code := "ok", "healthy", fiber.StatusOK
	if err := h.ping(); err != nil {
		status, dbStatus, code = "degraded", "unhealthy", fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"checks": fiber.Map{
			"api":      "healthy",
			"database": dbStatus,
		},
	})
}

// APIInfo lists the v1 resource groups
// @Summary API v1 Info
// @Description Returns the API version and its resource groups
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1 [get]
func (h *HealthHandler) APIInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "Vet Clinic API v1.0",
		"version":   "1.0.0",
		"resources": apiResources,
	})
}

package handlers

import (
	"vetclinic-api/internal/core/services"
	"vetclinic-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles veterinarian registration
// @Summary Register veterinarian
// @Description Register a veterinarian account; it stays pending until an administrator approves it
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.RegisterInput true "Registration data"
// @Success 201 {object} response.Response{data=services.RegisterResponse}
// @Failure 400 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := bind(c, &input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.authService.Register(c.UserContext(), &input)
	if err != nil {
		return handleServiceError(c, err)
	}

	return response.Created(c, result.Message, result)
}

// Login handles user login
// @Summary Login
// @Description Authenticate and receive an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Login credentials"
// @Success 200 {object} response.Response{data=services.AuthResponse}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := bind(c, &input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.authService.Login(c.UserContext(), &input)
	if err != nil {
		return handleServiceError(c, err)
	}

	return response.Success(c, "Login successful", result)
}

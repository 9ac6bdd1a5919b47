package handlers

import (
	"vetclinic-api/internal/core/services"
	"vetclinic-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles veterinarian approval endpoints
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListPending returns veterinarians awaiting approval
// @Summary List pending veterinarians
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]services.PendingVeterinarian}
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/veterinarians/pending [get]
func (h *AdminHandler) ListPending(c *fiber.Ctx) error {
	pending, err := h.adminService.ListPendingVeterinarians(c.UserContext())
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Pending veterinarians retrieved", pending)
}

// Approve approves a veterinarian account
// @Summary Approve veterinarian
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} response.Response{data=services.ApprovalResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/veterinarians/{userId}/approve [put]
func (h *AdminHandler) Approve(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.adminService.ApproveVeterinarian(c.UserContext(), userID)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Veterinarian approved", result)
}

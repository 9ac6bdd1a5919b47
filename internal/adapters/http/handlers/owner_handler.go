package handlers

import (
	"vetclinic-api/internal/core/services"
	"vetclinic-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// OwnerHandler handles owner endpoints
type OwnerHandler struct {
	ownerService *services.OwnerService
}

// NewOwnerHandler creates a new owner handler
func NewOwnerHandler(ownerService *services.OwnerService) *OwnerHandler {
	return &OwnerHandler{ownerService: ownerService}
}

// List returns all owners
// @Summary List owners
// @Tags Owners
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]models.OwnerResponse}
// @Router /owners [get]
func (h *OwnerHandler) List(c *fiber.Ctx) error {
	owners, err := h.ownerService.List(c.UserContext())
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Owners retrieved", owners)
}

// Get returns one owner
// @Summary Get owner
// @Tags Owners
// @Produce json
// @Security BearerAuth
// @Param id path int true "Owner ID"
// @Success 200 {object} response.Response{data=models.OwnerResponse}
// @Failure 404 {object} response.Response
// @Router /owners/{id} [get]
func (h *OwnerHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	owner, err := h.ownerService.Get(c.UserContext(), id)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Owner retrieved", owner)
}

// Create adds an owner
// @Summary Create owner
// @Tags Owners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateOwnerInput true "Owner"
// @Success 201 {object} response.Response{data=models.OwnerResponse}
// @Failure 400 {object} response.Response
// @Router /owners [post]
func (h *OwnerHandler) Create(c *fiber.Ctx) error {
	var input services.CreateOwnerInput
	if err := bind(c, &input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	owner, err := h.ownerService.Create(c.UserContext(), &input)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Created(c, "Owner created", owner)
}

// Update changes the fields present in the body
// @Summary Update owner
// @Description Absent fields are kept; null clears the address
// @Tags Owners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Owner ID"
// @Param body body services.UpdateOwnerInput true "Owner fields"
// @Success 200 {object} response.Response{data=models.OwnerResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /owners/{id} [put]
func (h *OwnerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	var input services.UpdateOwnerInput
	if err := bind(c, &input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	owner, err := h.ownerService.Update(c.UserContext(), id, &input)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Owner updated", owner)
}

// Delete removes an owner with its pets and their history
// @Summary Delete owner
// @Tags Owners
// @Security BearerAuth
// @Param id path int true "Owner ID"
// @Success 204
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /owners/{id} [delete]
func (h *OwnerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	deleted, err := h.ownerService.Delete(c.UserContext(), id)
	if err != nil {
		return handleServiceError(c, err)
	}
	if !deleted {
		return response.BadRequest(c, "Owner could not be deleted.")
	}
	return response.NoContent(c)
}

package handlers

import (
	"vetclinic-api/internal/core/services"
	"vetclinic-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// VisitHandler handles visit endpoints
type VisitHandler struct {
	visitService *services.VisitService
}

// NewVisitHandler creates a new visit handler
func NewVisitHandler(visitService *services.VisitService) *VisitHandler {
	return &VisitHandler{visitService: visitService}
}

// List returns all visits
// @Summary List visits
// @Tags Visits
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]models.VisitResponse}
// @Router /visits [get]
func (h *VisitHandler) List(c *fiber.Ctx) error {
	visits, err := h.visitService.List(c.UserContext())
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Visits retrieved", visits)
}

// Get returns one visit
// @Summary Get visit
// @Tags Visits
// @Produce json
// @Security BearerAuth
// @Param id path int true "Visit ID"
// @Success 200 {object} response.Response{data=models.VisitResponse}
// @Failure 404 {object} response.Response
// @Router /visits/{id} [get]
func (h *VisitHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	visit, err := h.visitService.Get(c.UserContext(), id)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Visit retrieved", visit)
}

// Create records a visit for the authenticated veterinarian
// @Summary Create visit
// @Description The veterinarian is the caller; the pet's last check-in becomes the visit date
// @Tags Visits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateVisitInput true "Visit"
// @Success 201 {object} response.Response{data=models.VisitResponse}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /visits [post]
func (h *VisitHandler) Create(c *fiber.Ctx) error {
	veterinarianID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "User identity is invalid.")
	}

	var input services.CreateVisitInput
	if err := bind(c, &input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	visit, err := h.visitService.Create(c.UserContext(), &input, veterinarianID)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Created(c, "Visit created", visit)
}

// Update changes the fields present in the body
// @Summary Update visit
// @Tags Visits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Visit ID"
// @Param body body services.UpdateVisitInput true "Visit fields"
// @Success 200 {object} response.Response{data=models.VisitResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /visits/{id} [put]
func (h *VisitHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	var input services.UpdateVisitInput
	if err := bind(c, &input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	visit, err := h.visitService.Update(c.UserContext(), id, &input)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Visit updated", visit)
}

// Delete removes a visit with its diagnoses and treatments
// @Summary Delete visit
// @Tags Visits
// @Security BearerAuth
// @Param id path int true "Visit ID"
// @Success 204
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /visits/{id} [delete]
func (h *VisitHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	deleted, err := h.visitService.Delete(c.UserContext(), id)
	if err != nil {
		return handleServiceError(c, err)
	}
	if !deleted {
		return response.BadRequest(c, "Visit could not be deleted.")
	}
	return response.NoContent(c)
}

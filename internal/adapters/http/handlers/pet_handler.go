package handlers

import (
	"vetclinic-api/internal/core/services"
	"vetclinic-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PetHandler handles pet endpoints
type PetHandler struct {
	petService *services.PetService
}

// NewPetHandler creates a new pet handler
func NewPetHandler(petService *services.PetService) *PetHandler {
	return &PetHandler{petService: petService}
}

// List returns all pets
// @Summary List pets
// @Tags Pets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]models.PetResponse}
// @Router /pets [get]
func (h *PetHandler) List(c *fiber.Ctx) error {
	pets, err := h.petService.List(c.UserContext())
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Pets retrieved", pets)
}

// Get returns one pet
// @Summary Get pet
// @Tags Pets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Success 200 {object} response.Response{data=models.PetResponse}
// @Failure 404 {object} response.Response
// @Router /pets/{id} [get]
func (h *PetHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	pet, err := h.petService.Get(c.UserContext(), id)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Pet retrieved", pet)
}

// History returns the pet with its owner and full visit history
// @Summary Pet medical history
// @Tags Pets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Success 200 {object} response.Response{data=models.PetDetailsResponse}
// @Failure 404 {object} response.Response
// @Router /pets/{id}/history [get]
func (h *PetHandler) History(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	history, err := h.petService.GetHistory(c.UserContext(), id)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Pet history retrieved", history)
}

// Create adds a pet
// @Summary Create pet
// @Tags Pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreatePetInput true "Pet"
// @Success 201 {object} response.Response{data=models.PetResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pets [post]
func (h *PetHandler) Create(c *fiber.Ctx) error {
	var input services.CreatePetInput
	if err := bind(c, &input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	pet, err := h.petService.Create(c.UserContext(), &input)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Created(c, "Pet created", pet)
}

// Update changes the fields present in the body
// @Summary Update pet
// @Tags Pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Param body body services.UpdatePetInput true "Pet fields"
// @Success 200 {object} response.Response{data=models.PetResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pets/{id} [put]
func (h *PetHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	var input services.UpdatePetInput
	if err := bind(c, &input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	pet, err := h.petService.Update(c.UserContext(), id, &input)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Pet updated", pet)
}

// Delete removes a pet with its visits
// @Summary Delete pet
// @Tags Pets
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Success 204
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pets/{id} [delete]
func (h *PetHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	deleted, err := h.petService.Delete(c.UserContext(), id)
	if err != nil {
		return handleServiceError(c, err)
	}
	if !deleted {
		return response.BadRequest(c, "Pet could not be deleted.")
	}
	return response.NoContent(c)
}

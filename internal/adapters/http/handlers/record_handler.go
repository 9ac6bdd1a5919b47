package handlers

import (
	"vetclinic-api/internal/core/services"
	"vetclinic-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RecordHandler handles the diagnoses and treatments nested under a visit
type RecordHandler struct {
	diagnosisService *services.DiagnosisService
	treatmentService *services.TreatmentService
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(diagnosisService *services.DiagnosisService, treatmentService *services.TreatmentService) *RecordHandler {
	return &RecordHandler{
		diagnosisService: diagnosisService,
		treatmentService: treatmentService,
	}
}

// ListDiagnoses returns the diagnoses of a visit
// @Summary List diagnoses
// @Tags Diagnoses
// @Produce json
// @Security BearerAuth
// @Param visitId path int true "Visit ID"
// @Success 200 {object} response.Response{data=[]models.DiagnosisResponse}
// @Failure 404 {object} response.Response
// @Router /visits/{visitId}/diagnoses [get]
func (h *RecordHandler) ListDiagnoses(c *fiber.Ctx) error {
	visitID, err := parseID(c, "visitId")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	items, err := h.diagnosisService.ListByVisit(c.UserContext(), visitID)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Diagnoses retrieved", items)
}

// CreateDiagnosis records a diagnosis on a visit
// @Summary Create diagnosis
// @Tags Diagnoses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param visitId path int true "Visit ID"
// @Param body body services.CreateDiagnosisInput true "Diagnosis"
// @Success 201 {object} response.Response{data=models.DiagnosisResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /visits/{visitId}/diagnoses [post]
func (h *RecordHandler) CreateDiagnosis(c *fiber.Ctx) error {
	visitID, err := parseID(c, "visitId")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	var input services.CreateDiagnosisInput
	if err := bind(c, &input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	diagnosis, err := h.diagnosisService.Create(c.UserContext(), visitID, &input)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Created(c, "Diagnosis created", diagnosis)
}

// ListTreatments returns the treatments of a visit
// @Summary List treatments
// @Tags Treatments
// @Produce json
// @Security BearerAuth
// @Param visitId path int true "Visit ID"
// @Success 200 {object} response.Response{data=[]models.TreatmentResponse}
// @Failure 404 {object} response.Response
// @Router /visits/{visitId}/treatments [get]
func (h *RecordHandler) ListTreatments(c *fiber.Ctx) error {
	visitID, err := parseID(c, "visitId")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	items, err := h.treatmentService.ListByVisit(c.UserContext(), visitID)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Treatments retrieved", items)
}

// CreateTreatment records a treatment on a visit
// @Summary Create treatment
// @Tags Treatments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param visitId path int true "Visit ID"
// @Param body body services.CreateTreatmentInput true "Treatment"
// @Success 201 {object} response.Response{data=models.TreatmentResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /visits/{visitId}/treatments [post]
func (h *RecordHandler) CreateTreatment(c *fiber.Ctx) error {
	visitID, err := parseID(c, "visitId")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	var input services.CreateTreatmentInput
	if err := bind(c, &input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	treatment, err := h.treatmentService.Create(c.UserContext(), visitID, &input)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Created(c, "Treatment created", treatment)
}

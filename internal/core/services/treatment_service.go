package services

import (
	"context"
	"log"

	"vetclinic-api/internal/adapters/persistence/models"
	"vetclinic-api/internal/adapters/persistence/repositories"
	"vetclinic-api/internal/core/domain"
)

// TreatmentService handles treatments prescribed on visits
type TreatmentService struct {
	treatmentRepo repositories.TreatmentRepository
	visitRepo     repositories.VisitRepository
}

// NewTreatmentService creates a new treatment service
func NewTreatmentService(treatmentRepo repositories.TreatmentRepository, visitRepo repositories.VisitRepository) *TreatmentService {
	return &TreatmentService{
		treatmentRepo: treatmentRepo,
		visitRepo:     visitRepo,
	}
}

// CreateTreatmentInput represents treatment creation input
type CreateTreatmentInput struct {
	TreatmentName string  `json:"treatment_name" validate:"required,max=200"`
	Medication    *string `json:"medication" validate:"omitempty,max=200"`
	Dosage        *string `json:"dosage" validate:"omitempty,max=100"`
	Instructions  *string `json:"instructions" validate:"omitempty,max=500"`
	Cost          float64 `json:"cost" validate:"gte=0"`
}

// ListByVisit returns the treatments of a visit ordered by id
func (s *TreatmentService) ListByVisit(ctx context.Context, visitID uint) ([]*models.TreatmentResponse, error) {
	if err := requireVisit(ctx, s.visitRepo, visitID); err != nil {
		return nil, err
	}

	items, err := s.treatmentRepo.ListByVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}

	out := make([]*models.TreatmentResponse, 0, len(items))
	for _, t := range items {
		out = append(out, t.ToResponse())
	}
	return out, nil
}

// Create records a treatment on a visit
func (s *TreatmentService) Create(ctx context.Context, visitID uint, input *CreateTreatmentInput) (*models.TreatmentResponse, error) {
	if err := requireVisit(ctx, s.visitRepo, visitID); err != nil {
		return nil, err
	}

	treatment := &models.Treatment{
		VisitID:       visitID,
		TreatmentName: input.TreatmentName,
		Medication:    input.Medication,
		Dosage:        input.Dosage,
		Instructions:  input.Instructions,
		Cost:          input.Cost,
	}

	changed, err := s.treatmentRepo.Create(ctx, treatment)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, domain.InvalidOperationf("Failed to create treatment.")
	}

	log.Printf("✅ Treatment recorded: %d (visit %d)", treatment.ID, visitID)
	return treatment.ToResponse(), nil
}

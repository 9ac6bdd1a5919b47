package services

import (
	"context"
	"log"
	"time"

	"vetclinic-api/internal/adapters/persistence/models"
	"vetclinic-api/internal/adapters/persistence/repositories"
	"vetclinic-api/internal/core/domain"
)

// DiagnosisService handles diagnoses recorded on visits
type DiagnosisService struct {
	diagnosisRepo repositories.DiagnosisRepository
	visitRepo     repositories.VisitRepository
	now           func() time.Time
}

// NewDiagnosisService creates a new diagnosis service
func NewDiagnosisService(diagnosisRepo repositories.DiagnosisRepository, visitRepo repositories.VisitRepository) *DiagnosisService {
	return &DiagnosisService{
		diagnosisRepo: diagnosisRepo,
		visitRepo:     visitRepo,
		now:           time.Now,
	}
}

// CreateDiagnosisInput represents diagnosis creation input
type CreateDiagnosisInput struct {
	DiseaseName string  `json:"disease_name" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Severity    *string `json:"severity" validate:"omitempty,max=20"`
}

// ListByVisit returns the diagnoses of a visit ordered by id
func (s *DiagnosisService) ListByVisit(ctx context.Context, visitID uint) ([]*models.DiagnosisResponse, error) {
	if err := requireVisit(ctx, s.visitRepo, visitID); err != nil {
		return nil, err
	}

	items, err := s.diagnosisRepo.ListByVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}

	out := make([]*models.DiagnosisResponse, 0, len(items))
	for _, d := range items {
		out = append(out, d.ToResponse())
	}
	return out, nil
}

// Create records a diagnosis on a visit, stamped with the current time
func (s *DiagnosisService) Create(ctx context.Context, visitID uint, input *CreateDiagnosisInput) (*models.DiagnosisResponse, error) {
	if err := requireVisit(ctx, s.visitRepo, visitID); err != nil {
		return nil, err
	}

	diagnosis := &models.Diagnosis{
		VisitID:     visitID,
		DiseaseName: input.DiseaseName,
		Description: input.Description,
		Severity:    input.Severity,
		DiagnosedAt: s.now(),
	}

	changed, err := s.diagnosisRepo.Create(ctx, diagnosis)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, domain.InvalidOperationf("Failed to create diagnosis.")
	}

	log.Printf("✅ Diagnosis recorded: %d (visit %d)", diagnosis.ID, visitID)
	return diagnosis.ToResponse(), nil
}

// requireVisit returns NotFound when the visit is absent
func requireVisit(ctx context.Context, visitRepo repositories.VisitRepository, visitID uint) error {
	exists, err := visitRepo.Exists(ctx, visitID)
	if err != nil {
		return err
	}
	if !exists {
		log.Printf("⚠️ Visit %d not found", visitID)
		return visitNotFound(visitID)
	}
	return nil
}

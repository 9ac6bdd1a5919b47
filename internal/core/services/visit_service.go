package services

import (
	"context"
	"errors"
	"log"
	"time"

	"vetclinic-api/internal/adapters/persistence/models"
	"vetclinic-api/internal/adapters/persistence/repositories"
	"vetclinic-api/internal/core/domain"
	"vetclinic-api/internal/pkg/patch"

	"gorm.io/gorm"
)

// ErrVeterinarianRequired is returned when a visit is created without an acting veterinarian
var ErrVeterinarianRequired = domain.InvalidOperationf("Veterinarian ID is required to create a visit.")

// VisitService handles clinic visits
type VisitService struct {
	visitRepo repositories.VisitRepository
	petRepo   repositories.PetRepository
	userRepo  repositories.UserRepository
}

// NewVisitService creates a new visit service
func NewVisitService(
	visitRepo repositories.VisitRepository,
	petRepo repositories.PetRepository,
	userRepo repositories.UserRepository,
) *VisitService {
	return &VisitService{
		visitRepo: visitRepo,
		petRepo:   petRepo,
		userRepo:  userRepo,
	}
}

// CreateVisitInput represents visit creation input; the veterinarian comes from the caller's token
type CreateVisitInput struct {
	PetID       uint      `json:"pet_id" validate:"required"`
	VisitDate   time.Time `json:"visit_date" validate:"required"`
	Complaint   *string   `json:"complaint" validate:"omitempty,max=500"`
	Notes       *string   `json:"notes" validate:"omitempty,max=1000"`
	Temperature *float64  `json:"temperature"`
	Status      *string   `json:"status" validate:"omitempty,max=20"`
}

// UpdateVisitInput represents a partial visit update
type UpdateVisitInput struct {
	PetID       patch.Field[uint]      `json:"pet_id"`
	VisitDate   patch.Field[time.Time] `json:"visit_date"`
	Complaint   patch.Field[string]    `json:"complaint" validate:"omitempty,max=500"`
	Notes       patch.Field[string]    `json:"notes" validate:"omitempty,max=1000"`
	Temperature patch.Field[float64]   `json:"temperature"`
	Status      patch.Field[string]    `json:"status" validate:"omitempty,max=20"`
}

func visitNotFound(id uint) error {
	return domain.NotFoundf("Visit not found with ID: %d", id)
}

// List returns all visits with pet, veterinarian and records
func (s *VisitService) List(ctx context.Context) ([]*models.VisitResponse, error) {
	visits, err := s.visitRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*models.VisitResponse, 0, len(visits))
	for _, v := range visits {
		out = append(out, v.ToResponse(""))
	}
	return out, nil
}

// Get returns one visit with its records
func (s *VisitService) Get(ctx context.Context, id uint) (*models.VisitResponse, error) {
	visit, err := s.visitRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, s.notFound(err, id)
	}
	return visit.ToResponse(""), nil
}

// Create records a visit by veterinarianID and stamps the pet's last check-in
// with the visit date in the same transaction
func (s *VisitService) Create(ctx context.Context, input *CreateVisitInput, veterinarianID uint) (*models.VisitResponse, error) {
	if veterinarianID == 0 {
		log.Printf("⚠️ Visit rejected: no veterinarian")
		return nil, ErrVeterinarianRequired
	}

	pet, err := s.petRepo.GetByID(ctx, input.PetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("⚠️ Visit rejected: pet %d not found", input.PetID)
			return nil, petNotFound(input.PetID)
		}
		return nil, err
	}

	vetExists, err := s.userRepo.Exists(ctx, veterinarianID)
	if err != nil {
		return nil, err
	}
	if !vetExists {
		log.Printf("⚠️ Visit rejected: veterinarian %d not found", veterinarianID)
		return nil, domain.NotFoundf("Veterinarian not found with ID: %d", veterinarianID)
	}

	visit := &models.Visit{
		PetID:          pet.ID,
		VeterinarianID: veterinarianID,
		VisitDate:      input.VisitDate,
		Complaint:      input.Complaint,
		Notes:          input.Notes,
		Temperature:    input.Temperature,
		Status:         input.Status,
	}

	changed, err := s.visitRepo.CreateWithCheckIn(ctx, visit)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, domain.InvalidOperationf("Failed to create visit.")
	}

	log.Printf("✅ Visit created: %d (pet %d, veterinarian %d)", visit.ID, visit.PetID, visit.VeterinarianID)

	created, err := s.visitRepo.GetWithDetails(ctx, visit.ID)
	if err != nil {
		return nil, err
	}
	return created.ToResponse(pet.Name), nil
}

// Update applies the present fields of input. A new pet is checked
// before anything is applied; unchanged visits are not written.
func (s *VisitService) Update(ctx context.Context, id uint, input *UpdateVisitInput) (*models.VisitResponse, error) {
	visit, err := s.visitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.notFound(err, id)
	}

	if input.PetID.Present && !input.PetID.Null && input.PetID.Value != visit.PetID {
		exists, err := s.petRepo.Exists(ctx, input.PetID.Value)
		if err != nil {
			return nil, err
		}
		if !exists {
			log.Printf("⚠️ Visit %d update rejected: pet %d not found", id, input.PetID.Value)
			return nil, petNotFound(input.PetID.Value)
		}
	}

	changed := patch.Apply(input.PetID, &visit.PetID)
	changed = patch.ApplyEqual(input.VisitDate, &visit.VisitDate, time.Time.Equal) || changed
	changed = patch.ApplyNullable(input.Complaint, &visit.Complaint) || changed
	changed = patch.ApplyNullable(input.Notes, &visit.Notes) || changed
	changed = patch.ApplyNullable(input.Temperature, &visit.Temperature) || changed
	changed = patch.ApplyNullable(input.Status, &visit.Status) || changed

	if changed {
		ok, err := s.visitRepo.Update(ctx, visit)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.InvalidOperationf("Failed to update visit.")
		}
		log.Printf("✅ Visit updated: %d", visit.ID)
	}

	return s.Get(ctx, visit.ID)
}

// Delete removes a visit with its diagnoses and treatments.
// It reports whether a row was removed.
func (s *VisitService) Delete(ctx context.Context, id uint) (bool, error) {
	exists, err := s.visitRepo.Exists(ctx, id)
	if err != nil {
		return false, err
	}
	if !exists {
		log.Printf("⚠️ Delete failed: visit %d not found", id)
		return false, visitNotFound(id)
	}

	deleted, err := s.visitRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		log.Printf("✅ Visit deleted: %d", id)
	}
	return deleted, nil
}

func (s *VisitService) notFound(err error, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("⚠️ Visit %d not found", id)
		return visitNotFound(id)
	}
	return err
}

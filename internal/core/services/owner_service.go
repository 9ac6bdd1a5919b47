package services

import (
	"context"
	"errors"
	"log"

	"vetclinic-api/internal/adapters/persistence/models"
	"vetclinic-api/internal/adapters/persistence/repositories"
	"vetclinic-api/internal/core/domain"
	"vetclinic-api/internal/pkg/patch"

	"gorm.io/gorm"
)

// OwnerService handles owner records
type OwnerService struct {
	ownerRepo repositories.OwnerRepository
}

// NewOwnerService creates a new owner service
func NewOwnerService(ownerRepo repositories.OwnerRepository) *OwnerService {
	return &OwnerService{ownerRepo: ownerRepo}
}

// CreateOwnerInput represents owner creation input
type CreateOwnerInput struct {
	FullName string  `json:"full_name" validate:"required,max=100"`
	Phone    string  `json:"phone" validate:"required,max=20"`
	Email    string  `json:"email" validate:"required,email,max=256"`
	Address  *string `json:"address" validate:"omitempty,max=250"`
}

// UpdateOwnerInput represents a partial owner update
type UpdateOwnerInput struct {
	FullName patch.Field[string] `json:"full_name" validate:"omitempty,max=100"`
	Phone    patch.Field[string] `json:"phone" validate:"omitempty,max=20"`
	Email    patch.Field[string] `json:"email" validate:"omitnil,email,max=256"`
	Address  patch.Field[string] `json:"address" validate:"omitempty,max=250"`
}

func ownerNotFound(id uint) error {
	return domain.NotFoundf("Owner not found with ID: %d", id)
}

// List returns all owners with their pet counts
func (s *OwnerService) List(ctx context.Context) ([]*models.OwnerResponse, error) {
	owners, err := s.ownerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(owners))
	for _, o := range owners {
		ids = append(ids, o.ID)
	}
	counts, err := s.ownerRepo.CountPets(ctx, ids...)
	if err != nil {
		return nil, err
	}

	out := make([]*models.OwnerResponse, 0, len(owners))
	for _, o := range owners {
		out = append(out, o.ToResponse(counts[o.ID]))
	}
	return out, nil
}

// Get returns one owner
func (s *OwnerService) Get(ctx context.Context, id uint) (*models.OwnerResponse, error) {
	owner, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, owner)
}

// Create adds an owner
func (s *OwnerService) Create(ctx context.Context, input *CreateOwnerInput) (*models.OwnerResponse, error) {
	owner := &models.Owner{
		FullName: input.FullName,
		Phone:    input.Phone,
		Email:    input.Email,
		Address:  input.Address,
	}

	changed, err := s.ownerRepo.Create(ctx, owner)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, domain.InvalidOperationf("Failed to create owner.")
	}

	log.Printf("✅ Owner created: %d", owner.ID)
	return owner.ToResponse(0), nil
}

// Update applies the present fields of input; unchanged owners are not written
func (s *OwnerService) Update(ctx context.Context, id uint, input *UpdateOwnerInput) (*models.OwnerResponse, error) {
	owner, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := patch.Apply(input.FullName, &owner.FullName)
	changed = patch.Apply(input.Phone, &owner.Phone) || changed
	changed = patch.Apply(input.Email, &owner.Email) || changed
	changed = patch.ApplyNullable(input.Address, &owner.Address) || changed

	if changed {
		ok, err := s.ownerRepo.Update(ctx, owner)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.InvalidOperationf("Failed to update owner.")
		}
		log.Printf("✅ Owner updated: %d", owner.ID)
	}

	return s.respond(ctx, owner)
}

// Delete removes an owner together with its pets and their visit history.
// It reports whether a row was removed.
func (s *OwnerService) Delete(ctx context.Context, id uint) (bool, error) {
	exists, err := s.ownerRepo.Exists(ctx, id)
	if err != nil {
		return false, err
	}
	if !exists {
		log.Printf("⚠️ Delete failed: owner %d not found", id)
		return false, ownerNotFound(id)
	}

	deleted, err := s.ownerRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		log.Printf("✅ Owner deleted: %d", id)
	}
	return deleted, nil
}

func (s *OwnerService) load(ctx context.Context, id uint) (*models.Owner, error) {
	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("⚠️ Owner %d not found", id)
			return nil, ownerNotFound(id)
		}
		return nil, err
	}
	return owner, nil
}

func (s *OwnerService) respond(ctx context.Context, owner *models.Owner) (*models.OwnerResponse, error) {
	counts, err := s.ownerRepo.CountPets(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	return owner.ToResponse(counts[owner.ID]), nil
}

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

// PetService handles pets and their medical history
type PetService struct {
	petRepo   repositories.PetRepository
	ownerRepo repositories.OwnerRepository
}

// NewPetService creates a new pet service
func NewPetService(petRepo repositories.PetRepository, ownerRepo repositories.OwnerRepository) *PetService {
	return &PetService{
		petRepo:   petRepo,
		ownerRepo: ownerRepo,
	}
}

// CreatePetInput represents pet creation input
type CreatePetInput struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Species string  `json:"species" validate:"required,max=50"`
	Breed   *string `json:"breed" validate:"omitempty,max=100"`
	Age     int     `json:"age" validate:"gte=0,lte=50"`
	Gender  string  `json:"gender" validate:"max=10"`
	Weight  float64 `json:"weight" validate:"gte=0"`
	OwnerID uint    `json:"owner_id" validate:"required"`
}

// UpdatePetInput represents a partial pet update
type UpdatePetInput struct {
	Name    patch.Field[string]  `json:"name" validate:"omitempty,max=100"`
	Species patch.Field[string]  `json:"species" validate:"omitempty,max=50"`
	Breed   patch.Field[string]  `json:"breed" validate:"omitempty,max=100"`
	Age     patch.Field[int]     `json:"age" validate:"omitempty,gte=0,lte=50"`
	Gender  patch.Field[string]  `json:"gender" validate:"omitempty,max=10"`
	Weight  patch.Field[float64] `json:"weight" validate:"omitempty,gte=0"`
	OwnerID patch.Field[uint]    `json:"owner_id"`
}

func petNotFound(id uint) error {
	return domain.NotFoundf("Pet not found with ID: %d", id)
}

// List returns all pets with owner names
func (s *PetService) List(ctx context.Context) ([]*models.PetResponse, error) {
	pets, err := s.petRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*models.PetResponse, 0, len(pets))
	for _, p := range pets {
		out = append(out, p.ToResponse())
	}
	return out, nil
}

// Get returns one pet with its owner name
func (s *PetService) Get(ctx context.Context, id uint) (*models.PetResponse, error) {
	pet, err := s.petRepo.GetWithOwner(ctx, id)
	if err != nil {
		return nil, s.notFound(err, id)
	}
	return pet.ToResponse(), nil
}

// GetHistory returns the pet with its owner and every visit
func (s *PetService) GetHistory(ctx context.Context, id uint) (*models.PetDetailsResponse, error) {
	pet, err := s.petRepo.GetWithHistory(ctx, id)
	if err != nil {
		return nil, s.notFound(err, id)
	}
	return pet.ToDetailsResponse(), nil
}

// Create adds a pet to an existing owner
func (s *PetService) Create(ctx context.Context, input *CreatePetInput) (*models.PetResponse, error) {
	if err := s.requireOwner(ctx, input.OwnerID); err != nil {
		return nil, err
	}

	pet := &models.Pet{
		Name:    input.Name,
		Species: input.Species,
		Breed:   input.Breed,
		Age:     input.Age,
		Gender:  input.Gender,
		Weight:  input.Weight,
		OwnerID: input.OwnerID,
	}

	changed, err := s.petRepo.Create(ctx, pet)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, domain.InvalidOperationf("Failed to create pet.")
	}

	log.Printf("✅ Pet created: %d (owner %d)", pet.ID, pet.OwnerID)
	return s.Get(ctx, pet.ID)
}

// Update applies the present fields of input. A new owner is checked
// before anything is applied; unchanged pets are not written.
func (s *PetService) Update(ctx context.Context, id uint, input *UpdatePetInput) (*models.PetResponse, error) {
	pet, err := s.petRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.notFound(err, id)
	}

	if input.OwnerID.Present && !input.OwnerID.Null && input.OwnerID.Value != pet.OwnerID {
		if err := s.requireOwner(ctx, input.OwnerID.Value); err != nil {
			return nil, err
		}
	}

	changed := patch.Apply(input.Name, &pet.Name)
	changed = patch.Apply(input.Species, &pet.Species) || changed
	changed = patch.ApplyNullable(input.Breed, &pet.Breed) || changed
	changed = patch.Apply(input.Age, &pet.Age) || changed
	changed = patch.Apply(input.Gender, &pet.Gender) || changed
	changed = patch.Apply(input.Weight, &pet.Weight) || changed
	changed = patch.Apply(input.OwnerID, &pet.OwnerID) || changed

	if changed {
		ok, err := s.petRepo.Update(ctx, pet)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.InvalidOperationf("Failed to update pet.")
		}
		log.Printf("✅ Pet updated: %d", pet.ID)
	}

	return s.Get(ctx, pet.ID)
}

// Delete removes a pet with its visits. It reports whether a row was removed.
func (s *PetService) Delete(ctx context.Context, id uint) (bool, error) {
	exists, err := s.petRepo.Exists(ctx, id)
	if err != nil {
		return false, err
	}
	if !exists {
		log.Printf("⚠️ Delete failed: pet %d not found", id)
		return false, petNotFound(id)
	}

	deleted, err := s.petRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		log.Printf("✅ Pet deleted: %d", id)
	}
	return deleted, nil
}

func (s *PetService) requireOwner(ctx context.Context, ownerID uint) error {
	exists, err := s.ownerRepo.Exists(ctx, ownerID)
	if err != nil {
		return err
	}
	if !exists {
		log.Printf("⚠️ Owner %d not found", ownerID)
		return ownerNotFound(ownerID)
	}
	return nil
}

func (s *PetService) notFound(err error, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("⚠️ Pet %d not found", id)
		return petNotFound(id)
	}
	return err
}

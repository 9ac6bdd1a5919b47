package repositories

import (
	"context"

	"vetclinic-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// petRepository implements PetRepository interface
type petRepository struct {
	db *gorm.DB
}

// NewPetRepository creates a new pet repository
func NewPetRepository(db *gorm.DB) PetRepository {
	return &petRepository{db: db}
}

// Create creates a new pet
func (r *petRepository) Create(ctx context.Context, pet *models.Pet) (bool, error) {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(pet)
	return result.RowsAffected > 0, result.Error
}

// GetByID gets a pet by ID without relations
func (r *petRepository) GetByID(ctx context.Context, id uint) (*models.Pet, error) {
	var pet models.Pet
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&pet).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

// GetWithOwner gets a pet with its owner
func (r *petRepository) GetWithOwner(ctx context.Context, id uint) (*models.Pet, error) {
	var pet models.Pet
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("id = ?", id).
		First(&pet).Error
	if err != nil {
		return nil, err
	}
	return &pet, nil
}

// GetWithHistory gets a pet with its owner, the owner's pet ids and every visit
// with veterinarian, diagnoses and treatments, all ordered by id
func (r *petRepository) GetWithHistory(ctx context.Context, id uint) (*models.Pet, error) {
	var pet models.Pet
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Owner.Pets", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "owner_id")
		}).
		Preload("Visits", func(db *gorm.DB) *gorm.DB {
			return db.Order("visits.id")
		}).
		Preload("Visits.Veterinarian").
		Preload("Visits.Diagnoses", func(db *gorm.DB) *gorm.DB {
			return db.Order("diagnoses.id")
		}).
		Preload("Visits.Treatments", func(db *gorm.DB) *gorm.DB {
			return db.Order("treatments.id")
		}).
		Where("id = ?", id).
		First(&pet).Error
	if err != nil {
		return nil, err
	}
	return &pet, nil
}

// List returns all pets with owners ordered by id
func (r *petRepository) List(ctx context.Context) ([]*models.Pet, error) {
	var pets []*models.Pet
	err := r.db.WithContext(ctx).Preload("Owner").Order("id").Find(&pets).Error
	return pets, err
}

// Exists checks if a pet exists
func (r *petRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Pet{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Update writes every column of the pet
func (r *petRepository) Update(ctx context.Context, pet *models.Pet) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(pet).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(pet)
	return result.RowsAffected > 0, result.Error
}

// Delete removes the pet with its visits and the visits' records
func (r *petRepository) Delete(ctx context.Context, id uint) (bool, error) {
	changed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deletePetChildren(tx, []uint{id}); err != nil {
			return err
		}
		result := tx.Delete(&models.Pet{}, id)
		if result.Error != nil {
			return result.Error
		}
		changed = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

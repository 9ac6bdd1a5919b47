package repositories

import (
	"context"

	"vetclinic-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// visitRepository implements VisitRepository interface
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository creates a new visit repository
func NewVisitRepository(db *gorm.DB) VisitRepository {
	return &visitRepository{db: db}
}

// CreateWithCheckIn inserts the visit and stamps the pet's last check-in
// with the visit date in the same transaction
func (r *visitRepository) CreateWithCheckIn(ctx context.Context, visit *models.Visit) (bool, error) {
	changed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Omit(clause.Associations).Create(visit)
		if result.Error != nil {
			return result.Error
		}

		checkIn := visit.VisitDate
		pet := tx.Model(&models.Pet{}).
			Where("id = ?", visit.PetID).
			Update("last_check_in_date", &checkIn)
		if pet.Error != nil {
			return pet.Error
		}

		changed = result.RowsAffected > 0 || pet.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

// GetByID gets a visit by ID without relations
func (r *visitRepository) GetByID(ctx context.Context, id uint) (*models.Visit, error) {
	var visit models.Visit
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&visit).Error; err != nil {
		return nil, err
	}
	return &visit, nil
}

// GetWithDetails gets a visit with pet, veterinarian, diagnoses and treatments
func (r *visitRepository) GetWithDetails(ctx context.Context, id uint) (*models.Visit, error) {
	var visit models.Visit
	if err := r.withDetails(ctx).Where("id = ?", id).First(&visit).Error; err != nil {
		return nil, err
	}
	return &visit, nil
}

// List returns all visits with details ordered by id
func (r *visitRepository) List(ctx context.Context) ([]*models.Visit, error) {
	var visits []*models.Visit
	err := r.withDetails(ctx).Order("id").Find(&visits).Error
	return visits, err
}

func (r *visitRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Pet").
		Preload("Veterinarian").
		Preload("Diagnoses", func(db *gorm.DB) *gorm.DB {
			return db.Order("diagnoses.id")
		}).
		Preload("Treatments", func(db *gorm.DB) *gorm.DB {
			return db.Order("treatments.id")
		})
}

// Exists checks if a visit exists
func (r *visitRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Visit{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Update writes every column of the visit
func (r *visitRepository) Update(ctx context.Context, visit *models.Visit) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(visit).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(visit)
	return result.RowsAffected > 0, result.Error
}

// Delete removes the visit with its diagnoses and treatments
func (r *visitRepository) Delete(ctx context.Context, id uint) (bool, error) {
	changed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteVisitChildren(tx, []uint{id}); err != nil {
			return err
		}
		result := tx.Delete(&models.Visit{}, id)
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

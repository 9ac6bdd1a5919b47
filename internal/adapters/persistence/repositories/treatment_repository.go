package repositories

import (
	"context"

	"vetclinic-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

type treatmentRepository struct {
	db *gorm.DB
}

// NewTreatmentRepository creates a new treatment repository
func NewTreatmentRepository(db *gorm.DB) TreatmentRepository {
	return &treatmentRepository{db: db}
}

func (r *treatmentRepository) Create(ctx context.Context, treatment *models.Treatment) (bool, error) {
	result := r.db.WithContext(ctx).Create(treatment)
	return result.RowsAffected > 0, result.Error
}

// ListByVisit returns the visit's treatments ascending by id
func (r *treatmentRepository) ListByVisit(ctx context.Context, visitID uint) ([]*models.Treatment, error) {
	var items []*models.Treatment
	err := r.db.WithContext(ctx).Where("visit_id = ?", visitID).Order("id").Find(&items).Error
	return items, err
}

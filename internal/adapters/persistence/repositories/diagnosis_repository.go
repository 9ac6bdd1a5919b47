package repositories

import (
	"context"

	"vetclinic-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

type diagnosisRepository struct {
	db *gorm.DB
}

// NewDiagnosisRepository creates a new diagnosis repository
func NewDiagnosisRepository(db *gorm.DB) DiagnosisRepository {
	return &diagnosisRepository{db: db}
}

func (r *diagnosisRepository) Create(ctx context.Context, diagnosis *models.Diagnosis) (bool, error) {
	result := r.db.WithContext(ctx).Create(diagnosis)
	return result.RowsAffected > 0, result.Error
}

// ListByVisit returns the visit's diagnoses ascending by id
func (r *diagnosisRepository) ListByVisit(ctx context.Context, visitID uint) ([]*models.Diagnosis, error) {
	var items []*models.Diagnosis
	err := r.db.WithContext(ctx).Where("visit_id = ?", visitID).Order("id").Find(&items).Error
	return items, err
}

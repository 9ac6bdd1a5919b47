package repositories

import (
	"context"

	"vetclinic-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ownerRepository implements OwnerRepository interface
type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository creates a new owner repository
func NewOwnerRepository(db *gorm.DB) OwnerRepository {
	return &ownerRepository{db: db}
}

// Create creates a new owner
func (r *ownerRepository) Create(ctx context.Context, owner *models.Owner) (bool, error) {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(owner)
	return result.RowsAffected > 0, result.Error
}

// GetByID gets an owner by ID
func (r *ownerRepository) GetByID(ctx context.Context, id uint) (*models.Owner, error) {
	var owner models.Owner
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&owner).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

// List returns all owners ordered by id
func (r *ownerRepository) List(ctx context.Context) ([]*models.Owner, error) {
	var owners []*models.Owner
	err := r.db.WithContext(ctx).Order("id").Find(&owners).Error
	return owners, err
}

// Exists checks if an owner exists
func (r *ownerRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Owner{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CountPets returns pet counts keyed by owner id; owners without pets are absent
func (r *ownerRepository) CountPets(ctx context.Context, ownerIDs ...uint) (map[uint]int64, error) {
	var rows []struct {
		OwnerID uint
		Total   int64
	}

	q := r.db.WithContext(ctx).Model(&models.Pet{}).Select("owner_id, COUNT(*) AS total").Group("owner_id")
	if len(ownerIDs) > 0 {
		q = q.Where("owner_id IN ?", ownerIDs)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.OwnerID] = row.Total
	}
	return counts, nil
}

// Update writes every column of the owner
func (r *ownerRepository) Update(ctx context.Context, owner *models.Owner) (bool, error) {
	result := r.db.WithContext(ctx).Model(owner).Select("*").Omit("id", "created_at", clause.Associations).Updates(owner)
	return result.RowsAffected > 0, result.Error
}

// Delete removes the owner with its pets, their visits and the visits' records
func (r *ownerRepository) Delete(ctx context.Context, id uint) (bool, error) {
	changed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteOwnerChildren(tx, id); err != nil {
			return err
		}
		result := tx.Delete(&models.Owner{}, id)
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

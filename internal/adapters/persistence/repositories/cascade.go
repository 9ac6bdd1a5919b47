package repositories

import (
	"vetclinic-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// The cascade graph is Owner -> Pet -> Visit -> {Diagnosis, Treatment}.
// Foreign keys declare ON DELETE CASCADE as well, but children are removed
// explicitly so the result does not depend on the engine enforcing them.

// deleteVisitChildren removes diagnoses and treatments of the given visits
func deleteVisitChildren(tx *gorm.DB, visitIDs []uint) error {
	if len(visitIDs) == 0 {
		return nil
	}
	if err := tx.Where("visit_id IN ?", visitIDs).Delete(&models.Diagnosis{}).Error; err != nil {
		return err
	}
	return tx.Where("visit_id IN ?", visitIDs).Delete(&models.Treatment{}).Error
}

// deletePetChildren removes the visits of the given pets and everything below them
func deletePetChildren(tx *gorm.DB, petIDs []uint) error {
	if len(petIDs) == 0 {
		return nil
	}

	var visitIDs []uint
	if err := tx.Model(&models.Visit{}).Where("pet_id IN ?", petIDs).Pluck("id", &visitIDs).Error; err != nil {
		return err
	}
	if err := deleteVisitChildren(tx, visitIDs); err != nil {
		return err
	}
	return tx.Where("pet_id IN ?", petIDs).Delete(&models.Visit{}).Error
}

// deleteOwnerChildren removes the pets of the owner and everything below them
func deleteOwnerChildren(tx *gorm.DB, ownerID uint) error {
	var petIDs []uint
	if err := tx.Model(&models.Pet{}).Where("owner_id = ?", ownerID).Pluck("id", &petIDs).Error; err != nil {
		return err
	}
	if err := deletePetChildren(tx, petIDs); err != nil {
		return err
	}
	if len(petIDs) == 0 {
		return nil
	}
	return tx.Where("id IN ?", petIDs).Delete(&models.Pet{}).Error
}

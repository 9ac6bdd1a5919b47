package repositories

import (
	"context"

	"vetclinic-api/internal/adapters/persistence/models"
)

// Write methods report changed=true when the statement affected at least one row.
// Services treat changed=false as a failed commit.

// UserRepository defines the identity store
type UserRepository interface {
	CreateWithRole(ctx context.Context, user *models.User, roleID uint) (bool, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, user *models.User) (bool, error)
	GetRoles(ctx context.Context, userID uint) ([]string, error)
	IsInRole(ctx context.Context, userID uint, role string) (bool, error)
	AddToRole(ctx context.Context, userID uint, role string) error
	ListInRole(ctx context.Context, role string) ([]*models.User, error)
}

// RoleRepository defines role lookups
type RoleRepository interface {
	GetByName(ctx context.Context, name string) (*models.Role, error)
	Ensure(ctx context.Context, name string) (*models.Role, error)
}

// OwnerRepository defines owner persistence
type OwnerRepository interface {
	Create(ctx context.Context, owner *models.Owner) (bool, error)
	GetByID(ctx context.Context, id uint) (*models.Owner, error)
	List(ctx context.Context) ([]*models.Owner, error)
	Exists(ctx context.Context, id uint) (bool, error)
	CountPets(ctx context.Context, ownerIDs ...uint) (map[uint]int64, error)
	Update(ctx context.Context, owner *models.Owner) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// PetRepository defines pet persistence
type PetRepository interface {
	Create(ctx context.Context, pet *models.Pet) (bool, error)
	GetByID(ctx context.Context, id uint) (*models.Pet, error)
	GetWithOwner(ctx context.Context, id uint) (*models.Pet, error)
	GetWithHistory(ctx context.Context, id uint) (*models.Pet, error)
	List(ctx context.Context) ([]*models.Pet, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, pet *models.Pet) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// VisitRepository defines visit persistence
type VisitRepository interface {
	CreateWithCheckIn(ctx context.Context, visit *models.Visit) (bool, error)
	GetByID(ctx context.Context, id uint) (*models.Visit, error)
	GetWithDetails(ctx context.Context, id uint) (*models.Visit, error)
	List(ctx context.Context) ([]*models.Visit, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, visit *models.Visit) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// DiagnosisRepository defines diagnosis persistence
type DiagnosisRepository interface {
	Create(ctx context.Context, diagnosis *models.Diagnosis) (bool, error)
	ListByVisit(ctx context.Context, visitID uint) ([]*models.Diagnosis, error)
}

// TreatmentRepository defines treatment persistence
type TreatmentRepository interface {
	Create(ctx context.Context, treatment *models.Treatment) (bool, error)
	ListByVisit(ctx context.Context, visitID uint) ([]*models.Treatment, error)
}

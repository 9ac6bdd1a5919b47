package services

import (
	"context"
	"errors"
	"log"
	"time"

	"vetclinic-api/internal/adapters/persistence/repositories"
	"vetclinic-api/internal/core/domain"

	"gorm.io/gorm"
)

// Approval errors
var (
	ErrNotVeterinarian = domain.InvalidOperationf("Only veterinarian accounts can be approved.")
	ErrApprovalFailed  = domain.InvalidOperationf("Failed to approve veterinarian.")
)

// AdminService handles veterinarian approval
type AdminService struct {
	userRepo repositories.UserRepository
}

// NewAdminService creates a new admin service
func NewAdminService(userRepo repositories.UserRepository) *AdminService {
	return &AdminService{userRepo: userRepo}
}

// ApprovalResponse is the approval state of a user
type ApprovalResponse struct {
	UserID     uint   `json:"user_id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	IsApproved bool   `json:"is_approved"`
}

// PendingVeterinarian is a registered veterinarian awaiting approval
type PendingVeterinarian struct {
	UserID     uint      `json:"user_id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	ClinicName *string   `json:"clinic_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// ListPendingVeterinarians returns unapproved veterinarians ordered by id
func (s *AdminService) ListPendingVeterinarians(ctx context.Context) ([]*PendingVeterinarian, error) {
	users, err := s.userRepo.ListInRole(ctx, domain.RoleVeterinarian)
	if err != nil {
		return nil, err
	}

	pending := make([]*PendingVeterinarian, 0, len(users))
	for _, u := range users {
		if u.IsApproved {
			continue
		}
		pending = append(pending, &PendingVeterinarian{
			UserID:     u.ID,
			Email:      u.Email,
			FullName:   u.FullName,
			ClinicName: u.ClinicName,
			CreatedAt:  u.CreatedAt,
		})
	}
	return pending, nil
}

// ApproveVeterinarian marks a veterinarian account approved.
// Approving an already approved account returns its state without writing.
func (s *AdminService) ApproveVeterinarian(ctx context.Context, userID uint) (*ApprovalResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("⚠️ Approval failed: user %d not found", userID)
			return nil, domain.NotFoundf("User not found with ID: %d", userID)
		}
		return nil, err
	}

	isVet, err := s.userRepo.IsInRole(ctx, userID, domain.RoleVeterinarian)
	if err != nil {
		return nil, err
	}
	if !isVet {
		log.Printf("⚠️ Approval rejected: user %d is not a veterinarian", userID)
		return nil, ErrNotVeterinarian
	}

	if !user.IsApproved {
		user.IsApproved = true
		changed, err := s.userRepo.Update(ctx, user)
		if err != nil {
			return nil, err
		}
		if !changed {
			return nil, ErrApprovalFailed
		}
		log.Printf("✅ Veterinarian approved: %s", user.Email)
	}

	return &ApprovalResponse{
		UserID:     user.ID,
		Email:      user.Email,
		FullName:   user.FullName,
		IsApproved: user.IsApproved,
	}, nil
}

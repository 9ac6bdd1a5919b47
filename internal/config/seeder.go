package config

import (
	"context"
	"errors"
	"log"
	"strings"

	"vetclinic-api/internal/adapters/persistence/models"
	"vetclinic-api/internal/adapters/persistence/repositories"
	"vetclinic-api/internal/core/domain"
	"vetclinic-api/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db   *gorm.DB
	seed SeedConfig
	hash func(string) (string, error)
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, seed SeedConfig) *Seeder {
	return &Seeder{db: db, seed: seed, hash: password.Hash}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedRoles(); err != nil {
		return err
	}

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedRoles makes sure every known role exists
func (s *Seeder) seedRoles() error {
	roles := repositories.NewRoleRepository(s.db)
	for _, name := range domain.Roles {
		if _, err := roles.Ensure(context.Background(), name); err != nil {
			return err
		}
	}
	return nil
}

// seedAdminUser creates the bootstrap administrator when SEED_ADMIN_EMAIL is set
func (s *Seeder) seedAdminUser() error {
	email := strings.ToLower(strings.TrimSpace(s.seed.AdminEmail))
	if email == "" {
		return nil
	}
	if !password.ValidatePassword(s.seed.AdminPassword) {
		return errors.New("SEED_ADMIN_PASSWORD does not satisfy the password policy")
	}

	// Check if admin already exists
	var count int64
	s.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hashedPassword, err := s.hash(s.seed.AdminPassword)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var role models.Role
		if err := tx.Where("name = ?", domain.RoleAdmin).First(&role).Error; err != nil {
			return err
		}

		admin := &models.User{
			Email:        email,
			UserName:     email,
			FullName:     s.seed.AdminFullName,
			PasswordHash: hashedPassword,
			IsApproved:   true,
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.UserRole{UserID: admin.ID, RoleID: role.ID}).Error; err != nil {
			return err
		}

		log.Printf("✅ Admin user created: %s", admin.Email)
		return nil
	})
}

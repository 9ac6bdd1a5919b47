package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"vetclinic-api/internal/adapters/persistence/models"
	"vetclinic-api/internal/adapters/persistence/repositories"
	"vetclinic-api/internal/config"
	"vetclinic-api/internal/core/domain"
	"vetclinic-api/internal/pkg/jwt"
	"vetclinic-api/internal/pkg/password"

	"gorm.io/gorm"
)

// Auth errors
var (
	ErrInvalidCredentials   = domain.Unauthorizedf("Invalid email or password.")
	ErrPendingApproval      = domain.Unauthorizedf("Your account is pending approval by an administrator.")
	ErrEmailTaken           = domain.InvalidOperationf("A user with this email already exists.")
	ErrDefaultRoleMissing   = domain.InvalidOperationf("Default role is not configured.")
	ErrUserRoleMissing      = domain.InvalidOperationf("User role is not configured.")
	ErrRegistrationRejected = domain.InvalidOperationf("Failed to register user.")
)

const registrationMessage = "Registration successful. Your account is pending approval by an administrator."

// AuthService handles authentication business logic
type AuthService struct {
	userRepo repositories.UserRepository
	roleRepo repositories.RoleRepository
	cfg      *config.Config
	hash     func(string) (string, error)
	now      func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	roleRepo repositories.RoleRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		cfg:      cfg,
		hash:     password.Hash,
		now:      time.Now,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	FullName   string  `json:"full_name" validate:"required,max=100"`
	Email      string  `json:"email" validate:"required,email,max=256"`
	Password   string  `json:"password" validate:"required"`
	ClinicName *string `json:"clinic_name" validate:"omitempty,max=200"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse is returned after a successful registration; no token is issued
type RegisterResponse struct {
	UserID           uint   `json:"user_id"`
	Email            string `json:"email"`
	FullName         string `json:"full_name"`
	Role             string `json:"role"`
	RequiresApproval bool   `json:"requires_approval"`
	Message          string `json:"message"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Token      string    `json:"token"`
	UserID     uint      `json:"user_id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Role       string    `json:"role"`
	Expiration time.Time `json:"expiration"`
}

// Register creates an unapproved veterinarian account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*RegisterResponse, error) {
	email := normalizeEmail(input.Email)

	// 1. Check if email already exists
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		log.Printf("⚠️ Registration rejected: email %s already in use", email)
		return nil, ErrEmailTaken
	}

	// 2. Resolve the default role
	role, err := s.roleRepo.GetByName(ctx, domain.RoleVeterinarian)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("❌ Role %s is missing, run the seeder", domain.RoleVeterinarian)
			return nil, ErrDefaultRoleMissing
		}
		return nil, err
	}

	// 3. Password policy
	if violations := password.Violations(input.Password); len(violations) > 0 {
		log.Printf("⚠️ Registration rejected for %s: weak password", email)
		return nil, domain.InvalidOperationf("%s", strings.Join(violations, "; "))
	}

	// 4. Hash password
	hashedPassword, err := s.hash(input.Password)
	if err != nil {
		return nil, err
	}

	// 5. Create user with its role
	user := &models.User{
		Email:        email,
		UserName:     email,
		FullName:     strings.TrimSpace(input.FullName),
		ClinicName:   input.ClinicName,
		PasswordHash: hashedPassword,
		IsApproved:   false,
	}

	changed, err := s.userRepo.CreateWithRole(ctx, user, role.ID)
	if err != nil {
		// a concurrent registration won the unique email index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Printf("⚠️ Registration rejected: email %s already in use", email)
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	if !changed {
		return nil, ErrRegistrationRejected
	}

	log.Printf("✅ Veterinarian registered, awaiting approval: %s", user.Email)

	return &RegisterResponse{
		UserID:           user.ID,
		Email:            user.Email,
		FullName:         user.FullName,
		Role:             domain.RoleVeterinarian,
		RequiresApproval: true,
		Message:          registrationMessage,
	}, nil
}

// Login verifies credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	email := normalizeEmail(input.Email)

	// 1. Find user
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("⚠️ Login failed: unknown email %s", email)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// 2. Verify password
	if !password.Verify(input.Password, user.PasswordHash) {
		log.Printf("⚠️ Login failed: wrong password for %s", email)
		return nil, ErrInvalidCredentials
	}

	// 3. Effective role
	roles, err := s.userRepo.GetRoles(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		log.Printf("⚠️ Login failed: user %d has no role", user.ID)
		return nil, ErrUserRoleMissing
	}
	role := roles[0]

	// 4. Approval gate
	if role == domain.RoleVeterinarian && !user.IsApproved {
		log.Printf("⚠️ Login blocked: veterinarian %s is pending approval", email)
		return nil, ErrPendingApproval
	}

	// 5. Issue token
	token, expiresAt, err := jwt.GenerateAccessToken(jwt.Subject{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.FullName,
		Role:   role,
	}, s.tokenOptions(), s.now())
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s (%s)", user.Email, role)

	return &AuthResponse{
		Token:      token,
		UserID:     user.ID,
		Email:      user.Email,
		FullName:   user.FullName,
		Role:       role,
		Expiration: expiresAt,
	}, nil
}

func (s *AuthService) tokenOptions() jwt.Options {
	return TokenOptions(s.cfg)
}

// TokenOptions builds the signing parameters shared by the service and the auth middleware
func TokenOptions(cfg *config.Config) jwt.Options {
	return jwt.Options{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		Expiry:   cfg.JWT.Expiry(),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"vetclinic-api/internal/adapters/persistence/models"
	"vetclinic-api/internal/core/domain"
	"vetclinic-api/internal/pkg/jwt"
	"vetclinic-api/internal/pkg/password"

	"gorm.io/gorm"
)

func newTestAuthService(users *fakeUserRepo, roles *fakeRoleRepo) *AuthService {
	svc := NewAuthService(users, roles, testConfig())
	svc.hash = fastHash
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func addUserWithPassword(t *testing.T, users *fakeUserRepo, email, pw string, approved bool, roles ...string) *models.User {
	t.Helper()
	hash, err := password.HashWithCost(pw, 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return users.add(models.User{
		Email:        email,
		UserName:     email,
		FullName:     "Dr. " + strings.Split(email, "@")[0],
		PasswordHash: hash,
		IsApproved:   approved,
	}, roles...)
}

func TestRegister_CreatesPendingVeterinarian(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users, newFakeRoleRepo(domain.RoleAdmin, domain.RoleVeterinarian))

	clinic := "Happy Paws"
	resp, err := svc.Register(context.Background(), &RegisterInput{
		FullName:   "Jane Vet",
		Email:      "  Jane@Example.com ",
		Password:   "Secret123",
		ClinicName: &clinic,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if !resp.RequiresApproval || resp.Role != domain.RoleVeterinarian {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Message != registrationMessage {
		t.Fatalf("unexpected message %q", resp.Message)
	}
	if resp.Email != "jane@example.com" {
		t.Fatalf("expected normalized email, got %q", resp.Email)
	}

	stored := users.users[resp.UserID]
	if stored == nil {
		t.Fatalf("user %d was not stored", resp.UserID)
	}
	if stored.IsApproved {
		t.Fatalf("new veterinarian must not be approved")
	}
	if stored.UserName != stored.Email {
		t.Fatalf("expected user name to equal email, got %q", stored.UserName)
	}
	if stored.PasswordHash != "hashed:Secret123" {
		t.Fatalf("password was not hashed through the service hasher")
	}
	if roles, _ := users.GetRoles(context.Background(), resp.UserID); len(roles) != 1 || roles[0] != domain.RoleVeterinarian {
		t.Fatalf("expected Veterinarian role, got %v", roles)
	}
}

func TestRegister_WeakPasswordListsEveryViolation(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users, newFakeRoleRepo(domain.RoleVeterinarian))

	_, err := svc.Register(context.Background(), &RegisterInput{FullName: "A", Email: "a@b.com", Password: "abc"})
	if !errors.Is(err, domain.ErrInvalidOperation) {
		t.Fatalf("expected invalid operation, got %v", err)
	}
	if !strings.Contains(err.Error(), "; ") || !strings.Contains(err.Error(), "at least 8 characters") {
		t.Fatalf("expected joined policy messages, got %q", err.Error())
	}
	if users.writes != 0 {
		t.Fatalf("expected no writes, got %d", users.writes)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	users.add(models.User{Email: "taken@example.com"}, domain.RoleVeterinarian)
	svc := newTestAuthService(users, newFakeRoleRepo(domain.RoleVeterinarian))

	_, err := svc.Register(context.Background(), &RegisterInput{FullName: "B", Email: "taken@example.com", Password: "Secret123"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if users.writes != 0 {
		t.Fatalf("expected no writes, got %d", users.writes)
	}
}

func TestRegister_DuplicateEmailReportedBeforePasswordPolicy(t *testing.T) {
	users := newFakeUserRepo()
	users.add(models.User{Email: "taken@example.com"}, domain.RoleVeterinarian)
	svc := newTestAuthService(users, newFakeRoleRepo(domain.RoleVeterinarian))

	_, err := svc.Register(context.Background(), &RegisterInput{FullName: "B", Email: "taken@example.com", Password: "abc"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken ahead of the policy, got %v", err)
	}
}

func TestRegister_MissingRoleReportedBeforePasswordPolicy(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), newFakeRoleRepo(domain.RoleAdmin))

	_, err := svc.Register(context.Background(), &RegisterInput{FullName: "C", Email: "c@example.com", Password: "abc"})
	if !errors.Is(err, ErrDefaultRoleMissing) {
		t.Fatalf("expected ErrDefaultRoleMissing ahead of the policy, got %v", err)
	}
}

func TestRegister_UniqueIndexRaceIsEmailTaken(t *testing.T) {
	users := newFakeUserRepo()
	users.createErr = gorm.ErrDuplicatedKey
	svc := newTestAuthService(users, newFakeRoleRepo(domain.RoleVeterinarian))

	_, err := svc.Register(context.Background(), &RegisterInput{FullName: "E", Email: "e@example.com", Password: "Secret123"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if domain.Message(err, "") != "A user with this email already exists." {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestRegister_MissingDefaultRole(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users, newFakeRoleRepo(domain.RoleAdmin))

	_, err := svc.Register(context.Background(), &RegisterInput{FullName: "C", Email: "c@example.com", Password: "Secret123"})
	if !errors.Is(err, ErrDefaultRoleMissing) {
		t.Fatalf("expected ErrDefaultRoleMissing, got %v", err)
	}
	if domain.Message(err, "") != "Default role is not configured." {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestRegister_CommitWithoutChange(t *testing.T) {
	users := newFakeUserRepo()
	users.rejectWrites = true
	svc := newTestAuthService(users, newFakeRoleRepo(domain.RoleVeterinarian))

	_, err := svc.Register(context.Background(), &RegisterInput{FullName: "D", Email: "d@example.com", Password: "Secret123"})
	if !errors.Is(err, domain.ErrInvalidOperation) {
		t.Fatalf("expected invalid operation, got %v", err)
	}
}

func TestLogin_UnapprovedVeterinarianIsRejected(t *testing.T) {
	users := newFakeUserRepo()
	addUserWithPassword(t, users, "pending@example.com", "Secret123", false, domain.RoleVeterinarian)
	svc := newTestAuthService(users, newFakeRoleRepo())

	_, err := svc.Login(context.Background(), &LoginInput{Email: "pending@example.com", Password: "Secret123"})
	if !errors.Is(err, ErrPendingApproval) {
		t.Fatalf("expected ErrPendingApproval, got %v", err)
	}
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("pending approval must be an unauthorized error")
	}
}

func TestLogin_PendingCheckRunsAfterPassword(t *testing.T) {
	users := newFakeUserRepo()
	addUserWithPassword(t, users, "pending@example.com", "Secret123", false, domain.RoleVeterinarian)
	svc := newTestAuthService(users, newFakeRoleRepo())

	_, err := svc.Login(context.Background(), &LoginInput{Email: "pending@example.com", Password: "Wrong1234"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for a wrong password, got %v", err)
	}
}

func TestLogin_UnknownEmailAndWrongPasswordShareMessage(t *testing.T) {
	users := newFakeUserRepo()
	addUserWithPassword(t, users, "vet@example.com", "Secret123", true, domain.RoleVeterinarian)
	svc := newTestAuthService(users, newFakeRoleRepo())

	_, unknown := svc.Login(context.Background(), &LoginInput{Email: "nobody@example.com", Password: "Secret123"})
	_, wrong := svc.Login(context.Background(), &LoginInput{Email: "vet@example.com", Password: "Secret999"})

	if unknown == nil || wrong == nil || unknown.Error() != wrong.Error() {
		t.Fatalf("expected identical errors, got %v and %v", unknown, wrong)
	}
	if unknown.Error() != "Invalid email or password." {
		t.Fatalf("unexpected message %q", unknown.Error())
	}
}

func TestLogin_UserWithoutRole(t *testing.T) {
	users := newFakeUserRepo()
	addUserWithPassword(t, users, "norole@example.com", "Secret123", true)
	svc := newTestAuthService(users, newFakeRoleRepo())

	_, err := svc.Login(context.Background(), &LoginInput{Email: "norole@example.com", Password: "Secret123"})
	if !errors.Is(err, ErrUserRoleMissing) {
		t.Fatalf("expected ErrUserRoleMissing, got %v", err)
	}
}

func TestLogin_ApprovedVeterinarianGetsToken(t *testing.T) {
	users := newFakeUserRepo()
	user := addUserWithPassword(t, users, "vet@example.com", "Secret123", true, domain.RoleVeterinarian)
	svc := newTestAuthService(users, newFakeRoleRepo())
	svc.now = time.Now

	resp, err := svc.Login(context.Background(), &LoginInput{Email: "VET@example.com", Password: "Secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.UserID != user.ID || resp.Role != domain.RoleVeterinarian {
		t.Fatalf("unexpected response: %+v", resp)
	}

	claims, err := jwt.ValidateAccessToken(resp.Token, TokenOptions(testConfig()))
	if err != nil {
		t.Fatalf("token should validate: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != domain.RoleVeterinarian || claims.Email != user.Email {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if resp.Expiration.Unix() != claims.ExpiresAt.Unix() {
		t.Fatalf("expiration %v does not match exp claim %v", resp.Expiration, claims.ExpiresAt.Time)
	}
}

func TestLogin_EffectiveRoleIsLowestRoleID(t *testing.T) {
	users := newFakeUserRepo()
	addUserWithPassword(t, users, "both@example.com", "Secret123", false, domain.RoleVeterinarian, domain.RoleAdmin)
	svc := newTestAuthService(users, newFakeRoleRepo())
	svc.now = time.Now

	resp, err := svc.Login(context.Background(), &LoginInput{Email: "both@example.com", Password: "Secret123"})
	if err != nil {
		t.Fatalf("admin role should not be gated by approval: %v", err)
	}
	if resp.Role != domain.RoleAdmin {
		t.Fatalf("expected Admin, got %s", resp.Role)
	}
}

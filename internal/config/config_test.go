package config

import (
	"fmt"
	"strings"
	"testing"

	"vetclinic-api/internal/adapters/persistence/models"
	"vetclinic-api/internal/core/domain"
	"vetclinic-api/internal/pkg/password"

	"gorm.io/gorm"
)

func memoryConfig(name string) *Config {
	return &Config{
		AppMode: "dev",
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			DBName: fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
			Quiet:  true,
		},
		JWT: JWTConfig{Secret: "config-test-secret", ExpirationMinutes: 60},
	}
}

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenDatabase(memoryConfig(t.Name()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func fastSeeder(db *gorm.DB, seed SeedConfig) *Seeder {
	s := NewSeeder(db, seed)
	s.hash = func(pw string) (string, error) { return password.HashWithCost(pw, 4) }
	return s
}

func TestSqliteDSN(t *testing.T) {
	cases := map[string]string{
		"vetclinic.db":                 "vetclinic.db?_pragma=foreign_keys(1)",
		"file:x?mode=memory":           "file:x?mode=memory&_pragma=foreign_keys(1)",
		"a.db?_pragma=foreign_keys(1)": "a.db?_pragma=foreign_keys(1)",
	}
	for in, want := range cases {
		if got := sqliteDSN(in); got != want {
			t.Fatalf("sqliteDSN(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	cfg := memoryConfig("validate")
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	bad := *cfg
	bad.Database.Driver = "oracle"
	if err := bad.Validate(); err == nil {
		t.Fatalf("unknown driver accepted")
	}

	bad = *cfg
	bad.JWT.Secret = ""
	if err := bad.Validate(); err == nil || !strings.Contains(err.Error(), "DEV_JWT_SECRET") {
		t.Fatalf("expected missing secret error, got %v", err)
	}

	bad = *cfg
	bad.AppMode = "prod"
	if err := bad.Validate(); err == nil {
		t.Fatalf("short prod secret accepted")
	}

	bad = *cfg
	bad.JWT.ExpirationMinutes = 0
	if err := bad.Validate(); err == nil {
		t.Fatalf("zero expiration accepted")
	}
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("APP_MODE", "dev")
	t.Setenv("DEV_DB_DRIVER", "SQLite")
	t.Setenv("DEV_DB_NAME", "clinic-test.db")
	t.Setenv("JWT_EXPIRATION_MINUTES", "15")
	t.Setenv("PENDING_DIGEST_CRON", "")
	t.Setenv("SEED_ADMIN_EMAIL", "root@example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.Driver != DriverSQLite || cfg.Database.DBName != "clinic-test.db" {
		t.Fatalf("unexpected database config %+v", cfg.Database)
	}
	if cfg.JWT.ExpirationMinutes != 15 || cfg.JWT.Expiry().Minutes() != 15 {
		t.Fatalf("unexpected expiry %d", cfg.JWT.ExpirationMinutes)
	}
	if cfg.Cron.PendingDigest != "" {
		t.Fatalf("explicitly empty schedule must disable the digest, got %q", cfg.Cron.PendingDigest)
	}
	if cfg.Seed.AdminEmail != "root@example.com" || cfg.Seed.AdminFullName == "" {
		t.Fatalf("unexpected seed config %+v", cfg.Seed)
	}
}

func TestLoad_RejectsUnknownMode(t *testing.T) {
	t.Setenv("APP_MODE", "staging")
	if _, err := Load(); err == nil {
		t.Fatalf("expected invalid APP_MODE error")
	}
}

func TestSeeder_IsIdempotent(t *testing.T) {
	db := openMemory(t)
	seed := SeedConfig{AdminEmail: " Admin@Clinic.test ", AdminPassword: "Admin1234", AdminFullName: "Root"}

	for i := 0; i < 2; i++ {
		if err := fastSeeder(db, seed).Run(); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	var roles int64
	db.Model(&models.Role{}).Count(&roles)
	if roles != int64(len(domain.Roles)) {
		t.Fatalf("expected %d roles, got %d", len(domain.Roles), roles)
	}

	var admins []models.User
	db.Where("email = ?", "admin@clinic.test").Find(&admins)
	if len(admins) != 1 {
		t.Fatalf("expected one admin, got %d", len(admins))
	}
	if !admins[0].IsApproved || !password.Verify("Admin1234", admins[0].PasswordHash) {
		t.Fatalf("admin not seeded correctly: %+v", admins[0])
	}

	var memberships int64
	db.Model(&models.UserRole{}).Where("user_id = ?", admins[0].ID).Count(&memberships)
	if memberships != 1 {
		t.Fatalf("expected one role membership, got %d", memberships)
	}
}

func TestSeeder_SkipsWeakAdminPassword(t *testing.T) {
	db := openMemory(t)
	seed := SeedConfig{AdminEmail: "admin@clinic.test", AdminPassword: "weak"}

	if err := fastSeeder(db, seed).Run(); err != nil {
		t.Fatalf("weak admin password must not fail the run: %v", err)
	}
	var users int64
	db.Model(&models.User{}).Count(&users)
	if users != 0 {
		t.Fatalf("weak password must not create an admin, got %d users", users)
	}
}

func TestPing(t *testing.T) {
	if err := Ping(nil); err == nil {
		t.Fatalf("nil database must fail")
	}
	if err := Ping(openMemory(t)); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

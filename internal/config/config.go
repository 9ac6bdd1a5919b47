package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode   string
	Port      string
	Database  DatabaseConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Seed      SeedConfig
	Cron      CronConfig
}

// DatabaseConfig holds database configuration
// For sqlite DBName is the file path or DSN.
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	Quiet    bool
}

// JWTConfig holds access token configuration
type JWTConfig struct {
	Secret            string
	Issuer            string
	Audience          string
	ExpirationMinutes int
}

// Expiry returns the token lifetime
func (j JWTConfig) Expiry() time.Duration {
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

// RateLimitConfig holds per-IP request limits per minute
type RateLimitConfig struct {
	Max     int
	AuthMax int
}

// SeedConfig holds the optional bootstrap administrator
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
	AdminFullName string
}

// CronConfig holds background job schedules
type CronConfig struct {
	PendingDigest string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Get APP_MODE (default to "dev") - trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:   appMode,
		Port:      getEnv("PORT", "3000"),
		Database:  loadDatabaseConfig(appMode),
		JWT:       loadJWTConfig(appMode),
		RateLimit: loadRateLimitConfig(),
		Seed: SeedConfig{
			AdminEmail:    getEnv("SEED_ADMIN_EMAIL", ""),
			AdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
			AdminFullName: getEnv("SEED_ADMIN_FULL_NAME", "Clinic Administrator"),
		},
		Cron: CronConfig{
			PendingDigest: os.Getenv("PENDING_DIGEST_CRON"),
		},
	}
	if _, set := os.LookupEnv("PENDING_DIGEST_CRON"); !set {
		config.Cron.PendingDigest = "0 8 * * *"
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// Validate rejects settings the server cannot run with
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverMySQL, DriverPostgres:
	default:
		return fmt.Errorf("invalid DB_DRIVER: '%s' (must be sqlite, mysql or postgres)", c.Database.Driver)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("missing JWT secret: set %sJWT_SECRET", modePrefix(c.AppMode))
	}
	if c.IsProd() && len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters in prod")
	}
	if c.JWT.ExpirationMinutes <= 0 {
		return fmt.Errorf("JWT_EXPIRATION_MINUTES must be positive")
	}
	return nil
}

func modePrefix(mode string) string {
	if mode == "prod" {
		return "PROD_"
	}
	return "DEV_"
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := modePrefix(mode)

	return DatabaseConfig{
		Driver:   strings.ToLower(getEnv(prefix+"DB_DRIVER", DriverSQLite)),
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "vetclinic.db"),
		SSLMode:  getEnv(prefix+"DB_SSLMODE", "disable"),
	}
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := modePrefix(mode)

	secretDefault := ""
	if mode == "dev" {
		secretDefault = "dev_only_secret_change_me_please_0123456789"
	}

	return JWTConfig{
		Secret:            getEnv(prefix+"JWT_SECRET", secretDefault),
		Issuer:            getEnv("JWT_ISSUER", "VetClinicApi"),
		Audience:          getEnv("JWT_AUDIENCE", "VetClinicApi"),
		ExpirationMinutes: getEnvInt("JWT_EXPIRATION_MINUTES", 60),
	}
}

// loadRateLimitConfig loads limiter thresholds
func loadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Max:     getEnvInt("RATE_LIMIT_MAX", 100),
		AuthMax: getEnvInt("AUTH_RATE_LIMIT_MAX", 5),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return v
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:4200"
	}
	return origins
}

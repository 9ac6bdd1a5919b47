package password

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12

	// MinLength is the minimum accepted password length
	MinLength = 8
)

// Hash hashes a password using bcrypt
func Hash(password string) (string, error) {
	return HashWithCost(password, DefaultCost)
}

// HashWithCost hashes a password with an explicit bcrypt cost.
// Tests use bcrypt.MinCost to stay fast.
func HashWithCost(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a password with a hash
func Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Violations returns every policy rule the password breaks, empty when it is acceptable
func Violations(password string) []string {
	var (
		hasDigit bool
		hasUpper bool
		hasLower bool
	)
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}

	var out []string
	if len([]rune(password)) < MinLength {
		out = append(out, "Passwords must be at least 8 characters.")
	}
	if !hasDigit {
		out = append(out, "Passwords must have at least one digit ('0'-'9').")
	}
	if !hasUpper {
		out = append(out, "Passwords must have at least one uppercase ('A'-'Z').")
	}
	if !hasLower {
		out = append(out, "Passwords must have at least one lowercase ('a'-'z').")
	}
	return out
}

// ValidatePassword checks if password meets requirements
func ValidatePassword(password string) bool {
	return len(Violations(password)) == 0
}

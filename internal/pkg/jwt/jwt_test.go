package jwt

import (
	"errors"
	"testing"
	"time"
)

func testOptions() Options {
	return Options{
		Secret:   "test-secret-with-enough-length",
		Issuer:   "VetClinicApi",
		Audience: "VetClinicApi",
		Expiry:   30 * time.Minute,
	}
}

func TestGenerateAndValidate_RoundTripsClaims(t *testing.T) {
	opts := testOptions()
	now := time.Now()

	token, expiresAt, err := GenerateAccessToken(Subject{
		UserID: 7,
		Email:  "vet@example.com",
		Name:   "Dr. Vet",
		Role:   "Veterinarian",
	}, opts, now)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !expiresAt.Equal(now.Add(opts.Expiry)) {
		t.Fatalf("expected expiry %v, got %v", now.Add(opts.Expiry), expiresAt)
	}

	claims, err := ValidateAccessToken(token, opts)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "vet@example.com" || claims.Name != "Dr. Vet" || claims.Role != "Veterinarian" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Fatalf("expected jti to be set")
	}
	if claims.Subject != "7" {
		t.Fatalf("expected subject 7, got %q", claims.Subject)
	}
}

func TestGenerate_UniqueTokenIDs(t *testing.T) {
	opts := testOptions()
	now := time.Now()
	sub := Subject{UserID: 1, Email: "a@b.c", Name: "A", Role: "Admin"}

	t1, _, err := GenerateAccessToken(sub, opts, now)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	t2, _, err := GenerateAccessToken(sub, opts, now)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	c1, _ := ValidateAccessToken(t1, opts)
	c2, _ := ValidateAccessToken(t2, opts)
	if c1.ID == c2.ID {
		t.Fatalf("expected distinct jti values")
	}
}

func TestValidate_Expired(t *testing.T) {
	opts := testOptions()
	token, _, err := GenerateAccessToken(Subject{UserID: 1, Role: "Admin"}, opts, time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = ValidateAccessToken(token, opts)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidate_RejectsWrongSecretIssuerAudience(t *testing.T) {
	opts := testOptions()
	token, _, err := GenerateAccessToken(Subject{UserID: 1, Role: "Admin"}, opts, time.Now())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	cases := map[string]func(o *Options){
		"secret":   func(o *Options) { o.Secret = "another-secret-entirely" },
		"issuer":   func(o *Options) { o.Issuer = "SomeoneElse" },
		"audience": func(o *Options) { o.Audience = "SomeoneElse" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			o := testOptions()
			mutate(&o)
			if _, err := ValidateAccessToken(token, o); !errors.Is(err, ErrTokenInvalid) {
				t.Fatalf("expected ErrTokenInvalid, got %v", err)
			}
		})
	}
}

func TestValidate_Garbage(t *testing.T) {
	if _, err := ValidateAccessToken("not-a-token", testOptions()); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

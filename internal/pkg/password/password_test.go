package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashWithCost("Secret123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "Secret123" {
		t.Fatalf("hash must not equal the plain password")
	}
	if !Verify("Secret123", hash) {
		t.Fatalf("expected password to verify")
	}
	if Verify("secret123", hash) {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestViolations(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"Secret123", 0},
		{"Sec1", 1},
		{"secret123", 1},
		{"SECRET123", 1},
		{"SecretSecret", 1},
		{"", 4},
	}

	for _, tc := range cases {
		got := Violations(tc.in)
		if len(got) != tc.want {
			t.Fatalf("Violations(%q): expected %d, got %d (%v)", tc.in, tc.want, len(got), got)
		}
		if ValidatePassword(tc.in) != (tc.want == 0) {
			t.Fatalf("ValidatePassword(%q) disagrees with Violations", tc.in)
		}
	}
}

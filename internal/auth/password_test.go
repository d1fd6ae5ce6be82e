package auth

import (
	"errors"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	password := "Str0ng!Password"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if hash == password {
		t.Error("Expected hash to differ from plaintext")
	}

	if !VerifyPassword(hash, password) {
		t.Error("Expected password to verify against its hash")
	}

	if VerifyPassword(hash, "wrong-password") {
		t.Error("Expected wrong password to fail verification")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err1 := HashPassword("Str0ng!Password")
	h2, err2 := HashPassword("Str0ng!Password")
	if err1 != nil || err2 != nil {
		t.Fatalf("Expected no errors, got %v, %v", err1, err2)
	}

	if h1 == h2 {
		t.Error("Expected different hashes for the same password")
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "Str0ng!Password", nil},
		{"too short", "S1!a", ErrPasswordTooShort},
		{"no uppercase", "weak1!password", ErrPasswordNoUpper},
		{"no lowercase", "WEAK1!PASSWORD", ErrPasswordNoLower},
		{"no number", "Weak!Password", ErrPasswordNoNumber},
		{"no special char", "Weak1Password", ErrPasswordNoSpecialChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

package auth

import (
	"testing"
	"time"
)

func TestGenerateToken(t *testing.T) {
	secret := "test-secret"
	userID := "test-user-id"
	role := RoleUser
	ttl := 24 * time.Hour

	token, err := GenerateToken(secret, userID, role, ttl)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if token == "" {
		t.Error("Expected token to be generated")
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("Expected no error parsing token, got %v", err)
	}

	if claims.Sub != userID {
		t.Errorf("Expected user ID %s, got %s", userID, claims.Sub)
	}

	if claims.Role != role {
		t.Errorf("Expected role %s, got %s", role, claims.Role)
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	secret := "test-secret"
	invalidToken := "invalid.token.here"

	_, err := ParseToken(secret, invalidToken)
	if err == nil {
		t.Error("Expected error for invalid token")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-a", "user-1", RoleUser, time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = ParseToken("secret-b", token)
	if err == nil {
		t.Error("Expected error for token signed with a different secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("test-secret", "user-1", RoleUser, -time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = ParseToken("test-secret", token)
	if err == nil {
		t.Error("Expected error for expired token")
	}
}

func TestGenerateToken_AdminRole(t *testing.T) {
	token, err := GenerateToken("test-secret", "admin-1", RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	claims, err := ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if claims.Role != RoleAdmin {
		t.Errorf("Expected role %s, got %s", RoleAdmin, claims.Role)
	}
}

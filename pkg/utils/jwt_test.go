package utils

import (
	"testing"
)

func TestCreateAndValidateToken_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := CreateToken(7, true)
	if err != nil {
		t.Fatalf("CreateToken returned error: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, expected 7", claims.UserID)
	}
	if !claims.Superuser {
		t.Error("Superuser claim lost in round trip")
	}
}

// The signing key must be read per call, not captured at package init, so a
// secret loaded from .env during startup takes effect.
func TestTokenSigning_UsesCurrentSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := CreateToken(1, false)
	if err != nil {
		t.Fatalf("CreateToken returned error: %v", err)
	}

	t.Setenv("JWT_SECRET", "rotated-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("token signed with the old secret should fail validation after rotation")
	}

	token, err = CreateToken(1, false)
	if err != nil {
		t.Fatalf("CreateToken returned error: %v", err)
	}
	if _, err := ValidateToken(token); err != nil {
		t.Fatalf("token signed with the current secret should validate, got %v", err)
	}
}

package devserver

import (
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("u-1", "a@b.c", "customer")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	userID, email, role, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if userID != "u-1" || email != "a@b.c" || role != "customer" {
		t.Fatalf("claims mismatch: %s %s %s", userID, email, role)
	}
}

func TestGenerateTokenRequiresUserID(t *testing.T) {
	if _, err := GenerateToken("", "a@b.c", "customer"); err == nil {
		t.Fatal("expected error for empty userID")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, _, _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

package security

import (
	"strings"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Issuer != "Clipsight" {
		t.Errorf("Issuer = %q", claims.Issuer)
	}
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	token, err := GenerateToken(1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ValidateToken(tampered); err == nil {
		t.Error("expected tampered token to fail validation")
	}
}

func TestExtractSignature(t *testing.T) {
	token, err := GenerateToken(1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	sig, err := ExtractSignature(token)
	if err != nil {
		t.Fatalf("ExtractSignature: %v", err)
	}
	if sig != strings.Split(token, ".")[2] {
		t.Errorf("signature mismatch")
	}

	if _, err := ExtractSignature("not-a-jwt"); err == nil {
		t.Error("expected malformed token to fail")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := CheckPasswordHash("s3cret-pass", hash); err != nil {
		t.Errorf("CheckPasswordHash: %v", err)
	}
	if err := CheckPasswordHash("wrong", hash); err == nil {
		t.Error("expected wrong password to fail")
	}
	if _, err := HashPassword(""); err == nil {
		t.Error("expected empty password to fail")
	}
}

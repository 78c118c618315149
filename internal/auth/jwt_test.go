package auth

import (
	"testing"
	"time"

	"gainsystem/pkg/config"
)

func testManager(ttl time.Duration) *JWTManager {
	return NewJWTManager(&config.Config{SecretKey: "test-secret", AccessTokenTTL: ttl})
}

func TestGenerateVerifyRoundtrip(t *testing.T) {
	manager := testManager(time.Minute)

	token, err := manager.Generate("anna@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Email != "anna@example.com" {
		t.Fatalf("email claim mismatch: %q", claims.Email)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	manager := testManager(time.Minute)

	token, err := manager.Generate("anna@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := manager.Verify(tampered); err == nil {
		t.Fatal("tampered token accepted")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := testManager(time.Minute).Generate("anna@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	other := NewJWTManager(&config.Config{SecretKey: "other-secret", AccessTokenTTL: time.Minute})
	if _, err := other.Verify(token); err == nil {
		t.Fatal("token signed with a different secret accepted")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	manager := testManager(-time.Minute)

	token, err := manager.Generate("anna@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := manager.Verify(token); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestVerifyRequiresEmailClaim(t *testing.T) {
	manager := testManager(time.Minute)

	token, err := manager.Generate("")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := manager.Verify(token); err == nil {
		t.Fatal("token without an email claim accepted")
	}
}

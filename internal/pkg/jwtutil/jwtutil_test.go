package jwtutil

import (
	"testing"
	"time"
)

func testPrincipal() Principal {
	return Principal{
		UserID:    42,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Email:     "ada@example.com",
	}
}

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := "super-secret"
	want := testPrincipal()

	tok, err := GenerateToken(secret, time.Hour, want)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ParseToken(secret, tok)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if got := claims.Principal(); got != want {
		t.Fatalf("principal mismatch: got %+v want %+v", got, want)
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("secret", -1*time.Second, testPrincipal())
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := ParseToken("secret", tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("right-secret", time.Hour, testPrincipal())
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := ParseToken("wrong-secret", tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParseToken_MalformedString(t *testing.T) {
	t.Parallel()

	if _, err := ParseToken("k", "not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

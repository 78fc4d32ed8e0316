package auth

import (
	"errors"
	"testing"
	"time"
)

func TestMintVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("test-signing-key", "confera-test", time.Hour)

	token, err := svc.Mint("user-1", "attendee")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != "attendee" {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if claims.Issuer != "confera-test" {
		t.Fatalf("unexpected issuer %q", claims.Issuer)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-signing-key", "confera-test", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	minted, err := NewTokenService("key-one", "confera-test", time.Hour).Mint("user-1", "attendee")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if _, err := NewTokenService("key-two", "confera-test", time.Hour).Verify(minted); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign key, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("test-signing-key", "confera-test", -time.Minute)
	// Negative TTL falls back to the default, so build a genuinely short one.
	short := &TokenService{signingKey: []byte("test-signing-key"), issuer: "confera-test", tokenTTL: time.Nanosecond}

	token, err := short.Mint("user-1", "attendee")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := BcryptHasher{}

	hash, err := hasher.Hash("Passw0rd!")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !hasher.Verify(hash, "Passw0rd!") {
		t.Fatalf("expected hash to verify against the original password")
	}
	if hasher.Verify(hash, "WrongPass!") {
		t.Fatalf("expected wrong password to fail verification")
	}
}

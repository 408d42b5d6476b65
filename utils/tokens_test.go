package utils

import (
	"testing"
	"time"
)

func TestManagerRoundTrip(t *testing.T) {
	m, err := NewManager("test-signing-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := m.NewJWT(42, "pro", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 42 || claims.Role != "pro" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestManagerRejectsWrongKey(t *testing.T) {
	m1, _ := NewManager("key-one")
	m2, _ := NewManager("key-two")

	token, err := m1.NewJWT(1, "client", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m2.Parse(token); err == nil {
		t.Fatal("token signed with another key should not parse")
	}
}

func TestNewManagerEmptyKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Fatal("empty signing key should be rejected")
	}
}

func TestNewRefreshTokenUnique(t *testing.T) {
	m, _ := NewManager("k")
	a, err := m.NewRefreshToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := m.NewRefreshToken()
	if len(a) != 64 {
		t.Fatalf("token length = %d, want 64 hex chars", len(a))
	}
	if a == b {
		t.Fatal("refresh tokens should not repeat")
	}
}

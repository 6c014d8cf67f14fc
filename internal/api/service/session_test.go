package service

import (
	"errors"
	"testing"
	"time"

	"ycliu87/Car-Garage/internal/api/models"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("super-secret"), time.Hour)

	tok, err := m.Issue("alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	username, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if username != "alice" {
		t.Fatalf("Verify() username = %q, want %q", username, "alice")
	}
}

func TestTokenManager_Expired(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("secret"), -1*time.Second)

	tok, err := m.Issue("alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = m.Verify(tok)
	if !errors.Is(err, models.ErrUnauthenticated) {
		t.Fatalf("Verify() on expired token error = %v, want ErrUnauthenticated", err)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager([]byte("right-secret"), time.Hour)
	verifier := NewTokenManager([]byte("wrong-secret"), time.Hour)

	tok, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = verifier.Verify(tok)
	if !errors.Is(err, models.ErrUnauthenticated) {
		t.Fatalf("Verify() with wrong secret error = %v, want ErrUnauthenticated", err)
	}
}

func TestTokenManager_Malformed(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("k"), time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		if _, err := m.Verify(tok); !errors.Is(err, models.ErrUnauthenticated) {
			t.Errorf("Verify(%q) error = %v, want ErrUnauthenticated", tok, err)
		}
	}
}

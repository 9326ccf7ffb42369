package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/complaint-tracker/internal/domain"
	"github.com/msomdec/complaint-tracker/internal/session"
)

func TestToken_IssueAndValidate(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	user, err := m.Register(ctx, registrationForm("alice", "alice@x.com", "Secret1!"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, err := m.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	username, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if username != "alice" {
		t.Fatalf("expected alice, got %q", username)
	}
}

func TestToken_Invalid(t *testing.T) {
	m := newTestManager(t)

	_, err := m.ValidateToken("not-a-valid-jwt")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestToken_Tampered(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	user, err := m.Register(ctx, registrationForm("alice", "alice@x.com", "Secret1!"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	token, err := m.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	tampered := token[:len(token)-5] + "XXXXX"
	_, err = m.ValidateToken(tampered)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for tampered token, got %v", err)
	}
}

func TestToken_WrongSecret(t *testing.T) {
	m1 := newTestManager(t)
	ctx := context.Background()

	user, err := m1.Register(ctx, registrationForm("alice", "alice@x.com", "Secret1!"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	token, err := m1.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	m2 := session.NewManager(newTestStore(t), "a-completely-different-secret", session.WithBcryptCost(4))
	if err := m2.Hydrate(ctx); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if _, err := m2.ValidateToken(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong secret, got %v", err)
	}
}

// Guards against a stale manager validating tokens for users that were
// never registered through it.
func TestToken_UnknownSubjectStillParses(t *testing.T) {
	m := newTestManager(t)

	user := &domain.User{Username: "ghost", Email: "ghost@x.com"}
	token, err := m.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	username, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if username != "ghost" {
		t.Fatalf("expected ghost, got %q", username)
	}
	if _, ok := m.UserByUsername("ghost"); ok {
		t.Fatal("ghost must not exist in the directory")
	}
}

// Package store persists the tracker's three records (current user, user
// directory, complaint list) as JSON values in a durable key-value backend.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/msomdec/complaint-tracker/internal/domain"
)

// Storage keys, carried over from the original local-storage layout.
const (
	KeyUser       = "dct_user"
	KeyUsers      = "dct_users"
	KeyComplaints = "dct_complaints"
)

// KV is the durable key-value backend. Get returns (nil, nil) when the key
// is absent. Delete of an absent key is a no-op.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store serializes application records over a KV backend. Reads of missing
// or unreadable records fall back to the empty state so startup stays
// resilient to storage corruption; writes surface their errors.
type Store struct {
	kv KV
}

func New(kv KV) *Store {
	return &Store{kv: kv}
}

// CurrentUser returns the persisted current user, or nil when the record is
// absent or unreadable.
func (s *Store) CurrentUser(ctx context.Context) *domain.User {
	var user domain.User
	if !s.read(ctx, KeyUser, &user) {
		return nil
	}
	return &user
}

func (s *Store) SetCurrentUser(ctx context.Context, user *domain.User) error {
	return s.write(ctx, KeyUser, user)
}

func (s *Store) ClearCurrentUser(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeyUser); err != nil {
		return fmt.Errorf("delete %s: %w", KeyUser, err)
	}
	return nil
}

// Users returns the persisted user directory, empty when the record is
// absent or unreadable.
func (s *Store) Users(ctx context.Context) []domain.User {
	var users []domain.User
	s.read(ctx, KeyUsers, &users)
	return users
}

func (s *Store) SetUsers(ctx context.Context, users []domain.User) error {
	return s.write(ctx, KeyUsers, users)
}

// Complaints returns the persisted complaint list, empty when the record is
// absent or unreadable. Insertion order is preserved.
func (s *Store) Complaints(ctx context.Context) []domain.Complaint {
	var complaints []domain.Complaint
	s.read(ctx, KeyComplaints, &complaints)
	return complaints
}

func (s *Store) SetComplaints(ctx context.Context, complaints []domain.Complaint) error {
	return s.write(ctx, KeyComplaints, complaints)
}

// read decodes the record under key into dst. It reports whether a value
// was decoded; backend and decode failures are logged and swallowed.
func (s *Store) read(ctx context.Context, key string, dst any) bool {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		slog.Warn("storage read failed, using empty state", "key", key, "error", err)
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		slog.Warn("storage record corrupt, using empty state", "key", key, "error", err)
		return false
	}
	return true
}

func (s *Store) write(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

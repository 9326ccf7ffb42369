// Package session owns the application state: the current session, the
// registered-user directory, and the complaint list. Every mutation is
// written through to the store before it becomes visible in memory, so the
// in-memory state never silently diverges from what was persisted.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/msomdec/complaint-tracker/internal/domain"
	"github.com/msomdec/complaint-tracker/internal/store"
	"github.com/msomdec/complaint-tracker/internal/validate"
)

// Manager mediates between the store and the rest of the application. It is
// safe for concurrent use.
type Manager struct {
	mu         sync.Mutex
	store      *store.Store
	jwtSecret  []byte
	bcryptCost int
	throttle   *Throttle

	session    domain.Session
	users      []domain.User
	complaints []domain.Complaint
}

// Option configures a Manager.
type Option func(*Manager)

// WithBcryptCost overrides the default bcrypt cost. Tests use a low cost.
func WithBcryptCost(cost int) Option {
	return func(m *Manager) { m.bcryptCost = cost }
}

// WithThrottle installs a per-user throttle on complaint submission.
func WithThrottle(t *Throttle) Option {
	return func(m *Manager) { m.throttle = t }
}

// NewManager creates a Manager over the given store. Call Hydrate before
// serving requests.
func NewManager(st *store.Store, jwtSecret string, opts ...Option) *Manager {
	m := &Manager{
		store:      st,
		jwtSecret:  []byte(jwtSecret),
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Hydrate populates in-memory state from the store. It is idempotent:
// calling it again with unchanged storage yields identical state.
func (m *Manager) Hydrate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = m.store.Users(ctx)
	m.complaints = m.store.Complaints(ctx)

	user := m.store.CurrentUser(ctx)
	m.session = domain.Session{CurrentUser: user, IsLoggedIn: user != nil}
	return nil
}

// Register validates the form, rejects duplicate usernames or emails
// (case-sensitive exact match), appends the new user to the directory, and
// signs the user in. Both the directory and the current-user record are
// written through before the new session becomes visible.
func (m *Manager) Register(ctx context.Context, form validate.RegistrationForm) (*domain.User, error) {
	if err := validate.AsError(validate.Registration(form)); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	username := strings.TrimSpace(form.Username)
	email := strings.TrimSpace(form.Email)

	for _, u := range m.users {
		if u.Username == username || u.Email == email {
			return nil, domain.ErrDuplicateUser
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), m.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	next := append(append([]domain.User(nil), m.users...), user)
	if err := m.store.SetUsers(ctx, next); err != nil {
		return nil, fmt.Errorf("persist user directory: %w", err)
	}
	m.users = next

	if err := m.store.SetCurrentUser(ctx, &user); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	m.session = domain.Session{CurrentUser: &user, IsLoggedIn: true}

	return &user, nil
}

// Login checks the credentials against the user directory and signs the
// user in. Unknown usernames and wrong passwords are indistinguishable to
// the caller; the session is left untouched on failure.
func (m *Manager) Login(ctx context.Context, form validate.LoginForm) (*domain.User, error) {
	if err := validate.AsError(validate.Login(form)); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	username := strings.TrimSpace(form.Username)

	var match *domain.User
	for i := range m.users {
		if m.users[i].Username == username {
			match = &m.users[i]
			break
		}
	}
	if match == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(match.PasswordHash), []byte(form.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user := *match
	if err := m.store.SetCurrentUser(ctx, &user); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	m.session = domain.Session{CurrentUser: &user, IsLoggedIn: true}

	return &user, nil
}

// Logout clears the session and removes the persisted current-user record.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.ClearCurrentUser(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	m.session = domain.Session{}
	return nil
}

// SubmitComplaint appends a new complaint for the signed-in user. The
// authentication gate is checked before the fields are even looked at, so
// a logged-out caller gets ErrNotAuthenticated regardless of form validity
// and nothing is appended.
func (m *Manager) SubmitComplaint(ctx context.Context, form validate.ComplaintForm) (*domain.Complaint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.session.IsLoggedIn {
		return nil, domain.ErrNotAuthenticated
	}
	if m.throttle != nil && !m.throttle.Allow(m.session.CurrentUser.Username) {
		return nil, domain.ErrTooManyRequests
	}
	if err := validate.AsError(validate.Complaint(form)); err != nil {
		return nil, err
	}

	complaint := domain.Complaint{
		ID:               uuid.NewString(),
		FullName:         strings.TrimSpace(form.FullName),
		CollegeName:      strings.TrimSpace(form.CollegeName),
		Year:             strings.TrimSpace(form.Year),
		ComplaintType:    strings.TrimSpace(form.ComplaintType),
		Subject:          strings.TrimSpace(form.Subject),
		Description:      strings.TrimSpace(form.Description),
		AttachedFileName: strings.TrimSpace(form.AttachedFileName),
		DateSubmitted:    time.Now().UTC(),
		Status:           domain.ComplaintStatusPending,
	}

	next := append(append([]domain.Complaint(nil), m.complaints...), complaint)
	if err := m.store.SetComplaints(ctx, next); err != nil {
		return nil, fmt.Errorf("persist complaints: %w", err)
	}
	m.complaints = next

	return &complaint, nil
}

// Session returns a snapshot of the current session.
func (m *Manager) Session() domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := m.session
	if snapshot.CurrentUser != nil {
		user := *snapshot.CurrentUser
		snapshot.CurrentUser = &user
	}
	return snapshot
}

// IsLoggedIn reports whether a user is currently signed in.
func (m *Manager) IsLoggedIn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.IsLoggedIn
}

// Complaints returns a copy of the complaint list in insertion order.
func (m *Manager) Complaints() []domain.Complaint {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Complaint(nil), m.complaints...)
}

// UserByUsername looks up a registered user by exact username.
func (m *Manager) UserByUsername(username string) (*domain.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.users {
		if m.users[i].Username == username {
			user := m.users[i]
			return &user, true
		}
	}
	return nil, false
}

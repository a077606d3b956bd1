// Package auth holds the reducer-driven session state machine. State moves
// between unauthenticated and authenticated through explicit events; the
// machine is cyclic, logout leads back to a state that can log in again.
package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"fundtrack-go/internal/models"
	"fundtrack-go/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event is a state machine transition trigger.
type Event int

const (
	EventLoginStart Event = iota
	EventLoginSuccess
	EventLoginFailure
	EventRegisterStart
	EventRegisterSuccess
	EventRegisterFailure
	EventLogout
)

// State is the in-memory session state.
type State struct {
	Authenticated bool
	User          *models.User
	// Loading is true from startup until the first session check, and
	// during in-flight login/register calls.
	Loading bool
}

// reduce returns the state following an event. Unknown events leave the
// state unchanged.
func reduce(s State, e Event, user *models.User) State {
	switch e {
	case EventLoginStart, EventRegisterStart:
		s.Loading = true
		return s
	case EventLoginSuccess, EventRegisterSuccess:
		return State{Authenticated: true, User: user, Loading: false}
	case EventLoginFailure, EventRegisterFailure, EventLogout:
		return State{Authenticated: false, User: nil, Loading: false}
	default:
		return s
	}
}

// RegisterParams carries the profile fields collected at registration.
type RegisterParams struct {
	Email       string
	Password    string
	FullName    string
	PhoneNumber string
}

// Manager drives the session lifecycle against the repository and a
// pluggable credential verifier.
type Manager struct {
	repo     *repository.Repository
	verifier CredentialVerifier
	now      func() time.Time

	mu    sync.Mutex
	state State
}

func NewManager(repo *repository.Repository, verifier CredentialVerifier) *Manager {
	return &Manager{
		repo:     repo,
		verifier: verifier,
		now:      time.Now,
		state:    State{Loading: true},
	}
}

// State returns a snapshot of the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) dispatch(e Event, user *models.User) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = reduce(m.state, e, user)
	return m.state
}

// CheckAuthStatus resolves the startup session check: a valid persisted
// session with a readable profile auto-logs the user in, anything else
// lands in the unauthenticated state.
func (m *Manager) CheckAuthStatus(ctx context.Context) State {
	if m.repo.CheckUserSession(ctx) {
		if user := m.repo.GetUser(ctx); user != nil {
			zap.L().Info("Session restored", zap.String("user_id", user.Id))
			return m.dispatch(EventLoginSuccess, user)
		}
	}
	return m.dispatch(EventLoginFailure, nil)
}

// Login establishes a session for the given credentials. When no profile
// exists yet a fresh user record is fabricated, so in open verification
// mode login doubles as first-contact registration.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	m.dispatch(EventLoginStart, nil)

	if err := m.verifier.Verify(ctx, email, password); err != nil {
		m.dispatch(EventLoginFailure, nil)
		return nil, fmt.Errorf("login rejected: %w", err)
	}

	user := m.repo.GetUser(ctx)
	if user == nil || user.Email != email {
		fabricated := m.newUser(email, emailPrefix(email), "")
		user = &fabricated
	}

	if err := m.repo.SaveUser(ctx, *user); err != nil {
		m.dispatch(EventLoginFailure, nil)
		return nil, err
	}

	m.dispatch(EventLoginSuccess, user)
	zap.L().Info("User logged in", zap.String("user_id", user.Id), zap.String("email", email))
	return user, nil
}

// Register enrolls credentials and creates the user record.
func (m *Manager) Register(ctx context.Context, params RegisterParams) (*models.User, error) {
	m.dispatch(EventRegisterStart, nil)

	if err := m.verifier.Enroll(ctx, params.Email, params.Password); err != nil {
		m.dispatch(EventRegisterFailure, nil)
		return nil, fmt.Errorf("registration rejected: %w", err)
	}

	user := m.newUser(params.Email, params.FullName, params.PhoneNumber)
	if err := m.repo.SaveUser(ctx, user); err != nil {
		m.dispatch(EventRegisterFailure, nil)
		return nil, err
	}

	m.dispatch(EventRegisterSuccess, &user)
	zap.L().Info("User registered", zap.String("user_id", user.Id), zap.String("email", user.Email))
	return &user, nil
}

// Logout wipes all local data and returns to the unauthenticated state.
// When the wipe fails the state is left untouched so the caller can retry.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.repo.ClearAllData(ctx); err != nil {
		return err
	}
	m.dispatch(EventLogout, nil)
	zap.L().Info("User logged out")
	return nil
}

// UpdateUser persists profile changes for the authenticated user and
// refreshes the in-memory state.
func (m *Manager) UpdateUser(ctx context.Context, apply func(*models.User)) error {
	state := m.State()
	if !state.Authenticated || state.User == nil {
		return fmt.Errorf("no authenticated user")
	}

	updated := *state.User
	apply(&updated)

	if err := m.repo.SaveUser(ctx, updated); err != nil {
		return err
	}

	m.dispatch(EventLoginSuccess, &updated)
	return nil
}

func (m *Manager) newUser(email, fullName, phoneNumber string) models.User {
	if fullName == "" {
		fullName = emailPrefix(email)
	}
	if phoneNumber == "" {
		phoneNumber = "+1234567890"
	}
	return models.User{
		Id:          "user_" + uuid.New().String(),
		Email:       email,
		FullName:    fullName,
		PhoneNumber: phoneNumber,
		CreatedAt:   m.now(),
		Settings:    models.DefaultSettings(),
	}
}

func emailPrefix(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

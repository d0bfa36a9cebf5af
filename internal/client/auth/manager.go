package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/gourmet/internal/models"
	"github.com/iudanet/gourmet/internal/validation"
	pkgapi "github.com/iudanet/gourmet/pkg/api"
)

//go:generate moq -out api_mock.go . API

// API is the part of the gateway the session manager needs.
type API interface {
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
	GetUser(ctx context.Context, token, username string) (*models.User, error)
}

// Invalidator is notified after every session change (login, logout, expiry).
type Invalidator interface {
	Invalidate()
}

// State of the session.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Session is a snapshot of the current credential and identity.
// Epoch changes on every transition, so holders can tell whether their
// snapshot is still current.
type Session struct {
	Token string
	User  models.User
	Epoch uint64
}

// Manager owns the session lifecycle and is the only writer of the Store.
type Manager struct {
	api          API
	store        *Store
	logger       *slog.Logger
	user         *models.User
	token        string
	invalidators []Invalidator
	epoch        uint64
	mu           sync.RWMutex
}

// NewManager restores the session from store. The manager starts
// Authenticated only when both a token and a valid user are stored.
func NewManager(ctx context.Context, api API, store *Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{
		api:    api,
		store:  store,
		logger: logger,
	}

	token, user := store.Load(ctx)
	switch {
	case token != "" && user != nil:
		m.token = token
		m.user = user
		logger.DebugContext(ctx, "session restored", "username", user.Username)
	case token != "":
		// Токен без профиля: не можем адресовать /users/{username}, считаем сессию анонимной
		logger.WarnContext(ctx, "stored token has no usable user profile, starting anonymous")
	}

	return m
}

// Subscribe registers inv for session change notifications.
func (m *Manager) Subscribe(inv Invalidator) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidators = append(m.invalidators, inv)
}

// State returns the current state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user != nil {
		return Authenticated
	}
	return Anonymous
}

// IsAuthenticated is State() == Authenticated.
func (m *Manager) IsAuthenticated() bool {
	return m.State() == Authenticated
}

// Current returns a snapshot of the session; ok is false when anonymous.
func (m *Manager) Current() (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return Session{Epoch: m.epoch}, false
	}
	return Session{Token: m.token, User: *m.user, Epoch: m.epoch}, true
}

// Epoch returns the transition counter.
func (m *Manager) Epoch() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.epoch
}

// Login exchanges credentials for a token, fetches the profile with it and,
// when both steps succeed, persists and activates the new session.
// Any failure returns an *AuthenticationError and leaves the current state
// and the store untouched.
func (m *Manager) Login(ctx context.Context, username, password string) (*models.User, error) {
	// Валидация входных данных
	if err := validation.ValidateUsername(username); err != nil {
		return nil, &AuthenticationError{Err: fmt.Errorf("invalid username: %w", err)}
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, &AuthenticationError{Err: fmt.Errorf("invalid password: %w", err)}
	}

	// 1. Получаем токен
	tokenResp, err := m.api.Login(ctx, pkgapi.LoginRequest{Username: username, Password: password})
	if err != nil {
		m.logger.InfoContext(ctx, "login rejected", "username", username, "error", err)
		return nil, &AuthenticationError{Err: err}
	}

	// 2. Получаем профиль с новым токеном
	user, err := m.api.GetUser(ctx, tokenResp.Token, username)
	if err != nil {
		m.logger.InfoContext(ctx, "failed to fetch user after login", "username", username, "error", err)
		return nil, &AuthenticationError{Err: err}
	}

	// 3. Сохраняем сессию
	m.mu.Lock()
	m.token = tokenResp.Token
	m.user = user
	m.epoch++
	m.store.Save(ctx, m.token, m.user)
	invalidators := m.snapshotInvalidators()
	m.mu.Unlock()

	m.notify(invalidators)

	m.logger.InfoContext(ctx, "logged in", "username", user.Username)

	result := *user
	return &result, nil
}

// Logout drops the session and clears the store. Calling it while anonymous
// only clears the store again; no transition happens.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	// Хранилище чистим всегда: там может остаться токен без профиля
	m.store.Clear(ctx)
	if m.user == nil {
		m.mu.Unlock()
		return
	}

	username := m.user.Username
	m.token = ""
	m.user = nil
	m.epoch++
	invalidators := m.snapshotInvalidators()
	m.mu.Unlock()

	m.notify(invalidators)

	m.logger.InfoContext(ctx, "logged out", "username", username)
}

// Expire is Logout for a credential the server rejected (401/403).
func (m *Manager) Expire(ctx context.Context) {
	m.logger.WarnContext(ctx, "credential rejected by server, ending session")
	m.Logout(ctx)
}

// snapshotInvalidators copies the list. Caller holds mu.
func (m *Manager) snapshotInvalidators() []Invalidator {
	out := make([]Invalidator, len(m.invalidators))
	copy(out, m.invalidators)
	return out
}

func (m *Manager) notify(invalidators []Invalidator) {
	for _, inv := range invalidators {
		inv.Invalidate()
	}
}

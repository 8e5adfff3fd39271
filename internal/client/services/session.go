// Package services contains application services for the GoBarber client.
// This file defines the session manager: restoring the persisted session on
// startup, signing in against the API, and signing out.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gobarber/internal/client/forms"
	"github.com/dmitrijs2005/gobarber/internal/client/models"
	"github.com/dmitrijs2005/gobarber/internal/client/repositories/storage"
	"github.com/dmitrijs2005/gobarber/internal/common"
	"github.com/dmitrijs2005/gobarber/internal/logging"
)

// State is the authentication state of a session.
type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticated
)

func (s State) String() string {
	if s == StateAuthenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// SessionService is the session surface the screens depend on.
//
// Contract:
//   - Restore: rehydrate the session from local storage, once at startup.
//   - SignIn: authenticate, persist token and user, then expose them.
//   - SignOut: remove the persisted pair, then forget it. Idempotent.
//   - Loading: true until Restore has finished, whatever its outcome.
//
// Callers must not start a SignIn while another one is outstanding.
type SessionService interface {
	Restore(ctx context.Context) error
	SignIn(ctx context.Context, credentials models.Credentials) error
	SignOut(ctx context.Context) error
	User() (models.User, bool)
	Token() string
	State() State
	Loading() bool
	Ready() <-chan struct{}
}

// SessionCreator is the part of the API client the session needs.
type SessionCreator interface {
	CreateSession(ctx context.Context, credentials models.Credentials) (models.Session, error)
}

// SessionManager keeps the in-memory session and its shadow copy in storage.
// It also serves as the token source of the API client, so it is safe for
// concurrent use.
type SessionManager struct {
	api   SessionCreator
	store storage.Repository
	log   logging.Logger

	mu      sync.RWMutex
	session models.Session

	loaded sync.Once
	ready  chan struct{}
}

// NewSessionManager returns an empty manager in the loading state.
func NewSessionManager(api SessionCreator, store storage.Repository, log logging.Logger) *SessionManager {
	if log == nil {
		log = logging.NewNop()
	}
	return &SessionManager{
		api:   api,
		store: store,
		log:   log.With("component", "session"),
		ready: make(chan struct{}),
	}
}

func (m *SessionManager) finishLoading() {
	m.loaded.Do(func() { close(m.ready) })
}

// Restore reads the token and user with one batched read. When both are
// present the session becomes authenticated; otherwise it stays empty.
// Loading ends when Restore returns, including on error.
func (m *SessionManager) Restore(ctx context.Context) error {
	defer m.finishLoading()

	values, err := m.store.MultiGet(ctx, common.TokenStorageKey, common.UserStorageKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	token, rawUser := values[common.TokenStorageKey], values[common.UserStorageKey]
	if token == "" || rawUser == "" {
		m.log.Debug(ctx, "no stored session")
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		m.log.Warn(ctx, "stored user is unreadable", "error", err)
		return fmt.Errorf("restore session: %w: %w", common.ErrCorruptedSession, err)
	}

	m.set(models.Session{Token: token, User: user})
	m.log.Info(ctx, "session restored", "user_id", user.ID)
	return nil
}

// SignIn authenticates credentials. Storage is written before the in-memory
// session changes; on any failure both are left untouched.
func (m *SessionManager) SignIn(ctx context.Context, credentials models.Credentials) error {
	if err := forms.ValidateCredentials(credentials); err != nil {
		return err
	}

	session, err := m.api.CreateSession(ctx, credentials)
	if err != nil {
		m.log.Warn(ctx, "sign in failed", "error", err)
		return fmt.Errorf("sign in: %w", err)
	}

	rawUser, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("sign in: encode user: %w", err)
	}

	err = m.store.MultiSet(ctx, []storage.Pair{
		{Key: common.TokenStorageKey, Value: session.Token},
		{Key: common.UserStorageKey, Value: string(rawUser)},
	})
	if err != nil {
		return fmt.Errorf("sign in: persist session: %w", err)
	}

	m.set(session)
	m.log.Info(ctx, "signed in", "user_id", session.User.ID)
	return nil
}

// SignOut removes the persisted session, then clears memory. With the token
// gone, later API requests are sent without an Authorization header.
func (m *SessionManager) SignOut(ctx context.Context) error {
	if err := m.store.MultiRemove(ctx, common.TokenStorageKey, common.UserStorageKey); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}

	m.set(models.Session{})
	m.log.Info(ctx, "signed out")
	return nil
}

func (m *SessionManager) set(s models.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = s
}

// Session returns a copy of the current session, zero when signed out.
func (m *SessionManager) Session() models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

func (m *SessionManager) User() (models.User, bool) {
	s := m.Session()
	return s.User, !s.IsZero()
}

// Token implements client.TokenSource.
func (m *SessionManager) Token() string {
	return m.Session().Token
}

func (m *SessionManager) State() State {
	if m.Session().IsZero() {
		return StateUnauthenticated
	}
	return StateAuthenticated
}

func (m *SessionManager) Loading() bool {
	select {
	case <-m.ready:
		return false
	default:
		return true
	}
}

// Ready is closed once Restore has completed.
func (m *SessionManager) Ready() <-chan struct{} {
	return m.ready
}

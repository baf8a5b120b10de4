// File: glowbook/session/session.go
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"glowbook/models"
	"glowbook/utils"

	"go.uber.org/zap"
)

// Session is the signed-in state of the app. It is created at sign-in,
// invalidated at sign-out or on a 401 from the backend, and passed by
// reference to everything that needs it; there is no ambient current user.
type Session struct {
	UserID    string      `json:"userId"`
	Email     string      `json:"email"`
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Expired reports whether the session's bearer token has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return utils.TokenExpired(s.Token, now)
}

// Manager owns the current session and keeps it in sync with a Store.
// It is safe for concurrent use.
type Manager struct {
	mu        sync.Mutex
	current   *Session
	store     Store
	listeners []func()
	logger    *zap.Logger
}

// NewManager returns a Manager backed by the given store.
func NewManager(store Store, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, logger: logger}
}

// OnInvalidate registers a callback fired whenever the session is cleared
// (sign-out or forced logout). Callbacks run outside the manager's lock.
func (m *Manager) OnInvalidate(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Begin installs a new session and persists it.
func (m *Manager) Begin(ctx context.Context, s Session) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	if err := m.store.Save(ctx, s); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	m.mu.Lock()
	m.current = &s
	m.mu.Unlock()
	m.logger.Info("session started", zap.String("userId", s.UserID))
	return nil
}

// Restore loads a previously persisted session, if any. Expired sessions are
// discarded rather than restored.
func (m *Manager) Restore(ctx context.Context) error {
	s, err := m.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if s == nil {
		return nil
	}
	if s.Expired(time.Now()) {
		m.logger.Info("persisted session expired, discarding", zap.String("userId", s.UserID))
		return m.store.Clear(ctx)
	}
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
	return nil
}

// End clears the session after an explicit sign-out.
func (m *Manager) End(ctx context.Context) error {
	return m.clear(ctx)
}

// Invalidate clears the session after a 401 (forced logout).
func (m *Manager) Invalidate(ctx context.Context) {
	if err := m.clear(ctx); err != nil {
		m.logger.Warn("failed to clear invalidated session", zap.Error(err))
	}
}

func (m *Manager) clear(ctx context.Context) error {
	m.mu.Lock()
	hadSession := m.current != nil
	m.current = nil
	listeners := append([]func(){}, m.listeners...)
	m.mu.Unlock()

	if !hadSession {
		return nil
	}
	err := m.store.Clear(ctx)
	for _, fn := range listeners {
		fn()
	}
	return err
}

// Current returns the active session, or nil when signed out.
func (m *Manager) Current() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// SignedIn reports whether a session is active.
func (m *Manager) SignedIn() bool {
	return m.Current() != nil
}

// Token returns the bearer token of the active session, or "" when signed
// out. Satisfies the API client's token source.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return ""
	}
	return m.current.Token
}

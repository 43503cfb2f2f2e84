// Package session owns the authentication token lifecycle: acquisition,
// persistence, expiry detection, and invalidation. It is the only code
// allowed to write or erase the persisted credential.
package session

import (
	"sync"

	"go.uber.org/zap"
)

// Manager is the single source of truth for "is there a usable,
// non-expired credential". At most one session exists per process;
// Login overwrites any prior token.
type Manager struct {
	store  Store
	logger *zap.Logger

	mu            sync.RWMutex
	token         string
	refreshToken  string
	authenticated bool
}

func NewManager(store Store, logger *zap.Logger) *Manager {
	return &Manager{store: store, logger: logger}
}

// Restore loads a previously persisted token at process start. No
// network call is made. An empty or unavailable store leaves the
// session unauthenticated; that is an expected condition, not a fault.
func (m *Manager) Restore() {
	token, err := m.store.Load()
	if err != nil {
		m.logger.Warn("token restore failed, starting unauthenticated", zap.Error(err))
		return
	}
	if token == "" {
		return
	}

	m.mu.Lock()
	m.token = token
	m.authenticated = true
	m.mu.Unlock()

	m.logger.Debug("session restored from store")
}

// Login persists the token and marks the session authenticated. If the
// store write fails the prior state is retained and the error is
// returned; the in-memory and persisted views never diverge.
func (m *Manager) Login(token, refreshToken string) error {
	if err := m.store.Save(token); err != nil {
		m.logger.Error("token persist failed, session unchanged", zap.Error(err))
		return err
	}

	m.mu.Lock()
	m.token = token
	m.refreshToken = refreshToken
	m.authenticated = true
	m.mu.Unlock()

	m.logger.Info("session established")
	return nil
}

// Logout erases the persisted token and marks the session
// unauthenticated. Calling it while already logged out is a no-op.
func (m *Manager) Logout() error {
	if err := m.store.Clear(); err != nil {
		m.logger.Error("token erase failed, session unchanged", zap.Error(err))
		return err
	}

	m.mu.Lock()
	wasAuthenticated := m.authenticated
	m.token = ""
	m.refreshToken = ""
	m.authenticated = false
	m.mu.Unlock()

	if wasAuthenticated {
		m.logger.Info("session ended")
	}
	return nil
}

// Token returns the current bearer credential, or "" when logged out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// IsAuthenticated reports whether a token is held. Expiry is checked
// separately (IsExpired at screen checkpoints, the server's 401 at any
// request) and drives an explicit Logout; holding a stale token between
// those checkpoints is the accepted window.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.authenticated
}

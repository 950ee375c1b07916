// Package session is the single source of truth for "who is the current
// user". It owns the durable token and user snapshot and the only valid
// transitions of the auth status:
//
//	unknown → unauthenticated
//	unknown → authenticated
//	authenticated → unauthenticated (logout or failed refresh)
//
// A failed login never transitions into authenticated.
package session

import (
	"context"
	"encoding/json"

	"eventos/internal/model"
	"eventos/internal/service"
	"eventos/internal/storage"
)

// Status of the session state machine.
type Status int

const (
	// StatusUnknown means the durable token has not been checked yet.
	StatusUnknown Status = iota
	StatusUnauthenticated
	StatusAuthenticated
)

// Manager holds the current user and drives the auth lifecycle. It is a
// process-lifetime singleton in the browser; the UI event loop is the only
// caller, so no locking is needed around the in-memory fields.
type Manager struct {
	auth  *service.Auth
	store storage.Store

	user   *model.User
	status Status
}

func NewManager(auth *service.Auth, store storage.Store) *Manager {
	return &Manager{auth: auth, store: store, status: StatusUnknown}
}

// User returns the current profile, or nil when unauthenticated.
func (m *Manager) User() *model.User { return m.user }

// Status returns the current auth status.
func (m *Manager) Status() Status { return m.status }

// IsAuthenticated reports whether a user is set.
func (m *Manager) IsAuthenticated() bool { return m.status == StatusAuthenticated }

// Init checks durable storage on app start. A stored token is verified by
// fetching the profile; an invalid or expired token is silently cleared.
// This is the only place that auto-recovers from a stale token.
func (m *Manager) Init(ctx context.Context) {
	token, ok := m.store.Get(storage.KeyToken)
	if !ok || token == "" {
		m.status = StatusUnauthenticated
		return
	}

	user, err := m.auth.CurrentUser(ctx)
	if err != nil {
		storage.ClearSession(m.store)
		m.user = nil
		m.status = StatusUnauthenticated
		return
	}
	m.setUser(user)
}

// Login exchanges credentials for a token, persists it, then fetches and
// persists the profile. If the profile fetch fails the token stays stored
// but the user remains unset: callers must treat that as a recoverable
// failure, not success.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	token, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	m.store.Set(storage.KeyToken, token.AccessToken)

	user, err := m.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	m.setUser(user)
	return nil
}

// Register creates the account then performs the same login + profile
// sequence as Login; registration alone does not yield a usable session.
func (m *Manager) Register(ctx context.Context, email, password, fullName string) error {
	if _, err := m.auth.Register(ctx, email, password, fullName); err != nil {
		return err
	}
	return m.Login(ctx, email, password)
}

// Logout clears the durable session and the in-memory state. Idempotent.
func (m *Manager) Logout() {
	storage.ClearSession(m.store)
	m.user = nil
	m.status = StatusUnauthenticated
}

// RefreshUser re-fetches the profile, keeping derived counts consistent
// after actions like event registration. Fail-closed: an unreconcilable
// profile forces the session to end rather than showing stale data.
func (m *Manager) RefreshUser(ctx context.Context) error {
	user, err := m.auth.CurrentUser(ctx)
	if err != nil {
		m.Logout()
		return err
	}
	m.setUser(user)
	return nil
}

func (m *Manager) setUser(user *model.User) {
	m.user = user
	m.status = StatusAuthenticated
	if buf, err := json.Marshal(user); err == nil {
		m.store.Set(storage.KeyUser, string(buf))
	}
}

package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dtroode/storefront/internal/model"
)

// Manager binds a SessionStore to an HTTP cookie.
type Manager struct {
	store      model.SessionStore
	cookieName string
	ttl        time.Duration
	secure     bool
}

// NewManager creates a cookie manager for store.
func NewManager(store model.SessionStore, cookieName string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		store:      store,
		cookieName: cookieName,
		ttl:        ttl,
		secure:     secure,
	}
}

// Load returns the session referenced by the request cookie. A missing,
// invalid or expired cookie yields a fresh anonymous session; the returned
// error then explains why the cookie was discarded.
func (m *Manager) Load(r *http.Request) (*model.Session, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return &model.Session{State: &model.SessionState{}}, nil
	}

	state, err := m.store.Get(r.Context(), cookie.Value)
	if err != nil {
		return &model.Session{State: &model.SessionState{}}, fmt.Errorf("failed to load session: %w", err)
	}

	return &model.Session{Token: cookie.Value, State: &state}, nil
}

// Save persists the session and sets the cookie when the state has changed.
// It must run before the response header is written.
func (m *Manager) Save(ctx context.Context, w http.ResponseWriter, sess *model.Session) error {
	if sess == nil || sess.State == nil || !sess.State.Dirty() {
		return nil
	}

	token, err := m.store.Put(ctx, sess.Token, *sess.State)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	sess.Token = token
	sess.State.MarkClean()

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

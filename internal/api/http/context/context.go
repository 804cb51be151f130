package context

import (
	"context"

	"github.com/dtroode/storefront/internal/model"
)

type sessionKey struct{}

var _ model.ContextManager = (*Manager)(nil)

// Manager stores the request session in the request context.
type Manager struct{}

// NewManager creates a new HTTP context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetSessionToContext returns a copy of ctx carrying session.
//
// Parameters:
//   - ctx: The request context
//   - session: The session loaded for the request
//
// Returns a new context with the session attached.
func (m *Manager) SetSessionToContext(ctx context.Context, session *model.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSessionFromContext retrieves the session attached by SetSessionToContext.
//
// Parameters:
//   - ctx: The request context
//
// Returns the session and a boolean indicating if a session was found.
func (m *Manager) GetSessionFromContext(ctx context.Context) (*model.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*model.Session)
	if !ok || session == nil || session.State == nil {
		return nil, false
	}
	return session, true
}

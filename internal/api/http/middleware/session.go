package middleware

import (
	"net/http"

	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
)

// SessionLoader loads the session referenced by a request.
type SessionLoader interface {
	Load(r *http.Request) (*model.Session, error)
}

// Session attaches the request session to the request context.
type Session struct {
	loader         SessionLoader
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewSession creates a new Session middleware.
func NewSession(loader SessionLoader, contextManager model.ContextManager, logger *logger.Logger) *Session {
	return &Session{
		loader:         loader,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle loads the session before calling next. A session that cannot be
// loaded is replaced by a fresh anonymous one.
func (s *Session) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.loader.Load(r)
		if err != nil {
			s.logger.Debug("Session middleware: discarding session cookie",
				"path", r.URL.Path,
				"error", err.Error())
		}
		if sess == nil {
			sess = &model.Session{State: &model.SessionState{}}
		}

		ctx := s.contextManager.SetSessionToContext(r.Context(), sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

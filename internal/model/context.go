package model

import "context"

// ContextManager carries the request session through a context.
type ContextManager interface {
	SetSessionToContext(ctx context.Context, session *Session) context.Context
	GetSessionFromContext(ctx context.Context) (*Session, bool)
}

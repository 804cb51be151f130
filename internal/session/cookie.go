// Package session loads and persists per-browser session state.
package session

import (
	"context"
	"fmt"

	"github.com/dtroode/storefront/internal/model"
)

// Codec turns session state into a self-contained token and back.
type Codec interface {
	Encode(state model.SessionState) (string, error)
	Decode(token string) (model.SessionState, error)
}

var _ model.SessionStore = (*CookieStore)(nil)

// CookieStore keeps the whole state inside the signed token the client holds.
type CookieStore struct {
	codec Codec
}

// NewCookieStore creates a store backed by codec.
func NewCookieStore(codec Codec) *CookieStore {
	return &CookieStore{codec: codec}
}

// Get decodes the state carried by token.
func (s *CookieStore) Get(_ context.Context, token string) (model.SessionState, error) {
	state, err := s.codec.Decode(token)
	if err != nil {
		return model.SessionState{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return state, nil
}

// Put encodes state into a fresh token. The previous token is ignored.
func (s *CookieStore) Put(_ context.Context, _ string, state model.SessionState) (string, error) {
	token, err := s.codec.Encode(state)
	if err != nil {
		return "", fmt.Errorf("failed to encode session: %w", err)
	}
	return token, nil
}

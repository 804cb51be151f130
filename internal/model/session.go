package model

import (
	"context"
	"slices"
)

// SessionStore loads and persists session state by its client-held token.
// Put returns the token the client must present next time; stores that keep
// the state inside the token itself return a new token on every call.
type SessionStore interface {
	Get(ctx context.Context, token string) (SessionState, error)
	Put(ctx context.Context, token string, state SessionState) (string, error)
}

// Session is the state loaded for the current request together with the
// token it was loaded by.
type Session struct {
	Token string
	State *SessionState
}

// SessionState is the per-browser state: the authenticated identity and the
// cart. An empty AuthenticatedEmail means anonymous, a nil CartItemIDs means
// no cart mutation has happened yet.
type SessionState struct {
	AuthenticatedEmail string   `json:"email,omitempty"`
	CartItemIDs        []string `json:"cart,omitempty"`

	dirty bool
}

// IsAuthenticated reports whether an identity is attached to the session.
func (s *SessionState) IsAuthenticated() bool {
	return s.AuthenticatedEmail != ""
}

// SignIn attaches the identity to the session.
func (s *SessionState) SignIn(email string) {
	s.AuthenticatedEmail = email
	s.dirty = true
}

// SignOut clears the identity only. The cart is kept.
func (s *SessionState) SignOut() {
	s.AuthenticatedEmail = ""
	s.dirty = true
}

// CartItems returns a copy of the cart ids in insertion order.
func (s *SessionState) CartItems() []string {
	return slices.Clone(s.CartItemIDs)
}

// HasCart reports whether the cart was ever mutated.
func (s *SessionState) HasCart() bool {
	return s.CartItemIDs != nil
}

// InCart reports whether productID is in the cart.
func (s *SessionState) InCart(productID string) bool {
	return slices.Contains(s.CartItemIDs, productID)
}

// AddCartItem appends productID unless it is already present. It reports
// whether the cart grew.
func (s *SessionState) AddCartItem(productID string) bool {
	if s.CartItemIDs == nil {
		s.CartItemIDs = []string{}
	}
	s.dirty = true

	if slices.Contains(s.CartItemIDs, productID) {
		return false
	}
	s.CartItemIDs = append(s.CartItemIDs, productID)

	return true
}

// RemoveCartItem removes productID from the cart. It returns ErrNotFound when
// the id is not in the cart.
func (s *SessionState) RemoveCartItem(productID string) error {
	idx := slices.Index(s.CartItemIDs, productID)
	if idx < 0 {
		return ErrNotFound
	}
	s.CartItemIDs = slices.Delete(s.CartItemIDs, idx, idx+1)
	s.dirty = true

	return nil
}

// Dirty reports whether the state changed since it was loaded.
func (s *SessionState) Dirty() bool {
	return s.dirty
}

// MarkClean resets the change flag, typically after the state was persisted.
func (s *SessionState) MarkClean() {
	s.dirty = false
}

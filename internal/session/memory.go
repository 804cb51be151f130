package session

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/model"
)

var _ model.SessionStore = (*MemoryStore)(nil)

type memoryEntry struct {
	state     model.SessionState
	expiresAt time.Time
}

// MemoryStore keeps session state in process memory keyed by an opaque id.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates an empty store whose entries live for ttl after the last write.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the state stored under token. Unknown and expired tokens yield model.ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, token string) (model.SessionState, error) {
	s.mu.RLock()
	entry, ok := s.entries[token]
	s.mu.RUnlock()

	if !ok {
		return model.SessionState{}, model.ErrNotFound
	}
	if !s.now().Before(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, token)
		s.mu.Unlock()
		return model.SessionState{}, model.ErrNotFound
	}

	return copyState(entry.state), nil
}

// Put stores state under token, allocating a new token when token is unknown.
func (s *MemoryStore) Put(_ context.Context, token string, state model.SessionState) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[token]; !ok {
		token = uuid.NewString()
	}
	s.entries[token] = memoryEntry{
		state:     copyState(state),
		expiresAt: s.now().Add(s.ttl),
	}

	return token, nil
}

// Len returns the number of stored sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func copyState(state model.SessionState) model.SessionState {
	return model.SessionState{
		AuthenticatedEmail: state.AuthenticatedEmail,
		CartItemIDs:        slices.Clone(state.CartItemIDs),
	}
}

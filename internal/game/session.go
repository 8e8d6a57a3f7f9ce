package game

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/farrow-dev/SkullPit_Go/internal/domain"
	"github.com/farrow-dev/SkullPit_Go/internal/store"
)

// Session wraps one game's authoritative state behind a mutex. Every intent
// runs as a single synchronous transaction under this lock, so there is no
// stale-state window between the spin draw and its bookkeeping.
type Session struct {
	mu    sync.Mutex
	state *domain.GameState
}

// Lock acquires the session for one transaction and returns the state.
func (s *Session) Lock() *domain.GameState {
	s.mu.Lock()
	return s.state
}

// TryLock acquires the session only if no other intent holds it. Spins use
// this as a busy gate: a spin arriving while one is in flight is rejected
// instead of queued.
func (s *Session) TryLock() (*domain.GameState, bool) {
	if !s.mu.TryLock() {
		return nil, false
	}
	return s.state, true
}

// Unlock releases the session.
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// SessionManager keeps live sessions in an expiring LRU, falling back to the
// store for sessions that aged out of the cache.
type SessionManager struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *Session]
	store store.Store
}

// NewSessionManager creates a session manager with the given cache bounds.
func NewSessionManager(size int, ttl time.Duration, st store.Store) *SessionManager {
	return &SessionManager{
		cache: expirable.NewLRU[string, *Session](size, nil, ttl),
		store: st,
	}
}

// Put caches a freshly created session.
func (m *SessionManager) Put(session *Session) {
	m.cache.Add(session.state.SessionID, session)
}

// Get returns the live session, restoring it from the store when it has
// fallen out of the cache.
func (m *SessionManager) Get(ctx context.Context, sessionID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session, ok := m.cache.Get(sessionID); ok {
		return session, nil
	}

	state, err := m.store.LoadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session := &Session{state: state}
	m.cache.Add(sessionID, session)
	return session, nil
}

// Remove drops the session from the cache.
func (m *SessionManager) Remove(sessionID string) {
	m.cache.Remove(sessionID)
}

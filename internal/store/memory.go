package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/farrow-dev/SkullPit_Go/internal/domain"
)

// MemoryStore is the zero-connectivity fallback. The engine must stay fully
// playable without a database, so this is the default backend.
type MemoryStore struct {
	mu      sync.RWMutex
	states  map[string][]byte
	results []LeaderboardEntry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		states: make(map[string][]byte),
	}
}

// SaveState snapshots the state as JSON so later mutations of the live
// object cannot leak into the saved copy.
func (s *MemoryStore) SaveState(ctx context.Context, state *domain.GameState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalState, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[state.SessionID] = data
	return nil
}

// LoadState returns the saved snapshot, or domain.ErrSessionNotFound.
func (s *MemoryStore) LoadState(ctx context.Context, sessionID string) (*domain.GameState, error) {
	s.mu.RLock()
	data, ok := s.states[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}

	var state domain.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalState, err)
	}
	return &state, nil
}

// DeleteState removes the saved snapshot. Deleting a missing session is a no-op.
func (s *MemoryStore) DeleteState(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
	return nil
}

// RecordResult appends a finished run.
func (s *MemoryStore) RecordResult(ctx context.Context, entry LeaderboardEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, entry)
	return nil
}

// TopResults returns up to limit entries ordered by credits, then round.
func (s *MemoryStore) TopResults(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	s.mu.RLock()
	out := make([]LeaderboardEntry, len(s.results))
	copy(out, s.results)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FinalCredits != out[j].FinalCredits {
			return out[i].FinalCredits > out[j].FinalCredits
		}
		return out[i].RoundReached > out[j].RoundReached
	})

	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// Ping always succeeds for the in-memory backend.
func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

// Close is a no-op for the in-memory backend.
func (s *MemoryStore) Close() {}

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farrow-dev/SkullPit_Go/internal/domain"
)

func TestMemoryStoreSaveLoad(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	state := &domain.GameState{
		SessionID: "session-1",
		Credits:   250,
		Round:     2,
		Phase:     domain.PhasePlaying,
		ActiveEffects: map[string]int{
			"clover_oil": 4,
		},
	}

	require.NoError(t, s.SaveState(ctx, state))

	loaded, err := s.LoadState(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 250, loaded.Credits)
	assert.Equal(t, 2, loaded.Round)
	assert.Equal(t, 4, loaded.ActiveEffects["clover_oil"])
}

func TestMemoryStoreSnapshotIsolation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	state := &domain.GameState{SessionID: "session-1", Credits: 100}
	require.NoError(t, s.SaveState(ctx, state))

	// Mutations after save must not affect the snapshot.
	state.Credits = 0

	loaded, err := s.LoadState(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 100, loaded.Credits)
}

func TestMemoryStoreLoadMissing(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.LoadState(context.Background(), "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.SaveState(ctx, &domain.GameState{SessionID: "session-1"}))
	require.NoError(t, s.DeleteState(ctx, "session-1"))

	_, err := s.LoadState(ctx, "session-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, s.DeleteState(ctx, "session-1"))
}

func TestMemoryStoreLeaderboard(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	entries := []LeaderboardEntry{
		{SessionID: "a", FinalCredits: 100, RoundReached: 2},
		{SessionID: "b", FinalCredits: 900, RoundReached: 5},
		{SessionID: "c", FinalCredits: 900, RoundReached: 6},
		{SessionID: "d", FinalCredits: 300, RoundReached: 3},
	}
	for _, e := range entries {
		require.NoError(t, s.RecordResult(ctx, e))
	}

	top, err := s.TopResults(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)

	// Credits first, round reached breaks ties.
	assert.Equal(t, "c", top[0].SessionID)
	assert.Equal(t, "b", top[1].SessionID)
	assert.Equal(t, "d", top[2].SessionID)
	assert.False(t, top[0].CreatedAt.IsZero())
}

package service

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"arcade-royale/internal/config"
	"arcade-royale/internal/database"
	"arcade-royale/internal/domain"
	"arcade-royale/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *repository.ScoreRepository {
	t.Helper()

	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "arcade.db")}
	db, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return repository.NewScoreRepository(db, zerolog.Nop())
}

func TestSubmitValidation(t *testing.T) {
	svc := NewScoreService(newTestRepo(t), zerolog.Nop())
	ctx := context.Background()

	testCases := []struct {
		name   string
		handle string
		gameID string
		score  float64
	}{
		{name: "empty handle", handle: "", gameID: "snake", score: 10},
		{name: "whitespace handle", handle: "   ", gameID: "snake", score: 10},
		{name: "unknown game", gameID: "pacman", handle: "alice", score: 10},
		{name: "quickmath rejected", gameID: "quickmath", handle: "alice", score: 10},
		{name: "negative score", handle: "alice", gameID: "snake", score: -1},
		{name: "NaN score", handle: "alice", gameID: "snake", score: math.NaN()},
		{name: "infinite score", handle: "alice", gameID: "snake", score: math.Inf(1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, tc.handle, tc.gameID, tc.score)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSubmitScenario(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewScoreService(repo, zerolog.Nop())
	ctx := context.Background()

	result, err := svc.Submit(ctx, "alice", "snake", 120)
	require.NoError(t, err)
	require.True(t, result.Accepted)
	require.Equal(t, 1, result.Rank, "first entry ranks first")

	result, err = svc.Submit(ctx, "bob", "snake", 200)
	require.NoError(t, err)
	require.True(t, result.Accepted)
	require.Equal(t, 1, result.Rank)

	// a lower score is ignored, and alice is ranked by her stored best
	result, err = svc.Submit(ctx, "alice", "snake", 90)
	require.NoError(t, err)
	require.False(t, result.Accepted)
	require.Equal(t, 2, result.Rank)

	stored, err := repo.Get(ctx, "alice", domain.GameSnake)
	require.NoError(t, err)
	require.Equal(t, 120.0, stored.Score)
}

func TestSubmitIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewScoreService(repo, zerolog.Nop())
	ctx := context.Background()

	first, err := svc.Submit(ctx, "alice", "trex", 42)
	require.NoError(t, err)
	require.True(t, first.Accepted)

	second, err := svc.Submit(ctx, "alice", "trex", 42)
	require.NoError(t, err)
	require.False(t, second.Accepted)
	require.Equal(t, first.Rank, second.Rank)

	stored, err := repo.Get(ctx, "alice", domain.GameTrex)
	require.NoError(t, err)
	require.Equal(t, 42.0, stored.Score)
}

func TestSubmitMonotonicStoredScore(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewScoreService(repo, zerolog.Nop())
	ctx := context.Background()

	submissions := []float64{50, 30, 80, 80, 10, 100}
	best := 0.0
	for _, score := range submissions {
		_, err := svc.Submit(ctx, "alice", "flappy", score)
		require.NoError(t, err)
		if score > best {
			best = score
		}

		stored, err := repo.Get(ctx, "alice", domain.GameFlappy)
		require.NoError(t, err)
		require.Equal(t, best, stored.Score)
	}
}

func TestSubmitNormalizesHandle(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewScoreService(repo, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Submit(ctx, "  Alice ", "snake", 10)
	require.NoError(t, err)

	result, err := svc.Submit(ctx, "ALICE", "snake", 25)
	require.NoError(t, err)
	require.True(t, result.Accepted, "same player regardless of casing")

	top, err := repo.TopForGame(ctx, domain.GameSnake, 100)
	require.NoError(t, err)
	require.Len(t, top, 1)
	require.Equal(t, "alice", top[0].TwitterHandle)
	require.Equal(t, 25.0, top[0].Score)
}

func TestSubmitRankCountsStrictlyGreater(t *testing.T) {
	svc := NewScoreService(newTestRepo(t), zerolog.Nop())
	ctx := context.Background()

	for _, seed := range []struct {
		handle string
		score  float64
	}{
		{"p1", 300}, {"p2", 250}, {"p3", 200},
	} {
		_, err := svc.Submit(ctx, seed.handle, "reaction", seed.score)
		require.NoError(t, err)
	}

	result, err := svc.Submit(ctx, "newcomer", "reaction", 225)
	require.NoError(t, err)
	require.True(t, result.Accepted)
	require.Equal(t, 3, result.Rank, "two strictly greater scores ahead")

	// an equal score shares the rank
	result, err = svc.Submit(ctx, "twin", "reaction", 225)
	require.NoError(t, err)
	require.Equal(t, 3, result.Rank)
}

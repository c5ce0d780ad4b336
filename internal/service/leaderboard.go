package service

import (
	"context"
	"fmt"

	"arcade-royale/internal/constants"
	"arcade-royale/internal/domain"
	"arcade-royale/internal/repository"

	"github.com/rs/zerolog"
)

type LeaderboardService struct {
	repo   *repository.ScoreRepository
	logger zerolog.Logger
}

func NewLeaderboardService(repo *repository.ScoreRepository, logger zerolog.Logger) *LeaderboardService {
	return &LeaderboardService{repo: repo, logger: logger}
}

// TopForGame returns the per-game leaderboard, best score first, ties
// to the earlier achiever. Unknown game ids are rejected here, not by
// the store; a game with no records yields an empty slice.
func (s *LeaderboardService) TopForGame(ctx context.Context, rawGameID string, limit int) ([]domain.ScoreRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	gameID, err := domain.ParseGameID(rawGameID)
	if err != nil {
		return nil, err
	}

	limit = clampLimit(limit)

	records, err := s.repo.TopForGame(ctx, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	s.logger.Debug().
		Str("game_id", string(gameID)).
		Int("limit", limit).
		Int("count", len(records)).
		Msg("per-game leaderboard fetched")

	return records, nil
}

// GlobalTop returns the cross-game leaderboard ordered by total score.
func (s *LeaderboardService) GlobalTop(ctx context.Context, limit int) ([]domain.AggregatedEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	limit = clampLimit(limit)

	entries, err := s.repo.GlobalTop(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load global leaderboard: %w", err)
	}

	s.logger.Debug().
		Int("limit", limit).
		Int("count", len(entries)).
		Msg("global leaderboard fetched")

	return entries, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return constants.DefaultLeaderboardLimit
	}
	if limit > constants.MaxLeaderboardLimit {
		return constants.MaxLeaderboardLimit
	}
	return limit
}

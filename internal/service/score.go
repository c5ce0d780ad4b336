package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"arcade-royale/internal/constants"
	"arcade-royale/internal/domain"
	"arcade-royale/internal/repository"

	"github.com/rs/zerolog"
)

type ScoreService struct {
	repo   *repository.ScoreRepository
	logger zerolog.Logger
}

func NewScoreService(repo *repository.ScoreRepository, logger zerolog.Logger) *ScoreService {
	return &ScoreService{repo: repo, logger: logger}
}

type SubmitResult struct {
	Accepted bool
	Rank     int
}

// Submit records a score if it beats the player's stored best for the
// game and returns the player's rank. A rejected submission still
// ranks the player by their stored best. All validation happens before
// any store access.
func (s *ScoreService) Submit(ctx context.Context, handle, rawGameID string, score float64) (*SubmitResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	handle = strings.ToLower(strings.TrimSpace(handle))
	if handle == "" {
		return nil, fmt.Errorf("%w: twitter handle is required", domain.ErrInvalidInput)
	}

	gameID, err := domain.ParseGameID(rawGameID)
	if err != nil {
		return nil, err
	}

	if math.IsNaN(score) || math.IsInf(score, 0) || score < 0 {
		return nil, fmt.Errorf("%w: score must be a non-negative number", domain.ErrInvalidInput)
	}

	s.logger.Info().
		Str("handle", handle).
		Str("game_id", string(gameID)).
		Float64("score", score).
		Msg("submitting score")

	rec := &domain.ScoreRecord{
		TwitterHandle: handle,
		GameID:        gameID,
		Score:         score,
		CreatedAt:     time.Now().UTC(),
	}

	accepted, err := s.repo.UpsertIfGreater(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to store score: %w", err)
	}

	// Rank against the effective stored score: the submitted value when
	// the write applied, the pre-existing best when it did not.
	ranked := score
	if !accepted {
		existing, err := s.repo.Get(ctx, handle, gameID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to load existing score: %w", err)
		}
		if existing != nil {
			ranked = existing.Score
		}
	}

	greater, err := s.repo.CountGreater(ctx, gameID, ranked)
	if err != nil {
		return nil, fmt.Errorf("failed to compute rank: %w", err)
	}

	result := &SubmitResult{Accepted: accepted, Rank: greater + 1}

	s.logger.Info().
		Str("handle", handle).
		Str("game_id", string(gameID)).
		Bool("accepted", result.Accepted).
		Int("rank", result.Rank).
		Msg("score submission processed")

	return result, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"arcade-royale/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type ScoreRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewScoreRepository(sqlDB *sql.DB, logger zerolog.Logger) *ScoreRepository {
	return &ScoreRepository{
		db:     sqlDB,
		logger: logger,
	}
}

// Get returns the stored record for (handle, gameID), or sql.ErrNoRows.
func (r *ScoreRepository) Get(ctx context.Context, handle string, gameID domain.GameID) (*domain.ScoreRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, twitter_handle, game_id, score, created_at
		FROM scores
		WHERE twitter_handle = ? AND game_id = ?`,
		handle, gameID,
	)

	var rec domain.ScoreRecord
	if err := row.Scan(&rec.ID, &rec.TwitterHandle, &rec.GameID, &rec.Score, &rec.CreatedAt); err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpsertIfGreater writes the record only when the submitted score beats
// the stored one. The whole decision happens in a single statement, so
// two tabs submitting for the same player cannot lose an update.
// Returns whether the write applied.
func (r *ScoreRepository) UpsertIfGreater(ctx context.Context, rec *domain.ScoreRecord) (bool, error) {
	id, err := gonanoid.New()
	if err != nil {
		return false, fmt.Errorf("failed to generate nanoid: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO scores (id, twitter_handle, game_id, score, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (twitter_handle, game_id) DO UPDATE SET
			score = excluded.score,
			created_at = excluded.created_at
		WHERE excluded.score > scores.score`,
		id, rec.TwitterHandle, rec.GameID, rec.Score, rec.CreatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("handle", rec.TwitterHandle).
			Str("game_id", string(rec.GameID)).
			Msg("failed to upsert score")
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	applied := affected > 0
	r.logger.Debug().
		Str("handle", rec.TwitterHandle).
		Str("game_id", string(rec.GameID)).
		Float64("score", rec.Score).
		Bool("applied", applied).
		Msg("conditional score upsert")

	return applied, nil
}

// CountGreater counts records for a game with a strictly higher score.
// Rank is this count plus one; equal scores share a rank.
func (r *ScoreRepository) CountGreater(ctx context.Context, gameID domain.GameID, score float64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM scores WHERE game_id = ? AND score > ?`,
		gameID, score,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// TopForGame returns up to limit records for a game, best first.
// Ties go to the earlier achiever.
func (r *ScoreRepository) TopForGame(ctx context.Context, gameID domain.GameID, limit int) ([]domain.ScoreRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, twitter_handle, game_id, score, created_at
		FROM scores
		WHERE game_id = ?
		ORDER BY score DESC, created_at ASC
		LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.ScoreRecord{}
	for rows.Next() {
		var rec domain.ScoreRecord
		if err := rows.Scan(&rec.ID, &rec.TwitterHandle, &rec.GameID, &rec.Score, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GlobalTop aggregates best scores per player across games: total
// score, games played, and the per-game mapping zero-filled for every
// catalog game. Ordered by total score descending.
func (r *ScoreRepository) GlobalTop(ctx context.Context, limit int) ([]domain.AggregatedEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.twitter_handle, s.game_id, s.score, t.total_score, t.games_played
		FROM scores s
		JOIN (
			SELECT twitter_handle, SUM(score) AS total_score, COUNT(*) AS games_played
			FROM scores
			GROUP BY twitter_handle
			ORDER BY total_score DESC
			LIMIT ?
		) t ON t.twitter_handle = s.twitter_handle
		ORDER BY t.total_score DESC, s.twitter_handle, s.game_id`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.AggregatedEntry{}
	index := map[string]int{}
	for rows.Next() {
		var (
			handle      string
			gameID      domain.GameID
			score       float64
			totalScore  float64
			gamesPlayed int
		)
		if err := rows.Scan(&handle, &gameID, &score, &totalScore, &gamesPlayed); err != nil {
			return nil, err
		}

		i, ok := index[handle]
		if !ok {
			i = len(entries)
			index[handle] = i
			entries = append(entries, domain.AggregatedEntry{
				TwitterHandle: handle,
				TotalScore:    totalScore,
				GamesPlayed:   gamesPlayed,
				Scores:        domain.NewGameScores(),
			})
		}
		entries[i].Scores[gameID] = score
	}
	return entries, rows.Err()
}

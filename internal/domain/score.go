package domain

import (
	"errors"
	"time"
)

// ErrInvalidInput marks validation failures surfaced as 400s.
var ErrInvalidInput = errors.New("invalid input")

// ScoreRecord is a player's best score for one game. At most one
// record exists per (TwitterHandle, GameID); the stored score only
// ever increases, and CreatedAt moves with it.
type ScoreRecord struct {
	ID            string    `json:"-"`
	TwitterHandle string    `json:"twitterHandle"`
	GameID        GameID    `json:"gameId"`
	Score         float64   `json:"score"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AggregatedEntry is the derived cross-game summary of one player.
type AggregatedEntry struct {
	TwitterHandle string             `json:"twitterHandle"`
	TotalScore    float64            `json:"totalScore"`
	GamesPlayed   int                `json:"gamesPlayed"`
	Scores        map[GameID]float64 `json:"scores"`
}

// NewGameScores returns the per-game score mapping with every catalog
// game (quickmath included) zeroed.
func NewGameScores() map[GameID]float64 {
	scores := make(map[GameID]float64, len(CatalogGameIDs))
	for _, id := range CatalogGameIDs {
		scores[id] = 0
	}
	return scores
}

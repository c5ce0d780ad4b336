package domain

import "fmt"

// GameID identifies one of the arcade games.
type GameID string

const (
	GameSnake     GameID = "snake"
	GameFlappy    GameID = "flappy"
	GameTyping    GameID = "typing"
	GameReaction  GameID = "reaction"
	GameTrex      GameID = "trex"
	GameQuickMath GameID = "quickmath"
)

// ValidGameIDs is the allowlist enforced on score submissions and
// per-game leaderboard reads. quickmath is listed in the catalog but
// deliberately absent here, matching the live site.
var ValidGameIDs = []GameID{GameSnake, GameFlappy, GameTyping, GameReaction, GameTrex}

// CatalogGameIDs covers every game the clients list, including
// quickmath. Used for the games catalog and the zero-filled score
// mapping on global leaderboard entries.
var CatalogGameIDs = []GameID{GameSnake, GameFlappy, GameTyping, GameReaction, GameTrex, GameQuickMath}

// ParseGameID validates a raw game id against the allowlist.
func ParseGameID(raw string) (GameID, error) {
	for _, id := range ValidGameIDs {
		if GameID(raw) == id {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: unknown game id %q", ErrInvalidInput, raw)
}

// GameInfo is the catalog entry for one game.
type GameInfo struct {
	ID          GameID `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Catalog returns the game listing shown on the site, in display order.
func Catalog() []GameInfo {
	return []GameInfo{
		{ID: GameSnake, Name: "Snake Royale", Description: "Classic snake with increasing speed. Eat to grow, avoid walls and yourself."},
		{ID: GameFlappy, Name: "Flappy Bird Duel", Description: "One-button gameplay. Navigate through procedural pipes."},
		{ID: GameTyping, Name: "Typing Race", Description: "Terminal-style typing test. Same daily text for all players."},
		{ID: GameReaction, Name: "Reaction Time", Description: "Test your reflexes with millisecond precision."},
		{ID: GameTrex, Name: "T-Rex Runner", Description: "Endless runner with increasing speed. Jump over obstacles."},
		{ID: GameQuickMath, Name: "QuickMath Rush", Description: "Fast-paced mental math game. Solve timed arithmetic questions with increasing difficulty."},
	}
}

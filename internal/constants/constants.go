package constants

import "time"

const (
	DatabaseTimeout = 5 * time.Second
	RequestTimeout  = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	// Leaderboard page sizing: the limit query parameter is clamped
	// into [1, MaxLeaderboardLimit] and defaults to
	// DefaultLeaderboardLimit when absent or unparseable.
	DefaultLeaderboardLimit = 50
	MaxLeaderboardLimit     = 100
)

package models

import (
	"time"

	"github.com/google/uuid"
)

// Guess directions accepted by the game.
const (
	GuessHigher = "higher"
	GuessLower  = "lower"
)

// Bounds of the closed integer range numbers are drawn from.
const (
	MinNumber = 0
	MaxNumber = 1000
)

// GameSessionDB represents the live state of one in-progress game.
// At most one row per user may have is_active set.
type GameSessionDB struct {
	SessionID          uuid.UUID `json:"session_id" db:"session_id"`                   // Primary key
	UserID             uuid.UUID `json:"user_id" db:"user_id"`                         // Owning user
	CurrentNumber      int       `json:"current_number" db:"current_number"`           // Reference number the next guess is judged against
	ConsecutiveCorrect int       `json:"consecutive_correct" db:"consecutive_correct"` // Current streak, starts at 0
	IsActive           bool      `json:"is_active" db:"is_active"`                     // Cleared when the session terminates
	CreatedAt          time.Time `json:"created_at" db:"created_at"`                   // Creation timestamp
}

// CompletedGameDB is the immutable history record of one terminated session.
type CompletedGameDB struct {
	GameID             uuid.UUID `json:"game_id" db:"game_id"`                         // Primary key
	UserID             uuid.UUID `json:"user_id" db:"user_id"`                         // Owning user
	ConsecutiveCorrect int       `json:"consecutive_correct" db:"consecutive_correct"` // Final streak at termination
	CompletedAt        time.Time `json:"completed_at" db:"completed_at"`               // Termination timestamp
}

// Statistics aggregates a user's completed games.
type Statistics struct {
	TotalGames    int `json:"total_games"`    // Count of completed games
	LongestStreak int `json:"longest_streak"` // Maximum final streak, 0 when no games exist
}

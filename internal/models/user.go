package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a player record in the database
type UserDB struct {
	UserID    uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Username  string    `json:"username" db:"username"`     // Unique username
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

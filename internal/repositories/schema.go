package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/guessing-game/internal/logger"
)

// schema holds the DDL applied on startup. Statements are idempotent so the
// service can be restarted against an existing database.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id UUID PRIMARY KEY,
	username VARCHAR(50) NOT NULL UNIQUE,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS game_sessions (
	session_id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users (user_id),
	current_number INTEGER NOT NULL,
	consecutive_correct INTEGER NOT NULL DEFAULT 0,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_game_sessions_user_active
	ON game_sessions (user_id) WHERE is_active;

CREATE TABLE IF NOT EXISTS games (
	game_id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users (user_id),
	consecutive_correct INTEGER NOT NULL,
	completed_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_games_user ON games (user_id);
`

// Migrate creates the tables the service needs if they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)

	logger.Log.Infow("schema migrate", "error", err)

	return err
}

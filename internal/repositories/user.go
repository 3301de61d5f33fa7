package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/guessing-game/internal/logger"
	"github.com/sbilibin2017/guessing-game/internal/models"
)

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername looks up a user by exact username match.
// Returns (nil, nil) when no such user exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, created_at
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	// Log with query in single line
	logger.Log.Infow("user read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", user,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// GetOrCreate inserts a user with the given username, or returns the existing
// row when the username is already taken. The no-op DO UPDATE makes the
// RETURNING clause yield the existing row, so the call is idempotent and
// never creates duplicates.
func (r *UserWriteRepository) GetOrCreate(ctx context.Context, username string) (*models.UserDB, error) {
	query := `
		INSERT INTO users (user_id, username, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (username) DO UPDATE
		SET username = EXCLUDED.username
		RETURNING user_id, username, created_at
	`
	args := []any{uuid.New(), username}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	// Log with query in single line
	logger.Log.Infow("user upsert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", user,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

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

// SessionWriteRepository handles game session write operations
type SessionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSessionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SessionWriteRepository {
	return &SessionWriteRepository{db: db, txGetter: txGetter}
}

func (r *SessionWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create deactivates any active session the user still has and inserts a
// fresh one with a zero streak. Both statements run on the request
// transaction when one is present, so two concurrent starts cannot leave two
// rows marked active.
func (r *SessionWriteRepository) Create(ctx context.Context, userID uuid.UUID, currentNumber int) (*models.GameSessionDB, error) {
	executor := r.executor(ctx)

	deactivate := `
		UPDATE game_sessions
		SET is_active = FALSE
		WHERE user_id = $1 AND is_active
	`
	if _, err := executor.ExecContext(ctx, deactivate, userID); err != nil {
		logger.Log.Infow("session deactivate prior",
			"query", strings.Join(strings.Fields(deactivate), " "),
			"args", []any{userID},
			"error", err,
		)
		return nil, err
	}

	insert := `
		INSERT INTO game_sessions (session_id, user_id, current_number, consecutive_correct, is_active, created_at)
		VALUES ($1, $2, $3, 0, TRUE, NOW())
		RETURNING session_id, user_id, current_number, consecutive_correct, is_active, created_at
	`
	args := []any{uuid.New(), userID, currentNumber}

	var session models.GameSessionDB
	err := sqlx.GetContext(ctx, executor, &session, insert, args...)

	logger.Log.Infow("session insert",
		"query", strings.Join(strings.Fields(insert), " "),
		"args", args,
		"result", session,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &session, nil
}

// UpdateProgress persists a correct guess: the drawn number becomes the new
// reference and the streak is advanced. Only an active session is touched.
func (r *SessionWriteRepository) UpdateProgress(ctx context.Context, sessionID uuid.UUID, newNumber, consecutiveCorrect int) error {
	query := `
		UPDATE game_sessions
		SET current_number = $2, consecutive_correct = $3
		WHERE session_id = $1 AND is_active
	`
	args := []any{sessionID, newNumber, consecutiveCorrect}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("session update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Deactivate transitions a session from Active to Terminated.
func (r *SessionWriteRepository) Deactivate(ctx context.Context, sessionID uuid.UUID) error {
	query := `
		UPDATE game_sessions
		SET is_active = FALSE
		WHERE session_id = $1 AND is_active
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, sessionID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("session deactivate",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{sessionID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteByUserID removes every session row for the user, active or not.
func (r *SessionWriteRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	query := `
		DELETE FROM game_sessions
		WHERE user_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("session delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// SessionReadRepository handles game session read operations
type SessionReadRepository struct {
	db *sqlx.DB
}

func NewSessionReadRepository(db *sqlx.DB) *SessionReadRepository {
	return &SessionReadRepository{db: db}
}

// GetActive fetches a session by id, requiring it to still be active.
// Returns (nil, nil) when the id is unknown or the session has terminated.
func (r *SessionReadRepository) GetActive(ctx context.Context, sessionID uuid.UUID) (*models.GameSessionDB, error) {
	const query = `
		SELECT session_id, user_id, current_number, consecutive_correct, is_active, created_at
		FROM game_sessions
		WHERE session_id = $1 AND is_active
	`

	var session models.GameSessionDB
	err := r.db.GetContext(ctx, &session, query, sessionID)

	logger.Log.Infow("session read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{sessionID},
		"result", session,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}

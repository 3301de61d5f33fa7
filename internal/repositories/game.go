package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/guessing-game/internal/logger"
	"github.com/sbilibin2017/guessing-game/internal/models"
)

// CompletedGameWriteRepository appends to and clears the game history ledger
type CompletedGameWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCompletedGameWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CompletedGameWriteRepository {
	return &CompletedGameWriteRepository{db: db, txGetter: txGetter}
}

func (r *CompletedGameWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save appends one history record with the session's final streak.
// History rows are write-once; nothing ever updates them.
func (r *CompletedGameWriteRepository) Save(ctx context.Context, userID uuid.UUID, consecutiveCorrect int) (*models.CompletedGameDB, error) {
	query := `
		INSERT INTO games (game_id, user_id, consecutive_correct, completed_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING game_id, user_id, consecutive_correct, completed_at
	`
	args := []any{uuid.New(), userID, consecutiveCorrect}

	var game models.CompletedGameDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &game, query, args...)

	logger.Log.Infow("game insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", game,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &game, nil
}

// DeleteByUserID removes all history rows for the user and reports how many
// were deleted.
func (r *CompletedGameWriteRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `
		DELETE FROM games
		WHERE user_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("game delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return rowsAffected, nil
}

// CompletedGameReadRepository derives statistics from the history ledger
type CompletedGameReadRepository struct {
	db *sqlx.DB
}

func NewCompletedGameReadRepository(db *sqlx.DB) *CompletedGameReadRepository {
	return &CompletedGameReadRepository{db: db}
}

// GetStatistics returns the number of completed games and the longest final
// streak for a user. Both are 0 when the user has no history.
func (r *CompletedGameReadRepository) GetStatistics(ctx context.Context, userID uuid.UUID) (*models.Statistics, error) {
	const query = `
		SELECT COUNT(*) AS total_games,
		       COALESCE(MAX(consecutive_correct), 0) AS longest_streak
		FROM games
		WHERE user_id = $1
	`

	var stats struct {
		TotalGames    int `db:"total_games"`
		LongestStreak int `db:"longest_streak"`
	}
	err := r.db.GetContext(ctx, &stats, query, userID)

	logger.Log.Infow("statistics read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", stats,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &models.Statistics{
		TotalGames:    stats.TotalGames,
		LongestStreak: stats.LongestStreak,
	}, nil
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/guessing-game/internal/logger"
	"github.com/sbilibin2017/guessing-game/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrUserNotFound is returned when a username does not resolve to a user.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidGuess is returned when a guess direction is neither "higher" nor "lower".
	ErrInvalidGuess = errors.New("guess must be 'higher' or 'lower'")
	// ErrInvalidSession is returned when a session id is unknown or the session has already terminated.
	ErrInvalidSession = errors.New("invalid or inactive game session")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error) // Returns (nil, nil) when the user does not exist
}

// SessionReader defines read-only operations for game sessions.
type SessionReader interface {
	GetActive(ctx context.Context, sessionID uuid.UUID) (*models.GameSessionDB, error) // Returns (nil, nil) when unknown or inactive
}

// SessionWriter defines write operations for game sessions.
type SessionWriter interface {
	Create(ctx context.Context, userID uuid.UUID, currentNumber int) (*models.GameSessionDB, error) // Deactivates prior actives and inserts a new session
	UpdateProgress(ctx context.Context, sessionID uuid.UUID, newNumber, consecutiveCorrect int) error
	Deactivate(ctx context.Context, sessionID uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

// HistoryWriter defines write operations for the completed-game ledger.
type HistoryWriter interface {
	Save(ctx context.Context, userID uuid.UUID, consecutiveCorrect int) (*models.CompletedGameDB, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) // Returns the number of rows removed
}

// HistoryReader defines read-only operations for the completed-game ledger.
type HistoryReader interface {
	GetStatistics(ctx context.Context, userID uuid.UUID) (*models.Statistics, error)
}

// StatsCache caches derived statistics keyed by user id.
type StatsCache interface {
	GetStatistics(ctx context.Context, userID uuid.UUID) (*models.Statistics, error)
	SetStatistics(ctx context.Context, userID uuid.UUID, stats *models.Statistics) error
	InvalidateStatistics(ctx context.Context, userID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// DrawFunc draws one uniformly distributed integer in [models.MinNumber, models.MaxNumber].
type DrawFunc func() int

// GuessResult is the outcome of one guess.
type GuessResult struct {
	Success            bool // Whether the guess was correct
	NewNumber          int  // The number drawn for this guess
	ConsecutiveCorrect int  // Streak after the guess; on a wrong guess, the final streak
	GameOver           bool // Set when the session terminated on this guess
}

// GameService drives the game state machine: it starts sessions, judges
// guesses, records completed games, and derives statistics.
type GameService struct {
	users       UserReader
	sessionRead SessionReader
	sessions    SessionWriter
	history     HistoryWriter
	historyRead HistoryReader
	cache       StatsCache
	kafkaWriter KafkaWriter
	draw        DrawFunc
}

// NewGameService creates a new GameService.
func NewGameService(
	users UserReader,
	sessionRead SessionReader,
	sessions SessionWriter,
	history HistoryWriter,
	historyRead HistoryReader,
	cache StatsCache,
	kafkaWriter KafkaWriter,
	draw DrawFunc,
) *GameService {
	return &GameService{
		users:       users,
		sessionRead: sessionRead,
		sessions:    sessions,
		history:     history,
		historyRead: historyRead,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		draw:        draw,
	}
}

// publishEvent publishes a game event to Kafka. Publishing is best-effort;
// failures are logged and never fail the triggering operation.
func (s *GameService) publishEvent(ctx context.Context, event models.GameEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal game event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish game event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Game event published to Kafka", "event_id", event.EventID, "operation", event.Operation)
	}
}

// StartGame begins a fresh session for the user: any session still active is
// terminated first, and the new one starts with a zero streak and a freshly
// drawn reference number. The replaced session was abandoned, not lost on a
// guess, so no history record is written for it.
func (s *GameService) StartGame(ctx context.Context, username string) (*models.GameSessionDB, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to look up user", "username", username, "error", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("start game for unknown user", "username", username)
		return nil, ErrUserNotFound
	}

	session, err := s.sessions.Create(ctx, user.UserID, s.draw())
	if err != nil {
		logger.Log.Errorw("failed to create game session", "username", username, "error", err)
		return nil, err
	}

	logger.Log.Infow("game started", "username", username, "session_id", session.SessionID, "number", session.CurrentNumber)
	return session, nil
}

// MakeGuess judges one guess against the session's current number. A tie
// counts as a wrong guess for either direction. A correct guess advances the
// session; a wrong one appends a history record with the pre-guess streak and
// terminates the session.
func (s *GameService) MakeGuess(ctx context.Context, sessionID uuid.UUID, guess string) (*GuessResult, error) {
	if guess != models.GuessHigher && guess != models.GuessLower {
		logger.Log.Infow("invalid guess direction", "session_id", sessionID, "guess", guess)
		return nil, ErrInvalidGuess
	}

	session, err := s.sessionRead.GetActive(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to look up session", "session_id", sessionID, "error", err)
		return nil, err
	}
	if session == nil {
		logger.Log.Infow("guess against unknown or inactive session", "session_id", sessionID)
		return nil, ErrInvalidSession
	}

	newNumber := s.draw()

	correct := (guess == models.GuessHigher && newNumber > session.CurrentNumber) ||
		(guess == models.GuessLower && newNumber < session.CurrentNumber)

	if correct {
		streak := session.ConsecutiveCorrect + 1
		if err := s.sessions.UpdateProgress(ctx, sessionID, newNumber, streak); err != nil {
			logger.Log.Errorw("failed to update session", "session_id", sessionID, "error", err)
			return nil, err
		}

		logger.Log.Infow("correct guess", "session_id", sessionID, "streak", streak)
		return &GuessResult{
			Success:            true,
			NewNumber:          newNumber,
			ConsecutiveCorrect: streak,
			GameOver:           false,
		}, nil
	}

	// Wrong guess: record the final streak, then terminate. Both writes run
	// on the request transaction, never one without the other.
	game, err := s.history.Save(ctx, session.UserID, session.ConsecutiveCorrect)
	if err != nil {
		logger.Log.Errorw("failed to record completed game", "session_id", sessionID, "error", err)
		return nil, err
	}
	if err := s.sessions.Deactivate(ctx, sessionID); err != nil {
		logger.Log.Errorw("failed to deactivate session", "session_id", sessionID, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateStatistics(ctx, session.UserID); err != nil {
			logger.Log.Errorw("failed to invalidate statistics cache", "user_id", session.UserID, "error", err)
		}
	}

	s.publishEvent(ctx, models.GameEvent{
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().Unix(),
		UserID:      session.UserID.String(),
		Operation:   "game_completed",
		FinalStreak: game.ConsecutiveCorrect,
	})

	logger.Log.Infow("wrong guess, game over", "session_id", sessionID, "final_streak", session.ConsecutiveCorrect)
	return &GuessResult{
		Success:            false,
		NewNumber:          newNumber,
		ConsecutiveCorrect: session.ConsecutiveCorrect,
		GameOver:           true,
	}, nil
}

// GetStatistics returns the user's total completed games and longest streak,
// reading through the cache when one is configured.
func (s *GameService) GetStatistics(ctx context.Context, username string) (*models.Statistics, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to look up user", "username", username, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if s.cache != nil {
		if stats, err := s.cache.GetStatistics(ctx, user.UserID); err == nil {
			return stats, nil
		}
	}

	stats, err := s.historyRead.GetStatistics(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to read statistics", "username", username, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetStatistics(ctx, user.UserID, stats); err != nil {
			logger.Log.Errorw("failed to cache statistics", "username", username, "error", err)
		}
	}

	return stats, nil
}

// ClearStatistics removes every completed game and every session row for the
// user, reporting how many history rows were deleted. Any in-progress game is
// abandoned by the reset.
func (s *GameService) ClearStatistics(ctx context.Context, username string) (int64, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to look up user", "username", username, "error", err)
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}

	cleared, err := s.history.DeleteByUserID(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to clear game history", "username", username, "error", err)
		return 0, err
	}
	if err := s.sessions.DeleteByUserID(ctx, user.UserID); err != nil {
		logger.Log.Errorw("failed to clear sessions", "username", username, "error", err)
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateStatistics(ctx, user.UserID); err != nil {
			logger.Log.Errorw("failed to invalidate statistics cache", "username", username, "error", err)
		}
	}

	s.publishEvent(ctx, models.GameEvent{
		EventID:      uuid.NewString(),
		Timestamp:    time.Now().Unix(),
		UserID:       user.UserID.String(),
		Operation:    "stats_cleared",
		ClearedGames: int(cleared),
	})

	logger.Log.Infow("statistics cleared", "username", username, "cleared_games", cleared)
	return cleared, nil
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/guessing-game/internal/logger"
	"github.com/sbilibin2017/guessing-game/internal/services"
)

// Guesser defines the interface that the game service must implement.
type Guesser interface {
	MakeGuess(ctx context.Context, sessionID uuid.UUID, guess string) (*services.GuessResult, error)
}

// GuessRequest represents the JSON body for making a guess
// swagger:model GuessRequest
type GuessRequest struct {
	// Session id of the active game
	// required: true
	SessionID string `json:"session_id"`

	// Guess direction, "higher" or "lower"
	// required: true
	// default: higher
	Guess string `json:"guess"`
}

// GuessResponse represents the outcome of a guess
// swagger:model GuessResponse
type GuessResponse struct {
	// Whether the guess was correct
	Success bool `json:"success"`

	// The number drawn for this guess
	// default: 742
	NewNumber int `json:"new_number"`

	// Streak after the guess; on a wrong guess, the final streak
	// default: 3
	ConsecutiveCorrect int `json:"consecutive_correct"`

	// Set when the session terminated on this guess
	GameOver bool `json:"game_over"`

	// Human-readable message
	Message string `json:"message"`
}

// GuessErrorResponse represents an error response for a guess
// swagger:model GuessErrorResponse
type GuessErrorResponse struct {
	// Error message
	// default: Guess must be 'higher' or 'lower'
	Error string `json:"error"`
}

// NewGuessHandler returns an HTTP handler for making a guess.
// @Summary Make a guess
// @Description Judges whether the next drawn number is higher or lower than the session's current number. A wrong guess ends the game.
// @Tags game
// @Accept json
// @Produce json
// @Param guessRequest body handlers.GuessRequest true "Session and guess direction"
// @Success 200 {object} handlers.GuessResponse "Guess outcome"
// @Failure 400 {object} handlers.GuessErrorResponse "Bad direction or unknown/inactive session"
// @Failure 500 {object} handlers.GuessErrorResponse "Internal server error"
// @Router /game/guess [post]
func NewGuessHandler(svc Guesser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GuessRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GuessErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		// An unparseable session id falls through as the zero uuid, which no
		// session ever has, so the service reports it as an invalid session.
		// The service checks the direction first either way.
		sessionID, _ := uuid.Parse(req.SessionID)

		result, err := svc.MakeGuess(r.Context(), sessionID, req.Guess)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidGuess):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(GuessErrorResponse{
					Error: "Guess must be 'higher' or 'lower'",
				})
			case errors.Is(err, services.ErrInvalidSession):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(GuessErrorResponse{
					Error: "Invalid or inactive game session",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GuessErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		var message string
		if result.Success {
			message = fmt.Sprintf("Correct! The new number is %d. Current streak: %d",
				result.NewNumber, result.ConsecutiveCorrect)
		} else {
			message = fmt.Sprintf("Wrong! The number was %d. Game over! Final streak: %d",
				result.NewNumber, result.ConsecutiveCorrect)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GuessResponse{
			Success:            result.Success,
			NewNumber:          result.NewNumber,
			ConsecutiveCorrect: result.ConsecutiveCorrect,
			GameOver:           result.GameOver,
			Message:            message,
		})
	}
}

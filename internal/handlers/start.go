package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/guessing-game/internal/logger"
	"github.com/sbilibin2017/guessing-game/internal/models"
	"github.com/sbilibin2017/guessing-game/internal/services"
)

// GameStarter defines the interface that the game service must implement.
type GameStarter interface {
	StartGame(ctx context.Context, username string) (*models.GameSessionDB, error)
}

// StartGameRequest represents the JSON body for starting a game
// swagger:model StartGameRequest
type StartGameRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`
}

// StartGameResponse represents a successfully started game
// swagger:model StartGameResponse
type StartGameResponse struct {
	// Session id of the new game
	SessionID string `json:"session_id"`

	// Starting number in [0, 1000]
	// default: 500
	CurrentNumber int `json:"current_number"`

	// Human-readable message
	// default: Game started! Guess if the next number will be higher or lower.
	Message string `json:"message"`
}

// StartGameErrorResponse represents an error response for starting a game
// swagger:model StartGameErrorResponse
type StartGameErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewStartGameHandler returns an HTTP handler for starting a new game.
// @Summary Start a new game
// @Description Starts a fresh session for the user. Any session still active for the user is abandoned.
// @Tags game
// @Accept json
// @Produce json
// @Param startGameRequest body handlers.StartGameRequest true "User starting the game"
// @Success 200 {object} handlers.StartGameResponse "New session and its starting number"
// @Failure 404 {object} handlers.StartGameErrorResponse "Unknown username"
// @Failure 500 {object} handlers.StartGameErrorResponse "Internal server error"
// @Router /game/start [post]
func NewStartGameHandler(svc GameStarter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartGameRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(StartGameErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		session, err := svc.StartGame(r.Context(), req.Username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(StartGameErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(StartGameErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StartGameResponse{
			SessionID:     session.SessionID.String(),
			CurrentNumber: session.CurrentNumber,
			Message:       "Game started! Guess if the next number will be higher or lower.",
		})
	}
}

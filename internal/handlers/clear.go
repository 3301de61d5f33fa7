package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/guessing-game/internal/logger"
	"github.com/sbilibin2017/guessing-game/internal/services"
)

// StatisticsClearer defines the interface that the game service must implement.
type StatisticsClearer interface {
	ClearStatistics(ctx context.Context, username string) (int64, error)
}

// ClearStatisticsResponse represents a successful statistics reset
// swagger:model ClearStatisticsResponse
type ClearStatisticsResponse struct {
	// Human-readable message
	// default: Successfully cleared all game data for john_doe
	Message string `json:"message"`

	// Number of completed games removed
	// default: 4
	ClearedGames int64 `json:"cleared_games"`
}

// ClearStatisticsErrorResponse represents an error response for clearing statistics
// swagger:model ClearStatisticsErrorResponse
type ClearStatisticsErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewClearStatisticsHandler returns an HTTP handler for resetting a user's game data.
// @Summary Clear user statistics
// @Description Deletes every completed game and every session for the user, abandoning any game in progress.
// @Tags statistics
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.ClearStatisticsResponse "Reset confirmation with cleared-game count"
// @Failure 404 {object} handlers.ClearStatisticsErrorResponse "Unknown username"
// @Failure 500 {object} handlers.ClearStatisticsErrorResponse "Internal server error"
// @Router /statistics/{username} [delete]
func NewClearStatisticsHandler(svc StatisticsClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		cleared, err := svc.ClearStatistics(r.Context(), username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ClearStatisticsErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ClearStatisticsErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ClearStatisticsResponse{
			Message:      fmt.Sprintf("Successfully cleared all game data for %s", username),
			ClearedGames: cleared,
		})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/guessing-game/internal/logger"
	"github.com/sbilibin2017/guessing-game/internal/models"
	"github.com/sbilibin2017/guessing-game/internal/services"
)

// StatisticsGetter defines the interface that the game service must implement.
type StatisticsGetter interface {
	GetStatistics(ctx context.Context, username string) (*models.Statistics, error)
}

// StatisticsResponse represents a user's aggregate game statistics
// swagger:model StatisticsResponse
type StatisticsResponse struct {
	// Username
	// default: john_doe
	Username string `json:"username"`

	// Count of completed games
	// default: 12
	TotalGames int `json:"total_games"`

	// Longest final streak across completed games
	// default: 7
	LongestStreak int `json:"longest_streak"`
}

// StatisticsErrorResponse represents an error response for statistics
// swagger:model StatisticsErrorResponse
type StatisticsErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewGetStatisticsHandler returns an HTTP handler for reading user statistics.
// @Summary Get user statistics
// @Description Returns the user's total completed games and longest streak.
// @Tags statistics
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.StatisticsResponse "Aggregate statistics"
// @Failure 404 {object} handlers.StatisticsErrorResponse "Unknown username"
// @Failure 500 {object} handlers.StatisticsErrorResponse "Internal server error"
// @Router /statistics/{username} [get]
func NewGetStatisticsHandler(svc StatisticsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		stats, err := svc.GetStatistics(r.Context(), username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(StatisticsErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(StatisticsErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StatisticsResponse{
			Username:      username,
			TotalGames:    stats.TotalGames,
			LongestStreak: stats.LongestStreak,
		})
	}
}

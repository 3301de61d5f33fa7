package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/guessing-game/internal/logger"
	"github.com/sbilibin2017/guessing-game/internal/models"
)

// UserGetOrCreater defines the interface that the user service must implement.
type UserGetOrCreater interface {
	GetOrCreate(ctx context.Context, username string) (*models.UserDB, error)
}

// UserRequest represents the JSON body for getting or creating a user
// swagger:model UserRequest
type UserRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`
}

// UserResponse represents a user record
// swagger:model UserResponse
type UserResponse struct {
	// User id
	ID string `json:"id"`

	// Username
	// default: john_doe
	Username string `json:"username"`

	// Creation timestamp
	CreatedAt time.Time `json:"created_at"`
}

// UserErrorResponse represents an error response for the user endpoint
// swagger:model UserErrorResponse
type UserErrorResponse struct {
	// Error message
	// default: Username must not be empty
	Error string `json:"error"`
}

// NewGetOrCreateUserHandler returns an HTTP handler that resolves a username
// to a user, creating the record on first reference.
// @Summary Get or create a user
// @Description Looks a user up by username and creates it if it has never been seen. Idempotent.
// @Tags user
// @Accept json
// @Produce json
// @Param userRequest body handlers.UserRequest true "Username to resolve"
// @Success 200 {object} handlers.UserResponse "Existing or newly created user"
// @Failure 400 {object} handlers.UserErrorResponse "Invalid request body"
// @Failure 500 {object} handlers.UserErrorResponse "Internal server error"
// @Router /user [post]
func NewGetOrCreateUserHandler(svc UserGetOrCreater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Error: "Username must not be empty",
			})
			return
		}

		user, err := svc.GetOrCreate(r.Context(), req.Username)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserResponse{
			ID:        user.UserID.String(),
			Username:  user.Username,
			CreatedAt: user.CreatedAt,
		})
	}
}

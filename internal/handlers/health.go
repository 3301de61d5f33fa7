package handlers

import (
	"encoding/json"
	"net/http"
)

// HealthResponse represents the liveness probe payload
// swagger:model HealthResponse
type HealthResponse struct {
	// Service status
	// default: healthy
	Status string `json:"status"`

	// Human-readable message
	// default: API is running
	Message string `json:"message"`
}

// NewHealthHandler returns a liveness probe handler.
// @Summary Health check
// @Description Reports that the service is up.
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is healthy"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{
			Status:  "healthy",
			Message: "API is running",
		})
	}
}

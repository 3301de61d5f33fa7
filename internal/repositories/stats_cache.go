package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/guessing-game/internal/logger"
	"github.com/sbilibin2017/guessing-game/internal/models"
)

// StatsCacheRepository caches per-user statistics in Redis
type StatsCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached statistics
}

// NewStatsCacheRepository creates a new repository instance with optional TTL
func NewStatsCacheRepository(client *redis.Client, expiration time.Duration) *StatsCacheRepository {
	return &StatsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func statsKey(userID uuid.UUID) string {
	return fmt.Sprintf("statistics:%s", userID)
}

// GetStatistics fetches cached statistics for a user
func (r *StatsCacheRepository) GetStatistics(ctx context.Context, userID uuid.UUID) (*models.Statistics, error) {
	key := statsKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("stats cache read",
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("statistics not found in cache for user %s", userID)
		}
		return nil, err
	}

	var stats models.Statistics
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		logger.Log.Infow("stats cache read",
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("stats cache read",
		"key", key,
		"result", stats,
		"error", nil,
	)

	return &stats, nil
}

// SetStatistics caches statistics for a user with expiration
func (r *StatsCacheRepository) SetStatistics(ctx context.Context, userID uuid.UUID, stats *models.Statistics) error {
	key := statsKey(userID)

	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("stats cache write",
		"key", key,
		"stats", stats,
		"error", err,
	)

	return err
}

// InvalidateStatistics drops the cached entry for a user, if any.
// Called whenever the underlying history changes.
func (r *StatsCacheRepository) InvalidateStatistics(ctx context.Context, userID uuid.UUID) error {
	key := statsKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("stats cache invalidate",
		"key", key,
		"error", err,
	)

	return err
}

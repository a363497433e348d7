package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/travel-journal-service/internal/domain"
	"github.com/travel-journal-service/internal/domain/repository"
	"go.uber.org/zap"
)

type statsCacheRepository struct {
	redis  *Redis
	logger *zap.Logger
}

// NewStatsCacheRepository creates the Redis-backed trip stats cache.
func NewStatsCacheRepository(r *Redis) repository.StatsCacheRepository {
	return &statsCacheRepository{
		redis:  r,
		logger: r.logger,
	}
}

func tripStatsKey(tripID string) string {
	return fmt.Sprintf("journal:trip:%s:stats", tripID)
}

func (c *statsCacheRepository) GetTripStats(ctx context.Context, tripID string) (*domain.TripStats, error) {
	data, err := c.redis.client.Get(ctx, tripStatsKey(tripID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get trip stats from cache: %w", err)
	}

	var stats domain.TripStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("unmarshal cached trip stats: %w", err)
	}
	return &stats, nil
}

func (c *statsCacheRepository) SetTripStats(ctx context.Context, stats *domain.TripStats, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal trip stats: %w", err)
	}

	if err := c.redis.client.Set(ctx, tripStatsKey(stats.TripID), data, ttl).Err(); err != nil {
		return fmt.Errorf("cache trip stats: %w", err)
	}

	c.logger.Debug("Trip stats cached", zap.String("trip_id", stats.TripID))
	return nil
}

func (c *statsCacheRepository) InvalidateTripStats(ctx context.Context, tripID string) error {
	if err := c.redis.client.Del(ctx, tripStatsKey(tripID)).Err(); err != nil {
		return fmt.Errorf("invalidate trip stats: %w", err)
	}
	return nil
}

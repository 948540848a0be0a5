package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"serenite/models"
	"serenite/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CachedEngine decorates a ScheduleEngine with a short-lived redis cache.
// Entries are keyed per (professional, date, duration) and invalidated when a
// booking or schedule override for the day changes.
type CachedEngine struct {
	Inner ScheduleEngine
	Cache *redis.Client
	TTL   time.Duration
}

func slotCacheKey(professionalID, date string, duration int) string {
	return fmt.Sprintf("slots:%s:%s:%d", professionalID, date, duration)
}

func (e *CachedEngine) ComputeAvailableSlots(ctx context.Context, professionalID string, date time.Time, durationMinutes int) (models.DayAvailability, error) {
	key := slotCacheKey(professionalID, date.Format(dateLayout), durationMinutes)
	logger := utils.GetLogger()

	if raw, err := e.Cache.Get(ctx, key).Result(); err == nil {
		var cached models.DayAvailability
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
		logger.Warn("discarding unreadable slot cache entry", zap.String("key", key))
	}

	result, err := e.Inner.ComputeAvailableSlots(ctx, professionalID, date, durationMinutes)
	if err != nil {
		return models.DayAvailability{}, err
	}

	if data, err := json.Marshal(result); err == nil {
		if err := e.Cache.Set(ctx, key, data, e.TTL).Err(); err != nil {
			logger.Warn("failed to cache slot computation", zap.String("key", key), zap.Error(err))
		}
	}
	return result, nil
}

// InvalidateDay drops every cached slot computation for the professional/date.
func InvalidateDay(ctx context.Context, cache *redis.Client, professionalID, date string) {
	logger := utils.GetLogger()
	pattern := fmt.Sprintf("slots:%s:%s:*", professionalID, date)

	iter := cache.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := cache.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Warn("failed to invalidate slot cache key", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		logger.Warn("slot cache invalidation scan failed", zap.String("pattern", pattern), zap.Error(err))
	}
}

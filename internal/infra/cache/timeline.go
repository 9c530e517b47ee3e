package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"sala-agenda/internal/infra"
	"sala-agenda/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// TimelineCache stores rendered day views in Redis keyed by date. The TTL is
// short: the cache only absorbs repeated reads of the same day, invalidation
// on write keeps it honest.
type TimelineCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTimelineCache(rdb *redis.Client, ttl time.Duration) *TimelineCache {
	return &TimelineCache{rdb: rdb, ttl: ttl}
}

func dayKey(date string) string {
	return "timeline:day:" + date
}

// GetDay returns (nil, nil) on a cache miss.
func (c *TimelineCache) GetDay(ctx context.Context, date string) (*queries.TimelineDayView, error) {
	data, err := c.rdb.Get(ctx, dayKey(date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to read timeline cache", err, infra.KindCacheFailure)
	}

	var view queries.TimelineDayView
	if err := json.Unmarshal(data, &view); err != nil {
		// Treat a corrupt entry as a miss after dropping it
		c.rdb.Del(ctx, dayKey(date))
		return nil, nil
	}
	return &view, nil
}

func (c *TimelineCache) SetDay(ctx context.Context, day *queries.TimelineDayView) error {
	data, err := json.Marshal(day)
	if err != nil {
		return infra.WrapRepoErr("failed to encode timeline day", err, infra.KindCacheFailure)
	}
	if err := c.rdb.Set(ctx, dayKey(day.Date), data, c.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to write timeline cache", err, infra.KindCacheFailure)
	}
	return nil
}

func (c *TimelineCache) InvalidateDay(ctx context.Context, date string) error {
	if err := c.rdb.Del(ctx, dayKey(date)).Err(); err != nil {
		return infra.WrapRepoErr("failed to invalidate timeline cache", err, infra.KindCacheFailure)
	}
	return nil
}

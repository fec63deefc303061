package trainingload

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/stridewise/backend/internal/telemetry/tracing"
	"github.com/stridewise/backend/internal/trainingload/engine"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrMetricsNotCached = errors.New("metrics not cached")

const metricsCacheTTL = time.Hour

// MetricsCache keeps serialized computed metrics in redis so repeated reads
// for the same (user, day, config) skip the full window aggregation.
type MetricsCache struct {
	rdb *redis.Client
}

func NewMetricsCache(rdb *redis.Client) *MetricsCache {
	return &MetricsCache{
		rdb: rdb,
	}
}

func (c *MetricsCache) Get(ctx context.Context, userID int64, day time.Time, configID string) (_ *ComputedMetrics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trainingload.cache.get")
	defer func() {
		if errors.Is(err, ErrMetricsNotCached) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	metricsJson, err := c.rdb.Get(ctx, metricsCacheKey(userID, day, configID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMetricsNotCached
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var metrics ComputedMetrics
	if err := json.Unmarshal([]byte(metricsJson), &metrics); err != nil {
		return nil, fmt.Errorf("unmarshal cached metrics: %w", err)
	}

	span.SetAttributes(attribute.Bool("cache.hit", true))
	return &metrics, nil
}

func (c *MetricsCache) Set(ctx context.Context, metrics ComputedMetrics) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trainingload.cache.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	metricsJson, err := json.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}

	key := metricsCacheKey(metrics.UserID, metrics.Day, metrics.ConfigID)
	if err := c.rdb.Set(ctx, key, metricsJson, metricsCacheTTL).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// InvalidateUser drops every cached day for the user, regardless of the
// configuration it was computed under. Called after recomputation and after
// activity corrections.
func (c *MetricsCache) InvalidateUser(ctx context.Context, userID int64) (removed int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trainingload.cache.invalidateUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	pattern := fmt.Sprintf("trainingload:metrics:%d:*", userID)
	var cursor uint64
	for {
		keys, nextCursor, err := c.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return removed, fmt.Errorf("redis scan: %w", err)
		}

		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				log.Errorf("failed to delete cached metrics for user %d: %s", userID, err)
			} else {
				removed += len(keys)
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	span.SetAttributes(attribute.Int("removed", removed))
	return removed, nil
}

func metricsCacheKey(userID int64, day time.Time, configID string) string {
	return fmt.Sprintf(
		"trainingload:metrics:%d:%s:%s",
		userID, engine.DayOf(day).Format(time.DateOnly), configID,
	)
}

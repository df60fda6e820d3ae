package util

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Deduper suppresses repeat processing of advisory events. The gate always
// reports the current truth of an unlock condition, so consumers see the same
// event again on every recompute; this keeps the activity log from filling up
// with duplicates.
type Deduper struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewDeduper(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *Deduper {
	return &Deduper{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

// AcquireOnce tries to acquire a dedup lock for a handler + customer + section.
// Returns true when this is the first time the event is processed within the
// TTL window, false when it is a duplicate. When Redis is unavailable the
// event is allowed through rather than dropped.
func (d *Deduper) AcquireOnce(ctx context.Context, handler, customerID, section string) bool {
	key := fmt.Sprintf("dedup:%s:%s:%s", handler, customerID, section)

	ok, err := d.rdb.SetNX(ctx, key, 1, d.ttl).Result()
	if err != nil {
		if d.logger != nil {
			d.logger.Warn("Redis dedup check failed, allowing processing",
				zap.String("handler", handler),
				zap.String("customer_id", customerID),
				zap.String("section", section),
				zap.Error(err),
			)
		}
		return true
	}

	if !ok && d.logger != nil {
		d.logger.Info("Skipped duplicated event",
			zap.String("handler", handler),
			zap.String("customer_id", customerID),
			zap.String("section", section),
			zap.String("dedup_key", key),
		)
	}

	return ok
}

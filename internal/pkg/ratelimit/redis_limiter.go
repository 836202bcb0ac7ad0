package ratelimit

import (
	"context"
	"fmt"
	"time"

	"title-assist-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Limiter is a fixed-window counter on Redis. When Redis is down the limiter
// fails open so the widget keeps working without it.
type Limiter struct {
	rdb    *redis.Client
	logger logger.ILogger
}

func NewLimiter(rdb *redis.Client, log logger.ILogger) *Limiter {
	return &Limiter{rdb: rdb, logger: log}
}

// Allow reports whether one more action is permitted for the key within the
// window. The first hit in a window sets the expiry.
func (l *Limiter) Allow(ctx context.Context, key string, limit int, window time.Duration) bool {
	if l.rdb == nil || limit <= 0 {
		return true
	}

	redisKey := fmt.Sprintf("ratelimit:%s", key)
	count, err := l.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		l.logger.Warn("RateLimit", "Redis INCR failed, allowing request", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return true
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, redisKey, window).Err(); err != nil {
			l.logger.Warn("RateLimit", "Redis EXPIRE failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	}
	return count <= int64(limit)
}

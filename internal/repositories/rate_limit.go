package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/shell-market/internal/logger"
)

// RateLimitRepository implements fixed-window request counters in Redis.
type RateLimitRepository struct {
	client *redis.Client
	prefix string
}

func NewRateLimitRepository(client *redis.Client) *RateLimitRepository {
	return &RateLimitRepository{client: client, prefix: "rate_limit:"}
}

// Hit counts one request for key in the current window and returns the count
// so far and the time left until the window resets.
func (r *RateLimitRepository) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	fullKey := r.prefix + key

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, fullKey)
	pipe.ExpireNX(ctx, fullKey, window)
	ttl := pipe.PTTL(ctx, fullKey)
	_, err := pipe.Exec(ctx)

	logger.Log.Debugw(
		"rate limit hit",
		"key", fullKey,
		"count", incr.Val(),
		"ttl", ttl.Val(),
		"error", err,
	)

	if err != nil {
		return 0, 0, err
	}

	left := ttl.Val()
	if left < 0 {
		left = window
	}
	return incr.Val(), left, nil
}

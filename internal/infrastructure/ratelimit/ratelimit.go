package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter counts actions per account in fixed windows
type Limiter interface {
	Allow(ctx context.Context, account, action string) (bool, error)
}

// RedisLimiter is a fixed-window counter in redis
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRedisLimiter creates a limiter allowing limit actions per window
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: limit, window: window}
}

// Allow increments the counter and reports whether the action is within the limit
func (l *RedisLimiter) Allow(ctx context.Context, account, action string) (bool, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", account, action)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}

	if count == 1 {
		l.client.Expire(ctx, key, l.window)
	}

	return count <= int64(l.limit), nil
}

// Unlimited allows everything; used when rate limiting is disabled
type Unlimited struct{}

// Allow always allows
func (Unlimited) Allow(context.Context, string, string) (bool, error) {
	return true, nil
}

package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// releaseScript deletes the key only if this holder still owns it
var releaseScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	end
	return 0
`)

// RedisManager is a Manager shared by every service instance
type RedisManager struct {
	client  *redis.Client
	ttl     time.Duration
	timeout time.Duration
	retry   time.Duration
	prefix  string
	logger  *logger.Logger
}

// NewRedisManager creates a redis-backed lock manager
func NewRedisManager(client *redis.Client, log *logger.Logger, ttl, timeout time.Duration) *RedisManager {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &RedisManager{
		client:  client,
		ttl:     ttl,
		timeout: timeout,
		retry:   50 * time.Millisecond,
		prefix:  "lock:",
		logger:  log,
	}
}

// Lock polls for the lock until it is free or the timeout elapses
func (m *RedisManager) Lock(ctx context.Context, key string) (Release, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	ticker := time.NewTicker(m.retry)
	defer ticker.Stop()

	for {
		release, ok, err := m.TryLock(ctx, key)
		if err != nil {
			return nil, err
		}
		if ok {
			return release, nil
		}

		select {
		case <-ctx.Done():
			m.logger.Warn("Failed to acquire distributed lock", zap.String("key", key), zap.Error(ctx.Err()))
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, ErrNotAcquired)
		case <-ticker.C:
		}
	}
}

// TryLock makes a single SET NX attempt
func (m *RedisManager) TryLock(ctx context.Context, key string) (Release, bool, error) {
	token := uuid.NewString()
	fullKey := m.prefix + key

	ok, err := m.client.SetNX(ctx, fullKey, token, m.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, m.client, []string{fullKey}, token).Err(); err != nil {
			m.logger.Warn("Failed to release distributed lock", zap.String("key", key), zap.Error(err))
		}
	}
	return release, true, nil
}

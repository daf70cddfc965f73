package app

import (
	"context"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/cache"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/lock"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/ratelimit"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitRedis connects to redis, or returns nil when no address is configured
func (a *application) InitRedis(lc fx.Lifecycle, log *logger.Logger) (*redis.Client, error) {
	if a.config.Redis.Addr == "" {
		log.Warn("Redis not configured, using in-process locks without rate limiting")
		return nil, nil
	}

	client, err := cache.NewRedisClient(a.ctx, cache.Config{
		Addr:     a.config.Redis.Addr,
		Password: a.config.Redis.Password,
		DB:       a.config.Redis.DB,
	})
	if err != nil {
		return nil, err
	}
	log.Info("Redis connected", zap.String("addr", a.config.Redis.Addr))

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func (a *application) InitLockManager(client *redis.Client, log *logger.Logger) lock.Manager {
	if client == nil {
		return lock.NewLocalManager(log, 5*time.Second)
	}
	return lock.NewRedisManager(client, log, a.config.Redis.LockTTL, 5*time.Second)
}

func (a *application) InitRateLimiter(client *redis.Client) ratelimit.Limiter {
	if client == nil || !a.config.RateLimit.Enabled {
		return ratelimit.Unlimited{}
	}
	requests := a.config.RateLimit.Requests
	if requests <= 0 {
		requests = 60
	}
	window := a.config.RateLimit.Window
	if window <= 0 {
		window = time.Minute
	}
	return ratelimit.NewRedisLimiter(client, requests, window)
}

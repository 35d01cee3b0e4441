package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/shrtlnk/internal/metrics"
	"github.com/serroba/shrtlnk/internal/shortener"
	"go.uber.org/zap"
)

// RedisCache is a Redis-backed shortener.Cache with per-key TTL.
//
// Every Redis failure collapses into a miss so resolution fails open:
// the pipeline falls through to the durable store instead of surfacing
// a cache-layer error.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisCache creates a new Redis cache adapter with a fixed entry TTL.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		prefix: "link:",
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisCache) Lookup(ctx context.Context, code shortener.Code) (string, bool) {
	longURL, err := c.client.Get(ctx, c.prefix+string(code)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheLookups.WithLabelValues("miss").Inc()
		} else {
			metrics.CacheLookups.WithLabelValues("error").Inc()
			c.logger.Warn("cache lookup failed, treating as miss",
				zap.String("code", string(code)),
				zap.Error(err),
			)
		}

		return "", false
	}

	metrics.CacheLookups.WithLabelValues("hit").Inc()

	return longURL, true
}

func (c *RedisCache) Store(ctx context.Context, code shortener.Code, longURL string) {
	if err := c.client.Set(ctx, c.prefix+string(code), longURL, c.ttl).Err(); err != nil {
		metrics.CacheBackfills.WithLabelValues("error").Inc()
		c.logger.Warn("cache backfill failed",
			zap.String("code", string(code)),
			zap.Error(err),
		)

		return
	}

	metrics.CacheBackfills.WithLabelValues("ok").Inc()
}

// Compile-time check.
var _ shortener.Cache = (*RedisCache)(nil)

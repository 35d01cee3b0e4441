package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/shrtlnk/internal/cache"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// An unreachable Redis must behave like an empty cache: lookups miss and
// stores are dropped, without errors reaching the caller.
func TestRedisCache_FailOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	defer client.Close()

	c := cache.NewRedisCache(client, time.Hour, zap.NewNop())
	ctx := context.Background()

	t.Run("lookup reports a miss", func(t *testing.T) {
		longURL, ok := c.Lookup(ctx, "abcd1234")

		assert.False(t, ok)
		assert.Empty(t, longURL)
	})

	t.Run("store is swallowed", func(t *testing.T) {
		assert.NotPanics(t, func() {
			c.Store(ctx, "abcd1234", "https://example.com")
		})
	})
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"industrial-site-be/internal/pkg/logger"
	"industrial-site-be/internal/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

// PageCache stores rendered public detail responses keyed by content kind and slug.
// Failures never surface to callers: a broken cache behaves like an empty one.
type PageCache interface {
	Get(ctx context.Context, kind, slug string, dest any) bool
	Set(ctx context.Context, kind, slug string, value any)
	Invalidate(ctx context.Context, kind string, slugs ...string)
}

func Key(kind, slug string) string {
	return "page:" + kind + ":" + slug
}

type RedisPageCache struct {
	rdb     *redis.Client
	ttl     time.Duration
	metrics *metrics.Registry
	logger  logger.ILogger
}

func NewRedisPageCache(rdb *redis.Client, ttl time.Duration, m *metrics.Registry, log logger.ILogger) *RedisPageCache {
	return &RedisPageCache{rdb: rdb, ttl: ttl, metrics: m, logger: log}
}

func (c *RedisPageCache) observe(result string) {
	if c.metrics != nil {
		c.metrics.PageCacheRequests.WithLabelValues(result).Inc()
	}
}

func (c *RedisPageCache) Get(ctx context.Context, kind, slug string, dest any) bool {
	raw, err := c.rdb.Get(ctx, Key(kind, slug)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.observe("miss")
		return false
	}
	if err != nil {
		c.observe("error")
		c.logger.Warn("CACHE", "Page cache read failed", map[string]interface{}{
			"key":   Key(kind, slug),
			"error": err.Error(),
		})
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.observe("error")
		return false
	}
	c.observe("hit")
	return true
}

func (c *RedisPageCache) Set(ctx context.Context, kind, slug string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, Key(kind, slug), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("CACHE", "Page cache write failed", map[string]interface{}{
			"key":   Key(kind, slug),
			"error": err.Error(),
		})
	}
}

func (c *RedisPageCache) Invalidate(ctx context.Context, kind string, slugs ...string) {
	keys := make([]string, 0, len(slugs))
	for _, s := range slugs {
		if s != "" {
			keys = append(keys, Key(kind, s))
		}
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("CACHE", "Page cache invalidation failed", map[string]interface{}{
			"keys":  keys,
			"error": err.Error(),
		})
	}
}

// NoopPageCache is used when Redis is not configured.
type NoopPageCache struct {
	metrics *metrics.Registry
}

func NewNoopPageCache(m *metrics.Registry) *NoopPageCache {
	return &NoopPageCache{metrics: m}
}

func (c *NoopPageCache) Get(ctx context.Context, kind, slug string, dest any) bool {
	if c.metrics != nil {
		c.metrics.PageCacheRequests.WithLabelValues("miss").Inc()
	}
	return false
}

func (c *NoopPageCache) Set(ctx context.Context, kind, slug string, value any) {}

func (c *NoopPageCache) Invalidate(ctx context.Context, kind string, slugs ...string) {}

package cache

import (
	"context"
	"testing"
	"time"

	"industrial-site-be/internal/pkg/logger"
	"industrial-site-be/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "page:service:civil-works", Key("service", "civil-works"))
}

func TestNoopPageCacheAlwaysMisses(t *testing.T) {
	reg := metrics.New()
	c := NewNoopPageCache(reg)
	ctx := context.Background()

	c.Set(ctx, "market", "power", map[string]string{"name": "Power"})
	var dest map[string]string
	assert.False(t, c.Get(ctx, "market", "power", &dest))
	assert.Nil(t, dest)
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.PageCacheRequests.WithLabelValues("miss")))
}

func TestRedisPageCacheUnavailableBehavesLikeEmpty(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { rdb.Close() })

	reg := metrics.New()
	c := NewRedisPageCache(rdb, time.Minute, reg, logger.NewNopLogger())
	ctx := context.Background()

	c.Set(ctx, "news", "open-house", map[string]string{"title": "Open House"})
	var dest map[string]string
	assert.False(t, c.Get(ctx, "news", "open-house", &dest))
	c.Invalidate(ctx, "news", "open-house", "")

	assert.Equal(t, 1.0, testutil.ToFloat64(reg.PageCacheRequests.WithLabelValues("error")))
}

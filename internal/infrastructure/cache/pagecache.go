package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/beacon-cms/beacon/internal/shared/logger"
)

const pageCacheKeyPrefix = "beacon:page:"

// PageCache stores composed page JSON keyed by slug so repeated public
// renders skip the database entirely. Cached entries are invalidated when
// the page or any referenced content changes.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewPageCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *PageCache {
	return &PageCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached composed page, or nil on a miss. Cache errors are
// logged and treated as misses.
func (c *PageCache) Get(ctx context.Context, slug string) []byte {
	raw, err := c.client.Get(ctx, c.key(slug)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warnw("page cache read failed", "error", err, "slug", slug)
		}
		return nil
	}
	return raw
}

// Set stores the composed page. Failures are logged, never propagated.
func (c *PageCache) Set(ctx context.Context, slug string, payload []byte) {
	if err := c.client.Set(ctx, c.key(slug), payload, c.ttl).Err(); err != nil {
		c.logger.Warnw("page cache write failed", "error", err, "slug", slug)
	}
}

// Invalidate drops the cached entry for one slug.
func (c *PageCache) Invalidate(ctx context.Context, slug string) {
	if err := c.client.Del(ctx, c.key(slug)).Err(); err != nil {
		c.logger.Warnw("page cache invalidation failed", "error", err, "slug", slug)
	}
}

// InvalidateAll drops every cached page. Used when shared content such as
// pricing or FAQs changes, since any page may reference it.
func (c *PageCache) InvalidateAll(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, pageCacheKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Warnw("page cache invalidation failed", "error", err, "key", iter.Val())
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Warnw("page cache scan failed", "error", err)
	}
}

func (c *PageCache) key(slug string) string {
	return fmt.Sprintf("%s%s", pageCacheKeyPrefix, slug)
}

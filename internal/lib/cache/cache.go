// Package cache keeps listing pages in redis. Each scope has a version
// counter embedded in its keys; bumping the counter orphans every cached page
// of that scope, and the orphans expire on their own.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "eduverse:cache"
	DefaultTTL = 5 * time.Minute
)

type PageCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewPageCache(rdb redis.Cmdable, ttl time.Duration) *PageCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PageCache{rdb: rdb, ttl: ttl}
}

func versionKey(scope string) string {
	return fmt.Sprintf("%s:%s:version", keyPrefix, scope)
}

func pageKey(scope string, version int64, limit, offset int) string {
	return fmt.Sprintf("%s:%s:v%d:%d:%d", keyPrefix, scope, version, limit, offset)
}

func (c *PageCache) version(ctx context.Context, scope string) (int64, error) {
	v, err := c.rdb.Get(ctx, versionKey(scope)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// GetPage decodes the cached page into dest and reports whether it was
// found. It also returns the scope version it read; a caller filling a miss
// passes that version to SetPage, so a page loaded before an Invalidate is
// stored under the orphaned version and never served.
func (c *PageCache) GetPage(ctx context.Context, scope string, limit, offset int, dest any) (int64, bool, error) {
	v, err := c.version(ctx, scope)
	if err != nil {
		return 0, false, fmt.Errorf("reading %s cache version: %w", scope, err)
	}

	raw, err := c.rdb.Get(ctx, pageKey(scope, v, limit, offset)).Bytes()
	if errors.Is(err, redis.Nil) {
		return v, false, nil
	}
	if err != nil {
		return v, false, fmt.Errorf("reading %s cache page: %w", scope, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return v, false, fmt.Errorf("decoding %s cache page: %w", scope, err)
	}
	return v, true, nil
}

// SetPage stores value under version, the one GetPage returned on the miss.
func (c *PageCache) SetPage(ctx context.Context, scope string, version int64, limit, offset int, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s cache page: %w", scope, err)
	}

	return c.rdb.Set(ctx, pageKey(scope, version, limit, offset), raw, c.ttl).Err()
}

// Invalidate bumps the scope version.
func (c *PageCache) Invalidate(ctx context.Context, scope string) error {
	return c.rdb.Incr(ctx, versionKey(scope)).Err()
}

package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keeps rendered view responses in redis so repeated dashboard reads
// don't hit the warehouse on every refresh. Optional: a nil *Cache is a
// no-op, and cache errors degrade to a direct read.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

func (c *Cache) Key(mode, view string, limit int) string {
	return fmt.Sprintf("dash:%s:%s:%d", mode, view, limit)
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return raw, true
}

func (c *Cache) Set(ctx context.Context, key string, body []byte) {
	if c == nil {
		return
	}
	_ = c.rdb.Set(ctx, key, body, c.ttl).Err()
}

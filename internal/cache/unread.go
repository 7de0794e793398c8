package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

// UnreadCache keeps per-user unread inbox counts so the forum header can
// poll them cheaply. Values are invalidated on every send, read and
// recipient-side delete; a miss falls back to the store.
type UnreadCache struct{ R *redis.Client }

func key(owner string) string { return "pm:unread:" + owner }

func (c *UnreadCache) Get(ctx context.Context, owner string) (int64, error) {
	return c.R.Get(ctx, key(owner)).Int64()
}

func (c *UnreadCache) Set(ctx context.Context, owner string, n int64) error {
	return c.R.Set(ctx, key(owner), n, time.Hour).Err()
}

func (c *UnreadCache) Invalidate(ctx context.Context, owner string) error {
	return c.R.Del(ctx, key(owner)).Err()
}

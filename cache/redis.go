package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const countTTL = 15 * time.Minute

type redisCache struct {
	client *redis.Client
}

func NewRedis(addr string) CountCache {
	return &redisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func countKey(sessionID string) string {
	return "cart_count:" + sessionID
}

func (c *redisCache) GetCount(ctx context.Context, sessionID string) (int, error) {
	n, err := c.client.Get(ctx, countKey(sessionID)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrCacheMiss
		}
		return 0, fmt.Errorf("cache get: %w", err)
	}
	return n, nil
}

func (c *redisCache) SetCount(ctx context.Context, sessionID string, count int) error {
	if err := c.client.Set(ctx, countKey(sessionID), count, countTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *redisCache) Invalidate(ctx context.Context, sessionID string) error {
	if err := c.client.Del(ctx, countKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

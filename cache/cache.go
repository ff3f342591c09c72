// Package cache holds the optional cart-count cache. The badge endpoints are
// hit on every page load, so counts are cached per session and invalidated on
// every cart mutation.
package cache

import (
	"context"
	"errors"
)

var ErrCacheMiss = errors.New("cache miss")

type CountCache interface {
	GetCount(ctx context.Context, sessionID string) (int, error)
	SetCount(ctx context.Context, sessionID string, count int) error
	Invalidate(ctx context.Context, sessionID string) error
}

// noopCache is used when no Redis address is configured; every read misses.
type noopCache struct{}

func NewNoop() CountCache { return noopCache{} }

func (noopCache) GetCount(context.Context, string) (int, error) { return 0, ErrCacheMiss }
func (noopCache) SetCount(context.Context, string, int) error   { return nil }
func (noopCache) Invalidate(context.Context, string) error      { return nil }

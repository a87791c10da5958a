package routes

import (
	"context"
	"fmt"
	"time"

	"github.com/zjrosen/switchboard/internal/cachemanager"
)

// Cached decorates any Calculator with a TTL cache. It is itself a
// conforming Calculator, so it binds into a planner like any other variant;
// caching lives here, never in the dispatch layer.
type Cached struct {
	inner Calculator
	cache cachemanager.CacheManager[string, Route]
	ttl   time.Duration
}

// NewCached wraps a calculator with an in-memory cache.
func NewCached(inner Calculator, ttl time.Duration) *Cached {
	return &Cached{
		inner: inner,
		cache: cachemanager.NewInMemoryCacheManager[string, Route]("routes", ttl, cachemanager.DefaultCleanupInterval),
		ttl:   ttl,
	}
}

// Calculate serves from the cache when it can, otherwise forwards to the
// wrapped calculator and remembers the result. Errors are never cached.
func (c *Cached) Calculate(ctx context.Context, start, end string) (Route, error) {
	key := fmt.Sprintf("%T|%s|%s", c.inner, start, end)

	if route, ok := c.cache.Get(ctx, key); ok {
		return route, nil
	}

	route, err := c.inner.Calculate(ctx, start, end)
	if err != nil {
		return route, err
	}

	c.cache.Set(ctx, key, route, c.ttl)
	return route, nil
}

// typeName renders a variant's concrete type for log fields.
func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}

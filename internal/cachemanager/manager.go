// Package cachemanager provides a small generic TTL cache used by caching
// variants. The dispatch layer itself never caches; decoration is a variant
// concern.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager stores values of type V under string-like keys with a TTL.
type CacheManager[K ~string, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K)
	Flush(ctx context.Context)
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"jippymart/internal/metrics"
)

// DefaultTTL is the lifetime of catalog and settings responses.
const DefaultTTL = 24 * time.Hour

// Cache namespaces keys with the configured prefix and never lets a store
// failure fail the request: read errors count as misses and write errors
// are only logged.
type Cache struct {
	store  Store
	prefix string
}

func New(store Store, prefix string) *Cache {
	return &Cache{store: store, prefix: prefix}
}

func (c *Cache) Driver() string { return c.store.Driver() }

func (c *Cache) Prefix() string { return c.prefix }

// Get returns the cached bytes and whether they were found.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := c.store.Get(ctx, c.prefix+key)
	switch {
	case err == nil:
		metrics.CacheLookups.WithLabelValues(c.Driver(), "hit").Inc()
		return value, true
	case errors.Is(err, ErrMiss):
		metrics.CacheLookups.WithLabelValues(c.Driver(), "miss").Inc()
	default:
		metrics.CacheLookups.WithLabelValues(c.Driver(), "error").Inc()
		log.Warn().Err(err).Str("key", key).Str("driver", c.Driver()).Msg("Cache read failed")
	}
	return nil, false
}

func (c *Cache) Put(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.store.Put(ctx, c.prefix+key, value, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Str("driver", c.Driver()).Msg("Cache write failed")
	}
}

func (c *Cache) Forget(ctx context.Context, key string) (bool, error) {
	ok, err := c.store.Forget(ctx, c.prefix+key)
	if ok {
		metrics.CacheInvalidations.WithLabelValues(c.Driver(), "forget").Inc()
	}
	return ok, err
}

func (c *Cache) FlushByPrefix(ctx context.Context, prefix string) (int, error) {
	n, err := c.store.FlushByPrefix(ctx, c.prefix+prefix)
	if n > 0 {
		metrics.CacheInvalidations.WithLabelValues(c.Driver(), "prefix").Add(float64(n))
	}
	return n, err
}

func (c *Cache) Flush(ctx context.Context) error {
	return c.store.Flush(ctx)
}

// Remember returns the cached JSON for key, or builds, encodes and stores it.
// With refresh set the cached copy is ignored but the fresh result is still
// written back. The returned bytes are exactly what is (or was) stored.
func (c *Cache) Remember(ctx context.Context, key string, ttl time.Duration, refresh bool, build func(ctx context.Context) (any, error)) ([]byte, error) {
	if refresh {
		metrics.CacheLookups.WithLabelValues(c.Driver(), "bypass").Inc()
	} else if cached, ok := c.Get(ctx, key); ok {
		return cached, nil
	}

	value, err := build(ctx)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	c.Put(ctx, key, body, ttl)
	return body, nil
}

// RememberValue is Remember for callers that need the decoded value.
func RememberValue[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, refresh bool, build func(ctx context.Context) (T, error)) (T, error) {
	var out T
	body, err := c.Remember(ctx, key, ttl, refresh, func(ctx context.Context) (any, error) {
		return build(ctx)
	})
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Discarding undecodable cache entry")
		fresh, err := build(ctx)
		if err != nil {
			return out, err
		}
		return fresh, nil
	}
	return out, nil
}

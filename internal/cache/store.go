package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Store.Get when the key is absent or expired.
var ErrMiss = errors.New("cache: miss")

// Store is the port every cache backend implements. Keys passed to a Store
// are already namespaced by the caller.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Forget removes one key and reports whether it existed.
	Forget(ctx context.Context, key string) (bool, error)
	// FlushByPrefix removes every key starting with prefix and returns how many
	// entries were removed.
	FlushByPrefix(ctx context.Context, prefix string) (int, error)
	Flush(ctx context.Context) error
	Driver() string
}

const (
	DriverRedis    = "redis"
	DriverDatabase = "database"
	DriverFile     = "file"
	DriverMemory   = "memory"
)

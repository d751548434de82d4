package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Options selects and configures the backing store.
type Options struct {
	Driver   string
	RedisURL string
	Path     string
}

// Backend is the store chosen at startup plus the resources it owns.
type Backend struct {
	Store Store
	redis *redis.Client
}

// StartJanitor prunes expired entries in the background for stores that
// have no native expiry.
func (b *Backend) StartJanitor(ctx context.Context, interval time.Duration) {
	if j, ok := b.Store.(interface {
		StartJanitor(context.Context, time.Duration)
	}); ok {
		j.StartJanitor(ctx, interval)
	}
}

// Close releases the Redis connection when one was opened.
func (b *Backend) Close() error {
	if b.redis != nil {
		return b.redis.Close()
	}
	return nil
}

// Open picks the configured store and degrades when it is unavailable:
// redis falls back to the database table, the database table falls back to
// files, and files fall back to process memory.
func Open(ctx context.Context, opts Options, db *gorm.DB) *Backend {
	driver := opts.Driver

	if driver == DriverRedis {
		client, err := NewRedisClient(ctx, opts.RedisURL)
		if err == nil {
			log.Info().Str("driver", DriverRedis).Msg("Cache store ready")
			return &Backend{Store: NewRedisStore(client), redis: client}
		}
		log.Warn().Err(err).Msg("Redis unavailable, falling back to database cache")
		driver = DriverDatabase
	}

	if driver == DriverDatabase {
		if db != nil {
			store := NewDatabaseStore(db)
			err := store.EnsureTable(ctx)
			if err == nil {
				log.Info().Str("driver", DriverDatabase).Msg("Cache store ready")
				return &Backend{Store: store}
			}
			log.Warn().Err(err).Msg("Database cache table unusable, falling back to file cache")
		}
		driver = DriverFile
	}

	if driver == DriverFile {
		store, err := NewFileStore(opts.Path)
		if err == nil {
			log.Info().Str("driver", DriverFile).Str("path", opts.Path).Msg("Cache store ready")
			return &Backend{Store: store}
		}
		log.Warn().Err(err).Msg("File cache unavailable, falling back to memory cache")
	}

	log.Info().Str("driver", DriverMemory).Msg("Cache store ready")
	return &Backend{Store: NewMemoryStore()}
}

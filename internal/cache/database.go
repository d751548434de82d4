package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is a row of the cache table shared with the legacy admin panel.
type Entry struct {
	Key        string `gorm:"column:key;primaryKey;size:255"`
	Value      string `gorm:"column:value;size:16777215"`
	Expiration int64  `gorm:"column:expiration;index"`
}

func (Entry) TableName() string { return "cache" }

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// DatabaseStore keeps entries in the relational cache table.
type DatabaseStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db, now: time.Now}
}

// EnsureTable creates the cache table when it is missing.
func (d *DatabaseStore) EnsureTable(ctx context.Context) error {
	return d.db.WithContext(ctx).AutoMigrate(&Entry{})
}

func (d *DatabaseStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry Entry
	err := d.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: "key"}, Value: key}).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	if entry.Expiration > 0 && entry.Expiration <= d.now().Unix() {
		return nil, ErrMiss
	}
	return []byte(entry.Value), nil
}

func (d *DatabaseStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	entry := Entry{Key: key, Value: string(value)}
	if ttl > 0 {
		entry.Expiration = d.now().Add(ttl).Unix()
	}
	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "expiration"}),
		}).
		Create(&entry).Error
}

func (d *DatabaseStore) Forget(ctx context.Context, key string) (bool, error) {
	res := d.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: "key"}, Value: key}).
		Delete(&Entry{})
	return res.RowsAffected > 0, res.Error
}

func (d *DatabaseStore) FlushByPrefix(ctx context.Context, prefix string) (int, error) {
	res := d.db.WithContext(ctx).
		Where(clause.Expr{
			SQL:  "? LIKE ? ESCAPE '!'",
			Vars: []any{clause.Column{Name: "key"}, likeEscaper.Replace(prefix) + "%"},
		}).
		Delete(&Entry{})
	return int(res.RowsAffected), res.Error
}

func (d *DatabaseStore) Flush(ctx context.Context) error {
	return d.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&Entry{}).Error
}

func (d *DatabaseStore) Driver() string { return DriverDatabase }

// Prune removes expired rows and returns how many were deleted.
func (d *DatabaseStore) Prune(ctx context.Context) (int64, error) {
	res := d.db.WithContext(ctx).
		Where(clause.Gt{Column: clause.Column{Name: "expiration"}, Value: 0}).
		Where(clause.Lte{Column: clause.Column{Name: "expiration"}, Value: d.now().Unix()}).
		Delete(&Entry{})
	return res.RowsAffected, res.Error
}

// StartJanitor prunes expired rows every interval until ctx is cancelled.
func (d *DatabaseStore) StartJanitor(ctx context.Context, interval time.Duration) {
	runJanitor(ctx, interval, DriverDatabase, d.Prune)
}

func runJanitor(ctx context.Context, interval time.Duration, driver string, prune func(context.Context) (int64, error)) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := prune(ctx)
				if err != nil {
					log.Warn().Err(err).Str("driver", driver).Msg("Cache prune failed")
					continue
				}
				if n > 0 {
					log.Debug().Int64("removed", n).Str("driver", driver).Msg("Pruned expired cache entries")
				}
			}
		}
	}()
}

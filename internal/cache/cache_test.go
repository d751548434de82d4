package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newStores(t *testing.T) map[string]Store {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	files, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	return map[string]Store{
		DriverMemory: NewMemoryStore(),
		DriverFile:   files,
		DriverRedis:  NewRedisStore(client),
	}
}

func TestStoreContract(t *testing.T) {
	ctx := context.Background()

	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrMiss)

			body := []byte(`{"success":true,"data":[1,2,3]}` + "\n" + `{"second":"line"}`)
			require.NoError(t, store.Put(ctx, "product_feed_vendor_v1_filters_a", body, time.Hour))
			require.NoError(t, store.Put(ctx, "product_feed_vendor_v1_filters_b", []byte(`{}`), time.Hour))
			require.NoError(t, store.Put(ctx, "product_feed_vendor_v2_filters_a", []byte(`{}`), time.Hour))
			require.NoError(t, store.Put(ctx, "categories_home_v1", []byte(`[]`), 0))

			got, err := store.Get(ctx, "product_feed_vendor_v1_filters_a")
			require.NoError(t, err)
			assert.Equal(t, body, got)

			removed, err := store.FlushByPrefix(ctx, "product_feed_vendor_v1_")
			require.NoError(t, err)
			assert.Equal(t, 2, removed)

			_, err = store.Get(ctx, "product_feed_vendor_v1_filters_b")
			assert.ErrorIs(t, err, ErrMiss)
			_, err = store.Get(ctx, "product_feed_vendor_v2_filters_a")
			assert.NoError(t, err)

			existed, err := store.Forget(ctx, "categories_home_v1")
			require.NoError(t, err)
			assert.True(t, existed)
			existed, err = store.Forget(ctx, "categories_home_v1")
			require.NoError(t, err)
			assert.False(t, existed)

			require.NoError(t, store.Flush(ctx))
			_, err = store.Get(ctx, "product_feed_vendor_v2_filters_a")
			assert.ErrorIs(t, err, ErrMiss)
		})
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	c := &clock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := NewMemoryStore()
	store.now = c.Now

	require.NoError(t, store.Put(ctx, "k", []byte("v"), time.Minute))
	_, err := store.Get(ctx, "k")
	require.NoError(t, err)

	c.now = c.now.Add(time.Minute)
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)

	n, err := store.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestFileStoreExpiry(t *testing.T) {
	ctx := context.Background()
	c := &clock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	store.now = c.Now

	require.NoError(t, store.Put(ctx, "nearest_restaurants_z1_abc", []byte(`{"count":0}`), time.Hour))
	require.NoError(t, store.Put(ctx, "forever", []byte(`1`), 0))

	c.now = c.now.Add(2 * time.Hour)
	_, err = store.Get(ctx, "nearest_restaurants_z1_abc")
	assert.ErrorIs(t, err, ErrMiss)

	got, err := store.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, []byte(`1`), got)
}

func TestCacheRemember(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	c := New(store, "jm_")

	calls := 0
	build := func(context.Context) (any, error) {
		calls++
		return map[string]any{"success": true, "calls": calls}, nil
	}

	first, err := c.Remember(ctx, "categories_all_v1", time.Hour, false, build)
	require.NoError(t, err)
	second, err := c.Remember(ctx, "categories_all_v1", time.Hour, false, build)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second, "cached body must be byte identical")

	raw, err := store.Get(ctx, "jm_categories_all_v1")
	require.NoError(t, err, "keys are stored under the prefix")
	assert.Equal(t, first, raw)

	refreshed, err := c.Remember(ctx, "categories_all_v1", time.Hour, true, build)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.JSONEq(t, `{"success":true,"calls":2}`, string(refreshed))

	// refresh writes back
	again, err := c.Remember(ctx, "categories_all_v1", time.Hour, false, build)
	require.NoError(t, err)
	assert.Equal(t, refreshed, again)
	assert.Equal(t, 2, calls)
}

func TestCacheRememberAfterExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	c := New(store, "")

	calls := 0
	build := func(context.Context) (any, error) {
		calls++
		return calls, nil
	}

	_, err := c.Remember(ctx, "k", time.Minute, false, build)
	require.NoError(t, err)
	now = now.Add(2 * time.Minute)
	body, err := c.Remember(ctx, "k", time.Minute, false, build)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, "2", string(body))
}

func TestCacheRememberDoesNotStoreErrors(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStore(), "")
	boom := errors.New("db down")

	_, err := c.Remember(ctx, "k", time.Minute, false, func(context.Context) (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

type failingStore struct{ MemoryStore }

func (*failingStore) Get(context.Context, string) ([]byte, error) { return nil, errors.New("conn refused") }
func (*failingStore) Put(context.Context, string, []byte, time.Duration) error {
	return errors.New("conn refused")
}

func TestCacheFailsOpen(t *testing.T) {
	c := New(&failingStore{}, "")
	body, err := c.Remember(context.Background(), "k", time.Minute, false, func(context.Context) (any, error) {
		return []string{"fresh"}, nil
	})
	require.NoError(t, err)
	assert.JSONEq(t, `["fresh"]`, string(body))
}

func TestRememberValue(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStore(), "")

	type settings struct {
		Radius string `json:"radius"`
	}
	calls := 0
	build := func(context.Context) (settings, error) {
		calls++
		return settings{Radius: "15"}, nil
	}

	for i := 0; i < 2; i++ {
		got, err := RememberValue(ctx, c, "s", time.Hour, false, build)
		require.NoError(t, err)
		assert.Equal(t, "15", got.Radius)
	}
	assert.Equal(t, 1, calls)
}

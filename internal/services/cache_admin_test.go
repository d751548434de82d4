package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jippymart/internal/cache"
)

type countingReloader struct{ loads int }

func (r *countingReloader) Load(context.Context) error {
	r.loads++
	return nil
}

func seed(t *testing.T, c *cache.Cache, keys ...string) {
	t.Helper()
	for _, k := range keys {
		c.Put(context.Background(), k, []byte(`{}`), time.Hour)
	}
}

func has(c *cache.Cache, key string) bool {
	_, ok := c.Get(context.Background(), key)
	return ok
}

func TestFlushProductsOfOneVendor(t *testing.T) {
	c := newTestCache()
	veg := true
	seed(t, c,
		cache.ProductFeedKey("v1", cache.FeedFilters{}),
		cache.ProductFeedKey("v1", cache.FeedFilters{IsVeg: &veg}),
		cache.VendorProductsKey("v1"),
		cache.ProductFeedKey("v2", cache.FeedFilters{}),
	)
	svc := NewCacheAdminService(c, nil)

	res := svc.FlushProducts(context.Background(), "v1", false)

	assert.Equal(t, "Product feed cache cleared for vendor: v1", res.Message)
	assert.Equal(t, 3, *res.ClearedCount)
	assert.Equal(t, "v1", res.VendorID)
	assert.True(t, has(c, cache.ProductFeedKey("v2", cache.FeedFilters{})))

	res = svc.FlushProducts(context.Background(), "v1", false)
	assert.Equal(t, "No cache entries found to clear", res.Message)
	assert.Equal(t, 0, *res.ClearedCount)
}

func TestFlushAllProducts(t *testing.T) {
	c := newTestCache()
	seed(t, c, cache.ProductFeedKey("v2", cache.FeedFilters{}), cache.VendorProductsKey("v3"), cache.CategoriesAllKey)
	svc := NewCacheAdminService(c, nil)

	res := svc.FlushProducts(context.Background(), "", false)

	assert.Equal(t, "All product cache cleared successfully", res.Message)
	assert.Equal(t, FlushAll, *res.ClearedCount)
	assert.Equal(t, "all", res.VendorID)
	assert.False(t, has(c, cache.VendorProductsKey("v3")))
	assert.True(t, has(c, cache.CategoriesAllKey))
}

func TestFlushRestaurantsOfOneZone(t *testing.T) {
	c := newTestCache()
	inZone := cache.NearestRestaurantsKey(cache.NearestQuery{ZoneID: "z1", Latitude: 1, Longitude: 2, Filter: "distance"})
	otherZone := cache.NearestRestaurantsKey(cache.NearestQuery{ZoneID: "z2", Latitude: 1, Longitude: 2, Filter: "distance"})
	seed(t, c, inZone, otherZone)
	svc := NewCacheAdminService(c, nil)

	res := svc.FlushRestaurants(context.Background(), "z1", false)
	assert.Equal(t, "Restaurant cache cleared for zone: z1", res.Message)
	assert.Equal(t, 1, *res.ClearedCount)
	assert.True(t, has(c, otherZone))

	res = svc.FlushRestaurants(context.Background(), "", true)
	assert.Equal(t, "All restaurant cache cleared successfully", res.Message)
	assert.Equal(t, "all", res.ZoneID)
	assert.False(t, has(c, otherZone))
}

func TestFlushEverythingReloadsSettings(t *testing.T) {
	c := newTestCache()
	seed(t, c, cache.MobileSettingsKey, cache.CategoriesHomeKey)
	reloader := &countingReloader{}
	svc := NewCacheAdminService(c, reloader)

	res := svc.FlushEverything(context.Background())

	assert.Equal(t, "All cache cleared successfully", res.Message)
	assert.Equal(t, cache.DriverMemory, res.CacheDriver)
	assert.Contains(t, res.Cleared, "settings")
	assert.Equal(t, 1, reloader.loads)
	assert.False(t, has(c, cache.CategoriesHomeKey))
}

func TestFlushSettingsAndCategories(t *testing.T) {
	c := newTestCache()
	seed(t, c, cache.MobileSettingsKey, cache.DeliveryChargeSettingsKey, cache.CategoriesHomeKey)
	reloader := &countingReloader{}
	svc := NewCacheAdminService(c, reloader)
	ctx := context.Background()

	res := svc.FlushSettings(ctx)
	assert.Equal(t, "Settings cache cleared successfully (2 keys)", res.Message)
	assert.Equal(t, cache.SettingsKeys, res.ClearedKeys)
	assert.Equal(t, 1, reloader.loads)

	res = svc.FlushSettings(ctx)
	assert.Equal(t, "No settings cache entries found to clear", res.Message)

	res = svc.FlushCategories(ctx)
	assert.Equal(t, "Category cache cleared successfully (1 keys)", res.Message)
}

func TestFlushMenuItems(t *testing.T) {
	c := newTestCache()
	zone := "z1"
	top := cache.MenuItemsKey("top", &zone, nil)
	bottom := cache.MenuItemsKey("bottom", &zone, nil)
	seed(t, c, top, bottom)
	svc := NewCacheAdminService(c, nil)
	ctx := context.Background()

	res := svc.FlushMenuItems(ctx, "top", "z1", false)
	require.Equal(t, 1, *res.ClearedCount)
	assert.Equal(t, "top", res.Position)
	assert.Equal(t, "z1", res.ZoneID)
	assert.True(t, has(c, bottom))

	res = svc.FlushMenuItems(ctx, "", "", false)
	assert.Equal(t, "Menu items cache cleared successfully (1 keys)", res.Message)
	assert.Equal(t, "all", res.Position)
	assert.Equal(t, "all", res.ZoneID)
	assert.False(t, has(c, bottom))
}

func TestCacheStats(t *testing.T) {
	stats := NewCacheAdminService(newTestCache(), nil).Stats()

	assert.Equal(t, CacheStats{CacheDriver: "memory", CachePrefix: "test_", Note: "Cache statistics may vary by driver"}, stats)
}

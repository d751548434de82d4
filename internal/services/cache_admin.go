package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"jippymart/internal/cache"
)

// FlushAll is the cleared count reported when a whole namespace was dropped.
const FlushAll = -1

// FlushResult is the body of the cache control endpoints. Fields that do not
// apply to an endpoint are left out.
type FlushResult struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	Note         string   `json:"note,omitempty"`
	CacheDriver  string   `json:"cache_driver,omitempty"`
	ClearedCount *int     `json:"cleared_count,omitempty"`
	ClearedKeys  []string `json:"cleared_keys,omitempty"`
	Cleared      []string `json:"cleared,omitempty"`
	VendorID     string   `json:"vendor_id,omitempty"`
	ZoneID       string   `json:"zone_id,omitempty"`
	Position     string   `json:"position,omitempty"`
}

// SettingsReloader refreshes the settings snapshot after its cache is cleared.
type SettingsReloader interface {
	Load(ctx context.Context) error
}

type CacheAdminService struct {
	cache    *cache.Cache
	settings SettingsReloader
}

func NewCacheAdminService(c *cache.Cache, settings SettingsReloader) *CacheAdminService {
	return &CacheAdminService{cache: c, settings: settings}
}

func intPtr(n int) *int { return &n }

func (s *CacheAdminService) expireNaturally(what string) FlushResult {
	return FlushResult{
		Success:     true,
		Message:     what + " cache will expire naturally (24 hours). Use ?refresh=true in API calls for immediate refresh.",
		Note:        "For immediate refresh, use ?refresh=true parameter in " + what + " API calls",
		CacheDriver: s.cache.Driver(),
	}
}

// FlushProducts drops the feed and product list entries of one vendor, or of
// every vendor when vendorID is empty or all is set.
func (s *CacheAdminService) FlushProducts(ctx context.Context, vendorID string, all bool) FlushResult {
	if all || vendorID == "" {
		for _, prefix := range []string{cache.ProductFeedPrefix, cache.VendorProductsPrefix} {
			if _, err := s.cache.FlushByPrefix(ctx, prefix); err != nil {
				log.Warn().Err(err).Str("prefix", prefix).Msg("Product cache flush failed")
				return s.expireNaturally("Product feed")
			}
		}
		log.Info().Str("cache_driver", s.cache.Driver()).Msg("All product cache flushed")
		return FlushResult{
			Success:      true,
			Message:      "All product cache cleared successfully",
			ClearedCount: intPtr(FlushAll),
			VendorID:     "all",
		}
	}

	cleared, err := s.cache.FlushByPrefix(ctx, cache.ProductFeedVendorPrefix(vendorID))
	if err != nil {
		log.Warn().Err(err).Str("vendor_id", vendorID).Msg("Product feed cache flush failed")
	}
	if ok, err := s.cache.Forget(ctx, cache.VendorProductsKey(vendorID)); err != nil {
		log.Warn().Err(err).Str("vendor_id", vendorID).Msg("Failed to delete vendor products cache")
	} else if ok {
		cleared++
	}

	msg := "No cache entries found to clear"
	if cleared > 0 {
		msg = "Product feed cache cleared for vendor: " + vendorID
	}
	return FlushResult{Success: true, Message: msg, ClearedCount: intPtr(cleared), VendorID: vendorID}
}

// FlushRestaurants drops the nearest restaurant entries of one zone, or of
// every zone.
func (s *CacheAdminService) FlushRestaurants(ctx context.Context, zoneID string, all bool) FlushResult {
	if all || zoneID == "" {
		if _, err := s.cache.FlushByPrefix(ctx, cache.NearestRestaurantsPrefix); err != nil {
			log.Warn().Err(err).Msg("Restaurant cache flush failed")
			return s.expireNaturally("Restaurant")
		}
		log.Info().Str("cache_driver", s.cache.Driver()).Msg("All restaurant cache flushed")
		return FlushResult{
			Success:      true,
			Message:      "All restaurant cache cleared successfully",
			ClearedCount: intPtr(FlushAll),
			ZoneID:       "all",
		}
	}

	cleared, err := s.cache.FlushByPrefix(ctx, cache.NearestRestaurantsZonePrefix(zoneID))
	if err != nil {
		log.Warn().Err(err).Str("zone_id", zoneID).Msg("Zone restaurant cache flush failed")
	}
	msg := "No cache entries found to clear"
	if cleared > 0 {
		msg = "Restaurant cache cleared for zone: " + zoneID
	}
	return FlushResult{Success: true, Message: msg, ClearedCount: intPtr(cleared), ZoneID: zoneID}
}

// FlushEverything empties the store and reloads the settings snapshot.
func (s *CacheAdminService) FlushEverything(ctx context.Context) FlushResult {
	driver := s.cache.Driver()
	if err := s.cache.Flush(ctx); err != nil {
		log.Warn().Err(err).Str("cache_driver", driver).Msg("Cache flush failed")
		return FlushResult{
			Success:     true,
			Message:     "Cache flush attempted. For immediate refresh, use ?refresh=true in API calls.",
			Note:        "Cache will expire naturally after 24 hours. Use ?refresh=true parameter in API calls for immediate refresh.",
			CacheDriver: driver,
		}
	}
	log.Info().Str("cache_driver", driver).Msg("All cache flushed successfully")
	s.reloadSettings(ctx)

	return FlushResult{
		Success:     true,
		Message:     "All cache cleared successfully",
		Cleared:     []string{"products", "restaurants", "settings", "categories", "menu_items", "all_other_cache"},
		CacheDriver: driver,
	}
}

func (s *CacheAdminService) forgetKeys(ctx context.Context, keys []string) int {
	cleared := 0
	for _, key := range keys {
		ok, err := s.cache.Forget(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Failed to forget cache key")
			continue
		}
		if ok {
			cleared++
		}
	}
	return cleared
}

// FlushSettings forgets the settings responses and reloads the snapshot.
func (s *CacheAdminService) FlushSettings(ctx context.Context) FlushResult {
	cleared := s.forgetKeys(ctx, cache.SettingsKeys)
	s.reloadSettings(ctx)

	msg := "No settings cache entries found to clear"
	if cleared > 0 {
		msg = fmt.Sprintf("Settings cache cleared successfully (%d keys)", cleared)
	}
	return FlushResult{Success: true, Message: msg, ClearedCount: intPtr(cleared), ClearedKeys: cache.SettingsKeys}
}

func (s *CacheAdminService) FlushCategories(ctx context.Context) FlushResult {
	cleared := s.forgetKeys(ctx, cache.CategoryKeys)
	msg := "No category cache entries found to clear"
	if cleared > 0 {
		msg = fmt.Sprintf("Category cache cleared successfully (%d keys)", cleared)
	}
	return FlushResult{Success: true, Message: msg, ClearedCount: intPtr(cleared), ClearedKeys: cache.CategoryKeys}
}

// FlushMenuItems drops every banner entry, or the single entry of a
// position and zone.
func (s *CacheAdminService) FlushMenuItems(ctx context.Context, position, zoneID string, all bool) FlushResult {
	if position == "" {
		position = "all"
	}

	cleared := 0
	if all || (position == "all" && zoneID == "") {
		n, err := s.cache.FlushByPrefix(ctx, cache.MenuItemsPrefix)
		if err != nil {
			log.Error().Err(err).Msg("Error clearing menu items cache")
		}
		cleared = n
	} else {
		ok, err := s.cache.Forget(ctx, cache.MenuItemsKey(position, &zoneID, nil))
		if err != nil {
			log.Warn().Err(err).Str("position", position).Msg("Failed to forget menu items cache")
		}
		if ok {
			cleared = 1
		}
	}

	msg := "No menu items cache entries found to clear"
	if cleared > 0 {
		msg = fmt.Sprintf("Menu items cache cleared successfully (%d keys)", cleared)
	}
	zone := zoneID
	if zone == "" {
		zone = "all"
	}
	return FlushResult{Success: true, Message: msg, ClearedCount: intPtr(cleared), Position: position, ZoneID: zone}
}

// CacheStats describes the active store.
type CacheStats struct {
	CacheDriver string `json:"cache_driver"`
	CachePrefix string `json:"cache_prefix"`
	Note        string `json:"note"`
}

func (s *CacheAdminService) Stats() CacheStats {
	return CacheStats{
		CacheDriver: s.cache.Driver(),
		CachePrefix: s.cache.Prefix(),
		Note:        "Cache statistics may vary by driver",
	}
}

func (s *CacheAdminService) reloadSettings(ctx context.Context) {
	if s.settings == nil {
		return
	}
	if err := s.settings.Load(ctx); err != nil {
		log.Warn().Err(err).Msg("Settings reload after cache flush failed")
	}
}

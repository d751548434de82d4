package cache

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"math"
	"strings"
)

// Fixed keys and key namespaces of the response cache.
const (
	MobileSettingsKey         = "mobile_settings_v1"
	DeliveryChargeSettingsKey = "delivery_charge_settings_v1"
	CategoriesHomeKey         = "categories_home_v1"
	CategoriesAllKey          = "categories_all_v1"

	NearestRestaurantsPrefix = "nearest_restaurants_"
	ProductFeedPrefix        = "product_feed_"
	VendorProductsPrefix     = "vendor_products_v1_"
	MenuItemsPrefix          = "menu_items_"
)

// SettingsKeys and CategoryKeys are the fixed keys cleared together.
var (
	SettingsKeys = []string{MobileSettingsKey, DeliveryChargeSettingsKey}
	CategoryKeys = []string{CategoriesHomeKey, CategoriesAllKey}
)

func hashOf(v any) string {
	// the payloads below are plain maps and slices, Marshal cannot fail
	b, _ := json.Marshal(v)
	sum := md5.Sum(b)
	return hex.EncodeToString(sum[:])
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// orderedParams marshals as a JSON object with keys in insertion order.
type orderedParams []param

type param struct {
	key   string
	value any
}

func (o orderedParams) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range o {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(p.key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(p.value)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// NearestQuery holds the parameters that shape a nearest restaurants response.
type NearestQuery struct {
	ZoneID    string
	Latitude  float64
	Longitude float64
	Radius    *float64
	IsDining  bool
	Filter    string
}

// NearestRestaurantsKey rounds coordinates to three decimals and the radius
// to one so nearby requests share an entry.
func NearestRestaurantsKey(q NearestQuery) string {
	var radius any = "null"
	if q.Radius != nil {
		radius = roundTo(*q.Radius, 1)
	}
	params := orderedParams{
		{"zone_id", q.ZoneID},
		{"lat", roundTo(q.Latitude, 3)},
		{"lon", roundTo(q.Longitude, 3)},
		{"radius", radius},
		{"is_dining", q.IsDining},
		{"filter", q.Filter},
	}
	return NearestRestaurantsPrefix + q.ZoneID + "_" + hashOf(params)
}

// NearestRestaurantsZonePrefix is the namespace of every nearest entry of a zone.
func NearestRestaurantsZonePrefix(zoneID string) string {
	return NearestRestaurantsPrefix + zoneID + "_"
}

// FeedFilters are the normalized product feed filters. Nil means "not given".
type FeedFilters struct {
	Search    *string `json:"search"`
	IsVeg     *bool   `json:"is_veg"`
	IsNonVeg  *bool   `json:"is_nonveg"`
	OfferOnly *bool   `json:"offer_only"`
}

func ProductFeedKey(vendorID string, f FeedFilters) string {
	params := orderedParams{
		{"search", f.Search},
		{"is_veg", f.IsVeg},
		{"is_nonveg", f.IsNonVeg},
		{"offer_only", f.OfferOnly},
	}
	return ProductFeedVendorPrefix(vendorID) + "filters_" + hashOf(params)
}

// ProductFeedVendorPrefix is the namespace of every feed entry of a vendor.
func ProductFeedVendorPrefix(vendorID string) string {
	return ProductFeedPrefix + "vendor_" + vendorID + "_"
}

func VendorProductsKey(vendorID string) string {
	sum := md5.Sum([]byte(strings.TrimSpace(vendorID)))
	return VendorProductsPrefix + hex.EncodeToString(sum[:])
}

// MenuItemsKey keys banner lists. A missing zone is recorded as "all" and a
// missing position filter as null.
func MenuItemsKey(position string, zoneID, filterPosition *string) string {
	var zone any = "all"
	if zoneID != nil && *zoneID != "" {
		zone = *zoneID
	}
	var filter any
	if filterPosition != nil && *filterPosition != "" {
		filter = *filterPosition
	}
	params := orderedParams{
		{"position", position},
		{"zone_id", zone},
		{"filter_position", filter},
	}
	return MenuItemsPrefix + position + "_" + hashOf(params)
}

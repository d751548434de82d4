package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"jippymart/internal/cache"
	"jippymart/internal/geo"
	"jippymart/internal/hours"
	"jippymart/internal/repo"
	"jippymart/internal/subscription"
	"jippymart/pkg/models"
)

// Nearest restaurant sort orders.
const (
	FilterDistance = "distance"
	FilterRating   = "rating"
)

var AvailableFilters = []string{FilterDistance, FilterRating}

// VendorStore is the vendor persistence used by the restaurant endpoints.
type VendorStore interface {
	Nearby(ctx context.Context, f repo.NearbyFilter) ([]models.Vendor, error)
	FindByID(ctx context.Context, id string) (*models.Vendor, error)
	ByZone(ctx context.Context, zoneID string) ([]models.Vendor, error)
	Search(ctx context.Context, term, zoneID string) ([]models.Vendor, error)
	InCategory(ctx context.Context, categoryID string, box geo.Box) ([]models.Vendor, error)
}

type SubscriptionStore interface {
	LatestActive(ctx context.Context, vendorIDs []string, now time.Time) (map[string]models.SubscriptionHistory, error)
}

// Restaurant is a vendor as listed to customers. IsOpen is computed from the
// manual override and the working hours.
type Restaurant struct {
	ID                      string             `json:"id"`
	Title                   string             `json:"title"`
	ZoneID                  string             `json:"zoneId"`
	Latitude                float64            `json:"latitude"`
	Longitude               float64            `json:"longitude"`
	Distance                float64            `json:"distance"`
	VType                   string             `json:"vType"`
	IsActive                bool               `json:"isActive"`
	IsOpen                  bool               `json:"isOpen"`
	SubscriptionPlan        *subscription.Plan `json:"subscriptionPlan"`
	Author                  *string            `json:"author"`
	SubscriptionTotalOrders any                `json:"subscriptionTotalOrders"`
	SubscriptionExpiryDate  *string            `json:"subscriptionExpiryDate"`
	ReviewsCount            int64              `json:"reviewsCount"`
	ReviewsSum              float64            `json:"reviewsSum"`
	ReviewsAverage          float64            `json:"reviewsAverage"`
	WorkingHours            any                `json:"workingHours"`
	RestaurantCost          string             `json:"restaurantCost"`
	CreatedAt               string             `json:"createdAt"`
	Photo                   string             `json:"photo"`
	Location                string             `json:"location"`
	EnabledDiveInFuture     bool               `json:"enabledDiveInFuture"`
	Description             string             `json:"description"`
	Phonenumber             string             `json:"phonenumber"`
	AdminCommission         any                `json:"adminCommission"`
	SpecialDiscountEnable   bool               `json:"specialDiscountEnable"`
}

// Status returns the subscription state carried by the restaurant.
func (r Restaurant) Status() subscription.Status {
	return subscription.Status{
		Plan:        r.SubscriptionPlan,
		TotalOrders: r.SubscriptionTotalOrders,
		ExpiryDate:  r.SubscriptionExpiryDate,
	}
}

// NearestParams are the validated inputs of a nearest restaurants lookup.
type NearestParams struct {
	ZoneID    string
	Latitude  float64
	Longitude float64
	Radius    *float64
	IsDining  bool
	UserID    string
	Filter    string
	Refresh   bool
}

// NearestResult is the cached response body of a nearest lookup.
type NearestResult struct {
	Success          bool         `json:"success"`
	Filter           string       `json:"filter"`
	AvailableFilters []string     `json:"availableFilters"`
	Count            int          `json:"count"`
	OpenCount        int          `json:"openCount"`
	Data             []Restaurant `json:"data"`
}

// RestaurantList is the body of the zone and search listings.
type RestaurantList struct {
	Success   bool         `json:"success"`
	Data      []Restaurant `json:"data"`
	Count     int          `json:"count"`
	OpenCount int          `json:"openCount"`
}

type RestaurantService struct {
	vendors       VendorStore
	subscriptions SubscriptionStore
	cache         *cache.Cache
	hours         *hours.Evaluator
	now           func() time.Time
}

func NewRestaurantService(vendors VendorStore, subscriptions SubscriptionStore, c *cache.Cache, evaluator *hours.Evaluator) *RestaurantService {
	return &RestaurantService{
		vendors:       vendors,
		subscriptions: subscriptions,
		cache:         c,
		hours:         evaluator,
		now:           time.Now,
	}
}

// WithClock replaces the clock used for subscription expiry checks.
func (s *RestaurantService) WithClock(now func() time.Time) *RestaurantService {
	s.now = now
	return s
}

// Nearest lists the restaurants of a zone around a point. Results are cached
// for a day under a key derived from the rounded parameters.
func (s *RestaurantService) Nearest(ctx context.Context, p NearestParams) (NearestResult, error) {
	if p.Filter == "" {
		p.Filter = FilterDistance
	}
	key := cache.NearestRestaurantsKey(cache.NearestQuery{
		ZoneID:    p.ZoneID,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Radius:    p.Radius,
		IsDining:  p.IsDining,
		Filter:    p.Filter,
	})

	return cache.RememberValue(ctx, s.cache, key, cache.DefaultTTL, p.Refresh, func(ctx context.Context) (NearestResult, error) {
		return s.nearest(ctx, p)
	})
}

type rankedVendor struct {
	vendor   *models.Vendor
	distance float64
}

func (s *RestaurantService) nearest(ctx context.Context, p NearestParams) (NearestResult, error) {
	filter := repo.NearbyFilter{ZoneID: p.ZoneID, Dining: p.IsDining}
	if p.Radius != nil {
		box := geo.BoundingBox(p.Latitude, p.Longitude, *p.Radius)
		filter.Box = &box
	}

	vendors, err := s.vendors.Nearby(ctx, filter)
	if err != nil {
		return NearestResult{}, fmt.Errorf("failed to load nearby vendors: %w", err)
	}

	ranked := make([]rankedVendor, 0, len(vendors))
	for i := range vendors {
		v := &vendors[i]
		d := geo.DistanceKm(p.Latitude, p.Longitude, models.Float(v.Latitude), models.Float(v.Longitude))
		if p.Radius != nil && d > *p.Radius {
			continue
		}
		ranked = append(ranked, rankedVendor{vendor: v, distance: d})
	}

	if p.Filter == FilterRating {
		sort.SliceStable(ranked, func(i, j int) bool {
			ai, aj := reviewAverage(ranked[i].vendor), reviewAverage(ranked[j].vendor)
			if ai != aj {
				return ai > aj
			}
			return models.Float(ranked[i].vendor.ReviewsCount) > models.Float(ranked[j].vendor.ReviewsCount)
		})
	} else {
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].distance < ranked[j].distance })
	}

	subs, err := s.loadSubscriptions(ctx, vendors)
	if err != nil {
		return NearestResult{}, err
	}

	now := s.now()
	data := make([]Restaurant, 0, len(ranked))
	for _, rv := range ranked {
		r := s.format(rv.vendor, subs, &rv.distance)
		if !subscription.IsValid(r.Status(), now) {
			continue
		}
		data = append(data, r)
	}

	data = openFirst(data)
	log.Debug().
		Str("zone_id", p.ZoneID).
		Int("candidates", len(vendors)).
		Int("returned", len(data)).
		Msg("Nearest restaurants computed")

	return NearestResult{
		Success:          true,
		Filter:           p.Filter,
		AvailableFilters: AvailableFilters,
		Count:            len(data),
		OpenCount:        countOpen(data),
		Data:             data,
	}, nil
}

// Show returns one restaurant, ErrNotFound when it does not exist.
func (s *RestaurantService) Show(ctx context.Context, id string) (*Restaurant, error) {
	v, err := s.vendors.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendor %s: %w", id, err)
	}
	if v == nil {
		return nil, fmt.Errorf("restaurant %s: %w", id, ErrNotFound)
	}
	subs, err := s.loadSubscriptions(ctx, []models.Vendor{*v})
	if err != nil {
		return nil, err
	}
	r := s.format(v, subs, nil)
	return &r, nil
}

// ByZone lists every published vendor of a zone ordered by title.
func (s *RestaurantService) ByZone(ctx context.Context, zoneID string) (RestaurantList, error) {
	vendors, err := s.vendors.ByZone(ctx, zoneID)
	if err != nil {
		return RestaurantList{}, fmt.Errorf("failed to load vendors of zone %s: %w", zoneID, err)
	}
	return s.list(ctx, vendors, nil)
}

// SearchParams are the inputs of a restaurant text search. Coordinates are
// used only when both are given.
type SearchParams struct {
	Query     string
	ZoneID    string
	Latitude  *float64
	Longitude *float64
}

// Search matches published vendors by title, description or location. With
// coordinates the results are ordered by distance, vendors without a
// position last.
func (s *RestaurantService) Search(ctx context.Context, p SearchParams) (RestaurantList, error) {
	vendors, err := s.vendors.Search(ctx, p.Query, p.ZoneID)
	if err != nil {
		return RestaurantList{}, fmt.Errorf("failed to search vendors: %w", err)
	}
	if p.Latitude == nil || p.Longitude == nil {
		return s.list(ctx, vendors, nil)
	}

	distances := make(map[string]float64, len(vendors))
	for _, v := range vendors {
		if v.Latitude != nil && v.Longitude != nil {
			distances[v.ID] = geo.DistanceKm(*p.Latitude, *p.Longitude, *v.Latitude, *v.Longitude)
		}
	}
	sort.SliceStable(vendors, func(i, j int) bool {
		di, iok := distances[vendors[i].ID]
		dj, jok := distances[vendors[j].ID]
		if iok != jok {
			return iok
		}
		return di < dj
	})
	return s.list(ctx, vendors, distances)
}

// NearestInCategory lists up to 50 vendors of a category around a point,
// as full vendor documents with the computed actualIsOpen flag.
func (s *RestaurantService) NearestInCategory(ctx context.Context, categoryID string, lat, lon, radius float64, filter string) ([]map[string]any, error) {
	const limit = 50

	vendors, err := s.vendors.InCategory(ctx, categoryID, geo.BoundingBox(lat, lon, radius))
	if err != nil {
		return nil, fmt.Errorf("failed to load vendors of category %s: %w", categoryID, err)
	}

	ranked := make([]rankedVendor, 0, len(vendors))
	for i := range vendors {
		v := &vendors[i]
		d := geo.DistanceKm(lat, lon, models.Float(v.Latitude), models.Float(v.Longitude))
		if d <= radius {
			ranked = append(ranked, rankedVendor{vendor: v, distance: d})
		}
	}
	if filter == FilterRating {
		sort.SliceStable(ranked, func(i, j int) bool {
			return reviewAverage(ranked[i].vendor) > reviewAverage(ranked[j].vendor)
		})
	} else {
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].distance < ranked[j].distance })
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]map[string]any, 0, len(ranked))
	for _, rv := range ranked {
		doc := VendorDocument(rv.vendor)
		doc["distance"] = rv.distance
		doc["actualIsOpen"] = vendorIsOpen(s.hours, rv.vendor)
		out = append(out, doc)
	}
	return out, nil
}

func (s *RestaurantService) list(ctx context.Context, vendors []models.Vendor, distances map[string]float64) (RestaurantList, error) {
	subs, err := s.loadSubscriptions(ctx, vendors)
	if err != nil {
		return RestaurantList{}, err
	}
	data := make([]Restaurant, 0, len(vendors))
	for i := range vendors {
		var d *float64
		if dist, ok := distances[vendors[i].ID]; ok {
			d = &dist
		}
		data = append(data, s.format(&vendors[i], subs, d))
	}
	return RestaurantList{Success: true, Data: data, Count: len(data), OpenCount: countOpen(data)}, nil
}

func (s *RestaurantService) loadSubscriptions(ctx context.Context, vendors []models.Vendor) (map[string]subscription.Status, error) {
	ids := make([]string, len(vendors))
	for i, v := range vendors {
		ids[i] = v.ID
	}
	rows, err := s.subscriptions.LatestActive(ctx, ids, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}

	out := make(map[string]subscription.Status, len(rows))
	for id, row := range rows {
		if status, ok := subscriptionStatus(row); ok {
			out[id] = status
		}
	}
	return out, nil
}

// subscriptionStatus reads the plan stored on a history row. Rows whose plan
// is empty or not an object carry no subscription.
func subscriptionStatus(row models.SubscriptionHistory) (subscription.Status, bool) {
	plan, ok := models.DecodeJSON(row.SubscriptionPlan).(map[string]any)
	if !ok || len(plan) == 0 {
		return subscription.Status{}, false
	}

	var expiry any
	if row.ExpiryDate != nil {
		expiry = *row.ExpiryDate
	}
	id := ""
	if v, ok := plan["id"]; ok && v != nil {
		id = fmt.Sprint(v)
	}
	return subscription.Status{
		Plan:        &subscription.Plan{ID: id, ExpiryDay: plan["expiryDay"], ExpiryDate: expiry},
		TotalOrders: plan["orderLimit"],
		ExpiryDate:  row.ExpiryDate,
	}, true
}

func (s *RestaurantService) format(v *models.Vendor, subs map[string]subscription.Status, distance *float64) Restaurant {
	r := Restaurant{
		ID:                    v.ID,
		Title:                 models.Str(v.Title),
		ZoneID:                models.Str(v.ZoneID),
		Latitude:              models.Float(v.Latitude),
		Longitude:             models.Float(v.Longitude),
		VType:                 models.StrOr(v.VType, "restaurant"),
		IsActive:              v.Publish.Bool(true),
		IsOpen:                vendorIsOpen(s.hours, v),
		Author:                v.Author,
		ReviewsCount:          int64(models.Float(v.ReviewsCount)),
		ReviewsSum:            models.Float(v.ReviewsSum),
		ReviewsAverage:        math.Round(reviewAverage(v)*10) / 10,
		RestaurantCost:        restaurantCost(v),
		CreatedAt:             createdAt(v.CreatedAt, s.now()),
		Photo:                 models.Str(v.Photo),
		Location:              models.Str(v.Location),
		EnabledDiveInFuture:   v.EnabledDiveInFuture.Bool(false),
		Description:           models.Str(v.Description),
		Phonenumber:           models.Str(v.Phonenumber),
		AdminCommission:       adminCommission(v),
		SpecialDiscountEnable: v.SpecialDiscountEnable.Bool(false),
	}
	if distance != nil {
		r.Distance = geo.Round(*distance, 2)
	}
	if wh, ok := models.DecodeJSON(v.WorkingHours).([]any); ok {
		r.WorkingHours = wh
	}
	if status, ok := subs[v.ID]; ok {
		r.SubscriptionPlan = status.Plan
		r.SubscriptionTotalOrders = status.TotalOrders
		r.SubscriptionExpiryDate = status.ExpiryDate
	}
	return r
}

func reviewAverage(v *models.Vendor) float64 {
	count := models.Float(v.ReviewsCount)
	if count <= 0 {
		return 0
	}
	return models.Float(v.ReviewsSum) / count
}

func restaurantCost(v *models.Vendor) string {
	if v.RestaurantCost != nil {
		return *v.RestaurantCost
	}
	return models.StrOr(v.DeliveryCharge, "0")
}

func createdAt(s *string, now time.Time) string {
	if s != nil {
		return *s
	}
	return now.UTC().Format(time.RFC3339Nano)
}

func adminCommission(v *models.Vendor) any {
	if len(v.AdminCommission) == 0 {
		return 0
	}
	if decoded := models.DecodeJSON(v.AdminCommission); decoded != nil {
		return decoded
	}
	return 0
}

// openFirst moves closed restaurants after open ones, keeping the order
// within each group.
func openFirst(data []Restaurant) []Restaurant {
	sort.SliceStable(data, func(i, j int) bool { return data[i].IsOpen && !data[j].IsOpen })
	return data
}

func countOpen(data []Restaurant) int {
	n := 0
	for _, r := range data {
		if r.IsOpen {
			n++
		}
	}
	return n
}

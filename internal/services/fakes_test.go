package services

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"jippymart/internal/cache"
	"jippymart/internal/geo"
	"jippymart/internal/hours"
	"jippymart/internal/repo"
	"jippymart/pkg/models"
)

// Monday noon in Kolkata.
var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, hours.Kolkata)

func fixedClock() time.Time { return testNow }

const allDay = `[{"day":"Monday","timeslot":[{"from":"00:00","to":"23:59"}]}]`

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func newTestCache() *cache.Cache {
	return cache.New(cache.NewMemoryStore(), "test_")
}

func testEvaluator() *hours.Evaluator {
	return hours.NewEvaluator().WithClock(fixedClock)
}

type vendorOption func(*models.Vendor)

func closedByHand(v *models.Vendor) { v.IsOpen = models.NewFlag(false) }

func rated(sum, count float64) vendorOption {
	return func(v *models.Vendor) {
		v.ReviewsSum = &sum
		v.ReviewsCount = &count
	}
}

func newVendor(id string, lat, lon float64, opts ...vendorOption) models.Vendor {
	v := models.Vendor{
		ID:           id,
		Title:        strPtr("Vendor " + id),
		ZoneID:       strPtr("zone-1"),
		Latitude:     &lat,
		Longitude:    &lon,
		Publish:      models.NewFlag(true),
		IsOpen:       models.NewFlag(true),
		WorkingHours: datatypes.JSON(allDay),
	}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

type fakeVendors struct {
	vendors     []models.Vendor
	nearbyCalls int
	lastFilter  repo.NearbyFilter
}

func (f *fakeVendors) copyAll() []models.Vendor {
	out := make([]models.Vendor, len(f.vendors))
	copy(out, f.vendors)
	return out
}

func (f *fakeVendors) Nearby(_ context.Context, filter repo.NearbyFilter) ([]models.Vendor, error) {
	f.nearbyCalls++
	f.lastFilter = filter
	return f.copyAll(), nil
}

func (f *fakeVendors) FindByID(_ context.Context, id string) (*models.Vendor, error) {
	for i := range f.vendors {
		if f.vendors[i].ID == id {
			v := f.vendors[i]
			return &v, nil
		}
	}
	return nil, nil
}

func (f *fakeVendors) ByZone(_ context.Context, _ string) ([]models.Vendor, error) {
	return f.copyAll(), nil
}

func (f *fakeVendors) Search(_ context.Context, _, _ string) ([]models.Vendor, error) {
	return f.copyAll(), nil
}

func (f *fakeVendors) InCategory(_ context.Context, _ string, _ geo.Box) ([]models.Vendor, error) {
	return f.copyAll(), nil
}

func (f *fakeVendors) Titles(_ context.Context, ids []string) (map[string]string, error) {
	out := map[string]string{}
	for _, id := range ids {
		if v, _ := f.FindByID(context.Background(), id); v != nil {
			out[id] = v.VendorTitle()
		}
	}
	return out, nil
}

type fakeSubscriptions struct {
	rows map[string]models.SubscriptionHistory
}

func (f *fakeSubscriptions) LatestActive(_ context.Context, ids []string, _ time.Time) (map[string]models.SubscriptionHistory, error) {
	out := map[string]models.SubscriptionHistory{}
	for _, id := range ids {
		if row, ok := f.rows[id]; ok {
			out[id] = row
		}
	}
	return out, nil
}

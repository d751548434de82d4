package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jippymart/internal/repo"
	"jippymart/pkg/models"
)

type zoneVendors []models.Vendor

func (z zoneVendors) SearchZone(context.Context, string, string) ([]models.Vendor, error) {
	out := make([]models.Vendor, len(z))
	copy(out, z)
	return out, nil
}

type zoneProducts []models.Product

func (z zoneProducts) SearchZone(_ context.Context, _, _ string, offset, limit int) ([]models.Product, error) {
	from, to := pageBounds(len(z), offset, limit)
	return z[from:to], nil
}

type searchCategories []models.VendorCategory

func (c searchCategories) Search(_ context.Context, _ string, offset, limit int) ([]models.VendorCategory, error) {
	from, to := pageBounds(len(c), offset, limit)
	return c[from:to], nil
}

func TestUnifiedSearchSortsRestaurantsByDistance(t *testing.T) {
	nowhere := newVendor("nowhere", 0, 0)
	nowhere.Latitude = nil
	vendors := zoneVendors{
		nowhere,
		newVendor("far", 17.2, 78.0, closedByHand),
		newVendor("near", 17.01, 78.0),
	}
	products := zoneProducts{product("p1", "near", "c1", "10", "")}
	categories := searchCategories{{ID: "c1", Title: strPtr("Biryani"), Publish: models.NewFlag(1)}}
	svc := NewSearchService(vendors, products, categories, testEvaluator())

	res, err := svc.Unified(context.Background(), UnifiedQuery{
		Query: "bi", ZoneID: "zone-1", Latitude: floatPtr(17.0), Longitude: floatPtr(78.0), Limit: 20, Page: 1,
	})
	require.NoError(t, err)

	require.Len(t, res.Data.Restaurants, 3)
	assert.Equal(t, "near", res.Data.Restaurants[0].ID)
	assert.Equal(t, "far", res.Data.Restaurants[1].ID)
	assert.Equal(t, "nowhere", res.Data.Restaurants[2].ID)
	assert.Nil(t, res.Data.Restaurants[2].Distance)
	assert.Equal(t, 5, res.Data.TotalResults)
	assert.Equal(t, 2, res.Meta.OpenCount)
	assert.False(t, res.Data.Restaurants[1].IsOpen)
	assert.False(t, res.Meta.HasMore)
	assert.True(t, res.Data.Products[0].Veg)
	assert.True(t, res.Data.Categories[0].Publish)
}

func TestUnifiedSearchPagesRestaurants(t *testing.T) {
	vendors := zoneVendors{
		newVendor("a", 17.01, 78.0),
		newVendor("b", 17.02, 78.0),
		newVendor("c", 17.03, 78.0),
	}
	svc := NewSearchService(vendors, zoneProducts{}, searchCategories{}, testEvaluator())

	res, err := svc.Unified(context.Background(), UnifiedQuery{Query: "ab", ZoneID: "zone-1", Limit: 2, Page: 2})
	require.NoError(t, err)

	require.Len(t, res.Data.Restaurants, 1)
	assert.Equal(t, "c", res.Data.Restaurants[0].ID)
	assert.Equal(t, 2, res.Meta.Page)
}

func TestPageBounds(t *testing.T) {
	tests := []struct {
		n, offset, limit int
		from, to         int
	}{
		{10, 0, 3, 0, 3},
		{10, 9, 3, 9, 10},
		{10, 12, 3, 10, 10},
		{10, 0, 0, 0, 10},
	}
	for _, tt := range tests {
		from, to := pageBounds(tt.n, tt.offset, tt.limit)
		assert.Equal(t, tt.from, from)
		assert.Equal(t, tt.to, to)
	}
}

func TestMartIDVariants(t *testing.T) {
	tests := []struct {
		id   string
		want []string
	}{
		{"abc", []string{"abc", "mart_abc", "MART_abc"}},
		{"mart_abc", []string{"mart_abc", "abc", "MART_abc"}},
		{"MART_abc", []string{"MART_abc", "abc", "mart_abc"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MartIDVariants(tt.id), tt.id)
	}
}

type fakeMart struct {
	err        error
	categories []models.MartCategory
	items      []models.MartItem
	lastFilter repo.ItemFilter
}

func (f *fakeMart) SearchCategories(_ context.Context, _ string, offset, limit int) ([]models.MartCategory, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	from, to := pageBounds(len(f.categories), offset, limit)
	return f.categories[from:to], int64(len(f.categories)), nil
}

func (f *fakeMart) SearchItems(_ context.Context, filter repo.ItemFilter, offset, limit int) ([]models.MartItem, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	f.lastFilter = filter
	from, to := pageBounds(len(f.items), offset, limit)
	return f.items[from:to], int64(len(f.items)), nil
}

func (f *fakeMart) Featured(_ context.Context, _ string, limit int) ([]models.MartItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	_, to := pageBounds(len(f.items), 0, limit)
	return f.items[:to], nil
}

func (f *fakeMart) Ping(context.Context) error { return f.err }

type fakeMartVendors struct {
	marts    []models.Vendor
	lastIDs  []string
	fallback *models.Vendor
}

func (f *fakeMartVendors) FindMart(_ context.Context, ids []string) (*models.Vendor, error) {
	f.lastIDs = ids
	for _, id := range ids {
		for i := range f.marts {
			if f.marts[i].ID == id {
				return &f.marts[i], nil
			}
		}
	}
	return nil, nil
}

func (f *fakeMartVendors) DefaultMart(context.Context) (*models.Vendor, error) { return f.fallback, nil }

func (f *fakeMartVendors) MartsInZone(context.Context, string) ([]models.Vendor, error) {
	return f.marts, nil
}

func TestMartCategoriesFallBackOnError(t *testing.T) {
	svc := NewMartService(&fakeMart{err: errors.New("db down")}, &fakeMartVendors{})

	res := svc.SearchCategories(context.Background(), "", 1, 2)

	assert.True(t, res.Success)
	assert.True(t, res.Fallback)
	assert.Equal(t, "Categories retrieved with fallback", res.Message)
	assert.Len(t, res.Data, 2)
	assert.Nil(t, res.Pagination)
}

func TestMartCategoriesPaginate(t *testing.T) {
	mart := &fakeMart{categories: []models.MartCategory{{ID: "1"}, {ID: "2"}, {ID: "3"}}}
	svc := NewMartService(mart, &fakeMartVendors{}).WithClock(fixedClock)

	res := svc.SearchCategories(context.Background(), "veg", 1, 2)

	require.NotNil(t, res.Pagination)
	assert.True(t, res.Pagination.HasMore)
	assert.Equal(t, int64(3), res.Pagination.Total)
	assert.Equal(t, "veg", *res.SearchTerm)
	assert.Zero(t, *res.ResponseTimeMs)
}

func TestMartItemsSearch(t *testing.T) {
	mart := &fakeMart{items: []models.MartItem{{ID: "1"}, {ID: "2"}, {ID: "3"}}}
	svc := NewMartService(mart, &fakeMartVendors{})

	res, err := svc.SearchItems(context.Background(), MartSearchParams{
		Filter:  repo.ItemFilter{Search: strPtr("rice")},
		Filters: map[string]any{"search": "rice"},
		Page:    2,
		Limit:   2,
	})
	require.NoError(t, err)

	assert.Len(t, res.Data, 1)
	assert.Equal(t, 2, *res.Pagination.TotalPages)
	assert.False(t, res.Pagination.HasMore)
	require.NotNil(t, mart.lastFilter.Search)
	assert.Equal(t, "rice", *mart.lastFilter.Search)
	assert.Equal(t, "rice", res.FiltersApplied["search"])

	_, err = NewMartService(&fakeMart{err: errors.New("boom")}, &fakeMartVendors{}).
		SearchItems(context.Background(), MartSearchParams{Page: 1, Limit: 10})
	assert.Error(t, err)
}

func TestMartFeatured(t *testing.T) {
	mart := &fakeMart{items: []models.MartItem{{ID: "1"}, {ID: "2"}}}
	svc := NewMartService(mart, &fakeMartVendors{})

	res := svc.Featured(context.Background(), "trending", 1)
	assert.Equal(t, "Trending items retrieved successfully", res.Message)
	assert.Equal(t, 1, *res.Count)

	res = NewMartService(&fakeMart{err: errors.New("boom")}, &fakeMartVendors{}).Featured(context.Background(), "trending", 1)
	assert.True(t, res.Fallback)
	assert.Empty(t, res.Data)
}

func TestMartVendorAcceptsPrefixedIDs(t *testing.T) {
	mart := newVendor("mart_42", 17.0, 78.0)
	mart.VType = strPtr("mart")
	vendors := &fakeMartVendors{marts: []models.Vendor{mart}}
	svc := NewMartService(&fakeMart{}, vendors)

	doc, err := svc.Vendor(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "mart_42", doc["id"])
	assert.Contains(t, vendors.lastIDs, "mart_42")

	_, err = svc.Vendor(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.DefaultVendor(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

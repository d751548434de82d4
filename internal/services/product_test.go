package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jippymart/internal/cache"
	"jippymart/internal/repo"
	"jippymart/pkg/models"
)

type fakeProducts struct {
	products  []models.Product
	feedCalls int
}

func (f *fakeProducts) AvailableByVendor(_ context.Context, vendorID string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if models.Str(p.VendorID) == vendorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProducts) PageAvailable(_ context.Context, page, perPage int) ([]models.Product, int64, error) {
	start := (page - 1) * perPage
	if start > len(f.products) {
		start = len(f.products)
	}
	end := start + perPage
	if end > len(f.products) {
		end = len(f.products)
	}
	return f.products[start:end], int64(len(f.products)), nil
}

func (f *fakeProducts) Feed(ctx context.Context, vendorID string, _ repo.FeedFilter) ([]models.Product, error) {
	f.feedCalls++
	return f.AvailableByVendor(ctx, vendorID)
}

func (f *fakeProducts) FindByID(_ context.Context, id string) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

type fakePromotions struct {
	promotions []models.Promotion
	keys       []string
}

func (f *fakePromotions) ActiveForRestaurant(_ context.Context, keys []string, _ time.Time) ([]models.Promotion, error) {
	f.keys = keys
	return f.promotions, nil
}

func (f *fakePromotions) AvailableForProduct(_ context.Context, productID string) ([]models.Promotion, error) {
	var out []models.Promotion
	for _, p := range f.promotions {
		if models.Str(p.ProductID) == productID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCategories struct {
	categories []models.VendorCategory
	// unscopedOnly makes lookups restricted to restaurant keys find nothing
	unscopedOnly bool
	homeCalls    int
}

func (f *fakeCategories) Home(context.Context) ([]models.VendorCategory, error) {
	f.homeCalls++
	var out []models.VendorCategory
	for _, c := range f.categories {
		if c.ShowInHomepage.Bool(false) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategories) Published(context.Context) ([]models.VendorCategory, error) {
	return f.categories, nil
}

func (f *fakeCategories) FindByID(_ context.Context, id string) (*models.VendorCategory, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			c := f.categories[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategories) FindScoped(ctx context.Context, id string, _ []string) (*models.VendorCategory, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeCategories) ByIDs(_ context.Context, ids, keys []string) ([]models.VendorCategory, error) {
	if f.unscopedOnly && keys != nil {
		return nil, nil
	}
	var out []models.VendorCategory
	for _, c := range f.categories {
		for _, id := range ids {
			if c.ID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func product(id, vendorID, categoryID, price, discount string) models.Product {
	p := models.Product{
		ID:          id,
		Name:        strPtr("Product " + id),
		VendorID:    strPtr(vendorID),
		CategoryID:  strPtr(categoryID),
		Price:       strPtr(price),
		Publish:     models.NewFlag(true),
		IsAvailable: models.NewFlag(true),
		Veg:         models.NewFlag("1"),
	}
	if discount != "" {
		p.DisPrice = strPtr(discount)
	}
	return p
}

func feedFixture() (*fakeProducts, *fakePromotions, *fakeCategories, *fakeVendors) {
	products := &fakeProducts{products: []models.Product{
		product("p1", "v1", "c1", "₹ 200", "150"),
		product("p2", "v1", "c1", "100", "0"),
		product("p3", "v1", "c2", "300", ""),
	}}
	promotions := &fakePromotions{promotions: []models.Promotion{{
		ID:           "promo-1",
		RestaurantID: strPtr("v1"),
		ProductID:    strPtr("p3"),
		SpecialPrice: strPtr("250"),
		StartTime:    strPtr("2024-01-01T10:00:00Z"),
		EndTime:      strPtr("2024-01-02T10:00:00Z"),
	}}}
	categories := &fakeCategories{categories: []models.VendorCategory{
		{ID: "c1", Title: strPtr("Starters"), Description: strPtr("Small plates")},
		{ID: "c2", Title: strPtr("Mains")},
	}}
	vendors := &fakeVendors{vendors: []models.Vendor{newVendor("v1", 17.0, 78.0)}}
	return products, promotions, categories, vendors
}

func newProductService(products *fakeProducts, promotions *fakePromotions, categories *fakeCategories, vendors *fakeVendors) *ProductService {
	return NewProductService(products, promotions, categories, vendors, newTestCache()).WithClock(fixedClock)
}

func feedProductByID(products []FeedProduct, id string) FeedProduct {
	for _, p := range products {
		if p.ID == id {
			return p
		}
	}
	return FeedProduct{}
}

func TestFeedComputesFinalPrices(t *testing.T) {
	svc := newProductService(feedFixture())

	feed, err := svc.Feed(context.Background(), "v1", cache.FeedFilters{}, false)
	require.NoError(t, err)
	require.True(t, feed.Success)
	require.Len(t, feed.Data.Products, 3)

	p1 := feedProductByID(feed.Data.Products, "p1")
	assert.Equal(t, "200", *p1.OriginalPrice)
	assert.Equal(t, "150", *p1.FinalPrice)
	assert.False(t, p1.HasActivePromotion)

	p2 := feedProductByID(feed.Data.Products, "p2")
	assert.Equal(t, "100", *p2.FinalPrice)

	p3 := feedProductByID(feed.Data.Products, "p3")
	assert.Equal(t, "250", *p3.FinalPrice)
	assert.True(t, p3.HasActivePromotion)
	require.NotNil(t, p3.Promotion)
	assert.Equal(t, "2024-01-01 10:00:00", *p3.Promotion.StartTime)
	assert.Equal(t, "v1", p3.VendorID)

	assert.Equal(t, FeedMeta{TotalProducts: 3, OfferProducts: 1, Categories: 2}, feed.Data.Meta)
	require.Len(t, feed.Data.Categories, 2)
	assert.Equal(t, "c1", feed.Data.Categories[0].ID)
	assert.Equal(t, 2, feed.Data.Categories[0].ProductCount)
	assert.Equal(t, "Small plates", *feed.Data.Categories[0].Description)
}

func TestFeedOfferOnlyKeepsDiscountsAndPromotions(t *testing.T) {
	svc := newProductService(feedFixture())
	yes := true

	feed, err := svc.Feed(context.Background(), "v1", cache.FeedFilters{OfferOnly: &yes}, false)
	require.NoError(t, err)

	ids := []string{}
	for _, p := range feed.Data.Products {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"p1", "p3"}, ids)
	assert.Equal(t, 2, feed.Data.Meta.TotalProducts)
	assert.True(t, *feed.Data.Filters.OfferOnly)
}

func TestFeedFallsBackToUnscopedCategories(t *testing.T) {
	products, promotions, categories, vendors := feedFixture()
	categories.unscopedOnly = true
	svc := newProductService(products, promotions, categories, vendors)

	feed, err := svc.Feed(context.Background(), "v1", cache.FeedFilters{}, false)
	require.NoError(t, err)

	assert.Len(t, feed.Data.Categories, 2)
	assert.Equal(t, "Mains", *feedProductByID(feed.Data.Products, "p3").CategoryTitle)
	assert.ElementsMatch(t, []string{"v1", "Vendor v1"}, promotions.keys)
}

func TestFeedIsCachedPerFilters(t *testing.T) {
	products, promotions, categories, vendors := feedFixture()
	svc := newProductService(products, promotions, categories, vendors)
	ctx := context.Background()
	veg := true

	_, err := svc.Feed(ctx, "v1", cache.FeedFilters{}, false)
	require.NoError(t, err)
	_, err = svc.Feed(ctx, "v1", cache.FeedFilters{}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, products.feedCalls)

	_, err = svc.Feed(ctx, "v1", cache.FeedFilters{IsVeg: &veg}, false)
	require.NoError(t, err)
	assert.Equal(t, 2, products.feedCalls)
}

func TestFeedRejectsEmptyVendor(t *testing.T) {
	svc := newProductService(feedFixture())

	_, err := svc.Feed(context.Background(), "  ", cache.FeedFilters{}, false)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestByVendorMessages(t *testing.T) {
	svc := newProductService(feedFixture())
	ctx := context.Background()

	res, err := svc.ByVendor(ctx, "v1", false)
	require.NoError(t, err)
	assert.Len(t, res.Data, 3)
	assert.Equal(t, "Products retrieved successfully", res.Message)

	res, err = svc.ByVendor(ctx, "nobody", false)
	require.NoError(t, err)
	assert.Empty(t, res.Data)
	assert.Equal(t, "No available products found for this vendor", res.Message)
}

func TestPageClampsPerPage(t *testing.T) {
	svc := newProductService(feedFixture())

	page, err := svc.Page(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.LastPage)
	assert.Len(t, page.Items, 1)

	page, err = svc.Page(context.Background(), 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, MaxPerPage, page.PerPage)
	assert.Equal(t, 1, page.CurrentPage)
}

func TestProductShow(t *testing.T) {
	svc := newProductService(feedFixture())

	item, err := svc.Show(context.Background(), "p3")
	require.NoError(t, err)
	assert.Equal(t, "250", *item.FinalPrice)
	assert.Equal(t, "Mains", *item.CategoryTitle)

	_, err = svc.Show(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidDiscount(t *testing.T) {
	tests := []struct {
		original, discount *string
		want               bool
	}{
		{strPtr("100"), strPtr("80"), true},
		{strPtr("100"), strPtr("100"), false},
		{strPtr("100"), strPtr("0"), false},
		{strPtr("100"), nil, false},
		{nil, strPtr("10"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, validDiscount(tt.original, tt.discount))
	}
}

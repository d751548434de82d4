package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jippymart/pkg/models"
)

func TestCategoryHomeIsCached(t *testing.T) {
	categories := &fakeCategories{categories: []models.VendorCategory{
		{ID: "c1", Title: strPtr("Pizza"), ShowInHomepage: models.NewFlag("true"), Publish: models.NewFlag(true)},
		{ID: "c2", Title: strPtr("Hidden"), ShowInHomepage: models.NewFlag(false)},
	}}
	svc := NewCategoryService(categories, newTestCache())
	ctx := context.Background()

	list, err := svc.Home(ctx, false)
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Pizza", list.Data[0].Title)
	assert.True(t, list.Data[0].ShowInHomepage)
	assert.Nil(t, list.Count)

	_, err = svc.Home(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, categories.homeCalls)

	_, err = svc.Home(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 2, categories.homeCalls)
}

func TestCategoryAllCounts(t *testing.T) {
	categories := &fakeCategories{categories: []models.VendorCategory{{ID: "c1"}, {ID: "c2"}}}
	svc := NewCategoryService(categories, newTestCache())

	list, err := svc.All(context.Background(), false)
	require.NoError(t, err)
	require.NotNil(t, list.Count)
	assert.Equal(t, 2, *list.Count)
	assert.False(t, list.Data[1].Publish)

	_, err = svc.Find(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

type fakeMenuItems struct {
	rows  []models.MenuItemBanner
	calls int
}

func (f *fakeMenuItems) Published(_ context.Context, position, _ string) ([]models.MenuItemBanner, error) {
	f.calls++
	var out []models.MenuItemBanner
	for _, b := range f.rows {
		if position == "" || models.Str(b.Position) == position {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeMenuItems) FindByID(_ context.Context, id string) (*models.MenuItemBanner, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			b := f.rows[i]
			return &b, nil
		}
	}
	return nil, nil
}

func bannerRow(id, position string, order int64) models.MenuItemBanner {
	return models.MenuItemBanner{
		ID:        id,
		Title:     strPtr("Banner " + id),
		Position:  strPtr(position),
		IsPublish: models.NewFlag(1),
		SetOrder:  &order,
	}
}

func TestBannersByPosition(t *testing.T) {
	items := &fakeMenuItems{rows: []models.MenuItemBanner{
		bannerRow("b1", "top", 1),
		bannerRow("b2", "middle", 2),
	}}
	svc := NewMenuItemService(items, newTestCache())
	ctx := context.Background()

	list, err := svc.ByPosition(ctx, "top", "zone-1", false)
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "b1", list.Data[0].ID)
	assert.True(t, list.Data[0].IsPublish)

	_, err = svc.ByPosition(ctx, "top", "zone-1", false)
	require.NoError(t, err)
	assert.Equal(t, 1, items.calls)

	all, err := svc.All(ctx, "zone-1", "", false)
	require.NoError(t, err)
	assert.Equal(t, 2, *all.Count)
	assert.Equal(t, int64(2), all.Data[1].SetOrder)
}

func TestBannerShow(t *testing.T) {
	svc := NewMenuItemService(&fakeMenuItems{rows: []models.MenuItemBanner{bannerRow("b1", "top", 3)}}, newTestCache())

	b, err := svc.Show(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "top", b.Position)

	_, err = svc.Show(context.Background(), "b9")
	assert.ErrorIs(t, err, ErrNotFound)
}

type fakeCoupons struct{ coupons []models.Coupon }

func (f fakeCoupons) ActiveForVendor(context.Context, string, time.Time) ([]models.Coupon, error) {
	return f.coupons, nil
}

func TestOffersNeverNil(t *testing.T) {
	coupons, err := NewOfferService(fakeCoupons{}).ForVendor(context.Background(), "v1")
	require.NoError(t, err)
	assert.NotNil(t, coupons)
	assert.Empty(t, coupons)
}

package services

import (
	"context"
	"fmt"
	"time"

	"jippymart/internal/cache"
	"jippymart/pkg/models"
)

// Category is a vendor category as listed to customers.
type Category struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Photo          string  `json:"photo"`
	ShowInHomepage bool    `json:"show_in_homepage"`
	Publish        bool    `json:"publish"`
	Description    string  `json:"description"`
	VType          *string `json:"vType"`
}

// CategoryList is the cached body of the category listings. Count is only
// sent by the full listing.
type CategoryList struct {
	Success bool       `json:"success"`
	Data    []Category `json:"data"`
	Count   *int       `json:"count,omitempty"`
}

type CategoryService struct {
	categories CategoryStore
	cache      *cache.Cache
}

func NewCategoryService(categories CategoryStore, c *cache.Cache) *CategoryService {
	return &CategoryService{categories: categories, cache: c}
}

// Home lists the published categories shown on the home screen.
func (s *CategoryService) Home(ctx context.Context, refresh bool) (CategoryList, error) {
	return cache.RememberValue(ctx, s.cache, cache.CategoriesHomeKey, cache.DefaultTTL, refresh, func(ctx context.Context) (CategoryList, error) {
		rows, err := s.categories.Home(ctx)
		if err != nil {
			return CategoryList{}, fmt.Errorf("failed to load home categories: %w", err)
		}
		return CategoryList{Success: true, Data: categoryItems(rows)}, nil
	})
}

// All lists every published category.
func (s *CategoryService) All(ctx context.Context, refresh bool) (CategoryList, error) {
	return cache.RememberValue(ctx, s.cache, cache.CategoriesAllKey, cache.DefaultTTL, refresh, func(ctx context.Context) (CategoryList, error) {
		rows, err := s.categories.Published(ctx)
		if err != nil {
			return CategoryList{}, fmt.Errorf("failed to load categories: %w", err)
		}
		items := categoryItems(rows)
		count := len(items)
		return CategoryList{Success: true, Data: items, Count: &count}, nil
	})
}

// Find returns the stored category row, ErrNotFound when missing.
func (s *CategoryService) Find(ctx context.Context, id string) (*models.VendorCategory, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load category %s: %w", id, err)
	}
	if c == nil {
		return nil, fmt.Errorf("category %s: %w", id, ErrNotFound)
	}
	return c, nil
}

func categoryItems(rows []models.VendorCategory) []Category {
	out := make([]Category, len(rows))
	for i, c := range rows {
		out[i] = Category{
			ID:             c.ID,
			Title:          models.Str(c.Title),
			Photo:          models.Str(c.Photo),
			ShowInHomepage: c.ShowInHomepage.Bool(false),
			Publish:        c.Publish.Bool(false),
			Description:    models.Str(c.Description),
			VType:          c.VType,
		}
	}
	return out
}

type MenuItemStore interface {
	Published(ctx context.Context, position, zoneID string) ([]models.MenuItemBanner, error)
	FindByID(ctx context.Context, id string) (*models.MenuItemBanner, error)
}

// Banner positions on the home screen.
var BannerPositions = []string{"top", "middle", "bottom"}

type Banner struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Photo        string  `json:"photo"`
	Position     string  `json:"position"`
	IsPublish    bool    `json:"is_publish"`
	SetOrder     int64   `json:"set_order"`
	ZoneID       *string `json:"zoneId"`
	ZoneTitle    *string `json:"zoneTitle"`
	RedirectType *string `json:"redirect_type"`
	RedirectID   *string `json:"redirect_id"`
}

// BannerList is the cached body of a banner listing.
type BannerList struct {
	Success bool     `json:"success"`
	Data    []Banner `json:"data"`
	Count   *int     `json:"count,omitempty"`
}

type MenuItemService struct {
	items MenuItemStore
	cache *cache.Cache
}

func NewMenuItemService(items MenuItemStore, c *cache.Cache) *MenuItemService {
	return &MenuItemService{items: items, cache: c}
}

// ByPosition lists the banners of one position, optionally for a zone.
func (s *MenuItemService) ByPosition(ctx context.Context, position, zoneID string, refresh bool) (BannerList, error) {
	key := cache.MenuItemsKey(position, &zoneID, nil)
	return cache.RememberValue(ctx, s.cache, key, cache.DefaultTTL, refresh, func(ctx context.Context) (BannerList, error) {
		rows, err := s.items.Published(ctx, position, zoneID)
		if err != nil {
			return BannerList{}, fmt.Errorf("failed to load %s banners: %w", position, err)
		}
		return BannerList{Success: true, Data: banners(rows)}, nil
	})
}

// All lists banners of every position, or of filterPosition when given.
func (s *MenuItemService) All(ctx context.Context, zoneID, filterPosition string, refresh bool) (BannerList, error) {
	key := cache.MenuItemsKey("all", &zoneID, &filterPosition)
	return cache.RememberValue(ctx, s.cache, key, cache.DefaultTTL, refresh, func(ctx context.Context) (BannerList, error) {
		rows, err := s.items.Published(ctx, filterPosition, zoneID)
		if err != nil {
			return BannerList{}, fmt.Errorf("failed to load banners: %w", err)
		}
		data := banners(rows)
		count := len(data)
		return BannerList{Success: true, Data: data, Count: &count}, nil
	})
}

func (s *MenuItemService) Show(ctx context.Context, id string) (*Banner, error) {
	row, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load banner %s: %w", id, err)
	}
	if row == nil {
		return nil, fmt.Errorf("banner %s: %w", id, ErrNotFound)
	}
	b := banner(row)
	return &b, nil
}

func banners(rows []models.MenuItemBanner) []Banner {
	out := make([]Banner, len(rows))
	for i := range rows {
		out[i] = banner(&rows[i])
	}
	return out
}

func banner(b *models.MenuItemBanner) Banner {
	var order int64
	if b.SetOrder != nil {
		order = *b.SetOrder
	}
	return Banner{
		ID:           b.ID,
		Title:        models.Str(b.Title),
		Photo:        models.Str(b.Photo),
		Position:     models.Str(b.Position),
		IsPublish:    b.IsPublish.Bool(false),
		SetOrder:     order,
		ZoneID:       b.ZoneID,
		ZoneTitle:    b.ZoneTitle,
		RedirectType: b.RedirectType,
		RedirectID:   b.RedirectID,
	}
}

type CouponStore interface {
	ActiveForVendor(ctx context.Context, vendorID string, now time.Time) ([]models.Coupon, error)
}

// OfferService lists the public coupons of vendors.
type OfferService struct {
	coupons CouponStore
	now     func() time.Time
}

func NewOfferService(coupons CouponStore) *OfferService {
	return &OfferService{coupons: coupons, now: time.Now}
}

func (s *OfferService) ForVendor(ctx context.Context, vendorID string) ([]models.Coupon, error) {
	coupons, err := s.coupons.ActiveForVendor(ctx, vendorID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to load offers of vendor %s: %w", vendorID, err)
	}
	if coupons == nil {
		coupons = []models.Coupon{}
	}
	return coupons, nil
}

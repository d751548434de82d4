package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"jippymart/internal/cache"
	"jippymart/internal/repo"
	"jippymart/pkg/models"
)

type ProductStore interface {
	AvailableByVendor(ctx context.Context, vendorID string) ([]models.Product, error)
	PageAvailable(ctx context.Context, page, perPage int) ([]models.Product, int64, error)
	Feed(ctx context.Context, vendorID string, f repo.FeedFilter) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
}

type PromotionStore interface {
	ActiveForRestaurant(ctx context.Context, restaurantKeys []string, now time.Time) ([]models.Promotion, error)
	AvailableForProduct(ctx context.Context, productID string) ([]models.Promotion, error)
}

type CategoryStore interface {
	Home(ctx context.Context) ([]models.VendorCategory, error)
	Published(ctx context.Context) ([]models.VendorCategory, error)
	FindByID(ctx context.Context, id string) (*models.VendorCategory, error)
	FindScoped(ctx context.Context, id string, restaurantKeys []string) (*models.VendorCategory, error)
	ByIDs(ctx context.Context, ids, restaurantKeys []string) ([]models.VendorCategory, error)
}

// Products per page of the catalog listing.
const (
	DefaultPerPage = 50
	MaxPerPage     = 200
)

// BasicProduct is the catalog listing shape of a product.
type BasicProduct struct {
	ID             string  `json:"id"`
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	VendorID       *string `json:"vendor_id"`
	VendorTitle    *string `json:"vendor_title"`
	CategoryID     *string `json:"category_id"`
	CategoryTitle  *string `json:"category_title"`
	IsAvailable    bool    `json:"is_available"`
	Publish        bool    `json:"publish"`
	Veg            *bool   `json:"veg"`
	Nonveg         *bool   `json:"nonveg"`
	Quantity       *int64  `json:"quantity"`
	Price          *string `json:"price"`
	DiscountPrice  *string `json:"discount_price"`
	TakeawayOption *bool   `json:"takeaway_option"`
	Photo          *string `json:"photo"`
	Photos         any     `json:"photos"`
	CreatedAt      any     `json:"created_at"`
}

// VendorProducts is the cached body of a vendor's product list.
type VendorProducts struct {
	Success bool           `json:"success"`
	Data    []BasicProduct `json:"data"`
	Message string         `json:"message"`
}

// ProductPage is one page of the catalog listing.
type ProductPage struct {
	Items       []BasicProduct
	Total       int64
	PerPage     int
	CurrentPage int
	LastPage    int
}

// FeedPromotion is the active promotion attached to a feed product.
type FeedPromotion struct {
	ID           string  `json:"id"`
	SpecialPrice *string `json:"special_price"`
	ItemLimit    *int64  `json:"item_limit"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
}

// FeedProduct is a product as shown on the restaurant menu.
type FeedProduct struct {
	ID                   string         `json:"id"`
	Name                 *string        `json:"name"`
	Description          *string        `json:"description"`
	CategoryID           *string        `json:"category_id"`
	CategoryTitle        *string        `json:"category_title"`
	IsAvailable          *bool          `json:"is_available"`
	Nonveg               *bool          `json:"nonveg"`
	Veg                  *bool          `json:"veg"`
	Photo                *string        `json:"photo"`
	Photos               any            `json:"photos"`
	AddOnsTitle          any            `json:"add_ons_title"`
	AddOnsPrice          any            `json:"add_ons_price"`
	ItemAttribute        any            `json:"item_attribute"`
	ProductSpecification any            `json:"product_specification"`
	ReviewsCount         int64          `json:"reviews_count"`
	ReviewsSum           float64        `json:"reviews_sum"`
	Quantity             *int64         `json:"quantity"`
	OriginalPrice        *string        `json:"original_price"`
	DiscountPrice        *string        `json:"discount_price"`
	FinalPrice           *string        `json:"final_price"`
	HasActivePromotion   bool           `json:"has_active_promotion"`
	Promotion            *FeedPromotion `json:"promotion"`
	VendorID             string         `json:"vendorID,omitempty"`
}

type CategorySummary struct {
	ID           string  `json:"id"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Photo        *string `json:"photo"`
	ProductCount int     `json:"product_count"`
}

type FeedMeta struct {
	TotalProducts int `json:"total_products"`
	OfferProducts int `json:"offer_products"`
	Categories    int `json:"categories"`
}

type FeedData struct {
	Filters    cache.FeedFilters `json:"filters"`
	Meta       FeedMeta          `json:"meta"`
	Categories []CategorySummary `json:"categories"`
	Products   []FeedProduct     `json:"products"`
}

// ProductFeed is the cached body of a restaurant product feed.
type ProductFeed struct {
	Success bool     `json:"success"`
	Data    FeedData `json:"data"`
}

type ProductService struct {
	products   ProductStore
	promotions PromotionStore
	categories CategoryStore
	vendors    VendorStore
	cache      *cache.Cache
	now        func() time.Time
}

func NewProductService(products ProductStore, promotions PromotionStore, categories CategoryStore, vendors VendorStore, c *cache.Cache) *ProductService {
	return &ProductService{
		products:   products,
		promotions: promotions,
		categories: categories,
		vendors:    vendors,
		cache:      c,
		now:        time.Now,
	}
}

// WithClock replaces the clock used for promotion windows.
func (s *ProductService) WithClock(now func() time.Time) *ProductService {
	s.now = now
	return s
}

// ByVendor lists the published, available products of a vendor. The
// response is cached for a day per vendor.
func (s *ProductService) ByVendor(ctx context.Context, vendorID string, refresh bool) (VendorProducts, error) {
	vendorID = strings.TrimSpace(vendorID)
	if vendorID == "" {
		return VendorProducts{}, fmt.Errorf("empty vendor id: %w", ErrInvalidInput)
	}

	return cache.RememberValue(ctx, s.cache, cache.VendorProductsKey(vendorID), cache.DefaultTTL, refresh, func(ctx context.Context) (VendorProducts, error) {
		products, err := s.products.AvailableByVendor(ctx, vendorID)
		if err != nil {
			return VendorProducts{}, fmt.Errorf("failed to load products of vendor %s: %w", vendorID, err)
		}
		data := make([]BasicProduct, len(products))
		for i := range products {
			data[i] = basicProduct(&products[i])
		}
		msg := "Products retrieved successfully"
		if len(data) == 0 {
			msg = "No available products found for this vendor"
		}
		return VendorProducts{Success: true, Data: data, Message: msg}, nil
	})
}

// Page lists published, available products of every vendor. perPage
// values outside 1..MaxPerPage are clamped.
func (s *ProductService) Page(ctx context.Context, page, perPage int) (ProductPage, error) {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	if page < 1 {
		page = 1
	}

	products, total, err := s.products.PageAvailable(ctx, page, perPage)
	if err != nil {
		return ProductPage{}, fmt.Errorf("failed to load products: %w", err)
	}
	items := make([]BasicProduct, len(products))
	for i := range products {
		items[i] = basicProduct(&products[i])
	}

	last := int((total + int64(perPage) - 1) / int64(perPage))
	if last < 1 {
		last = 1
	}
	return ProductPage{Items: items, Total: total, PerPage: perPage, CurrentPage: page, LastPage: last}, nil
}

// Feed builds the menu of a restaurant: products with their active
// promotion and final price, grouped category summaries and counts.
func (s *ProductService) Feed(ctx context.Context, vendorID string, filters cache.FeedFilters, refresh bool) (ProductFeed, error) {
	vendorID = strings.TrimSpace(vendorID)
	if vendorID == "" {
		return ProductFeed{}, fmt.Errorf("empty vendor id: %w", ErrInvalidInput)
	}

	key := cache.ProductFeedKey(vendorID, filters)
	return cache.RememberValue(ctx, s.cache, key, cache.DefaultTTL, refresh, func(ctx context.Context) (ProductFeed, error) {
		return s.feed(ctx, vendorID, filters)
	})
}

func (s *ProductService) feed(ctx context.Context, vendorID string, filters cache.FeedFilters) (ProductFeed, error) {
	products, err := s.products.Feed(ctx, vendorID, repo.FeedFilter{
		Search:   filters.Search,
		IsVeg:    filters.IsVeg,
		IsNonVeg: filters.IsNonVeg,
	})
	if err != nil {
		return ProductFeed{}, fmt.Errorf("failed to load feed products: %w", err)
	}

	vendor, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		return ProductFeed{}, fmt.Errorf("failed to load vendor %s: %w", vendorID, err)
	}

	promotionKeys := []string{vendorID}
	categoryKeys := []string{vendorID}
	if vendor != nil {
		promotionKeys = nonEmpty(vendor.ID, vendor.VendorTitle())
		categoryKeys = nonEmpty(vendor.VendorTitle(), vendorID, vendor.ID)
	}

	promotions, err := s.promotions.ActiveForRestaurant(ctx, promotionKeys, s.now())
	if err != nil {
		return ProductFeed{}, fmt.Errorf("failed to load promotions: %w", err)
	}
	byProduct := firstPromotionByProduct(promotions)

	var categoryIDs []string
	seen := map[string]bool{}
	for _, p := range products {
		if id := models.Str(p.CategoryID); id != "" && !seen[id] {
			seen[id] = true
			categoryIDs = append(categoryIDs, id)
		}
	}

	categories, err := s.categories.ByIDs(ctx, categoryIDs, categoryKeys)
	if err != nil {
		return ProductFeed{}, fmt.Errorf("failed to load categories: %w", err)
	}
	if len(categories) == 0 && len(categoryIDs) > 0 {
		categories, err = s.categories.ByIDs(ctx, categoryIDs, nil)
		if err != nil {
			return ProductFeed{}, fmt.Errorf("failed to load categories: %w", err)
		}
	}
	byID := make(map[string]*models.VendorCategory, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}

	items := make([]FeedProduct, 0, len(products))
	for i := range products {
		p := &products[i]
		item := feedProduct(p, byProduct[p.ID], byID[models.Str(p.CategoryID)])
		item.VendorID = vendorID
		if filters.OfferOnly != nil && *filters.OfferOnly && !item.onOffer() {
			continue
		}
		items = append(items, item)
	}

	summaries := categorySummaries(items, byID)
	offers := 0
	for _, item := range items {
		if item.HasActivePromotion {
			offers++
		}
	}

	return ProductFeed{
		Success: true,
		Data: FeedData{
			Filters:    filters,
			Meta:       FeedMeta{TotalProducts: len(items), OfferProducts: offers, Categories: len(summaries)},
			Categories: summaries,
			Products:   items,
		},
	}, nil
}

// Show returns one product with its promotion and category.
func (s *ProductService) Show(ctx context.Context, id string) (*FeedProduct, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s: %w", id, err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}

	promotions, err := s.promotions.AvailableForProduct(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load promotions of product %s: %w", id, err)
	}

	var category *models.VendorCategory
	if categoryID := models.Str(product.CategoryID); categoryID != "" {
		category, err = s.categories.FindByID(ctx, categoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to load category %s: %w", categoryID, err)
		}
		if category == nil {
			vendor, err := s.vendors.FindByID(ctx, models.Str(product.VendorID))
			if err != nil {
				return nil, fmt.Errorf("failed to load vendor of product %s: %w", id, err)
			}
			if vendor != nil {
				category, err = s.categories.FindScoped(ctx, categoryID, nonEmpty(vendor.ID, vendor.VendorTitle()))
				if err != nil {
					return nil, fmt.Errorf("failed to load category %s: %w", categoryID, err)
				}
			}
		}
	}

	item := feedProduct(product, firstPromotionByProduct(promotions)[product.ID], category)
	return &item, nil
}

// Raw returns the stored product row, ErrNotFound when missing.
func (s *ProductService) Raw(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s: %w", id, err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return product, nil
}

func basicProduct(p *models.Product) BasicProduct {
	return BasicProduct{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		VendorID:       p.VendorID,
		VendorTitle:    p.VendorTitle,
		CategoryID:     p.CategoryID,
		CategoryTitle:  p.CategoryTitle,
		IsAvailable:    p.IsAvailable.Bool(false),
		Publish:        p.Publish.Bool(false),
		Veg:            p.Veg.Coerce(),
		Nonveg:         p.Nonveg.Coerce(),
		Quantity:       p.Quantity,
		Price:          p.Price,
		DiscountPrice:  p.DisPrice,
		TakeawayOption: p.TakeawayOption.Coerce(),
		Photo:          p.Photo,
		Photos:         decodeText(p.Photos),
		CreatedAt:      decodeText(p.CreatedAt),
	}
}

func feedProduct(p *models.Product, promotion *models.Promotion, category *models.VendorCategory) FeedProduct {
	original := models.NumericString(p.Price)
	discount := models.NumericString(p.DisPrice)

	item := FeedProduct{
		ID:                   p.ID,
		Name:                 p.Name,
		Description:          p.Description,
		CategoryID:           p.CategoryID,
		CategoryTitle:        p.CategoryTitle,
		IsAvailable:          p.IsAvailable.Coerce(),
		Nonveg:               p.Nonveg.Coerce(),
		Veg:                  p.Veg.Coerce(),
		Photo:                p.Photo,
		Photos:               decodeText(p.Photos),
		AddOnsTitle:          decodeText(p.AddOnsTitle),
		AddOnsPrice:          decodeText(p.AddOnsPrice),
		ItemAttribute:        decodeText(p.ItemAttribute),
		ProductSpecification: decodeText(p.ProductSpecification),
		ReviewsCount:         int64(models.Float(p.ReviewsCount)),
		ReviewsSum:           models.Float(p.ReviewsSum),
		Quantity:             p.Quantity,
		OriginalPrice:        original,
		DiscountPrice:        discount,
	}
	if category != nil && category.Title != nil {
		item.CategoryTitle = category.Title
	}

	switch {
	case promotion != nil:
		special := models.NumericString(promotion.SpecialPrice)
		item.FinalPrice = special
		item.HasActivePromotion = true
		item.Promotion = &FeedPromotion{
			ID:           promotion.ID,
			SpecialPrice: special,
			ItemLimit:    promotion.ItemLimit,
			StartTime:    dateTimeString(promotion.StartTime),
			EndTime:      dateTimeString(promotion.EndTime),
		}
	case validDiscount(original, discount):
		item.FinalPrice = discount
	default:
		item.FinalPrice = original
	}
	return item
}

func (p FeedProduct) onOffer() bool {
	return p.HasActivePromotion || validDiscount(p.OriginalPrice, p.DiscountPrice)
}

// validDiscount reports whether discount is positive and below original.
func validDiscount(original, discount *string) bool {
	if original == nil || discount == nil {
		return false
	}
	o, _ := strconv.ParseFloat(*original, 64)
	d, _ := strconv.ParseFloat(*discount, 64)
	return d > 0 && d < o
}

func dateTimeString(s *string) *string {
	t, ok := models.LegacyTime(s)
	if !ok {
		return nil
	}
	out := t.Format("2006-01-02 15:04:05")
	return &out
}

func firstPromotionByProduct(promotions []models.Promotion) map[string]*models.Promotion {
	out := make(map[string]*models.Promotion, len(promotions))
	for i := range promotions {
		id := models.Str(promotions[i].ProductID)
		if _, ok := out[id]; !ok {
			out[id] = &promotions[i]
		}
	}
	return out
}

// categorySummaries counts products per category in order of first
// appearance. Nothing is summarized when no category row was found.
func categorySummaries(items []FeedProduct, categories map[string]*models.VendorCategory) []CategorySummary {
	out := []CategorySummary{}
	if len(categories) == 0 {
		return out
	}

	index := map[string]int{}
	for _, item := range items {
		id := models.Str(item.CategoryID)
		if id == "" {
			continue
		}
		if i, ok := index[id]; ok {
			out[i].ProductCount++
			continue
		}
		summary := CategorySummary{ID: id, Title: item.CategoryTitle, ProductCount: 1}
		if c := categories[id]; c != nil {
			if c.Title != nil {
				summary.Title = c.Title
			}
			summary.Description = c.Description
			summary.Photo = c.Photo
		}
		index[id] = len(out)
		out = append(out, summary)
	}
	return out
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	seen := map[string]bool{}
	for _, v := range values {
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

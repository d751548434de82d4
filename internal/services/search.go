package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"jippymart/internal/geo"
	"jippymart/internal/hours"
	"jippymart/internal/repo"
	"jippymart/pkg/models"
)

type ZoneVendorSearcher interface {
	SearchZone(ctx context.Context, term, zoneID string) ([]models.Vendor, error)
}

type ZoneProductSearcher interface {
	SearchZone(ctx context.Context, term, zoneID string, offset, limit int) ([]models.Product, error)
}

type CategorySearcher interface {
	Search(ctx context.Context, term string, offset, limit int) ([]models.VendorCategory, error)
}

// UnifiedQuery are the validated inputs of the unified search.
type UnifiedQuery struct {
	Query     string
	ZoneID    string
	Latitude  *float64
	Longitude *float64
	Limit     int
	Page      int
}

func (q UnifiedQuery) offset() int { return (q.Page - 1) * q.Limit }

type SearchRestaurant struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	ZoneID         string   `json:"zoneId"`
	Photo          string   `json:"photo"`
	CoverPhoto     string   `json:"cover_photo"`
	Phonenumber    string   `json:"phonenumber"`
	Email          string   `json:"email"`
	Address        string   `json:"address"`
	Publish        bool     `json:"publish"`
	VType          string   `json:"vType"`
	CategoryTitle  any      `json:"categoryTitle"`
	WorkingHours   any      `json:"workingHours"`
	Rating         float64  `json:"rating"`
	TotalRating    float64  `json:"total_rating"`
	DeliveryTime   string   `json:"delivery_time"`
	DeliveryCharge float64  `json:"delivery_charge"`
	MinimumOrder   float64  `json:"minimum_order"`
	IsOpen         bool     `json:"is_open"`
	Distance       *float64 `json:"distance"`
	CreatedAt      *string  `json:"created_at"`
	UpdatedAt      *string  `json:"updated_at"`
}

type SearchProduct struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	DisPrice    *string `json:"disPrice"`
	Photo       *string `json:"photo"`
	CategoryID  *string `json:"categoryID"`
	VendorID    *string `json:"vendorID"`
	Veg         bool    `json:"veg"`
	Nonveg      bool    `json:"nonveg"`
}

type SearchCategory struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Photo       string  `json:"photo"`
	Publish     bool    `json:"publish"`
	Description string  `json:"description"`
	VType       *string `json:"vType"`
}

type UnifiedData struct {
	Restaurants  []SearchRestaurant `json:"restaurants"`
	Products     []SearchProduct    `json:"products"`
	Categories   []SearchCategory   `json:"categories"`
	TotalResults int                `json:"total_results"`
}

type UnifiedMeta struct {
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
	Query     string `json:"query"`
	ZoneID    string `json:"zone_id"`
	HasMore   bool   `json:"has_more"`
	OpenCount int    `json:"openCount"`
}

type UnifiedResult struct {
	Success bool        `json:"success"`
	Data    UnifiedData `json:"data"`
	Meta    UnifiedMeta `json:"meta"`
}

// SearchService searches restaurants, products and categories of a zone in
// one call.
type SearchService struct {
	vendors    ZoneVendorSearcher
	products   ZoneProductSearcher
	categories CategorySearcher
	hours      *hours.Evaluator
}

func NewSearchService(vendors ZoneVendorSearcher, products ZoneProductSearcher, categories CategorySearcher, evaluator *hours.Evaluator) *SearchService {
	return &SearchService{vendors: vendors, products: products, categories: categories, hours: evaluator}
}

func (s *SearchService) Unified(ctx context.Context, q UnifiedQuery) (UnifiedResult, error) {
	restaurants, err := s.searchRestaurants(ctx, q)
	if err != nil {
		return UnifiedResult{}, err
	}

	products, err := s.products.SearchZone(ctx, q.Query, q.ZoneID, q.offset(), q.Limit)
	if err != nil {
		return UnifiedResult{}, fmt.Errorf("failed to search products: %w", err)
	}
	categories, err := s.categories.Search(ctx, q.Query, q.offset(), q.Limit)
	if err != nil {
		return UnifiedResult{}, fmt.Errorf("failed to search categories: %w", err)
	}

	data := UnifiedData{
		Restaurants: restaurants,
		Products:    make([]SearchProduct, len(products)),
		Categories:  make([]SearchCategory, len(categories)),
	}
	for i, p := range products {
		data.Products[i] = SearchProduct{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			DisPrice:    p.DisPrice,
			Photo:       p.Photo,
			CategoryID:  p.CategoryID,
			VendorID:    p.VendorID,
			Veg:         p.Veg.Bool(false),
			Nonveg:      p.Nonveg.Bool(false),
		}
	}
	for i, c := range categories {
		data.Categories[i] = SearchCategory{
			ID:          c.ID,
			Title:       models.Str(c.Title),
			Photo:       models.Str(c.Photo),
			Publish:     c.Publish.Bool(false),
			Description: models.Str(c.Description),
			VType:       c.VType,
		}
	}
	data.TotalResults = len(data.Restaurants) + len(data.Products) + len(data.Categories)

	open := 0
	for _, r := range restaurants {
		if r.IsOpen {
			open++
		}
	}

	return UnifiedResult{
		Success: true,
		Data:    data,
		Meta: UnifiedMeta{
			Page:      q.Page,
			Limit:     q.Limit,
			Query:     q.Query,
			ZoneID:    q.ZoneID,
			HasMore:   data.TotalResults >= q.Limit,
			OpenCount: open,
		},
	}, nil
}

// searchRestaurants orders by distance when both coordinates are given
// (vendors without a position last), by title otherwise, then pages.
func (s *SearchService) searchRestaurants(ctx context.Context, q UnifiedQuery) ([]SearchRestaurant, error) {
	vendors, err := s.vendors.SearchZone(ctx, q.Query, q.ZoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to search restaurants: %w", err)
	}

	withDistance := q.Latitude != nil && q.Longitude != nil
	distances := make([]*float64, len(vendors))
	if withDistance {
		for i, v := range vendors {
			if v.Latitude != nil && v.Longitude != nil {
				d := geo.DistanceKm(*q.Latitude, *q.Longitude, *v.Latitude, *v.Longitude)
				distances[i] = &d
			}
		}
		idx := make([]int, len(vendors))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			da, db := distances[idx[a]], distances[idx[b]]
			if (da == nil) != (db == nil) {
				return da != nil
			}
			return da != nil && *da < *db
		})
		sortedVendors := make([]models.Vendor, len(vendors))
		sortedDistances := make([]*float64, len(vendors))
		for i, j := range idx {
			sortedVendors[i] = vendors[j]
			sortedDistances[i] = distances[j]
		}
		vendors, distances = sortedVendors, sortedDistances
	}

	start, end := pageBounds(len(vendors), q.offset(), q.Limit)
	out := make([]SearchRestaurant, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, s.searchRestaurant(&vendors[i], distances[i]))
	}
	return out, nil
}

func (s *SearchService) searchRestaurant(v *models.Vendor, distance *float64) SearchRestaurant {
	r := SearchRestaurant{
		ID:            v.ID,
		Title:         models.Str(v.Title),
		Description:   models.Str(v.Description),
		Location:      models.Str(v.Location),
		Latitude:      v.Latitude,
		Longitude:     v.Longitude,
		ZoneID:        models.Str(v.ZoneID),
		Photo:         models.Str(v.Photo),
		Phonenumber:   models.Str(v.Phonenumber),
		Email:         models.Str(v.Email),
		Publish:       v.Publish.Bool(true),
		VType:         models.Str(v.VType),
		CategoryTitle: models.DecodeJSONOr(v.CategoryTitle, []any{}),
		IsOpen:        vendorIsOpen(s.hours, v),
		Distance:      distance,
	}
	if wh, ok := models.DecodeJSON(v.WorkingHours).([]any); ok {
		r.WorkingHours = wh
	}
	return r
}

func pageBounds(n, offset, limit int) (int, int) {
	if offset > n {
		offset = n
	}
	end := offset + limit
	if end > n || limit <= 0 {
		end = n
	}
	return offset, end
}

type MartStore interface {
	SearchCategories(ctx context.Context, term string, offset, limit int) ([]models.MartCategory, int64, error)
	SearchItems(ctx context.Context, f repo.ItemFilter, offset, limit int) ([]models.MartItem, int64, error)
	Featured(ctx context.Context, kind string, limit int) ([]models.MartItem, error)
	Ping(ctx context.Context) error
}

// MartVendorStore finds mart vendors.
type MartVendorStore interface {
	FindMart(ctx context.Context, ids []string) (*models.Vendor, error)
	DefaultMart(ctx context.Context) (*models.Vendor, error)
	MartsInZone(ctx context.Context, zoneID string) ([]models.Vendor, error)
}

type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  *int  `json:"total_pages,omitempty"`
	HasMore     bool  `json:"has_more"`
}

type MartCategoryResult struct {
	Success        bool        `json:"success"`
	Message        string      `json:"message"`
	Data           any         `json:"data"`
	Pagination     *Pagination `json:"pagination,omitempty"`
	SearchTerm     *string     `json:"search_term,omitempty"`
	ResponseTimeMs *float64    `json:"response_time_ms,omitempty"`
	Fallback       bool        `json:"fallback,omitempty"`
}

type MartItemResult struct {
	Success        bool              `json:"success"`
	Message        string            `json:"message"`
	Data           []models.MartItem `json:"data"`
	Pagination     Pagination        `json:"pagination"`
	FiltersApplied map[string]any    `json:"filters_applied"`
	ResponseTimeMs float64           `json:"response_time_ms"`
}

type FeaturedResult struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Data     []models.MartItem `json:"data"`
	Type     string            `json:"type,omitempty"`
	Count    *int              `json:"count,omitempty"`
	Fallback bool              `json:"fallback,omitempty"`
}

// MartSearchParams are the validated mart item search inputs. Filters holds
// the raw values the client sent, echoed back in the response.
type MartSearchParams struct {
	Filter  repo.ItemFilter
	Filters map[string]any
	Page    int
	Limit   int
}

type fallbackCategory struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

var fallbackCategories = []fallbackCategory{
	{ID: "fallback_1", Title: "Groceries"},
	{ID: "fallback_2", Title: "Medicine"},
	{ID: "fallback_3", Title: "Pet Care"},
}

type MartService struct {
	mart    MartStore
	vendors MartVendorStore
	now     func() time.Time
}

func NewMartService(mart MartStore, vendors MartVendorStore) *MartService {
	return &MartService{mart: mart, vendors: vendors, now: time.Now}
}

func (s *MartService) WithClock(now func() time.Time) *MartService {
	s.now = now
	return s
}

func (s *MartService) elapsedMs(start time.Time) float64 {
	return math.Round(float64(s.now().Sub(start).Microseconds())/10) / 100
}

// SearchCategories pages mart categories. Database failures answer with a
// static list instead of an error.
func (s *MartService) SearchCategories(ctx context.Context, term string, page, limit int) MartCategoryResult {
	start := s.now()
	offset := (page - 1) * limit

	categories, total, err := s.mart.SearchCategories(ctx, term, offset, limit)
	if err != nil {
		log.Error().Err(err).Str("q", term).Msg("Mart category search failed, using fallback")
		from, to := pageBounds(len(fallbackCategories), offset, limit)
		return MartCategoryResult{
			Success:  true,
			Message:  "Categories retrieved with fallback",
			Data:     fallbackCategories[from:to],
			Fallback: true,
		}
	}
	if categories == nil {
		categories = []models.MartCategory{}
	}

	elapsed := s.elapsedMs(start)
	return MartCategoryResult{
		Success: true,
		Message: "Categories retrieved successfully",
		Data:    categories,
		Pagination: &Pagination{
			CurrentPage: page,
			PerPage:     limit,
			Total:       total,
			HasMore:     int64(offset+limit) < total,
		},
		SearchTerm:     &term,
		ResponseTimeMs: &elapsed,
	}
}

func (s *MartService) SearchItems(ctx context.Context, p MartSearchParams) (MartItemResult, error) {
	start := s.now()
	offset := (p.Page - 1) * p.Limit

	items, total, err := s.mart.SearchItems(ctx, p.Filter, offset, p.Limit)
	if err != nil {
		return MartItemResult{}, fmt.Errorf("failed to search mart items: %w", err)
	}
	if items == nil {
		items = []models.MartItem{}
	}
	pages := int(math.Ceil(float64(total) / float64(p.Limit)))
	if p.Filters == nil {
		p.Filters = map[string]any{}
	}

	return MartItemResult{
		Success: true,
		Message: "Mart items retrieved successfully",
		Data:    items,
		Pagination: Pagination{
			CurrentPage: p.Page,
			PerPage:     p.Limit,
			Total:       total,
			TotalPages:  &pages,
			HasMore:     int64(offset+p.Limit) < total,
		},
		FiltersApplied: p.Filters,
		ResponseTimeMs: s.elapsedMs(start),
	}, nil
}

// Featured lists flagged items. Database failures answer with an empty
// fallback list.
func (s *MartService) Featured(ctx context.Context, kind string, limit int) FeaturedResult {
	items, err := s.mart.Featured(ctx, kind, limit)
	if err != nil {
		log.Error().Err(err).Str("type", kind).Msg("Featured mart items failed, using fallback")
		return FeaturedResult{Success: true, Message: "Fallback featured items", Data: []models.MartItem{}, Fallback: true}
	}
	if items == nil {
		items = []models.MartItem{}
	}
	count := len(items)
	return FeaturedResult{
		Success: true,
		Message: upperFirst(kind) + " items retrieved successfully",
		Data:    items,
		Type:    kind,
		Count:   &count,
	}
}

// Healthy reports whether the database answers.
func (s *MartService) Healthy(ctx context.Context) bool {
	return s.mart.Ping(ctx) == nil
}

// Vendor finds a mart by id, accepting ids with or without the mart_ prefix.
func (s *MartService) Vendor(ctx context.Context, id string) (map[string]any, error) {
	v, err := s.vendors.FindMart(ctx, MartIDVariants(id))
	if err != nil {
		return nil, fmt.Errorf("failed to load mart vendor %s: %w", id, err)
	}
	if v == nil {
		return nil, fmt.Errorf("mart vendor %s: %w", id, ErrNotFound)
	}
	return VendorDocument(v), nil
}

// DefaultVendor returns the newest open mart.
func (s *MartService) DefaultVendor(ctx context.Context) (map[string]any, error) {
	v, err := s.vendors.DefaultMart(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load default mart vendor: %w", err)
	}
	if v == nil {
		return nil, fmt.Errorf("default mart vendor: %w", ErrNotFound)
	}
	return VendorDocument(v), nil
}

func (s *MartService) VendorsInZone(ctx context.Context, zoneID string) ([]map[string]any, error) {
	vendors, err := s.vendors.MartsInZone(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mart vendors of zone %s: %w", zoneID, err)
	}
	out := make([]map[string]any, len(vendors))
	for i := range vendors {
		out[i] = VendorDocument(&vendors[i])
	}
	return out, nil
}

// MartIDVariants expands a mart id into the spellings stored over time:
// the id itself, the id without a mart_ prefix and both prefixed forms.
func MartIDVariants(id string) []string {
	base := id
	if strings.HasPrefix(strings.ToLower(id), "mart_") {
		base = id[strings.Index(id, "_")+1:]
	}
	candidates := []string{id, base}
	if base != "" {
		candidates = append(candidates, "mart_"+base, "MART_"+base)
	}
	return nonEmpty(candidates...)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

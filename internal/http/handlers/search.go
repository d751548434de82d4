package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jippymart/internal/repo"
	"jippymart/internal/services"
)

type SearchHandler struct {
	Errors
	search *services.SearchService
	mart   *services.MartService
}

func NewSearchHandler(search *services.SearchService, mart *services.MartService, errs Errors) *SearchHandler {
	return &SearchHandler{Errors: errs, search: search, mart: mart}
}

type unifiedRequest struct {
	Query     string   `query:"query" validate:"required,min=2"`
	ZoneID    string   `query:"zone_id" validate:"required"`
	Latitude  *float64 `query:"latitude"`
	Longitude *float64 `query:"longitude"`
	Limit     int      `query:"limit" validate:"min=1,max=100"`
	Page      int      `query:"page" validate:"min=1"`
}

// Unified godoc
// @Summary Unified search
// @Description Restaurants, products and categories of a zone matching a text.
// @Tags search
// @Produce json
// @Param query query string true "Search text, at least 2 characters"
// @Param zone_id query string true "Zone ID"
// @Param latitude query number false "Latitude"
// @Param longitude query number false "Longitude"
// @Param limit query int false "Page size (1-100, default 20)"
// @Param page query int false "Page (default 1)"
// @Success 200 {object} services.UnifiedResult
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /search [get]
func (h *SearchHandler) Unified(c echo.Context) error {
	p := newParams(c)
	req := unifiedRequest{
		Query:     p.str("query"),
		ZoneID:    p.str("zone_id"),
		Latitude:  p.float("latitude"),
		Longitude: p.float("longitude"),
		Limit:     p.intOr("limit", 20),
		Page:      p.intOr("page", 1),
	}
	if ok, err := validated(c, req, p.errs); !ok {
		return err
	}

	result, err := h.search.Unified(c.Request().Context(), services.UnifiedQuery{
		Query:     req.Query,
		ZoneID:    req.ZoneID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Limit:     req.Limit,
		Page:      req.Page,
	})
	if err != nil {
		return h.internal(c, err, "Failed to perform search", "query", req.Query, "zone_id", req.ZoneID)
	}
	return c.JSON(http.StatusOK, result)
}

type martCategoryRequest struct {
	Q     string `query:"q" validate:"max=100"`
	Page  int    `query:"page" validate:"min=1,max=100"`
	Limit int    `query:"limit" validate:"min=1,max=50"`
}

// MartCategories godoc
// @Summary Search mart categories
// @Tags search
// @Produce json
// @Param q query string false "Title or description contains"
// @Param page query int false "Page (1-100)"
// @Param limit query int false "Page size (1-50)"
// @Success 200 {object} services.MartCategoryResult
// @Failure 422 {object} map[string]interface{}
// @Router /search/categories [get]
func (h *SearchHandler) MartCategories(c echo.Context) error {
	p := newParams(c)
	req := martCategoryRequest{Q: p.str("q"), Page: p.intOr("page", 1), Limit: p.intOr("limit", 20)}
	if ok, err := validated(c, req, p.errs); !ok {
		return err
	}
	return c.JSON(http.StatusOK, h.mart.SearchCategories(c.Request().Context(), req.Q, req.Page, req.Limit))
}

type martItemRequest struct {
	Search      string   `query:"search" validate:"max=100"`
	Category    string   `query:"category" validate:"max=100"`
	Subcategory string   `query:"subcategory" validate:"max=100"`
	Vendor      string   `query:"vendor" validate:"max=100"`
	MinPrice    *float64 `query:"min_price" validate:"omitempty,min=0"`
	MaxPrice    *float64 `query:"max_price" validate:"omitempty,min=0"`
	Page        int      `query:"page" validate:"min=1"`
	Limit       int      `query:"limit" validate:"min=1,max=100"`
}

var martItemFilterNames = []string{
	"search", "category", "subcategory", "vendor", "min_price", "max_price",
	"veg", "isAvailable", "isBestSeller", "isFeature",
}

// MartItems godoc
// @Summary Search mart items
// @Description Published mart items ranked by relevance to the search words.
// @Tags search
// @Produce json
// @Param search query string false "Words to match in any order"
// @Param category query string false "Category ID"
// @Param subcategory query string false "Subcategory ID"
// @Param vendor query string false "Vendor ID"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param veg query bool false "Vegetarian"
// @Param isAvailable query bool false "Available"
// @Param isBestSeller query bool false "Best seller"
// @Param isFeature query bool false "Featured"
// @Param page query int false "Page"
// @Param limit query int false "Page size (1-100)"
// @Success 200 {object} services.MartItemResult
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /search/items [get]
func (h *SearchHandler) MartItems(c echo.Context) error {
	p := newParams(c)
	req := martItemRequest{
		Search:      p.str("search"),
		Category:    p.str("category"),
		Subcategory: p.str("subcategory"),
		Vendor:      p.str("vendor"),
		MinPrice:    p.float("min_price"),
		MaxPrice:    p.float("max_price"),
		Page:        p.intOr("page", 1),
		Limit:       p.intOr("limit", 20),
	}
	filter := repo.ItemFilter{
		Search:      p.optStr("search"),
		Category:    p.optStr("category"),
		Subcategory: p.optStr("subcategory"),
		Vendor:      p.optStr("vendor"),
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		Veg:         p.strictBool("veg"),
		IsAvailable: p.strictBool("isAvailable"),
		BestSeller:  p.strictBool("isBestSeller"),
		Feature:     p.strictBool("isFeature"),
	}
	if ok, err := validated(c, req, p.errs); !ok {
		return err
	}

	applied := map[string]any{}
	for _, name := range martItemFilterNames {
		if c.QueryParams().Has(name) {
			applied[name] = c.QueryParam(name)
		}
	}

	result, err := h.mart.SearchItems(c.Request().Context(), services.MartSearchParams{
		Filter:  filter,
		Filters: applied,
		Page:    req.Page,
		Limit:   req.Limit,
	})
	if err != nil {
		return h.internal(c, err, "Error searching mart items")
	}
	return c.JSON(http.StatusOK, result)
}

type featuredRequest struct {
	Type  string `query:"type" validate:"oneof=best_seller trending featured new spotlight"`
	Limit int    `query:"limit" validate:"min=1,max=50"`
}

// Featured godoc
// @Summary Featured mart items
// @Tags search
// @Produce json
// @Param type query string false "best_seller, trending, featured, new or spotlight"
// @Param limit query int false "At most 50"
// @Success 200 {object} services.FeaturedResult
// @Failure 422 {object} map[string]interface{}
// @Router /search/items/featured [get]
func (h *SearchHandler) Featured(c echo.Context) error {
	p := newParams(c)
	req := featuredRequest{Type: p.str("type"), Limit: p.intOr("limit", 20)}
	if req.Type == "" {
		req.Type = "featured"
	}
	if ok, err := validated(c, req, p.errs); !ok {
		return err
	}
	return c.JSON(http.StatusOK, h.mart.Featured(c.Request().Context(), req.Type, req.Limit))
}

// Health godoc
// @Summary Search health
// @Description Reports whether the catalog database answers. Always 200.
// @Tags search
// @Produce json
// @Success 200 {object} map[string]string
// @Router /search/health [get]
func (h *SearchHandler) Health(c echo.Context) error {
	status := "healthy"
	if !h.mart.Healthy(c.Request().Context()) {
		status = "unhealthy"
	}
	return c.JSON(http.StatusOK, map[string]string{"status": status})
}

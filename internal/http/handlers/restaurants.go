package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"jippymart/internal/services"
)

type RestaurantHandler struct {
	Errors
	restaurants *services.RestaurantService
}

func NewRestaurantHandler(restaurants *services.RestaurantService, errs Errors) *RestaurantHandler {
	return &RestaurantHandler{Errors: errs, restaurants: restaurants}
}

type nearestRequest struct {
	ZoneID    string   `query:"zone_id" validate:"required"`
	Latitude  *float64 `query:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `query:"longitude" validate:"required,min=-180,max=180"`
	Radius    *float64 `query:"radius" validate:"omitempty,min=0"`
	IsDining  *bool    `query:"is_dining"`
	UserID    string   `query:"user_id"`
	Filter    string   `query:"filter" validate:"omitempty,oneof=distance rating"`
}

// Nearest godoc
// @Summary Nearest restaurants
// @Description Restaurants of a zone around a point, open ones first. Cached for 24 hours unless refresh is set.
// @Tags restaurants
// @Produce json
// @Param zone_id query string true "Zone ID"
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param radius query number false "Radius in km"
// @Param is_dining query bool false "Only dine-in restaurants"
// @Param filter query string false "distance or rating"
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} services.NearestResult
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /restaurants/nearest [get]
func (h *RestaurantHandler) Nearest(c echo.Context) error {
	p := newParams(c)
	req := nearestRequest{
		ZoneID:    p.str("zone_id"),
		Latitude:  p.float("latitude"),
		Longitude: p.float("longitude"),
		Radius:    p.float("radius"),
		IsDining:  p.strictBool("is_dining"),
		UserID:    p.str("user_id"),
		Filter:    p.str("filter"),
	}
	if ok, err := validated(c, req, p.errs); !ok {
		return err
	}

	result, err := h.restaurants.Nearest(c.Request().Context(), services.NearestParams{
		ZoneID:    req.ZoneID,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Radius:    req.Radius,
		IsDining:  req.IsDining != nil && *req.IsDining,
		UserID:    req.UserID,
		Filter:    req.Filter,
		Refresh:   p.flag("refresh"),
	})
	if err != nil {
		return h.internal(c, err, "Failed to fetch nearest restaurants", "zone_id", req.ZoneID)
	}
	return c.JSON(http.StatusOK, result)
}

// Show godoc
// @Summary Get restaurant
// @Tags restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /restaurants/{id} [get]
func (h *RestaurantHandler) Show(c echo.Context) error {
	id := pathParam(c, "id")
	restaurant, err := h.restaurants.Show(c.Request().Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Restaurant not found")
	}
	if err != nil {
		return h.internal(c, err, "Failed to fetch restaurant", "id", id)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": restaurant})
}

// ByZone godoc
// @Summary Restaurants of a zone
// @Tags restaurants
// @Produce json
// @Param zone_id path string true "Zone ID"
// @Success 200 {object} services.RestaurantList
// @Failure 500 {object} map[string]interface{}
// @Router /restaurants/by-zone/{zone_id} [get]
func (h *RestaurantHandler) ByZone(c echo.Context) error {
	zoneID := pathParam(c, "zone_id")
	list, err := h.restaurants.ByZone(c.Request().Context(), zoneID)
	if err != nil {
		return h.internal(c, err, "Failed to fetch restaurants", "zone_id", zoneID)
	}
	return c.JSON(http.StatusOK, list)
}

type restaurantSearchRequest struct {
	Query     string   `query:"query" validate:"required,min=2"`
	ZoneID    string   `query:"zone_id"`
	Latitude  *float64 `query:"latitude"`
	Longitude *float64 `query:"longitude"`
}

// Search godoc
// @Summary Search restaurants
// @Description Matches title, description and location. Ordered by distance when coordinates are given.
// @Tags restaurants
// @Produce json
// @Param query query string true "Search text, at least 2 characters"
// @Param zone_id query string false "Zone ID"
// @Param latitude query number false "Latitude"
// @Param longitude query number false "Longitude"
// @Success 200 {object} services.RestaurantList
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /restaurants/search [get]
func (h *RestaurantHandler) Search(c echo.Context) error {
	p := newParams(c)
	req := restaurantSearchRequest{
		Query:     p.str("query"),
		ZoneID:    p.str("zone_id"),
		Latitude:  p.float("latitude"),
		Longitude: p.float("longitude"),
	}
	if ok, err := validated(c, req, p.errs); !ok {
		return err
	}

	list, err := h.restaurants.Search(c.Request().Context(), services.SearchParams{
		Query:     req.Query,
		ZoneID:    req.ZoneID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return h.internal(c, err, "Failed to search restaurants")
	}
	return c.JSON(http.StatusOK, list)
}

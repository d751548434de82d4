package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"jippymart/internal/services"
)

type VendorHandler struct {
	Errors
	restaurants *services.RestaurantService
	offers      *services.OfferService
	mart        *services.MartService
}

func NewVendorHandler(restaurants *services.RestaurantService, offers *services.OfferService, mart *services.MartService, errs Errors) *VendorHandler {
	return &VendorHandler{Errors: errs, restaurants: restaurants, offers: offers, mart: mart}
}

// Offers godoc
// @Summary Vendor offers
// @Description Public, enabled coupons of a vendor that have not expired.
// @Tags vendors
// @Produce json
// @Param vendorId path string true "Vendor ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /vendors/{vendorId}/offers [get]
func (h *VendorHandler) Offers(c echo.Context) error {
	vendorID := pathParam(c, "vendorId")
	offers, err := h.offers.ForVendor(c.Request().Context(), vendorID)
	if err != nil {
		return h.internal(c, err, "Failed to fetch offers", "vendor_id", vendorID)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": offers})
}

type categoryNearestRequest struct {
	Latitude  *float64 `query:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `query:"longitude" validate:"required,min=-180,max=180"`
	Radius    *float64 `query:"radius" validate:"omitempty,min=0"`
	Filter    string   `query:"filter" validate:"omitempty,oneof=distance rating"`
}

// NearestInCategory godoc
// @Summary Nearest vendors of a category
// @Description Open, published vendors of a category within a radius (default 10 km).
// @Tags vendors
// @Produce json
// @Param categoryId path string true "Category ID"
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param radius query number false "Radius in km"
// @Param filter query string false "distance or rating"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /vendors/category/{categoryId}/nearest [get]
func (h *VendorHandler) NearestInCategory(c echo.Context) error {
	p := newParams(c)
	req := categoryNearestRequest{
		Latitude:  p.float("latitude"),
		Longitude: p.float("longitude"),
		Radius:    p.float("radius"),
		Filter:    p.str("filter"),
	}
	if ok, err := validated(c, req, p.errs); !ok {
		return err
	}
	radius := 10.0
	if req.Radius != nil {
		radius = *req.Radius
	}
	if req.Filter == "" {
		req.Filter = services.FilterDistance
	}

	categoryID := pathParam(c, "categoryId")
	vendors, err := h.restaurants.NearestInCategory(c.Request().Context(), categoryID, *req.Latitude, *req.Longitude, radius, req.Filter)
	if err != nil {
		return h.internal(c, err, "Failed to fetch vendors", "category_id", categoryID)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "count": len(vendors), "data": vendors})
}

// MartVendor godoc
// @Summary Get mart vendor
// @Description Accepts the id with or without the mart_ prefix.
// @Tags mart
// @Produce json
// @Param vendorId path string true "Vendor ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /mart/vendors/{vendorId} [get]
func (h *VendorHandler) MartVendor(c echo.Context) error {
	vendorID := pathParam(c, "vendorId")
	vendor, err := h.mart.Vendor(c.Request().Context(), vendorID)
	if errors.Is(err, services.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Mart vendor not found")
	}
	if err != nil {
		return h.internal(c, err, "Failed to fetch mart vendor", "vendor_id", vendorID)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": vendor})
}

// DefaultMart godoc
// @Summary Default mart vendor
// @Description The newest open and published mart.
// @Tags mart
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /mart/vendors/default [get]
func (h *VendorHandler) DefaultMart(c echo.Context) error {
	vendor, err := h.mart.DefaultVendor(c.Request().Context())
	if errors.Is(err, services.ErrNotFound) {
		return fail(c, http.StatusNotFound, "No mart vendors available")
	}
	if err != nil {
		return h.internal(c, err, "Failed to fetch default mart vendor")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": vendor})
}

// MartsInZone godoc
// @Summary Mart vendors of a zone
// @Tags mart
// @Produce json
// @Param zoneId path string true "Zone ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /mart/vendors/zone/{zoneId} [get]
func (h *VendorHandler) MartsInZone(c echo.Context) error {
	zoneID := pathParam(c, "zoneId")
	if zoneID == "" {
		return fail(c, http.StatusBadRequest, "Zone ID is required")
	}
	vendors, err := h.mart.VendorsInZone(c.Request().Context(), zoneID)
	if err != nil {
		return h.internal(c, err, "Failed to fetch mart vendors by zone", "zone_id", zoneID)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"count":   len(vendors),
		"zone_id": zoneID,
		"data":    vendors,
	})
}

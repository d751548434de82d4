package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jippymart/internal/services"
)

// CacheHandler exposes the response cache maintenance endpoints.
type CacheHandler struct {
	admin *services.CacheAdminService
}

func NewCacheHandler(admin *services.CacheAdminService) *CacheHandler {
	return &CacheHandler{admin: admin}
}

type flushRequest struct {
	VendorID string `query:"vendor_id"`
	ZoneID   string `query:"zone_id"`
	Position string `query:"position" validate:"omitempty,oneof=top middle bottom all"`
}

// boolOr reads an optional strict boolean.
func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// FlushProducts godoc
// @Summary Flush product caches
// @Description Clears the feed and product list entries of a vendor, or of every vendor when no vendor_id is given.
// @Tags cache
// @Produce json
// @Param vendor_id query string false "Vendor ID"
// @Param all query bool false "Clear every vendor"
// @Success 200 {object} services.FlushResult
// @Failure 422 {object} map[string]interface{}
// @Router /cache/flush/products [post]
func (h *CacheHandler) FlushProducts(c echo.Context) error {
	p := newParams(c)
	req := flushRequest{VendorID: p.str("vendor_id")}
	all := p.strictBool("all")
	if ok, err := validated(c, req, p.errs); !ok {
		return err
	}
	return c.JSON(http.StatusOK, h.admin.FlushProducts(c.Request().Context(), req.VendorID, boolOr(all, req.VendorID == "")))
}

// FlushRestaurants godoc
// @Summary Flush restaurant caches
// @Description Clears the nearest restaurant entries of a zone, or of every zone when no zone_id is given.
// @Tags cache
// @Produce json
// @Param zone_id query string false "Zone ID"
// @Param all query bool false "Clear every zone"
// @Success 200 {object} services.FlushResult
// @Failure 422 {object} map[string]interface{}
// @Router /cache/flush/restaurants [post]
func (h *CacheHandler) FlushRestaurants(c echo.Context) error {
	p := newParams(c)
	req := flushRequest{ZoneID: p.str("zone_id")}
	all := p.strictBool("all")
	if ok, err := validated(c, req, p.errs); !ok {
		return err
	}
	return c.JSON(http.StatusOK, h.admin.FlushRestaurants(c.Request().Context(), req.ZoneID, boolOr(all, req.ZoneID == "")))
}

// FlushAll godoc
// @Summary Flush the whole cache
// @Tags cache
// @Produce json
// @Success 200 {object} services.FlushResult
// @Router /cache/flush/all [post]
func (h *CacheHandler) FlushAll(c echo.Context) error {
	return c.JSON(http.StatusOK, h.admin.FlushEverything(c.Request().Context()))
}

// FlushSettings godoc
// @Summary Flush settings caches
// @Description Clears the mobile and delivery charge entries and reloads the settings.
// @Tags cache
// @Produce json
// @Success 200 {object} services.FlushResult
// @Router /cache/flush/settings [post]
func (h *CacheHandler) FlushSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.admin.FlushSettings(c.Request().Context()))
}

// FlushCategories godoc
// @Summary Flush category caches
// @Tags cache
// @Produce json
// @Success 200 {object} services.FlushResult
// @Router /cache/flush/categories [post]
func (h *CacheHandler) FlushCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.admin.FlushCategories(c.Request().Context()))
}

// FlushMenuItems godoc
// @Summary Flush menu banner caches
// @Tags cache
// @Produce json
// @Param position query string false "top, middle, bottom or all"
// @Param zone_id query string false "Zone ID"
// @Param all query bool false "Clear every banner entry"
// @Success 200 {object} services.FlushResult
// @Failure 422 {object} map[string]interface{}
// @Router /cache/flush/menu-items [post]
func (h *CacheHandler) FlushMenuItems(c echo.Context) error {
	p := newParams(c)
	req := flushRequest{ZoneID: p.str("zone_id"), Position: p.str("position")}
	all := p.strictBool("all")
	if ok, err := validated(c, req, p.errs); !ok {
		return err
	}
	return c.JSON(http.StatusOK, h.admin.FlushMenuItems(c.Request().Context(), req.Position, req.ZoneID, boolOr(all, false)))
}

// Stats godoc
// @Summary Cache statistics
// @Tags cache
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /cache/stats [get]
func (h *CacheHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": h.admin.Stats()})
}

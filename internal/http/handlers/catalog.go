package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"jippymart/internal/services"
)

type CategoryHandler struct {
	Errors
	categories *services.CategoryService
}

func NewCategoryHandler(categories *services.CategoryService, errs Errors) *CategoryHandler {
	return &CategoryHandler{Errors: errs, categories: categories}
}

// Home godoc
// @Summary Home categories
// @Description Published categories flagged for the home screen, cached for 24 hours.
// @Tags categories
// @Produce json
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} services.CategoryList
// @Failure 500 {object} map[string]interface{}
// @Router /categories/home [get]
func (h *CategoryHandler) Home(c echo.Context) error {
	list, err := h.categories.Home(c.Request().Context(), newParams(c).flag("refresh"))
	if err != nil {
		return h.internal(c, err, "Failed to fetch home categories")
	}
	return c.JSON(http.StatusOK, list)
}

// List godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} services.CategoryList
// @Failure 500 {object} map[string]interface{}
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	list, err := h.categories.All(c.Request().Context(), newParams(c).flag("refresh"))
	if err != nil {
		return h.internal(c, err, "Failed to fetch categories")
	}
	return c.JSON(http.StatusOK, list)
}

// Show godoc
// @Summary Get vendor category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /vendor-categories/{id} [get]
func (h *CategoryHandler) Show(c echo.Context) error {
	id := pathParam(c, "id")
	category, err := h.categories.Find(c.Request().Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Category not found")
	}
	if err != nil {
		return h.internal(c, err, "Failed to fetch category", "id", id)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": category})
}

type BannerHandler struct {
	Errors
	banners *services.MenuItemService
}

func NewBannerHandler(banners *services.MenuItemService, errs Errors) *BannerHandler {
	return &BannerHandler{Errors: errs, banners: banners}
}

type bannerRequest struct {
	ZoneID   string `query:"zone_id"`
	Position string `query:"position" validate:"omitempty,oneof=top middle bottom"`
}

// ByPosition returns the handler of one banner position.
//
// @Summary Menu item banners of a position
// @Tags banners
// @Produce json
// @Param position path string true "top, middle or bottom"
// @Param zone_id query string false "Zone ID"
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} services.BannerList
// @Failure 500 {object} map[string]interface{}
// @Router /menu-items/banners/{position} [get]
func (h *BannerHandler) ByPosition(position string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p := newParams(c)
		zoneID := p.str("zone_id")
		list, err := h.banners.ByPosition(c.Request().Context(), position, zoneID, p.flag("refresh"))
		if err != nil {
			return h.internal(c, err, fmt.Sprintf("Failed to fetch %s menu item banners", position), "zone_id", zoneID)
		}
		return c.JSON(http.StatusOK, list)
	}
}

// List godoc
// @Summary Menu item banners
// @Tags banners
// @Produce json
// @Param zone_id query string false "Zone ID"
// @Param position query string false "Only this position"
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} services.BannerList
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /menu-items/banners [get]
func (h *BannerHandler) List(c echo.Context) error {
	p := newParams(c)
	req := bannerRequest{ZoneID: p.str("zone_id"), Position: p.str("position")}
	if ok, err := validated(c, req, p.errs); !ok {
		return err
	}

	list, err := h.banners.All(c.Request().Context(), req.ZoneID, req.Position, p.flag("refresh"))
	if err != nil {
		return h.internal(c, err, "Failed to fetch menu item banners", "zone_id", req.ZoneID)
	}
	return c.JSON(http.StatusOK, list)
}

// Show godoc
// @Summary Get menu item banner
// @Tags banners
// @Produce json
// @Param id path string true "Banner ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /menu-items/banners/{id} [get]
func (h *BannerHandler) Show(c echo.Context) error {
	id := pathParam(c, "id")
	banner, err := h.banners.Show(c.Request().Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Menu item banner not found")
	}
	if err != nil {
		return h.internal(c, err, "Failed to fetch menu item banner", "id", id)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": banner})
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"jippymart/internal/cache"
	"jippymart/internal/services"
)

type ProductHandler struct {
	Errors
	products *services.ProductService
}

func NewProductHandler(products *services.ProductService, errs Errors) *ProductHandler {
	return &ProductHandler{Errors: errs, products: products}
}

// ByVendor godoc
// @Summary Products of a vendor
// @Description Published and available products of one vendor, cached for 24 hours.
// @Tags products
// @Produce json
// @Param vendorId path string true "Vendor ID"
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} services.VendorProducts
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /vendors/{vendorId}/products [get]
func (h *ProductHandler) ByVendor(c echo.Context) error {
	vendorID := pathParam(c, "vendorId")
	if vendorID == "" {
		return fail(c, http.StatusBadRequest, "Invalid vendor ID provided.")
	}

	body, err := h.products.ByVendor(c.Request().Context(), vendorID, newParams(c).flag("refresh"))
	if err != nil {
		return h.internal(c, err, "Error fetching vendor products", "vendor_id", vendorID)
	}
	return c.JSON(http.StatusOK, body)
}

type pageLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

func pageURL(c echo.Context, page int) string {
	r := c.Request()
	return fmt.Sprintf("%s://%s%s?page=%d", c.Scheme(), r.Host, r.URL.Path, page)
}

// List godoc
// @Summary List products
// @Description Published and available products of every vendor, ordered by name.
// @Tags products
// @Produce json
// @Param page query int false "Page, from 1"
// @Param per_page query int false "Page size, at most 200"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	p := newParams(c)
	page, err := h.products.Page(c.Request().Context(), p.intOr("page", 1), p.intOr("per_page", services.DefaultPerPage))
	if err != nil {
		return h.internal(c, err, "Error fetching products")
	}

	links := pageLinks{First: pageURL(c, 1), Last: pageURL(c, page.LastPage)}
	if page.CurrentPage > 1 {
		prev := pageURL(c, page.CurrentPage-1)
		links.Prev = &prev
	}
	if page.CurrentPage < page.LastPage {
		next := pageURL(c, page.CurrentPage+1)
		links.Next = &next
	}
	message := "Products retrieved successfully"
	if len(page.Items) == 0 {
		message = "No available products found"
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data":    page.Items,
		"meta": map[string]any{
			"total":        page.Total,
			"per_page":     page.PerPage,
			"current_page": page.CurrentPage,
			"last_page":    page.LastPage,
		},
		"links":   links,
		"message": message,
	})
}

// Feed godoc
// @Summary Restaurant product feed
// @Description Menu of a restaurant with active promotions, final prices and category summaries.
// @Tags products
// @Produce json
// @Param vendorId path string true "Vendor ID"
// @Param search query string false "Name or description contains"
// @Param is_veg query bool false "Vegetarian only"
// @Param is_nonveg query bool false "Non vegetarian only"
// @Param offer_only query bool false "Only products on offer"
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} services.ProductFeed
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /restaurants/{vendorId}/products/feed [get]
func (h *ProductHandler) Feed(c echo.Context) error {
	vendorID := pathParam(c, "vendorId")
	if vendorID == "" {
		return fail(c, http.StatusBadRequest, "Invalid vendor ID provided.")
	}

	p := newParams(c)
	filters := cache.FeedFilters{
		Search:    p.optStr("search"),
		IsVeg:     nullableBool(p.raw("is_veg")),
		IsNonVeg:  nullableBool(p.raw("is_nonveg")),
		OfferOnly: nullableBool(p.raw("offer_only")),
	}

	feed, err := h.products.Feed(c.Request().Context(), vendorID, filters, p.flag("refresh"))
	if errors.Is(err, services.ErrInvalidInput) {
		return fail(c, http.StatusBadRequest, "Invalid vendor ID provided.")
	}
	if err != nil {
		return h.internal(c, err, "Unable to load restaurant products at the moment.", "vendor_id", vendorID)
	}
	return c.JSON(http.StatusOK, feed)
}

// Show godoc
// @Summary Get product
// @Description One product with its active promotion and category.
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /products/{id} [get]
func (h *ProductHandler) Show(c echo.Context) error {
	id := pathParam(c, "id")
	product, err := h.products.Show(c.Request().Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return h.internal(c, err, "Unable to load product at the moment.", "product_id", id)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": product})
}

// Raw godoc
// @Summary Get stored product row
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /vendor-products/{id} [get]
func (h *ProductHandler) Raw(c echo.Context) error {
	id := pathParam(c, "id")
	product, err := h.products.Raw(c.Request().Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return h.internal(c, err, "Failed to fetch product", "product_id", id)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": product})
}

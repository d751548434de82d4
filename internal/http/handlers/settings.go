package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"jippymart/internal/cache"
	"jippymart/internal/http/middleware"
	"jippymart/internal/settings"
	"jippymart/pkg/models"
)

// VendorAttributeLister reads the vendor_attributes table.
type VendorAttributeLister interface {
	VendorAttributes(ctx context.Context) ([]models.VendorAttribute, error)
}

type SettingsHandler struct {
	Errors
	settings   *settings.Service
	cache      *cache.Cache
	attributes VendorAttributeLister
}

func NewSettingsHandler(s *settings.Service, c *cache.Cache, attributes VendorAttributeLister, errs Errors) *SettingsHandler {
	return &SettingsHandler{Errors: errs, settings: s, cache: c, attributes: attributes}
}

// All godoc
// @Summary All settings
// @Description Global, distance, language, version, map, notification and currency settings in one call.
// @Tags settings
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /settings [get]
func (h *SettingsHandler) All(c echo.Context) error {
	data, err := h.settings.All(c.Request().Context())
	if err != nil {
		return h.internal(c, err, "Error fetching settings")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": data})
}

// Document returns the handler of one typed settings accessor. The document
// is sent as stored, without an envelope.
//
// @Summary Settings document
// @Tags settings
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /settings/global [get]
// @Router /settings/distance [get]
// @Router /settings/languages [get]
// @Router /settings/version [get]
// @Router /settings/map [get]
// @Router /settings/notification [get]
// @Router /settings/restaurant [get]
// @Router /settings/admin-commission [get]
// @Router /settings/driver [get]
func (h *SettingsHandler) Document(get func(*settings.Service) any) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, get(h.settings))
	}
}

// Currency godoc
// @Summary Active currency
// @Description Falls back to Indian Rupee when no currency is active.
// @Tags settings
// @Produce json
// @Success 200 {object} settings.Currency
// @Router /settings/currency [get]
func (h *SettingsHandler) Currency(c echo.Context) error {
	cur, err := h.settings.Currency(c.Request().Context())
	if err != nil {
		log.Warn().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("Failed to load currency, using default")
	}
	return c.JSON(http.StatusOK, cur)
}

type mobileSettings struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
}

// Mobile godoc
// @Summary Mobile app settings
// @Description Raw documents and derived values used by the customer app, cached for 24 hours.
// @Tags settings
// @Produce json
// @Param refresh query bool false "Reload the settings and bypass the cache"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /settings/mobile [get]
func (h *SettingsHandler) Mobile(c echo.Context) error {
	ctx := c.Request().Context()
	refresh := newParams(c).flag("refresh")
	if refresh {
		h.reload(c)
	}

	body, err := cache.RememberValue(ctx, h.cache, cache.MobileSettingsKey, cache.DefaultTTL, refresh, func(ctx context.Context) (mobileSettings, error) {
		data, err := h.settings.Mobile(ctx)
		if err != nil {
			return mobileSettings{}, err
		}
		return mobileSettings{Success: true, Data: data}, nil
	})
	if err != nil {
		return h.internal(c, err, "Unable to fetch settings right now.")
	}
	return c.JSON(http.StatusOK, body)
}

// DeliveryCharge godoc
// @Summary Delivery charge settings
// @Tags settings
// @Produce json
// @Param refresh query bool false "Reload the settings and bypass the cache"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /settings/delivery-charge [get]
func (h *SettingsHandler) DeliveryCharge(c echo.Context) error {
	ctx := c.Request().Context()
	refresh := newParams(c).flag("refresh")
	if refresh {
		h.reload(c)
	}

	body, err := cache.RememberValue(ctx, h.cache, cache.DeliveryChargeSettingsKey, cache.DefaultTTL, refresh, func(context.Context) (mobileSettings, error) {
		return mobileSettings{Success: true, Data: h.settings.DeliveryCharge()}, nil
	})
	if err != nil {
		return h.internal(c, err, "Unable to fetch delivery charge settings.")
	}
	return c.JSON(http.StatusOK, body)
}

func (h *SettingsHandler) reload(c echo.Context) {
	if err := h.settings.Load(c.Request().Context()); err != nil {
		log.Warn().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("Settings reload failed, serving the previous snapshot")
	}
}

// forgetDerived drops the cached responses built from the settings.
func (h *SettingsHandler) forgetDerived(ctx context.Context) {
	for _, key := range cache.SettingsKeys {
		if _, err := h.cache.Forget(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Failed to forget settings cache entry")
		}
	}
}

// Show godoc
// @Summary Get settings document
// @Tags settings
// @Produce json
// @Param name path string true "Document name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /settings/documents/{name} [get]
func (h *SettingsHandler) Show(c echo.Context) error {
	doc, ok := h.settings.Document(pathParam(c, "name"))
	if !ok {
		return fail(c, http.StatusNotFound, "Settings document not found")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": doc})
}

// Update godoc
// @Summary Replace settings document
// @Description Creates the document when it does not exist. Clears the cached settings responses.
// @Tags settings
// @Accept json
// @Produce json
// @Param name path string true "Document name"
// @Param fields body object true "Document fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /settings/documents/{name} [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	name := pathParam(c, "name")
	var fields map[string]any
	if err := bindBody(c, &fields); err != nil {
		return fail(c, http.StatusBadRequest, "Settings document must be a JSON object")
	}

	ctx := c.Request().Context()
	if err := h.settings.UpdateDocument(ctx, name, fields); err != nil {
		return h.internal(c, err, "Failed to update settings", "document", name)
	}
	h.forgetDerived(ctx)
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Settings updated successfully",
		"data":    h.settings.Object(name),
	})
}

// Field godoc
// @Summary Get settings field
// @Tags settings
// @Produce json
// @Param name path string true "Document name"
// @Param field path string true "Field name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /settings/documents/{name}/fields/{field} [get]
func (h *SettingsHandler) Field(c echo.Context) error {
	value := h.settings.Field(pathParam(c, "name"), pathParam(c, "field"), nil)
	if value == nil {
		return fail(c, http.StatusNotFound, "Settings field not found")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": value})
}

type setFieldRequest struct {
	Value any `json:"value"`
}

// SetField godoc
// @Summary Set settings field
// @Tags settings
// @Accept json
// @Produce json
// @Param name path string true "Document name"
// @Param field path string true "Field name"
// @Param body body setFieldRequest true "New value"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /settings/documents/{name}/fields/{field} [put]
func (h *SettingsHandler) SetField(c echo.Context) error {
	name, field := pathParam(c, "name"), pathParam(c, "field")
	var req setFieldRequest
	if err := bindBody(c, &req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	ctx := c.Request().Context()
	if err := h.settings.SetField(ctx, name, field, req.Value); err != nil {
		return h.internal(c, err, "Failed to update settings", "document", name, "field", field)
	}
	h.forgetDerived(ctx)
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "Settings updated successfully"})
}

// VendorAttributes godoc
// @Summary Vendor attributes
// @Tags settings
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /vendor-attributes [get]
func (h *SettingsHandler) VendorAttributes(c echo.Context) error {
	attributes, err := h.attributes.VendorAttributes(c.Request().Context())
	if err != nil {
		return h.internal(c, err, "Unable to fetch vendor attributes.")
	}
	if attributes == nil {
		attributes = []models.VendorAttribute{}
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": attributes})
}

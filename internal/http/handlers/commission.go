package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"jippymart/internal/services"
)

type CommissionHandler struct {
	Errors
	commission *services.CommissionService
}

func NewCommissionHandler(commission *services.CommissionService, errs Errors) *CommissionHandler {
	return &CommissionHandler{Errors: errs, commission: commission}
}

// Total godoc
// @Summary Total admin commission
// @Description Sum of the admin commission of every completed order, rounded to 2 decimals.
// @Tags commission
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /commission/total [get]
func (h *CommissionHandler) Total(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data":    map[string]any{"total_admin_commission": h.commission.Total(c.Request().Context())},
	})
}

// Order godoc
// @Summary Commission of an order
// @Tags commission
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} services.OrderCommission
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /commission/orders/{id} [get]
func (h *CommissionHandler) Order(c echo.Context) error {
	id := pathParam(c, "id")
	oc, err := h.commission.ForOrder(c.Request().Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return h.internal(c, err, "Failed to calculate commission", "order_id", id)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": oc})
}

// Recalculate godoc
// @Summary Store the commission of an order
// @Tags commission
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /commission/orders/{id}/recalculate [post]
func (h *CommissionHandler) Recalculate(c echo.Context) error {
	id := pathParam(c, "id")
	amount, err := h.commission.Recalculate(c.Request().Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return h.internal(c, err, "Failed to update commission", "order_id", id)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Commission updated successfully",
		"data":    map[string]any{"order_id": id, "adminCommission": amount},
	})
}

type recalculateRequest struct {
	Limit int `query:"limit" validate:"min=0"`
}

// RecalculateAll godoc
// @Summary Store the commission of completed orders
// @Tags commission
// @Produce json
// @Param limit query int false "At most this many orders, 0 for all"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /commission/recalculate [post]
func (h *CommissionHandler) RecalculateAll(c echo.Context) error {
	p := newParams(c)
	req := recalculateRequest{Limit: p.intOr("limit", 0)}
	if ok, err := validated(c, req, p.errs); !ok {
		return err
	}

	n, err := h.commission.RecalculateAll(c.Request().Context(), req.Limit)
	if err != nil {
		return h.internal(c, err, "Failed to recalculate commissions")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Commissions recalculated successfully",
		"data":    map[string]any{"updated": n},
	})
}

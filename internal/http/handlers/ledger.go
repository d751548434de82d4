package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"jippymart/internal/http/middleware"
	"jippymart/internal/services"
)

// LedgerHandler serves the payout and wallet tables of the admin console and
// the owner summaries shown above them.
type LedgerHandler struct {
	Errors
	ledger *services.LedgerService
}

func NewLedgerHandler(ledger *services.LedgerService, errs Errors) *LedgerHandler {
	return &LedgerHandler{Errors: errs, ledger: ledger}
}

// tableQuery reads the server side table parameters. ownerParam names the
// optional owner filter.
func tableQuery(c echo.Context, ownerParam string) services.TableQuery {
	p := newParams(c)
	return services.TableQuery{
		Draw:        p.intOr("draw", 0),
		Start:       p.intOr("start", 0),
		Length:      p.intOr("length", 10),
		Search:      p.str("search[value]"),
		OrderColumn: p.intOr("order[0][column]", 0),
		OrderDir:    p.str("order[0][dir]"),
		Owner:       p.str(ownerParam),
	}
}

func (h *LedgerHandler) tableError(c echo.Context, draw int, err error, message string) error {
	log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg(message)
	detail := message
	if h.Debug {
		detail += ": " + err.Error()
	}
	return c.JSON(http.StatusInternalServerError, services.EmptyTable(draw, detail))
}

// RestaurantPayouts godoc
// @Summary Restaurant payouts table
// @Tags ledger
// @Produce json
// @Param draw query int false "Echoed back"
// @Param start query int false "Offset"
// @Param length query int false "Page size, -1 for all"
// @Param search[value] query string false "Search text"
// @Param order[0][column] query int false "Sort column index"
// @Param order[0][dir] query string false "asc or desc"
// @Param vendor_id query string false "Only this vendor"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /admin/payouts/restaurants [get]
func (h *LedgerHandler) RestaurantPayouts(c echo.Context) error {
	q := tableQuery(c, "vendor_id")
	page, err := h.ledger.RestaurantPayouts(c.Request().Context(), q)
	if err != nil {
		return h.tableError(c, q.Draw, err, "Error fetching payouts data")
	}
	return c.JSON(http.StatusOK, page)
}

// DriverPayouts godoc
// @Summary Driver payouts table
// @Tags ledger
// @Produce json
// @Param draw query int false "Echoed back"
// @Param start query int false "Offset"
// @Param length query int false "Page size, -1 for all"
// @Param search[value] query string false "Search text"
// @Param order[0][column] query int false "Sort column index"
// @Param order[0][dir] query string false "asc or desc"
// @Param driver_id query string false "Only this driver"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /admin/payouts/drivers [get]
func (h *LedgerHandler) DriverPayouts(c echo.Context) error {
	q := tableQuery(c, "driver_id")
	page, err := h.ledger.DriverPayouts(c.Request().Context(), q)
	if err != nil {
		return h.tableError(c, q.Draw, err, "Error fetching driver payouts data")
	}
	return c.JSON(http.StatusOK, page)
}

// Transactions godoc
// @Summary Wallet transactions table
// @Tags ledger
// @Produce json
// @Param draw query int false "Echoed back"
// @Param start query int false "Offset"
// @Param length query int false "Page size, -1 for all"
// @Param search[value] query string false "Search text"
// @Param order[0][column] query int false "Sort column index"
// @Param order[0][dir] query string false "asc or desc"
// @Param user_id query string false "Only this user"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /admin/transactions [get]
func (h *LedgerHandler) Transactions(c echo.Context) error {
	q := tableQuery(c, "user_id")
	page, err := h.ledger.WalletTransactions(c.Request().Context(), q)
	if err != nil {
		return h.tableError(c, q.Draw, err, "Error fetching wallet transactions")
	}
	return c.JSON(http.StatusOK, page)
}

// summary answers with the owner found by find, or 404 with notFound.
func (h *LedgerHandler) summary(c echo.Context, find func() (any, error), notFound, failed string) error {
	data, err := find()
	if errors.Is(err, services.ErrNotFound) {
		return fail(c, http.StatusNotFound, notFound)
	}
	if err != nil {
		return h.internal(c, err, failed, "id", pathParam(c, "id"))
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": data})
}

// VendorSummary godoc
// @Summary Vendor summary
// @Tags ledger
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} services.VendorSummary
// @Failure 404 {object} map[string]interface{}
// @Router /admin/vendors/{id}/summary [get]
func (h *LedgerHandler) VendorSummary(c echo.Context) error {
	return h.summary(c, func() (any, error) {
		return h.ledger.Vendor(c.Request().Context(), pathParam(c, "id"))
	}, "Vendor not found", "Error fetching vendor details")
}

// DriverSummary godoc
// @Summary Driver summary
// @Tags ledger
// @Produce json
// @Param id path string true "Driver ID"
// @Success 200 {object} services.UserSummary
// @Failure 404 {object} map[string]interface{}
// @Router /admin/drivers/{id}/summary [get]
func (h *LedgerHandler) DriverSummary(c echo.Context) error {
	return h.summary(c, func() (any, error) {
		return h.ledger.Driver(c.Request().Context(), pathParam(c, "id"))
	}, "Driver not found", "Error fetching driver details")
}

// UserSummary godoc
// @Summary User summary
// @Tags ledger
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} services.UserSummary
// @Failure 404 {object} map[string]interface{}
// @Router /admin/users/{id}/summary [get]
func (h *LedgerHandler) UserSummary(c echo.Context) error {
	return h.summary(c, func() (any, error) {
		return h.ledger.User(c.Request().Context(), pathParam(c, "id"))
	}, "User not found", "Error fetching user details")
}

package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"jippymart/internal/services"
)

// UserHandler serves the admin user management endpoints. Their envelope
// uses "status" instead of "success".
type UserHandler struct {
	Errors
	users *services.UserService
}

func NewUserHandler(users *services.UserService, errs Errors) *UserHandler {
	return &UserHandler{Errors: errs, users: users}
}

func statusFail(c echo.Context, code int, message string) error {
	return c.JSON(code, map[string]any{"status": false, "message": message})
}

// Create godoc
// @Summary Create user
// @Description Stores a customer with a bcrypt password and the next user_N id.
// @Tags admin-users
// @Accept json
// @Produce json
// @Param user body services.CreateUserInput true "User data"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /admin/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var in services.CreateUserInput
	if err := bindBody(c, &in); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if ok, err := validated(c, in, fieldErrors{}); !ok {
		return err
	}

	created, err := h.users.Create(c.Request().Context(), in)
	if errors.Is(err, services.ErrEmailTaken) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"success": false,
			"message": "Validation failed",
			"errors":  fieldErrors{"email": {"The email has already been taken."}},
		})
	}
	if err != nil {
		return h.internal(c, err, "Failed to create user")
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"status":  true,
		"message": "User created successfully",
		"data":    created,
	})
}

func userQuery(c echo.Context) services.UserQuery {
	p := newParams(c)
	role := "customer"
	if c.QueryParams().Has("role") || c.FormValue("role") != "" {
		role = p.str("role")
	}
	return services.UserQuery{
		Role:      role,
		Active:    p.str("active"),
		ZoneID:    p.str("zoneId"),
		Search:    p.str("search"),
		DateRange: p.str("date_range"),
		From:      p.str("from"),
		To:        p.str("to"),
	}
}

// List godoc
// @Summary List users
// @Description Customers by default. Without a date preset or bounds only users created today (Asia/Kolkata) are listed.
// @Tags admin-users
// @Produce json
// @Param role query string false "Role, customer by default"
// @Param active query int false "1 or 0"
// @Param zoneId query string false "Zone of the shipping address"
// @Param search query string false "Name, email or phone contains"
// @Param date_range query string false "last_24_hours, last_week, last_month, all_orders or all_users"
// @Param from query string false "Created on or after"
// @Param to query string false "Created on or before"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} services.UserList
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	p := newParams(c)
	list, err := h.users.List(c.Request().Context(), userQuery(c), p.intOr("page", 1), p.intOr("limit", 10))
	if errors.Is(err, services.ErrInvalidInput) {
		return statusFail(c, http.StatusUnprocessableEntity, "Invalid date range")
	}
	if err != nil {
		return h.internal(c, err, "Failed to fetch users")
	}
	return c.JSON(http.StatusOK, list)
}

// Delete godoc
// @Summary Delete user
// @Tags admin-users
// @Produce json
// @Param id path string true "User ID or firebase ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id := pathParam(c, "id")
	err := h.users.Delete(c.Request().Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		return statusFail(c, http.StatusNotFound, "User not found")
	}
	if err != nil {
		return h.internal(c, err, "Failed to delete user", "user_id", id)
	}
	return c.JSON(http.StatusOK, map[string]any{"status": true})
}

type activeRequest struct {
	Active any `json:"active"`
}

// SetActive godoc
// @Summary Activate or deactivate user
// @Tags admin-users
// @Accept json
// @Produce json
// @Param id path string true "User ID or firebase ID"
// @Param body body activeRequest true "New state"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/users/{id}/active [patch]
func (h *UserHandler) SetActive(c echo.Context) error {
	var req activeRequest
	if c.Request().ContentLength != 0 {
		if err := bindBody(c, &req); err != nil {
			return statusFail(c, http.StatusBadRequest, "Invalid request body")
		}
	}
	if req.Active == nil {
		req.Active = c.QueryParam("active")
	}

	id := pathParam(c, "id")
	err := h.users.SetActive(c.Request().Context(), id, activeValue(req.Active))
	if errors.Is(err, services.ErrNotFound) {
		return statusFail(c, http.StatusNotFound, "User not found")
	}
	if err != nil {
		return h.internal(c, err, "Failed to update user", "user_id", id)
	}
	return c.JSON(http.StatusOK, map[string]any{"status": true})
}

// activeValue reads a boolean the way form checkboxes send it.
func activeValue(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t == 1
	case string:
		b := nullableBool(t)
		return b != nil && *b
	}
	return false
}

// Export godoc
// @Summary Export users
// @Description Same filters as the listing. Only csv is produced.
// @Tags admin-users
// @Produce text/csv
// @Param format query string false "csv"
// @Success 200 {file} file
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /admin/users/export [get]
func (h *UserHandler) Export(c echo.Context) error {
	format := strings.ToLower(newParams(c).str("format"))
	if format != "" && format != "csv" {
		return statusFail(c, http.StatusNotFound, "Export format not supported")
	}

	var buf bytes.Buffer
	err := h.users.ExportCSV(c.Request().Context(), &buf, userQuery(c))
	if errors.Is(err, services.ErrInvalidInput) {
		return statusFail(c, http.StatusUnprocessableEntity, "Invalid date range")
	}
	if err != nil {
		return h.internal(c, err, "Failed to export users")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="users.csv"`)
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

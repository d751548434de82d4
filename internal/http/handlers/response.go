package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"jippymart/internal/http/middleware"
)

// Errors writes the failure envelopes shared by every handler. With Debug
// set, internal errors carry their detail under "error".
type Errors struct {
	Debug bool
}

// fail writes {success:false, message}.
func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]any{"success": false, "message": message})
}

// internal logs err with the request id and answers 500 with message.
func (e Errors) internal(c echo.Context, err error, message string, fields ...string) error {
	event := log.Error().Err(err).
		Str("request_id", middleware.GetRequestID(c)).
		Str("path", c.Request().URL.Path)
	for i := 0; i+1 < len(fields); i += 2 {
		event = event.Str(fields[i], fields[i+1])
	}
	event.Msg(message)

	body := map[string]any{"success": false, "message": message}
	if e.Debug {
		body["error"] = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, body)
}

// fieldErrors collects validation messages per request field.
type fieldErrors map[string][]string

func (f fieldErrors) add(field, message string) {
	f[field] = append(f[field], message)
}

// validated runs the echo validator over req and merges its failures with
// the parse errors already collected. It returns a non-nil response error
// only when the request was rejected.
func validated(c echo.Context, req any, errs fieldErrors) (bool, error) {
	if err := c.Validate(req); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return false, err
		}
		for _, fe := range ve {
			if _, seen := errs[fe.Field()]; seen {
				continue
			}
			errs.add(fe.Field(), validationMessage(fe))
		}
	}
	if len(errs) == 0 {
		return true, nil
	}
	return false, c.JSON(http.StatusUnprocessableEntity, map[string]any{
		"success": false,
		"message": "Validation failed",
		"errors":  errs,
	})
}

func validationMessage(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	kind := fe.Kind()
	if kind == reflect.Ptr {
		kind = fe.Type().Elem().Kind()
	}
	text := kind == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", field)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "min":
		if text {
			return fmt.Sprintf("The %s field must be at least %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("The %s field must be at least %s.", field, fe.Param())
	case "max":
		if text {
			return fmt.Sprintf("The %s field must not be greater than %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("The %s field must not be greater than %s.", field, fe.Param())
	}
	return fmt.Sprintf("The %s field is invalid.", field)
}

// params reads query (or form) values, recording malformed ones.
type params struct {
	c    echo.Context
	errs fieldErrors
}

func newParams(c echo.Context) *params {
	return &params{c: c, errs: fieldErrors{}}
}

func (p *params) raw(name string) string {
	if v := p.c.QueryParam(name); v != "" {
		return strings.TrimSpace(v)
	}
	if p.c.Request().Method != http.MethodGet {
		return strings.TrimSpace(p.c.FormValue(name))
	}
	return ""
}

func (p *params) str(name string) string { return p.raw(name) }

// optStr is nil when the value is missing or blank.
func (p *params) optStr(name string) *string {
	v := p.raw(name)
	if v == "" {
		return nil
	}
	return &v
}

func (p *params) float(name string) *float64 {
	v := p.raw(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.errs.add(name, fmt.Sprintf("The %s field must be a number.", strings.ReplaceAll(name, "_", " ")))
		return nil
	}
	return &f
}

func (p *params) int(name string) *int {
	v := p.raw(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.errs.add(name, fmt.Sprintf("The %s field must be an integer.", strings.ReplaceAll(name, "_", " ")))
		return nil
	}
	return &n
}

// intOr is int with a default for missing values.
func (p *params) intOr(name string, def int) int {
	if n := p.int(name); n != nil {
		return *n
	}
	return def
}

// strictBool accepts true, false, 1 and 0 only.
func (p *params) strictBool(name string) *bool {
	v := strings.ToLower(p.raw(name))
	switch v {
	case "":
		return nil
	case "1", "true":
		b := true
		return &b
	case "0", "false":
		b := false
		return &b
	}
	p.errs.add(name, fmt.Sprintf("The %s field must be true or false.", strings.ReplaceAll(name, "_", " ")))
	return nil
}

// flag is a lenient boolean switch: only truthy words turn it on.
func (p *params) flag(name string) bool {
	b := nullableBool(p.raw(name))
	return b != nil && *b
}

// nullableBool maps the usual boolean words; anything else is nil.
func nullableBool(v string) *bool {
	var b bool
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		b = true
	case "0", "false", "no", "off":
		b = false
	default:
		return nil
	}
	return &b
}

// bindBody decodes the request body only, leaving path and query values out.
func bindBody(c echo.Context, dst any) error {
	return (&echo.DefaultBinder{}).BindBody(c, dst)
}

func pathParam(c echo.Context, name string) string {
	return strings.TrimSpace(c.Param(name))
}

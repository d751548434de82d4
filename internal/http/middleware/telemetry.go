package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// TracerName identifies spans created by the API.
const TracerName = "jippymart-api"

// spanParams are the lookup keys copied onto request spans when present.
var spanParams = []string{"zone_id", "zoneId", "vendorId", "vendor_id", "categoryId"}

// Telemetry opens one span per request. Without a configured provider the
// global no-op tracer is used.
func Telemetry() echo.MiddlewareFunc {
	tracer := otel.Tracer(TracerName)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route := c.Path()
			ctx, span := tracer.Start(req.Context(), req.Method+" "+route)
			defer span.End()

			attrs := []attribute.KeyValue{
				attribute.String("http.request.method", req.Method),
				attribute.String("http.route", route),
				attribute.String("url.query", req.URL.RawQuery),
				attribute.String("request.id", GetRequestID(c)),
			}
			for _, name := range spanParams {
				if v := c.Param(name); v != "" {
					attrs = append(attrs, attribute.String("jippymart."+name, v))
				} else if v := c.QueryParam(name); v != "" {
					attrs = append(attrs, attribute.String("jippymart."+name, v))
				}
			}
			span.SetAttributes(attrs...)
			c.SetRequest(req.WithContext(ctx))

			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			span.SetAttributes(attribute.Int("http.response.status_code", status))
			switch {
			case err != nil:
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			case status >= http.StatusInternalServerError:
				span.SetStatus(codes.Error, fmt.Sprintf("status %d", status))
			}
			return err
		}
	}
}

package middleware

import (
	"cmp"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"qrgen/internal/metrics"
)

const unmatchedRoute = "unmatched"

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

// Metrics records one HTTPMetric per request, keyed by route template. Routes whose
// template starts with one of skipPrefixes are not recorded.
func Metrics(recorder HTTPRecorder, skipPrefixes ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			path := cmp.Or(c.Path(), unmatchedRoute)
			for _, prefix := range skipPrefixes {
				if strings.HasPrefix(path, prefix) {
					return err
				}
			}

			statusCode := c.Response().Status
			var errStr string
			if err != nil {
				errStr = err.Error()
				var he *echo.HTTPError
				switch {
				case errors.As(err, &he):
					statusCode = he.Code
				case !c.Response().Committed:
					statusCode = http.StatusInternalServerError
				}
			}

			recorder.RecordHTTP(metrics.HTTPMetric{
				Time:       start,
				Method:     c.Request().Method,
				Path:       path,
				StatusCode: statusCode,
				DurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
				ClientIP:   c.RealIP(),
				Error:      errStr,
			})

			return err
		}
	}
}

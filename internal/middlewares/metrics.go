package middlewares

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/onurcolak/whatsapp-message-service/internal/metrics"
)

// Metrics records request counts and latency per route template. Errors are
// handed to Echo's error handler first so the recorded status is the one sent.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}

			metrics.ObserveHTTPRequest(c.Request().Method, path, c.Response().Status, time.Since(start))
			return nil
		}
	}
}

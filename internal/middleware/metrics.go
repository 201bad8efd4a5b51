package middleware

import (
	"strconv"
	"time"

	"github.com/deppfellow/pizzeria/internal/server"
	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware records request counts and latency per route template.
type MetricsMiddleware struct {
	server *server.Server
}

func NewMetricsMiddleware(s *server.Server) *MetricsMiddleware {
	return &MetricsMiddleware{server: s}
}

func (m *MetricsMiddleware) RecordRequests() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m.server.Metrics == nil {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			status := responseStatus(c, err)

			// Unknown paths would otherwise each get their own series.
			route := c.Path()
			if route == "" || isRouteNotFound(err) {
				route = unmatchedRoute
			}

			m.server.Metrics.RecordHTTPRequest(
				route,
				c.Request().Method,
				strconv.Itoa(status),
				time.Since(start).Seconds(),
			)

			return err
		}
	}
}

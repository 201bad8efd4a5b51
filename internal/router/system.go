package router

import (
	"github.com/deppfellow/pizzeria/internal/handler"
	"github.com/deppfellow/pizzeria/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes mounts the endpoints that are not part of the API:
// health, prometheus metrics and the docs UI with its static assets.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	if s.Metrics != nil {
		r.GET("/metrics", echo.WrapHandler(s.Metrics.Handler()))
	}

	r.StaticFS("/static", echo.MustSubFS(handler.StaticFiles, "static"))
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}

package handler

import (
	"embed"
	"fmt"
	"net/http"

	"github.com/deppfellow/pizzeria/internal/server"
	"github.com/labstack/echo/v4"
)

// StaticFiles holds the API docs: openapi.html and openapi.json.
//
//go:embed static
var StaticFiles embed.FS

// OpenAPIHandler serves the docs UI, which loads static/openapi.json.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := StaticFiles.ReadFile("static/openapi.html")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	return c.HTMLBlob(http.StatusOK, page)
}

package handler

import (
	"net/http"

	"github.com/deppfellow/pizzeria/internal/server"
	"github.com/labstack/echo/v4"
)

const indexPage = "<h1>Code challenge</h1>"

type IndexHandler struct {
	Handler
}

func NewIndexHandler(s *server.Server) *IndexHandler {
	return &IndexHandler{
		Handler: NewHandler(s),
	}
}

func (h *IndexHandler) Index(c echo.Context) error {
	return c.HTML(http.StatusOK, indexPage)
}

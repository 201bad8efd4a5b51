package handler

import (
	"net/http"

	"github.com/deppfellow/pizzeria/internal/model"
	"github.com/deppfellow/pizzeria/internal/server"
	"github.com/labstack/echo/v4"
)

type PizzaHandler struct {
	Handler
	pizzaService PizzaService
}

func NewPizzaHandler(s *server.Server, pizzaService PizzaService) *PizzaHandler {
	return &PizzaHandler{
		Handler:      NewHandler(s),
		pizzaService: pizzaService,
	}
}

func (h *PizzaHandler) ListPizzas(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.ListPizzasPayload) ([]model.Pizza, error) {
			return h.pizzaService.ListPizzas(c.Request().Context())
		},
		http.StatusOK,
		&model.ListPizzasPayload{},
	)(c)
}

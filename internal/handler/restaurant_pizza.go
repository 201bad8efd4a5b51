package handler

import (
	"net/http"

	"github.com/deppfellow/pizzeria/internal/model"
	"github.com/deppfellow/pizzeria/internal/server"
	"github.com/labstack/echo/v4"
)

type RestaurantPizzaHandler struct {
	Handler
	restaurantPizzaService RestaurantPizzaService
}

func NewRestaurantPizzaHandler(s *server.Server, restaurantPizzaService RestaurantPizzaService) *RestaurantPizzaHandler {
	return &RestaurantPizzaHandler{
		Handler:                NewHandler(s),
		restaurantPizzaService: restaurantPizzaService,
	}
}

func (h *RestaurantPizzaHandler) CreateRestaurantPizza(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreateRestaurantPizzaPayload) (*model.PopulatedRestaurantPizza, error) {
			return h.restaurantPizzaService.CreateRestaurantPizza(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&model.CreateRestaurantPizzaPayload{},
	)(c)
}

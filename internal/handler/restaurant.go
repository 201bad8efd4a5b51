package handler

import (
	"net/http"

	"github.com/deppfellow/pizzeria/internal/model"
	"github.com/deppfellow/pizzeria/internal/server"
	"github.com/labstack/echo/v4"
)

type RestaurantHandler struct {
	Handler
	restaurantService RestaurantService
}

func NewRestaurantHandler(s *server.Server, restaurantService RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		Handler:           NewHandler(s),
		restaurantService: restaurantService,
	}
}

func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.ListRestaurantsPayload) ([]model.Restaurant, error) {
			return h.restaurantService.ListRestaurants(c.Request().Context())
		},
		http.StatusOK,
		&model.ListRestaurantsPayload{},
	)(c)
}

func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.RestaurantIDPayload) (*model.RestaurantDetail, error) {
			return h.restaurantService.GetRestaurant(c.Request().Context(), payload.ID())
		},
		http.StatusOK,
		&model.RestaurantIDPayload{},
	)(c)
}

func (h *RestaurantHandler) DeleteRestaurant(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, payload *model.RestaurantIDPayload) error {
			return h.restaurantService.DeleteRestaurant(c.Request().Context(), payload.ID())
		},
		http.StatusNoContent,
		&model.RestaurantIDPayload{},
	)(c)
}

// Package handler is the HTTP layer between the router and the services.
//
// Handlers bind and validate requests through the validation package,
// call the service layer and write the response.
package handler

import (
	"context"

	"github.com/deppfellow/pizzeria/internal/model"
	"github.com/deppfellow/pizzeria/internal/server"
	"github.com/deppfellow/pizzeria/internal/service"
)

type RestaurantService interface {
	ListRestaurants(ctx context.Context) ([]model.Restaurant, error)
	GetRestaurant(ctx context.Context, id int) (*model.RestaurantDetail, error)
	DeleteRestaurant(ctx context.Context, id int) error
}

type PizzaService interface {
	ListPizzas(ctx context.Context) ([]model.Pizza, error)
}

type RestaurantPizzaService interface {
	CreateRestaurantPizza(ctx context.Context, payload *model.CreateRestaurantPizzaPayload) (*model.PopulatedRestaurantPizza, error)
}

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Index           *IndexHandler
	Restaurant      *RestaurantHandler
	Pizza           *PizzaHandler
	RestaurantPizza *RestaurantPizzaHandler
	Health          *HealthHandler
	OpenAPI         *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Index:           NewIndexHandler(s),
		Restaurant:      NewRestaurantHandler(s, services.Restaurant),
		Pizza:           NewPizzaHandler(s, services.Pizza),
		RestaurantPizza: NewRestaurantPizzaHandler(s, services.RestaurantPizza),
		Health:          NewHealthHandler(s),
		OpenAPI:         NewOpenAPIHandler(s),
	}
}

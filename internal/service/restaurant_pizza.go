package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/pizzeria/internal/errs"
	"github.com/deppfellow/pizzeria/internal/model"
)

type RestaurantPizzaService struct {
	dependencies
	restaurantPizzas RestaurantPizzaStore
	restaurants      RestaurantStore
	pizzas           PizzaStore
}

func NewRestaurantPizzaService(
	deps dependencies,
	restaurantPizzas RestaurantPizzaStore,
	restaurants RestaurantStore,
	pizzas PizzaStore,
) *RestaurantPizzaService {
	return &RestaurantPizzaService{
		dependencies:     deps,
		restaurantPizzas: restaurantPizzas,
		restaurants:      restaurants,
		pizzas:           pizzas,
	}
}

// CreateRestaurantPizza puts a pizza on a restaurant's menu.
//
// Every failure, from a missing field to a lost database connection, is
// reported as the generic validation error. The cause is kept for logs.
func (s *RestaurantPizzaService) CreateRestaurantPizza(ctx context.Context, payload *model.CreateRestaurantPizzaPayload) (*model.PopulatedRestaurantPizza, error) {
	rp, ok := payload.RestaurantPizza()
	if !ok {
		return nil, errs.NewValidationError(errors.New("price, pizza_id and restaurant_id are required"))
	}

	if _, err := s.pizzas.GetPizzaByID(ctx, rp.PizzaID); err != nil {
		return nil, errs.NewValidationError(fmt.Errorf("pizza %d: %w", rp.PizzaID, err))
	}

	if _, err := s.restaurants.GetRestaurantByID(ctx, rp.RestaurantID); err != nil {
		return nil, errs.NewValidationError(fmt.Errorf("restaurant %d: %w", rp.RestaurantID, err))
	}

	if err := rp.Validate(); err != nil {
		return nil, errs.NewValidationError(err)
	}

	created, err := s.restaurantPizzas.CreateRestaurantPizza(ctx, rp)
	if err != nil {
		return nil, errs.NewValidationError(err)
	}

	if s.metrics != nil {
		s.metrics.RecordRestaurantPizzaCreated()
	}

	s.logger.Info().
		Int("restaurant_pizza_id", created.ID).
		Int("restaurant_id", created.RestaurantID).
		Int("pizza_id", created.PizzaID).
		Msg("restaurant pizza created")

	s.invalidate(ctx, "restaurant pizza created")

	return created, nil
}

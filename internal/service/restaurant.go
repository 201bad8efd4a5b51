package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/pizzeria/internal/model"
)

type RestaurantService struct {
	dependencies
	restaurants RestaurantStore
	pizzas      PizzaStore
}

func NewRestaurantService(deps dependencies, restaurants RestaurantStore, pizzas PizzaStore) *RestaurantService {
	return &RestaurantService{
		dependencies: deps,
		restaurants:  restaurants,
		pizzas:       pizzas,
	}
}

func (s *RestaurantService) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	return readThrough(ctx, s.dependencies, restaurantsCacheKey, s.restaurants.ListRestaurants)
}

func (s *RestaurantService) GetRestaurant(ctx context.Context, id int) (*model.RestaurantDetail, error) {
	return s.restaurants.GetRestaurantDetail(ctx, id)
}

// DeleteRestaurant deletes the restaurant and its menu, then refreshes the
// cached restaurant list.
func (s *RestaurantService) DeleteRestaurant(ctx context.Context, id int) error {
	if err := s.restaurants.DeleteRestaurant(ctx, id); err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.RecordRestaurantDeleted()
	}

	s.logger.Info().Int("restaurant_id", id).Msg("restaurant deleted")

	s.invalidate(ctx, "restaurant deleted", restaurantsCacheKey)

	return nil
}

// WarmCache reloads both cached lists from the database.
func (s *RestaurantService) WarmCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	restaurants, err := s.restaurants.ListRestaurants(ctx)
	if err != nil {
		return fmt.Errorf("loading restaurants: %w", err)
	}
	if err := s.cache.Set(ctx, restaurantsCacheKey, restaurants); err != nil {
		return err
	}

	pizzas, err := s.pizzas.ListPizzas(ctx)
	if err != nil {
		return fmt.Errorf("loading pizzas: %w", err)
	}

	return s.cache.Set(ctx, pizzasCacheKey, pizzas)
}

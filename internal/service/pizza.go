package service

import (
	"context"

	"github.com/deppfellow/pizzeria/internal/model"
)

type PizzaService struct {
	dependencies
	pizzas PizzaStore
}

func NewPizzaService(deps dependencies, pizzas PizzaStore) *PizzaService {
	return &PizzaService{
		dependencies: deps,
		pizzas:       pizzas,
	}
}

func (s *PizzaService) ListPizzas(ctx context.Context) ([]model.Pizza, error) {
	return readThrough(ctx, s.dependencies, pizzasCacheKey, s.pizzas.ListPizzas)
}

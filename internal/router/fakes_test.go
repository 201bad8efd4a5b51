package router

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/deppfellow/pizzeria/internal/errs"
	"github.com/deppfellow/pizzeria/internal/model"
)

// store is an in-memory stand-in for the service layer.
type store struct {
	mu sync.Mutex

	restaurants      map[int]model.Restaurant
	pizzas           map[int]model.Pizza
	restaurantPizzas map[int]model.RestaurantPizza
	nextID           int

	listErr error
}

func newStore() *store {
	return &store{
		restaurants: map[int]model.Restaurant{
			1: {ID: 1, Name: "Karen's Pizza Shack", Address: "address1"},
			2: {ID: 2, Name: "Sanjay's Pizza", Address: "address2"},
			3: {ID: 3, Name: "Kiki's Pizza", Address: "address3"},
		},
		pizzas: map[int]model.Pizza{
			1: {ID: 1, Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
			2: {ID: 2, Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
			3: {ID: 3, Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
		},
		restaurantPizzas: map[int]model.RestaurantPizza{
			1: {ID: 1, Price: 1, RestaurantID: 1, PizzaID: 1},
			2: {ID: 2, Price: 4, RestaurantID: 2, PizzaID: 2},
			3: {ID: 3, Price: 5, RestaurantID: 3, PizzaID: 3},
		},
		nextID: 3,
	}
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func (s *store) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listErr != nil {
		return nil, s.listErr
	}

	list := []model.Restaurant{}
	for _, id := range sortedKeys(s.restaurants) {
		list = append(list, s.restaurants[id])
	}
	return list, nil
}

func (s *store) GetRestaurant(ctx context.Context, id int) (*model.RestaurantDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.restaurants[id]
	if !ok {
		return nil, model.ErrRestaurantNotFound()
	}

	detail := &model.RestaurantDetail{Restaurant: r, RestaurantPizzas: []model.RestaurantPizzaWithPizza{}}
	for _, rpID := range sortedKeys(s.restaurantPizzas) {
		rp := s.restaurantPizzas[rpID]
		if rp.RestaurantID == id {
			detail.RestaurantPizzas = append(detail.RestaurantPizzas, model.RestaurantPizzaWithPizza{
				RestaurantPizza: rp,
				Pizza:           s.pizzas[rp.PizzaID],
			})
		}
	}
	return detail, nil
}

func (s *store) DeleteRestaurant(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.restaurants[id]; !ok {
		return model.ErrRestaurantNotFound()
	}

	delete(s.restaurants, id)
	for rpID, rp := range s.restaurantPizzas {
		if rp.RestaurantID == id {
			delete(s.restaurantPizzas, rpID)
		}
	}
	return nil
}

func (s *store) ListPizzas(ctx context.Context) ([]model.Pizza, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := []model.Pizza{}
	for _, id := range sortedKeys(s.pizzas) {
		list = append(list, s.pizzas[id])
	}
	return list, nil
}

func (s *store) CreateRestaurantPizza(ctx context.Context, payload *model.CreateRestaurantPizzaPayload) (*model.PopulatedRestaurantPizza, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rp, ok := payload.RestaurantPizza()
	if !ok {
		return nil, errs.NewValidationError(errors.New("missing field"))
	}

	pizza, ok := s.pizzas[rp.PizzaID]
	if !ok {
		return nil, errs.NewValidationError(errors.New("unknown pizza"))
	}
	restaurant, ok := s.restaurants[rp.RestaurantID]
	if !ok {
		return nil, errs.NewValidationError(errors.New("unknown restaurant"))
	}
	if err := rp.Validate(); err != nil {
		return nil, errs.NewValidationError(err)
	}

	s.nextID++
	rp.ID = s.nextID
	s.restaurantPizzas[rp.ID] = rp

	return &model.PopulatedRestaurantPizza{
		RestaurantPizza: rp,
		Pizza:           pizza,
		Restaurant:      restaurant,
	}, nil
}

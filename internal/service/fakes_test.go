package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/deppfellow/pizzeria/internal/model"
	"github.com/rs/zerolog"
)

type fakeRestaurants struct {
	restaurants map[int]model.Restaurant
	menu        map[int][]model.RestaurantPizzaWithPizza
	listCalls   int
	err         error
}

func newFakeRestaurants() *fakeRestaurants {
	return &fakeRestaurants{
		restaurants: map[int]model.Restaurant{
			1: {ID: 1, Name: "Karen's Pizza Shack", Address: "address1"},
			2: {ID: 2, Name: "Sanjay's Pizza", Address: "address2"},
		},
		menu: map[int][]model.RestaurantPizzaWithPizza{},
	}
}

func (f *fakeRestaurants) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}

	list := []model.Restaurant{}
	for id := 1; id <= len(f.restaurants)+10; id++ {
		if r, ok := f.restaurants[id]; ok {
			list = append(list, r)
		}
	}
	return list, nil
}

func (f *fakeRestaurants) GetRestaurantByID(ctx context.Context, id int) (*model.Restaurant, error) {
	r, ok := f.restaurants[id]
	if !ok {
		return nil, model.ErrRestaurantNotFound()
	}
	return &r, nil
}

func (f *fakeRestaurants) GetRestaurantDetail(ctx context.Context, id int) (*model.RestaurantDetail, error) {
	r, ok := f.restaurants[id]
	if !ok {
		return nil, model.ErrRestaurantNotFound()
	}
	menu := f.menu[id]
	if menu == nil {
		menu = []model.RestaurantPizzaWithPizza{}
	}
	return &model.RestaurantDetail{Restaurant: r, RestaurantPizzas: menu}, nil
}

func (f *fakeRestaurants) DeleteRestaurant(ctx context.Context, id int) error {
	if _, ok := f.restaurants[id]; !ok {
		return model.ErrRestaurantNotFound()
	}
	delete(f.restaurants, id)
	delete(f.menu, id)
	return nil
}

type fakePizzas struct {
	pizzas    map[int]model.Pizza
	listCalls int
}

func newFakePizzas() *fakePizzas {
	return &fakePizzas{
		pizzas: map[int]model.Pizza{
			1: {ID: 1, Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
			2: {ID: 2, Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		},
	}
}

func (f *fakePizzas) ListPizzas(ctx context.Context) ([]model.Pizza, error) {
	f.listCalls++
	return []model.Pizza{f.pizzas[1], f.pizzas[2]}, nil
}

func (f *fakePizzas) GetPizzaByID(ctx context.Context, id int) (*model.Pizza, error) {
	p, ok := f.pizzas[id]
	if !ok {
		return nil, errors.New("pizza not found")
	}
	return &p, nil
}

type fakeRestaurantPizzas struct {
	restaurants *fakeRestaurants
	pizzas      *fakePizzas
	nextID      int
	err         error
}

func (f *fakeRestaurantPizzas) CreateRestaurantPizza(ctx context.Context, rp model.RestaurantPizza) (*model.PopulatedRestaurantPizza, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.nextID++
	rp.ID = f.nextID
	pizza := f.pizzas.pizzas[rp.PizzaID]
	f.restaurants.menu[rp.RestaurantID] = append(f.restaurants.menu[rp.RestaurantID], model.RestaurantPizzaWithPizza{
		RestaurantPizza: rp,
		Pizza:           pizza,
	})

	return &model.PopulatedRestaurantPizza{
		RestaurantPizza: rp,
		Pizza:           pizza,
		Restaurant:      f.restaurants.restaurants[rp.RestaurantID],
	}, nil
}

// fakeCache stores JSON like the redis cache does.
type fakeCache struct {
	entries map[string][]byte
	err     error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	raw, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (f *fakeCache) Set(ctx context.Context, key string, value any) error {
	if f.err != nil {
		return f.err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = raw
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	if f.err != nil {
		return f.err
	}
	for _, key := range keys {
		delete(f.entries, key)
	}
	return nil
}

type fakeEnqueuer struct {
	reasons []string
}

func (f *fakeEnqueuer) EnqueueCacheWarm(ctx context.Context, reason string) error {
	f.reasons = append(f.reasons, reason)
	return nil
}

type fakeRecorder struct {
	lookups map[string]int
	created int
	deleted int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{lookups: map[string]int{}}
}

func (f *fakeRecorder) RecordCacheLookup(key, result string) { f.lookups[key+":"+result]++ }
func (f *fakeRecorder) RecordRestaurantPizzaCreated()        { f.created++ }
func (f *fakeRecorder) RecordRestaurantDeleted()             { f.deleted++ }

type fixture struct {
	restaurants      *fakeRestaurants
	pizzas           *fakePizzas
	restaurantPizzas *fakeRestaurantPizzas
	cache            *fakeCache
	enqueuer         *fakeEnqueuer
	metrics          *fakeRecorder

	restaurantService      *RestaurantService
	pizzaService           *PizzaService
	restaurantPizzaService *RestaurantPizzaService
}

func newFixture(withCache bool) *fixture {
	logger := zerolog.Nop()

	f := &fixture{
		restaurants: newFakeRestaurants(),
		pizzas:      newFakePizzas(),
		enqueuer:    &fakeEnqueuer{},
		metrics:     newFakeRecorder(),
	}
	f.restaurantPizzas = &fakeRestaurantPizzas{restaurants: f.restaurants, pizzas: f.pizzas}

	deps := dependencies{
		logger:   &logger,
		enqueuer: f.enqueuer,
		metrics:  f.metrics,
	}
	if withCache {
		f.cache = newFakeCache()
		deps.cache = f.cache
	}

	f.restaurantService = NewRestaurantService(deps, f.restaurants, f.pizzas)
	f.pizzaService = NewPizzaService(deps, f.pizzas)
	f.restaurantPizzaService = NewRestaurantPizzaService(deps, f.restaurantPizzas, f.restaurants, f.pizzas)

	return f
}

func intPtr(v int) *int {
	return &v
}

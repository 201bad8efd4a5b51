// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated requests from handlers, applies the domain rules, and calls
// repository methods to read and persist data.
package service

import (
	"context"
	"time"

	"github.com/deppfellow/pizzeria/internal/lib/cache"
	"github.com/deppfellow/pizzeria/internal/model"
	"github.com/deppfellow/pizzeria/internal/repository"
	"github.com/deppfellow/pizzeria/internal/server"
)

const (
	restaurantsCacheKey = "restaurants:list"
	pizzasCacheKey      = "pizzas:list"
)

type RestaurantStore interface {
	ListRestaurants(ctx context.Context) ([]model.Restaurant, error)
	GetRestaurantByID(ctx context.Context, id int) (*model.Restaurant, error)
	GetRestaurantDetail(ctx context.Context, id int) (*model.RestaurantDetail, error)
	DeleteRestaurant(ctx context.Context, id int) error
}

type PizzaStore interface {
	ListPizzas(ctx context.Context) ([]model.Pizza, error)
	GetPizzaByID(ctx context.Context, id int) (*model.Pizza, error)
}

type RestaurantPizzaStore interface {
	CreateRestaurantPizza(ctx context.Context, rp model.RestaurantPizza) (*model.PopulatedRestaurantPizza, error)
}

// Cache is the read-through store for list results. A nil Cache disables
// caching.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

// Enqueuer schedules background cache warms. A nil Enqueuer skips them.
type Enqueuer interface {
	EnqueueCacheWarm(ctx context.Context, reason string) error
}

type Recorder interface {
	RecordCacheLookup(key, result string)
	RecordRestaurantPizzaCreated()
	RecordRestaurantDeleted()
}

type Services struct {
	Restaurant      *RestaurantService
	Pizza           *PizzaService
	RestaurantPizza *RestaurantPizzaService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var (
		listCache Cache
		enqueuer  Enqueuer
	)

	if s.Redis != nil {
		listCache = cache.New(s.Redis, time.Duration(s.Config.Redis.CacheTTL)*time.Second)
	}
	if s.Job != nil {
		enqueuer = s.Job
	}

	deps := dependencies{
		logger:   s.Logger,
		cache:    listCache,
		enqueuer: enqueuer,
	}
	if s.Metrics != nil {
		deps.metrics = s.Metrics
	}

	return &Services{
		Restaurant:      NewRestaurantService(deps, repos.Restaurant, repos.Pizza),
		Pizza:           NewPizzaService(deps, repos.Pizza),
		RestaurantPizza: NewRestaurantPizzaService(deps, repos.RestaurantPizza, repos.Restaurant, repos.Pizza),
	}, nil
}

package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/pizzeria/internal/errs"
	"github.com/deppfellow/pizzeria/internal/model"
	. "github.com/smartystreets/goconvey/convey"
)

func shouldBeValidationError(actual any, _ ...any) string {
	err, _ := actual.(error)

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		return "expected an *errs.HTTPError"
	}
	if httpErr.Status != http.StatusBadRequest {
		return "expected status 400"
	}
	return ""
}

func TestRestaurantService(t *testing.T) {
	ctx := context.Background()

	Convey("Given a restaurant service with a cache", t, func() {
		f := newFixture(true)

		Convey("Listing reads through the cache", func() {
			first, err := f.restaurantService.ListRestaurants(ctx)
			So(err, ShouldBeNil)
			So(first, ShouldHaveLength, 2)

			second, err := f.restaurantService.ListRestaurants(ctx)
			So(err, ShouldBeNil)
			So(second, ShouldResemble, first)

			So(f.restaurants.listCalls, ShouldEqual, 1)
			So(f.metrics.lookups["restaurants:list:miss"], ShouldEqual, 1)
			So(f.metrics.lookups["restaurants:list:hit"], ShouldEqual, 1)
		})

		Convey("A broken cache falls back to the database", func() {
			f.cache.err = errors.New("connection refused")

			list, err := f.restaurantService.ListRestaurants(ctx)
			So(err, ShouldBeNil)
			So(list, ShouldHaveLength, 2)
			So(f.metrics.lookups["restaurants:list:error"], ShouldEqual, 1)
		})

		Convey("Database errors are returned", func() {
			f.restaurants.err = errors.New("database down")

			_, err := f.restaurantService.ListRestaurants(ctx)
			So(err, ShouldEqual, f.restaurants.err)
		})

		Convey("Getting a restaurant returns its menu", func() {
			detail, err := f.restaurantService.GetRestaurant(ctx, 1)
			So(err, ShouldBeNil)
			So(detail.Name, ShouldEqual, "Karen's Pizza Shack")
			So(detail.RestaurantPizzas, ShouldNotBeNil)
		})

		Convey("Getting a missing restaurant is not found", func() {
			_, err := f.restaurantService.GetRestaurant(ctx, 42)

			var httpErr *errs.HTTPError
			So(errors.As(err, &httpErr), ShouldBeTrue)
			So(httpErr.Status, ShouldEqual, http.StatusNotFound)
		})

		Convey("Deleting invalidates the list and schedules a warm", func() {
			_, err := f.restaurantService.ListRestaurants(ctx)
			So(err, ShouldBeNil)

			So(f.restaurantService.DeleteRestaurant(ctx, 1), ShouldBeNil)
			So(f.enqueuer.reasons, ShouldResemble, []string{"restaurant deleted"})
			So(f.metrics.deleted, ShouldEqual, 1)

			list, err := f.restaurantService.ListRestaurants(ctx)
			So(err, ShouldBeNil)
			So(list, ShouldHaveLength, 1)
			So(list[0].ID, ShouldEqual, 2)
		})

		Convey("Deleting a missing restaurant changes nothing", func() {
			err := f.restaurantService.DeleteRestaurant(ctx, 42)
			So(err, ShouldNotBeNil)
			So(f.enqueuer.reasons, ShouldBeEmpty)
			So(f.metrics.deleted, ShouldEqual, 0)
		})

		Convey("Warming fills both lists", func() {
			So(f.restaurantService.WarmCache(ctx), ShouldBeNil)
			So(f.cache.entries, ShouldContainKey, restaurantsCacheKey)
			So(f.cache.entries, ShouldContainKey, pizzasCacheKey)

			_, err := f.pizzaService.ListPizzas(ctx)
			So(err, ShouldBeNil)
			So(f.pizzas.listCalls, ShouldEqual, 1)
		})
	})

	Convey("Without a cache every list hits the database", t, func() {
		f := newFixture(false)

		for i := 0; i < 3; i++ {
			_, err := f.pizzaService.ListPizzas(ctx)
			So(err, ShouldBeNil)
		}
		So(f.pizzas.listCalls, ShouldEqual, 3)
		So(f.restaurantService.WarmCache(ctx), ShouldBeNil)
	})
}

func TestRestaurantPizzaService(t *testing.T) {
	ctx := context.Background()

	Convey("Given a restaurant pizza service", t, func() {
		f := newFixture(true)
		payload := &model.CreateRestaurantPizzaPayload{
			Price:        intPtr(5),
			PizzaID:      intPtr(1),
			RestaurantID: intPtr(2),
		}

		Convey("A valid payload is created with both sides populated", func() {
			created, err := f.restaurantPizzaService.CreateRestaurantPizza(ctx, payload)
			So(err, ShouldBeNil)
			So(created.Price, ShouldEqual, 5)
			So(created.Pizza.Name, ShouldEqual, "Emma")
			So(created.Restaurant.Name, ShouldEqual, "Sanjay's Pizza")
			So(f.metrics.created, ShouldEqual, 1)
			So(f.enqueuer.reasons, ShouldResemble, []string{"restaurant pizza created"})

			Convey("and shows up on the restaurant's menu", func() {
				detail, err := f.restaurantService.GetRestaurant(ctx, 2)
				So(err, ShouldBeNil)
				So(detail.RestaurantPizzas, ShouldHaveLength, 1)
				So(detail.RestaurantPizzas[0].ID, ShouldEqual, created.ID)
			})
		})

		Convey("A missing field is a validation error", func() {
			payload.Price = nil
			_, err := f.restaurantPizzaService.CreateRestaurantPizza(ctx, payload)
			So(err, shouldBeValidationError)
		})

		Convey("An unknown pizza is a validation error", func() {
			payload.PizzaID = intPtr(99)
			_, err := f.restaurantPizzaService.CreateRestaurantPizza(ctx, payload)
			So(err, shouldBeValidationError)
		})

		Convey("An unknown restaurant is a validation error", func() {
			payload.RestaurantID = intPtr(99)
			_, err := f.restaurantPizzaService.CreateRestaurantPizza(ctx, payload)
			So(err, shouldBeValidationError)
		})

		Convey("A price out of range is a validation error", func() {
			for _, price := range []int{0, 31} {
				payload.Price = intPtr(price)
				_, err := f.restaurantPizzaService.CreateRestaurantPizza(ctx, payload)
				So(err, shouldBeValidationError)
				So(errors.Is(err, model.ErrInvalidPrice), ShouldBeTrue)
			}
		})

		Convey("A failed insert is a validation error and nothing is recorded", func() {
			f.restaurantPizzas.err = errors.New("connection reset")
			_, err := f.restaurantPizzaService.CreateRestaurantPizza(ctx, payload)
			So(err, shouldBeValidationError)
			So(errors.Is(err, f.restaurantPizzas.err), ShouldBeTrue)
			So(f.metrics.created, ShouldEqual, 0)
			So(f.enqueuer.reasons, ShouldBeEmpty)
		})
	})
}

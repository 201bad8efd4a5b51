package model

import "github.com/deppfellow/pizzeria/internal/errs"

type Restaurant struct {
	ID      int    `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Address string `json:"address" db:"address"`
}

// RestaurantDetail is a restaurant with its menu entries and their pizzas.
type RestaurantDetail struct {
	Restaurant
	RestaurantPizzas []RestaurantPizzaWithPizza `json:"restaurant_pizzas" db:"restaurant_pizzas"`
}

const RestaurantNotFoundCode = "RESTAURANT_NOT_FOUND"

// ErrRestaurantNotFound is the 404 for any lookup of a missing restaurant,
// including ids that are not numbers.
func ErrRestaurantNotFound() *errs.HTTPError {
	code := RestaurantNotFoundCode
	return errs.NewNotFoundError("Restaurant not found", &code)
}

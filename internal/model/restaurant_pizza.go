package model

import (
	"errors"
	"fmt"
)

const (
	MinPrice = 1
	MaxPrice = 30
)

var ErrInvalidPrice = errors.New("price must be between 1 and 30")

// RestaurantPizza links a pizza to a restaurant at a price.
type RestaurantPizza struct {
	ID           int `json:"id" db:"id"`
	Price        int `json:"price" db:"price"`
	RestaurantID int `json:"restaurant_id" db:"restaurant_id"`
	PizzaID      int `json:"pizza_id" db:"pizza_id"`
}

// Validate checks the fields a RestaurantPizza owns. Referential checks
// are the service's job.
func (rp RestaurantPizza) Validate() error {
	if rp.Price < MinPrice || rp.Price > MaxPrice {
		return fmt.Errorf("%w: got %d", ErrInvalidPrice, rp.Price)
	}
	if rp.RestaurantID <= 0 {
		return errors.New("restaurant_id must be positive")
	}
	if rp.PizzaID <= 0 {
		return errors.New("pizza_id must be positive")
	}
	return nil
}

// RestaurantPizzaWithPizza is the shape nested under a restaurant detail.
type RestaurantPizzaWithPizza struct {
	RestaurantPizza
	Pizza Pizza `json:"pizza" db:"pizza"`
}

// PopulatedRestaurantPizza is returned after creation, with both sides of
// the relation expanded.
type PopulatedRestaurantPizza struct {
	RestaurantPizza
	Pizza      Pizza      `json:"pizza" db:"pizza"`
	Restaurant Restaurant `json:"restaurant" db:"restaurant"`
}

package model

import (
	"github.com/deppfellow/pizzeria/internal/validation"
)

// ------------------------------------------------------------

type ListRestaurantsPayload struct{}

func (p *ListRestaurantsPayload) Validate() error {
	return nil
}

// ------------------------------------------------------------

// RestaurantIDPayload carries the :id path parameter of the restaurant
// routes. An id that is not a positive integer cannot name a restaurant,
// so it fails as not found rather than as a bad request.
type RestaurantIDPayload struct {
	RawID string `param:"id" json:"-"`

	id int
}

func (p *RestaurantIDPayload) Validate() error {
	id, ok := validation.ParseID(p.RawID)
	if !ok {
		return ErrRestaurantNotFound()
	}

	p.id = id
	return nil
}

// ID is the parsed id. It is zero until Validate succeeds.
func (p *RestaurantIDPayload) ID() int {
	return p.id
}

// ------------------------------------------------------------

type ListPizzasPayload struct{}

func (p *ListPizzasPayload) Validate() error {
	return nil
}

// ------------------------------------------------------------

// CreateRestaurantPizzaPayload uses pointers so a missing field can be
// told apart from a zero.
type CreateRestaurantPizzaPayload struct {
	Price        *int `json:"price" validate:"required"`
	PizzaID      *int `json:"pizza_id" validate:"required"`
	RestaurantID *int `json:"restaurant_id" validate:"required"`
}

func (p *CreateRestaurantPizzaPayload) Validate() error {
	return validation.Struct(p)
}

// RestaurantPizza returns the row the payload describes. It reports false
// when a field is missing.
func (p *CreateRestaurantPizzaPayload) RestaurantPizza() (RestaurantPizza, bool) {
	if p.Price == nil || p.PizzaID == nil || p.RestaurantID == nil {
		return RestaurantPizza{}, false
	}

	return RestaurantPizza{
		Price:        *p.Price,
		PizzaID:      *p.PizzaID,
		RestaurantID: *p.RestaurantID,
	}, true
}

// Package repository handles all interactions with the database.
//
// It contains the SQL and maps rows onto model types, keeping SQL away
// from the service layer.
package repository

import (
	"github.com/deppfellow/pizzeria/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Restaurant      *RestaurantRepository
	Pizza           *PizzaRepository
	RestaurantPizza *RestaurantPizzaRepository
}

func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Restaurant:      NewRestaurantRepository(s),
		Pizza:           NewPizzaRepository(s),
		RestaurantPizza: NewRestaurantPizzaRepository(s),
	}
}

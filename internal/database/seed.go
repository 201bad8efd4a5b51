package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type seedRestaurant struct {
	name    string
	address string
}

type seedPizza struct {
	name        string
	ingredients string
}

var (
	seedRestaurants = []seedRestaurant{
		{name: "Karen's Pizza Shack", address: "address1"},
		{name: "Sanjay's Pizza", address: "address2"},
		{name: "Kiki's Pizza", address: "address3"},
	}

	seedPizzas = []seedPizza{
		{name: "Emma", ingredients: "Dough, Tomato Sauce, Cheese"},
		{name: "Geri", ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		{name: "Melanie", ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
	}

	// seedPrices pairs seedRestaurants[i] with seedPizzas[i].
	seedPrices = []int{1, 4, 5}
)

// Seed loads sample restaurants, pizzas and prices. It does nothing when
// restaurants already exist, so it is safe to run repeatedly.
func (db *Database) Seed(ctx context.Context) (bool, error) {
	return seed(ctx, db.Pool, db.log)
}

type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

func seed(ctx context.Context, conn beginner, logger *zerolog.Logger) (seeded bool, err error) {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var existing int
	if err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&existing); err != nil {
		return false, fmt.Errorf("count restaurants: %w", err)
	}
	if existing > 0 {
		logger.Info().Int("restaurants", existing).Msg("database already seeded, skipping")
		return false, tx.Rollback(ctx)
	}

	restaurantIDs := make([]int, len(seedRestaurants))
	for i, r := range seedRestaurants {
		err = tx.QueryRow(ctx,
			`INSERT INTO restaurants (name, address) VALUES (@name, @address) RETURNING id`,
			pgx.NamedArgs{"name": r.name, "address": r.address},
		).Scan(&restaurantIDs[i])
		if err != nil {
			return false, fmt.Errorf("insert restaurant %q: %w", r.name, err)
		}
	}

	pizzaIDs := make([]int, len(seedPizzas))
	for i, p := range seedPizzas {
		err = tx.QueryRow(ctx,
			`INSERT INTO pizzas (name, ingredients) VALUES (@name, @ingredients) RETURNING id`,
			pgx.NamedArgs{"name": p.name, "ingredients": p.ingredients},
		).Scan(&pizzaIDs[i])
		if err != nil {
			return false, fmt.Errorf("insert pizza %q: %w", p.name, err)
		}
	}

	for i, price := range seedPrices {
		_, err = tx.Exec(ctx,
			`INSERT INTO restaurant_pizzas (price, restaurant_id, pizza_id) VALUES (@price, @restaurant_id, @pizza_id)`,
			pgx.NamedArgs{"price": price, "restaurant_id": restaurantIDs[i], "pizza_id": pizzaIDs[i]},
		)
		if err != nil {
			return false, fmt.Errorf("insert restaurant pizza: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit seed transaction: %w", err)
	}

	logger.Info().
		Int("restaurants", len(seedRestaurants)).
		Int("pizzas", len(seedPizzas)).
		Int("restaurant_pizzas", len(seedPrices)).
		Msg("seeded database")

	return true, nil
}

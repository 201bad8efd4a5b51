package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/pizzeria/internal/model"
	"github.com/deppfellow/pizzeria/internal/server"
	"github.com/jackc/pgx/v5"
)

type RestaurantPizzaRepository struct {
	server *server.Server
}

func NewRestaurantPizzaRepository(s *server.Server) *RestaurantPizzaRepository {
	return &RestaurantPizzaRepository{server: s}
}

// CreateRestaurantPizza inserts the row and reads it back with its pizza
// and restaurant inside one transaction. Nothing is written on error.
func (r *RestaurantPizzaRepository) CreateRestaurantPizza(ctx context.Context, rp model.RestaurantPizza) (*model.PopulatedRestaurantPizza, error) {
	tx, err := r.server.DB.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			r.server.Logger.Error().Err(err).Msg("failed to rollback restaurant pizza transaction")
		}
	}()

	insertStmt := `
		INSERT INTO
			restaurant_pizzas (price, restaurant_id, pizza_id)
		VALUES
			(@price, @restaurant_id, @pizza_id)
		RETURNING
			id
	`

	var id int
	err = tx.QueryRow(ctx, insertStmt, pgx.NamedArgs{
		"price":         rp.Price,
		"restaurant_id": rp.RestaurantID,
		"pizza_id":      rp.PizzaID,
	}).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to insert restaurant pizza: %w", err)
	}

	selectStmt := `
		SELECT
			rp.id,
			rp.price,
			rp.restaurant_id,
			rp.pizza_id,
			json_build_object(
				'id', p.id,
				'name', p.name,
				'ingredients', p.ingredients
			) AS pizza,
			json_build_object(
				'id', r.id,
				'name', r.name,
				'address', r.address
			) AS restaurant
		FROM
			restaurant_pizzas rp
			JOIN pizzas p ON p.id = rp.pizza_id
			JOIN restaurants r ON r.id = rp.restaurant_id
		WHERE
			rp.id = @id
	`

	rows, err := tx.Query(ctx, selectStmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get restaurant pizza query for id=%d: %w", id, err)
	}

	populated, err := collectPopulatedRestaurantPizza(rows, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return populated, nil
}

func collectPopulatedRestaurantPizza(rows pgx.Rows, id int) (*model.PopulatedRestaurantPizza, error) {
	populated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.PopulatedRestaurantPizza])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:restaurant_pizzas for id=%d: %w", id, err)
	}

	return &populated, nil
}

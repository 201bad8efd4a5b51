package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/pizzeria/internal/model"
	"github.com/deppfellow/pizzeria/internal/server"
	"github.com/jackc/pgx/v5"
)

type RestaurantRepository struct {
	server *server.Server
}

func NewRestaurantRepository(s *server.Server) *RestaurantRepository {
	return &RestaurantRepository{server: s}
}

func (r *RestaurantRepository) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	stmt := `
		SELECT
			id,
			name,
			address
		FROM
			restaurants
		ORDER BY
			id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list restaurants query: %w", err)
	}

	restaurants, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Restaurant])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:restaurants: %w", err)
	}

	return restaurants, nil
}

func (r *RestaurantRepository) GetRestaurantByID(ctx context.Context, id int) (*model.Restaurant, error) {
	stmt := `
		SELECT
			id,
			name,
			address
		FROM
			restaurants
		WHERE
			id = @id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get restaurant query for id=%d: %w", id, err)
	}

	restaurant, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Restaurant])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRestaurantNotFound()
		}
		return nil, fmt.Errorf("failed to collect row from table:restaurants for id=%d: %w", id, err)
	}

	return &restaurant, nil
}

// GetRestaurantDetail loads a restaurant with its menu entries, each with
// its pizza, in a single query. Entries are ordered by id.
func (r *RestaurantRepository) GetRestaurantDetail(ctx context.Context, id int) (*model.RestaurantDetail, error) {
	stmt := `
		SELECT
			r.id,
			r.name,
			r.address,
			COALESCE(
				(
					SELECT
						json_agg(
							json_build_object(
								'id', rp.id,
								'price', rp.price,
								'restaurant_id', rp.restaurant_id,
								'pizza_id', rp.pizza_id,
								'pizza', json_build_object(
									'id', p.id,
									'name', p.name,
									'ingredients', p.ingredients
								)
							)
							ORDER BY rp.id
						)
					FROM
						restaurant_pizzas rp
						JOIN pizzas p ON p.id = rp.pizza_id
					WHERE
						rp.restaurant_id = r.id
				),
				'[]'::json
			) AS restaurant_pizzas
		FROM
			restaurants r
		WHERE
			r.id = @id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get restaurant detail query for id=%d: %w", id, err)
	}

	return collectRestaurantDetail(rows, id)
}

// collectRestaurantDetail maps the detail row, whose restaurant_pizzas
// column is a json array, onto model.RestaurantDetail.
func collectRestaurantDetail(rows pgx.Rows, id int) (*model.RestaurantDetail, error) {
	detail, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.RestaurantDetail])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRestaurantNotFound()
		}
		return nil, fmt.Errorf("failed to collect row from table:restaurants for id=%d: %w", id, err)
	}

	if detail.RestaurantPizzas == nil {
		detail.RestaurantPizzas = []model.RestaurantPizzaWithPizza{}
	}

	return &detail, nil
}

// DeleteRestaurant removes the restaurant. Its restaurant_pizzas rows go
// with it through ON DELETE CASCADE.
func (r *RestaurantRepository) DeleteRestaurant(ctx context.Context, id int) error {
	stmt := `
		DELETE FROM restaurants
		WHERE
			id = @id
	`

	result, err := r.server.DB.Pool.Exec(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete restaurant id=%d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrRestaurantNotFound()
	}

	return nil
}

func (r *RestaurantRepository) CreateRestaurant(ctx context.Context, restaurant model.Restaurant) (*model.Restaurant, error) {
	stmt := `
		INSERT INTO
			restaurants (name, address)
		VALUES
			(@name, @address)
		RETURNING
			id,
			name,
			address
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"name":    restaurant.Name,
		"address": restaurant.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create restaurant query: %w", err)
	}

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Restaurant])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:restaurants: %w", err)
	}

	return &created, nil
}

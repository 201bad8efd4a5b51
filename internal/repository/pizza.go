package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/pizzeria/internal/errs"
	"github.com/deppfellow/pizzeria/internal/model"
	"github.com/deppfellow/pizzeria/internal/server"
	"github.com/jackc/pgx/v5"
)

type PizzaRepository struct {
	server *server.Server
}

func NewPizzaRepository(s *server.Server) *PizzaRepository {
	return &PizzaRepository{server: s}
}

func (r *PizzaRepository) ListPizzas(ctx context.Context) ([]model.Pizza, error) {
	stmt := `
		SELECT
			id,
			name,
			ingredients
		FROM
			pizzas
		ORDER BY
			id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list pizzas query: %w", err)
	}

	pizzas, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Pizza])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:pizzas: %w", err)
	}

	return pizzas, nil
}

func (r *PizzaRepository) GetPizzaByID(ctx context.Context, id int) (*model.Pizza, error) {
	stmt := `
		SELECT
			id,
			name,
			ingredients
		FROM
			pizzas
		WHERE
			id = @id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get pizza query for id=%d: %w", id, err)
	}

	pizza, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Pizza])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			code := "PIZZA_NOT_FOUND"
			return nil, errs.NewNotFoundError("Pizza not found", &code)
		}
		return nil, fmt.Errorf("failed to collect row from table:pizzas for id=%d: %w", id, err)
	}

	return &pizza, nil
}

func (r *PizzaRepository) CreatePizza(ctx context.Context, pizza model.Pizza) (*model.Pizza, error) {
	stmt := `
		INSERT INTO
			pizzas (name, ingredients)
		VALUES
			(@name, @ingredients)
		RETURNING
			id,
			name,
			ingredients
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"name":        pizza.Name,
		"ingredients": pizza.Ingredients,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create pizza query: %w", err)
	}

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Pizza])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:pizzas: %w", err)
	}

	return &created, nil
}

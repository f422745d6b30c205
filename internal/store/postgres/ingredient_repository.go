package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/menulytics/menulytics/internal/models"
)

type IngredientRepository struct {
	pool    *pgxpool.Pool
	profile string
}

func (r *IngredientRepository) SaveAll(ctx context.Context, ingredients []models.Ingredient) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM ingredients WHERE profile = $1", r.profile); err != nil {
		return err
	}

	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"ingredients"},
		[]string{"profile", "position", "id", "name", "current_stock", "unit"},
		pgx.CopyFromSlice(len(ingredients), func(i int) ([]interface{}, error) {
			return []interface{}{
				r.profile,
				i,
				ingredients[i].ID,
				ingredients[i].Name,
				ingredients[i].CurrentStock,
				ingredients[i].Unit,
			}, nil
		}),
	)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *IngredientRepository) GetAll(ctx context.Context) ([]models.Ingredient, error) {
	query := `
        SELECT id, name, current_stock, unit
        FROM ingredients
        WHERE profile = $1
        ORDER BY position
    `
	rows, err := r.pool.Query(ctx, query, r.profile)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ingredients []models.Ingredient
	for rows.Next() {
		var ing models.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.CurrentStock, &ing.Unit); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}

func (r *IngredientRepository) Clear(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM ingredients WHERE profile = $1", r.profile)
	return err
}

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/menulytics/menulytics/internal/models"
)

type RecipeRepository struct {
	pool    *pgxpool.Pool
	profile string
}

func (r *RecipeRepository) SaveAll(ctx context.Context, recipes []models.RecipeAssociation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM recipes WHERE profile = $1", r.profile); err != nil {
		return err
	}

	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"recipes"},
		[]string{"profile", "position", "menu_item_id", "ingredient_id", "quantity_per_serving"},
		pgx.CopyFromSlice(len(recipes), func(i int) ([]interface{}, error) {
			return []interface{}{
				r.profile,
				i,
				recipes[i].MenuItemID,
				recipes[i].IngredientID,
				recipes[i].QuantityPerServing,
			}, nil
		}),
	)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *RecipeRepository) GetAll(ctx context.Context) ([]models.RecipeAssociation, error) {
	query := `
        SELECT menu_item_id, ingredient_id, quantity_per_serving
        FROM recipes
        WHERE profile = $1
        ORDER BY position
    `
	rows, err := r.pool.Query(ctx, query, r.profile)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []models.RecipeAssociation
	for rows.Next() {
		var rec models.RecipeAssociation
		if err := rows.Scan(&rec.MenuItemID, &rec.IngredientID, &rec.QuantityPerServing); err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	return recipes, rows.Err()
}

func (r *RecipeRepository) Clear(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM recipes WHERE profile = $1", r.profile)
	return err
}

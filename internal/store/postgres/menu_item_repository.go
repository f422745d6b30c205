package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/menulytics/menulytics/internal/models"
)

type MenuItemRepository struct {
	pool    *pgxpool.Pool
	profile string
}

// SaveAll replaces the whole catalogue in one transaction; the position
// column preserves catalogue order across reloads.
func (r *MenuItemRepository) SaveAll(ctx context.Context, items []models.MenuItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM menu_items WHERE profile = $1", r.profile); err != nil {
		return err
	}

	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"menu_items"},
		[]string{"profile", "position", "id", "name", "current_price", "cost", "category", "popularity"},
		pgx.CopyFromSlice(len(items), func(i int) ([]interface{}, error) {
			return []interface{}{
				r.profile,
				i,
				items[i].ID,
				items[i].Name,
				items[i].CurrentPrice,
				items[i].Cost,
				items[i].Category,
				items[i].Popularity,
			}, nil
		}),
	)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *MenuItemRepository) GetAll(ctx context.Context) ([]models.MenuItem, error) {
	query := `
        SELECT id, name, current_price, cost, category, popularity
        FROM menu_items
        WHERE profile = $1
        ORDER BY position
    `
	rows, err := r.pool.Query(ctx, query, r.profile)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.CurrentPrice, &item.Cost, &item.Category, &item.Popularity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *MenuItemRepository) Clear(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM menu_items WHERE profile = $1", r.profile)
	return err
}

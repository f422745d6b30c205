package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/menulytics/menulytics/internal/models"
)

// ForecastRepository stores each forecast as a JSONB payload. Forecasts
// are regenerated wholesale, so there is nothing to gain from a columnar
// layout.
type ForecastRepository struct {
	pool    *pgxpool.Pool
	profile string
}

func (r *ForecastRepository) SaveAll(ctx context.Context, forecasts []models.IngredientForecast) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM forecasts WHERE profile = $1", r.profile); err != nil {
		return err
	}

	for i, f := range forecasts {
		payload, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("encoding forecast for %s: %w", f.IngredientID, err)
		}
		_, err = tx.Exec(ctx,
			"INSERT INTO forecasts (profile, position, ingredient_id, payload) VALUES ($1, $2, $3, $4)",
			r.profile, i, f.IngredientID, payload,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *ForecastRepository) GetAll(ctx context.Context) ([]models.IngredientForecast, error) {
	query := `
        SELECT payload
        FROM forecasts
        WHERE profile = $1
        ORDER BY position
    `
	rows, err := r.pool.Query(ctx, query, r.profile)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var forecasts []models.IngredientForecast
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var f models.IngredientForecast
		if err := json.Unmarshal(payload, &f); err != nil {
			return nil, fmt.Errorf("decoding forecast payload: %w", err)
		}
		forecasts = append(forecasts, f)
	}
	return forecasts, rows.Err()
}

func (r *ForecastRepository) Clear(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM forecasts WHERE profile = $1", r.profile)
	return err
}

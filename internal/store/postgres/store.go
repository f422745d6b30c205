// Package postgres is the database-backed store. Collections live in
// per-profile rows so several profiles can share one database.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/menulytics/menulytics/internal/models"
	"github.com/menulytics/menulytics/internal/store"
)

type Store struct {
	pool    *pgxpool.Pool
	profile string
}

func New(ctx context.Context, cfg models.DatabaseConfig, profile string) (*Store, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	s := &Store{pool: pool, profile: profile}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sales_records (
			seq BIGSERIAL PRIMARY KEY,
			profile TEXT NOT NULL,
			sale_date DATE NOT NULL,
			item_name TEXT NOT NULL,
			sales_amount DOUBLE PRECISION NOT NULL,
			price DOUBLE PRECISION NOT NULL DEFAULT 0,
			cost DOUBLE PRECISION NOT NULL DEFAULT 0,
			category TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			profile TEXT NOT NULL,
			position INTEGER NOT NULL,
			id TEXT NOT NULL,
			name TEXT NOT NULL,
			current_price DOUBLE PRECISION NOT NULL DEFAULT 0,
			cost DOUBLE PRECISION NOT NULL DEFAULT 0,
			category TEXT NOT NULL DEFAULT '',
			popularity DOUBLE PRECISION NOT NULL DEFAULT 0,
			PRIMARY KEY (profile, id)
		)`,
		`CREATE TABLE IF NOT EXISTS ingredients (
			profile TEXT NOT NULL,
			position INTEGER NOT NULL,
			id TEXT NOT NULL,
			name TEXT NOT NULL,
			current_stock DOUBLE PRECISION NOT NULL DEFAULT 0,
			unit TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (profile, id)
		)`,
		`CREATE TABLE IF NOT EXISTS recipes (
			profile TEXT NOT NULL,
			position INTEGER NOT NULL,
			menu_item_id TEXT NOT NULL,
			ingredient_id TEXT NOT NULL,
			quantity_per_serving DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (profile, menu_item_id, ingredient_id)
		)`,
		`CREATE TABLE IF NOT EXISTS forecasts (
			profile TEXT NOT NULL,
			position INTEGER NOT NULL,
			ingredient_id TEXT NOT NULL,
			payload JSONB NOT NULL,
			PRIMARY KEY (profile, ingredient_id)
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

func (s *Store) Sales() store.SalesRepository            { return &SalesRepository{s.pool, s.profile} }
func (s *Store) MenuItems() store.MenuItemRepository     { return &MenuItemRepository{s.pool, s.profile} }
func (s *Store) Ingredients() store.IngredientRepository { return &IngredientRepository{s.pool, s.profile} }
func (s *Store) Recipes() store.RecipeRepository         { return &RecipeRepository{s.pool, s.profile} }
func (s *Store) Forecasts() store.ForecastRepository     { return &ForecastRepository{s.pool, s.profile} }

func (s *Store) ClearAll(ctx context.Context) error {
	for _, table := range []string{"sales_records", "menu_items", "ingredients", "recipes", "forecasts"} {
		if _, err := s.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE profile = $1", table), s.profile); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// Package filestore persists each entity collection as one JSON document
// per profile, mirroring the flat key-value layout the dashboard keeps in
// browser storage (menuItems_<profile>, ingredients_<profile>, ...).
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/menulytics/menulytics/internal/models"
	"github.com/menulytics/menulytics/internal/store"
)

// collection names double as the file name prefix for each entity.
var collections = []string{
	"salesData",
	"menuItems",
	"ingredients",
	"recipes",
	"forecasts",
}

// profileLocks serializes writes per profile so two imports against the
// same profile cannot interleave their read-modify-write cycles.
var (
	profileLocksMu sync.Mutex
	profileLocks   = make(map[string]*sync.Mutex)
)

func lockFor(profile string) *sync.Mutex {
	profileLocksMu.Lock()
	defer profileLocksMu.Unlock()
	mu, ok := profileLocks[profile]
	if !ok {
		mu = &sync.Mutex{}
		profileLocks[profile] = mu
	}
	return mu
}

type Store struct {
	dir     string
	profile string
	mu      *sync.Mutex
}

func New(dataDir, profile string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Store{
		dir:     dataDir,
		profile: profile,
		mu:      lockFor(profile),
	}, nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_%s.json", collection, s.profile))
}

// read decodes a collection into out. A missing file or corrupt JSON is
// treated as an empty collection; corruption is logged, never propagated.
func (s *Store) read(collection string, out any) error {
	data, err := os.ReadFile(s.path(collection))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("corrupt %s data for profile %s, treating as empty: %v", collection, s.profile, err)
	}
	return nil
}

// write replaces a collection in a single atomic step: encode to a temp
// file, then rename over the old document.
func (s *Store) write(collection string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(collection, v)
}

// writeLocked is write for callers that already hold the profile lock
// across a read-modify-write cycle.
func (s *Store) writeLocked(collection string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", collection, err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(collection))
}

func (s *Store) remove(collection string) error {
	err := os.Remove(s.path(collection))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *Store) Sales() store.SalesRepository            { return &salesRepo{s} }
func (s *Store) MenuItems() store.MenuItemRepository     { return &menuItemRepo{s} }
func (s *Store) Ingredients() store.IngredientRepository { return &ingredientRepo{s} }
func (s *Store) Recipes() store.RecipeRepository         { return &recipeRepo{s} }
func (s *Store) Forecasts() store.ForecastRepository     { return &forecastRepo{s} }

// ClearAll deletes every collection for the profile in one operation.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, collection := range collections {
		if err := s.remove(collection); err != nil {
			return fmt.Errorf("clearing %s: %w", collection, err)
		}
	}
	return nil
}

func (s *Store) Close() error { return nil }

type salesRepo struct{ s *Store }

func (r *salesRepo) GetAll(ctx context.Context) ([]models.SalesRecord, error) {
	var records []models.SalesRecord
	if err := r.s.read("salesData", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Append holds the profile lock for the whole read-modify-write cycle so
// concurrent appends to the same profile cannot drop each other's records.
func (r *salesRepo) Append(ctx context.Context, records []models.SalesRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var existing []models.SalesRecord
	if err := r.s.read("salesData", &existing); err != nil {
		return err
	}
	return r.s.writeLocked("salesData", append(existing, records...))
}

func (r *salesRepo) Clear(ctx context.Context) error { return r.s.remove("salesData") }

type menuItemRepo struct{ s *Store }

func (r *menuItemRepo) GetAll(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.s.read("menuItems", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuItemRepo) SaveAll(ctx context.Context, items []models.MenuItem) error {
	return r.s.write("menuItems", items)
}

func (r *menuItemRepo) Clear(ctx context.Context) error { return r.s.remove("menuItems") }

type ingredientRepo struct{ s *Store }

func (r *ingredientRepo) GetAll(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := r.s.read("ingredients", &ingredients); err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepo) SaveAll(ctx context.Context, ingredients []models.Ingredient) error {
	return r.s.write("ingredients", ingredients)
}

func (r *ingredientRepo) Clear(ctx context.Context) error { return r.s.remove("ingredients") }

type recipeRepo struct{ s *Store }

func (r *recipeRepo) GetAll(ctx context.Context) ([]models.RecipeAssociation, error) {
	var recipes []models.RecipeAssociation
	if err := r.s.read("recipes", &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepo) SaveAll(ctx context.Context, recipes []models.RecipeAssociation) error {
	return r.s.write("recipes", recipes)
}

func (r *recipeRepo) Clear(ctx context.Context) error { return r.s.remove("recipes") }

type forecastRepo struct{ s *Store }

func (r *forecastRepo) GetAll(ctx context.Context) ([]models.IngredientForecast, error) {
	var forecasts []models.IngredientForecast
	if err := r.s.read("forecasts", &forecasts); err != nil {
		return nil, err
	}
	return forecasts, nil
}

func (r *forecastRepo) SaveAll(ctx context.Context, forecasts []models.IngredientForecast) error {
	return r.s.write("forecasts", forecasts)
}

func (r *forecastRepo) Clear(ctx context.Context) error { return r.s.remove("forecasts") }

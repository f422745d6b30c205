package store

import (
	"context"

	"github.com/menulytics/menulytics/internal/models"
)

// Repositories expose one entity collection each. Backends must preserve
// collection order across a save/load round trip, and a corrupt or
// missing collection reads back as empty rather than failing.

type SalesRepository interface {
	GetAll(ctx context.Context) ([]models.SalesRecord, error)
	Append(ctx context.Context, records []models.SalesRecord) error
	Clear(ctx context.Context) error
}

type MenuItemRepository interface {
	GetAll(ctx context.Context) ([]models.MenuItem, error)
	SaveAll(ctx context.Context, items []models.MenuItem) error
	Clear(ctx context.Context) error
}

type IngredientRepository interface {
	GetAll(ctx context.Context) ([]models.Ingredient, error)
	SaveAll(ctx context.Context, ingredients []models.Ingredient) error
	Clear(ctx context.Context) error
}

type RecipeRepository interface {
	GetAll(ctx context.Context) ([]models.RecipeAssociation, error)
	SaveAll(ctx context.Context, recipes []models.RecipeAssociation) error
	Clear(ctx context.Context) error
}

type ForecastRepository interface {
	GetAll(ctx context.Context) ([]models.IngredientForecast, error)
	SaveAll(ctx context.Context, forecasts []models.IngredientForecast) error
	Clear(ctx context.Context) error
}

// Store groups the repositories for one profile. ClearAll drops every
// collection at once.
type Store interface {
	Sales() SalesRepository
	MenuItems() MenuItemRepository
	Ingredients() IngredientRepository
	Recipes() RecipeRepository
	Forecasts() ForecastRepository
	ClearAll(ctx context.Context) error
	Close() error
}

// UpsertRecipe enforces the one-association-per-pair invariant: adding an
// existing (menu item, ingredient) pair updates its quantity in place.
func UpsertRecipe(recipes []models.RecipeAssociation, assoc models.RecipeAssociation) []models.RecipeAssociation {
	for i, r := range recipes {
		if r.MenuItemID == assoc.MenuItemID && r.IngredientID == assoc.IngredientID {
			recipes[i].QuantityPerServing = assoc.QuantityPerServing
			return recipes
		}
	}
	return append(recipes, assoc)
}

// RemoveRecipe drops the association for the pair, if present.
func RemoveRecipe(recipes []models.RecipeAssociation, menuItemID, ingredientID string) []models.RecipeAssociation {
	out := recipes[:0]
	for _, r := range recipes {
		if r.MenuItemID == menuItemID && r.IngredientID == ingredientID {
			continue
		}
		out = append(out, r)
	}
	return out
}

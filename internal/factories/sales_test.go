package factories

import (
	"strings"
	"testing"
	"time"

	"github.com/menulytics/menulytics/internal/classifier"
	"github.com/menulytics/menulytics/internal/ingest"
	"github.com/menulytics/menulytics/internal/models"
)

func TestSalesCSVDeterministic(t *testing.T) {
	start := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	first := NewSalesDataFactory(42).SalesCSV(50, start)
	second := NewSalesDataFactory(42).SalesCSV(50, start)
	if first != second {
		t.Error("the same seed must produce the same CSV")
	}

	lines := strings.Split(strings.TrimSpace(first), "\n")
	if len(lines) != 51 {
		t.Errorf("expected header plus 50 rows, got %d lines", len(lines))
	}
}

func TestSalesCSVImportsCleanly(t *testing.T) {
	start := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	raw := NewSalesDataFactory(42).SalesCSV(100, start)

	importer := ingest.NewImporter(classifier.New(), 0)
	result, err := importer.Import(raw, nil, nil)
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if result.SkippedRows != 0 {
		t.Errorf("seed data produced %d skipped rows", result.SkippedRows)
	}
	if len(result.Records) != 100 {
		t.Errorf("expected 100 records, got %d", len(result.Records))
	}
	for _, item := range result.MenuItems {
		if item.CurrentPrice <= 0 || item.Cost <= 0 {
			t.Errorf("menu item %q has no economics: %+v", item.Name, item)
		}
	}
}

func TestRecipesReferenceKnownIngredients(t *testing.T) {
	f := NewSalesDataFactory(42)
	ingredients := f.Ingredients()
	recipes := f.Recipes(ingredients)

	if len(ingredients) == 0 || len(recipes) == 0 {
		t.Fatal("expected a populated pantry and recipe list")
	}

	known := make(map[string]bool, len(ingredients))
	for _, ing := range ingredients {
		if ing.ID == "" {
			t.Errorf("ingredient %q has no ID", ing.Name)
		}
		if ing.Unit == "" {
			t.Errorf("ingredient %q has no unit", ing.Name)
		}
		known[ing.ID] = true
	}

	for _, r := range recipes {
		if !known[r.IngredientID] {
			t.Errorf("recipe references unknown ingredient %q", r.IngredientID)
		}
		if r.QuantityPerServing <= 0 {
			t.Errorf("recipe %s/%s has non-positive quantity", r.MenuItemID, r.IngredientID)
		}
		if r.MenuItemID != models.NormalizeItemID(r.MenuItemID) {
			t.Errorf("menu item id %q is not normalized", r.MenuItemID)
		}
	}
}

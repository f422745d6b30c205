package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/menulytics/menulytics/internal/classifier"
	"github.com/menulytics/menulytics/internal/models"
)

func newTestImporter() *Importer {
	imp := NewImporter(classifier.New(), 100)
	imp.now = func() time.Time {
		return time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	}
	return imp
}

func TestImportMergesDuplicateItems(t *testing.T) {
	raw := strings.Join([]string{
		"Date,Item,Quantity,Price",
		"2024-01-01,Classic Burger,10,8.50",
		"2024-01-02,Classic Burger,12,8.00",
	}, "\n")

	result, err := newTestImporter().Import(raw, nil, nil)
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	if len(result.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(result.Records))
	}
	if len(result.MenuItems) != 1 {
		t.Fatalf("expected duplicate rows to merge into 1 menu item, got %d", len(result.MenuItems))
	}

	item := result.MenuItems[0]
	if item.ID != "classic_burger" {
		t.Errorf("item ID = %q, want %q", item.ID, "classic_burger")
	}
	if item.CurrentPrice != 8.00 {
		t.Errorf("item price = %v, want the later row's price 8.00", item.CurrentPrice)
	}
	if item.Category != "Burgers & Sandwiches" {
		t.Errorf("item category = %q, want %q", item.Category, "Burgers & Sandwiches")
	}
}

func TestImportSkipsUndecodableRows(t *testing.T) {
	raw := strings.Join([]string{
		"Date,Item,Quantity",
		"not-a-date,Burger,5",
		"2024-01-01,Burger,oops",
		"2024-01-01,Burger,5",
		"2024-01-01,,5",
	}, "\n")

	result, err := newTestImporter().Import(raw, nil, nil)
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if result.SkippedRows != 3 {
		t.Errorf("SkippedRows = %d, want 3", result.SkippedRows)
	}
	if len(result.Records) != 1 {
		t.Errorf("Records = %d, want 1", len(result.Records))
	}
}

func TestImportDefaultsForAbsentColumns(t *testing.T) {
	raw := "Item,Price\nFish And Chips,12.00"

	result, err := newTestImporter().Import(raw, nil, nil)
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	rec := result.Records[0]
	if rec.SalesAmount != 1 {
		t.Errorf("SalesAmount = %v, want default 1", rec.SalesAmount)
	}
	want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if !rec.Date.Equal(want) {
		t.Errorf("Date = %v, want processing date %v", rec.Date, want)
	}
	if rec.Cost != 12.00*0.4 {
		t.Errorf("Cost = %v, want estimated 40%% of price", rec.Cost)
	}
}

func TestImportParsesCurrencyValues(t *testing.T) {
	raw := "Item,Quantity,Price\nSteak,\"1,200\",$1.50"

	result, err := newTestImporter().Import(raw, nil, nil)
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	rec := result.Records[0]
	if rec.SalesAmount != 1200 {
		t.Errorf("SalesAmount = %v, want 1200", rec.SalesAmount)
	}
	if rec.Price != 1.5 {
		t.Errorf("Price = %v, want 1.5", rec.Price)
	}
}

func TestImportKeepsExistingCatalogue(t *testing.T) {
	existing := []models.MenuItem{
		{ID: "margherita_pizza", Name: "Margherita Pizza", CurrentPrice: 12, Cost: 4, Category: "Pizza"},
	}
	raw := strings.Join([]string{
		"Item,Price",
		"Margherita Pizza,13.00",
		"Pad Thai,12.50",
	}, "\n")

	result, err := newTestImporter().Import(raw, existing, nil)
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if len(result.MenuItems) != 2 {
		t.Fatalf("expected 2 menu items, got %d", len(result.MenuItems))
	}
	if result.MenuItems[0].ID != "margherita_pizza" {
		t.Errorf("existing items must come first, got %q", result.MenuItems[0].ID)
	}
	if result.MenuItems[0].CurrentPrice != 13.00 {
		t.Errorf("existing item price = %v, want updated 13.00", result.MenuItems[0].CurrentPrice)
	}
	if result.MenuItems[1].ID != "pad_thai" {
		t.Errorf("new item = %q, want pad_thai", result.MenuItems[1].ID)
	}
}

func TestImportCategoryVolumesSorted(t *testing.T) {
	raw := strings.Join([]string{
		"Item,Quantity",
		"Margherita Pizza,3",
		"Classic Burger,10",
		"Pepperoni Pizza,4",
	}, "\n")

	result, err := newTestImporter().Import(raw, nil, nil)
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if len(result.CategoryVolumes) < 2 {
		t.Fatalf("expected at least 2 category volumes, got %v", result.CategoryVolumes)
	}
	for i := 1; i < len(result.CategoryVolumes); i++ {
		if result.CategoryVolumes[i].Volume > result.CategoryVolumes[i-1].Volume {
			t.Errorf("category volumes not sorted descending: %v", result.CategoryVolumes)
		}
	}
}

func TestImportReportsProgress(t *testing.T) {
	var lines []string
	lines = append(lines, "Item,Quantity")
	for i := 0; i < 250; i++ {
		lines = append(lines, "Burger,1")
	}

	var calls [][2]int
	imp := NewImporter(classifier.New(), 100)
	_, err := imp.Import(strings.Join(lines, "\n"), nil, func(done, total int) {
		calls = append(calls, [2]int{done, total})
	})
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	if len(calls) != 3 {
		t.Fatalf("expected 3 progress calls for 250 rows in chunks of 100, got %d", len(calls))
	}
	last := calls[len(calls)-1]
	if last[0] != 250 || last[1] != 250 {
		t.Errorf("final progress call = %v, want [250 250]", last)
	}
}

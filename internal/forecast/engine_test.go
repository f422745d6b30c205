package forecast

import (
	"testing"
	"time"

	"github.com/menulytics/menulytics/internal/models"
)

func fixedEngine(horizon int) *Engine {
	e := NewEngine(horizon)
	e.now = func() time.Time {
		return time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC)
	}
	return e
}

func TestAverageDailySales(t *testing.T) {
	records := []models.SalesRecord{
		{ItemName: "Beef Taco", SalesAmount: 10, Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{ItemName: "Beef Taco", SalesAmount: 12, Date: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)},
		{ItemName: "Ramen", SalesAmount: 4, Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{ItemName: "Ramen", SalesAmount: 6, Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	avg := fixedEngine(7).AverageDailySales(records)

	// Two days of taco history, 22 sold in total.
	if got := avg["Beef Taco"]; got != 11 {
		t.Errorf("avg[Beef Taco] = %v, want 11", got)
	}
	// Two ramen rows land on the same day, so one day of history.
	if got := avg["Ramen"]; got != 10 {
		t.Errorf("avg[Ramen] = %v, want 10", got)
	}
}

func TestProjectFlatRunRate(t *testing.T) {
	records := []models.SalesRecord{
		{ItemName: "Beef Taco", SalesAmount: 10, Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	ingredients := []models.Ingredient{
		{ID: "ing-tortilla", Name: "Tortilla", CurrentStock: 100, Unit: "pcs"},
	}
	recipes := []models.RecipeAssociation{
		{MenuItemID: "beef_taco", IngredientID: "ing-tortilla", QuantityPerServing: 0.2},
	}

	forecasts := fixedEngine(5).Project(records, recipes, ingredients)
	if len(forecasts) != 1 {
		t.Fatalf("expected 1 forecast, got %d", len(forecasts))
	}

	f := forecasts[0]
	if f.IngredientName != "Tortilla" {
		t.Errorf("IngredientName = %q", f.IngredientName)
	}
	if len(f.Days) != 5 {
		t.Fatalf("expected 5 forecast days, got %d", len(f.Days))
	}
	wantStart := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	for i, day := range f.Days {
		if day.Quantity != 2 {
			t.Errorf("day %d quantity = %v, want flat 2", i, day.Quantity)
		}
		if !day.Date.Equal(wantStart.AddDate(0, 0, i)) {
			t.Errorf("day %d date = %v", i, day.Date)
		}
	}
	if f.TotalForecast != 10 {
		t.Errorf("TotalForecast = %v, want 10", f.TotalForecast)
	}
}

func TestProjectSortsByTotalDescending(t *testing.T) {
	records := []models.SalesRecord{
		{ItemName: "Beef Taco", SalesAmount: 10, Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	ingredients := []models.Ingredient{
		{ID: "ing-a", Name: "Cheese"},
		{ID: "ing-b", Name: "Tortilla"},
	}
	recipes := []models.RecipeAssociation{
		{MenuItemID: "beef_taco", IngredientID: "ing-a", QuantityPerServing: 0.1},
		{MenuItemID: "beef_taco", IngredientID: "ing-b", QuantityPerServing: 0.5},
	}

	forecasts := fixedEngine(7).Project(records, recipes, ingredients)
	if forecasts[0].IngredientID != "ing-b" {
		t.Errorf("highest usage must come first, got %v", forecasts[0].IngredientID)
	}
}

func alertFixture(stock float64) ([]models.IngredientForecast, []models.Ingredient) {
	days := make([]models.ForecastDay, 5)
	for i := range days {
		days[i] = models.ForecastDay{
			Date:     time.Date(2024, 6, 15+i, 0, 0, 0, 0, time.UTC),
			Quantity: 2,
		}
	}
	forecasts := []models.IngredientForecast{{
		IngredientID:   "ing-a",
		IngredientName: "Cheese",
		Days:           days,
		TotalForecast:  10,
	}}
	ingredients := []models.Ingredient{{ID: "ing-a", Name: "Cheese", CurrentStock: stock}}
	return forecasts, ingredients
}

func TestAlertsCriticalWithinTwoDays(t *testing.T) {
	forecasts, ingredients := alertFixture(4)
	alerts := Alerts(forecasts, ingredients)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	a := alerts[0]
	if a.DaysUntilEmpty != 2 {
		t.Errorf("DaysUntilEmpty = %d, want 2", a.DaysUntilEmpty)
	}
	if a.Status != models.AlertCritical {
		t.Errorf("Status = %q, want critical", a.Status)
	}
	if a.Deficit != 6 {
		t.Errorf("Deficit = %v, want 6", a.Deficit)
	}
}

func TestAlertsWarningBeyondTwoDays(t *testing.T) {
	forecasts, ingredients := alertFixture(7)
	alerts := Alerts(forecasts, ingredients)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].DaysUntilEmpty != 3 {
		t.Errorf("DaysUntilEmpty = %d, want 3", alerts[0].DaysUntilEmpty)
	}
	if alerts[0].Status != models.AlertWarning {
		t.Errorf("Status = %q, want warning", alerts[0].Status)
	}
}

func TestAlertsSkipCoveredIngredients(t *testing.T) {
	forecasts, ingredients := alertFixture(10)
	if alerts := Alerts(forecasts, ingredients); len(alerts) != 0 {
		t.Errorf("stock covering the forecast must not alert, got %v", alerts)
	}
}

func TestAlertsSortedByDaysUntilEmpty(t *testing.T) {
	fa, ia := alertFixture(7)
	fb, ib := alertFixture(1)
	fb[0].IngredientID = "ing-b"
	fb[0].IngredientName = "Tortilla"
	ib[0].ID = "ing-b"

	alerts := Alerts(append(fa, fb...), append(ia, ib...))
	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(alerts))
	}
	if alerts[0].IngredientID != "ing-b" {
		t.Errorf("most urgent alert must come first, got %v", alerts[0].IngredientID)
	}
}

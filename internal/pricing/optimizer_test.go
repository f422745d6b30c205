package pricing

import (
	"math"
	"testing"

	"github.com/menulytics/menulytics/internal/models"
)

func TestOptimizeMenuSkipsItemsWithoutEconomics(t *testing.T) {
	items := []models.MenuItem{
		{ID: "no_cost", Name: "No Cost", CurrentPrice: 10, Cost: 0},
		{ID: "no_price", Name: "No Price", CurrentPrice: 0, Cost: 3},
		{ID: "burger", Name: "Burger", CurrentPrice: 10, Cost: 3.5},
	}

	recs, summary, err := OptimizeMenu(items, nil, models.DefaultPricingSettings())
	if err != nil {
		t.Fatalf("OptimizeMenu returned error: %v", err)
	}
	if len(recs) != 1 || recs[0].ItemID != "burger" {
		t.Fatalf("expected only the complete item, got %v", recs)
	}
	if summary.ItemsOptimized != 1 {
		t.Errorf("ItemsOptimized = %d, want 1", summary.ItemsOptimized)
	}
}

func TestOptimizeMenuSummary(t *testing.T) {
	items := []models.MenuItem{
		{ID: "burger", Name: "Burger", CurrentPrice: 10, Cost: 3.5},
	}
	volumes := map[string]float64{"burger": 100}

	recs, summary, err := OptimizeMenu(items, volumes, models.DefaultPricingSettings())
	if err != nil {
		t.Fatalf("OptimizeMenu returned error: %v", err)
	}

	// A single item sits at the high cut, so it gets the bonus margin and
	// the recommendation rides the +15% ceiling.
	if recs[0].RecommendedPrice != 11.50 {
		t.Fatalf("RecommendedPrice = %v, want 11.50", recs[0].RecommendedPrice)
	}

	if summary.CurrentRevenue != 1000 {
		t.Errorf("CurrentRevenue = %v, want 1000", summary.CurrentRevenue)
	}
	if summary.SuggestedRevenue != 1150 {
		t.Errorf("SuggestedRevenue = %v, want 1150", summary.SuggestedRevenue)
	}
	if summary.CurrentProfit != 650 {
		t.Errorf("CurrentProfit = %v, want 650", summary.CurrentProfit)
	}
	if summary.SuggestedProfit != 800 {
		t.Errorf("SuggestedProfit = %v, want 800", summary.SuggestedProfit)
	}
	if math.Abs(summary.ProfitIncreasePct-150.0/650*100) > 1e-9 {
		t.Errorf("ProfitIncreasePct = %v", summary.ProfitIncreasePct)
	}
}

func TestOptimizeMenuOrdersByVolume(t *testing.T) {
	items := []models.MenuItem{
		{ID: "slow", Name: "Slow", CurrentPrice: 10, Cost: 3.5},
		{ID: "fast", Name: "Fast", CurrentPrice: 10, Cost: 3.5},
	}
	volumes := map[string]float64{"slow": 5, "fast": 50}

	recs, _, err := OptimizeMenu(items, volumes, models.DefaultPricingSettings())
	if err != nil {
		t.Fatalf("OptimizeMenu returned error: %v", err)
	}
	if recs[0].ItemID != "fast" {
		t.Errorf("best seller must come first, got %v", recs[0].ItemID)
	}
}

func TestOptimizeMenuPropagatesDegenerateMargin(t *testing.T) {
	settings := models.DefaultPricingSettings()
	settings.TargetMargin = 100

	items := []models.MenuItem{{ID: "burger", Name: "Burger", CurrentPrice: 10, Cost: 3.5}}
	if _, _, err := OptimizeMenu(items, nil, settings); err == nil {
		t.Fatal("expected an error for a 100% target margin")
	}
}

func TestVolumeThresholds(t *testing.T) {
	volumes := map[string]float64{"a": 1, "b": 2, "c": 3, "d": 10}
	low, high := volumeThresholds(volumes)

	// median 2.5, std ~3.536
	if math.Abs(low-0.7322) > 1e-3 {
		t.Errorf("low cut = %v, want ~0.732", low)
	}
	if math.Abs(high-4.2678) > 1e-3 {
		t.Errorf("high cut = %v, want ~4.268", high)
	}

	if got := popularityScore(10, low, high); got != PopularityHigh+0.2 {
		t.Errorf("popularityScore(10) = %v, want high band", got)
	}
	if got := popularityScore(1, low, high); got != PopularityLow-0.2 {
		t.Errorf("popularityScore(1) = %v, want low band", got)
	}
	if got := popularityScore(3, low, high); got != PopularityDefault {
		t.Errorf("popularityScore(3) = %v, want default", got)
	}
}

func TestSalesVolumesNormalizesNames(t *testing.T) {
	records := []models.SalesRecord{
		{ItemName: "Beef Taco", SalesAmount: 3},
		{ItemName: "beef taco", SalesAmount: 2},
		{ItemName: "Ramen", SalesAmount: 1},
	}

	volumes := SalesVolumes(records)
	if volumes["beef_taco"] != 5 {
		t.Errorf("beef_taco volume = %v, want 5", volumes["beef_taco"])
	}
	if volumes["ramen"] != 1 {
		t.Errorf("ramen volume = %v, want 1", volumes["ramen"])
	}
}

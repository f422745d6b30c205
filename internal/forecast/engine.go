package forecast

import (
	"sort"
	"time"

	"github.com/menulytics/menulytics/internal/models"
)

// Engine projects ingredient usage over a fixed horizon from historical
// sales and recipe associations. The model assumes a constant run-rate:
// every forecast day carries the same projected usage, with no trend or
// seasonality.
type Engine struct {
	horizon int
	now     func() time.Time
}

func NewEngine(horizonDays int) *Engine {
	if horizonDays <= 0 {
		horizonDays = 7
	}
	return &Engine{horizon: horizonDays, now: time.Now}
}

// AverageDailySales computes, per item name, the mean daily sales amount:
// total amount sold divided by the number of distinct days the item
// appears on. Items with no history are simply absent.
func (e *Engine) AverageDailySales(records []models.SalesRecord) map[string]float64 {
	type dayKey struct {
		item string
		day  string
	}
	perDay := make(map[dayKey]float64)
	totals := make(map[string]float64)
	days := make(map[string]int)

	for _, r := range records {
		k := dayKey{item: r.ItemName, day: r.Date.Format("2006-01-02")}
		if _, seen := perDay[k]; !seen {
			days[r.ItemName]++
		}
		perDay[k] += r.SalesAmount
		totals[r.ItemName] += r.SalesAmount
	}

	avg := make(map[string]float64, len(totals))
	for item, total := range totals {
		avg[item] = total / float64(days[item])
	}
	return avg
}

// Project builds per-ingredient forecasts for the horizon. Sales are tied
// to recipes through the normalized item name, the same identity key the
// import pipeline assigns to menu items.
func (e *Engine) Project(records []models.SalesRecord, recipes []models.RecipeAssociation, ingredients []models.Ingredient) []models.IngredientForecast {
	avgSales := e.AverageDailySales(records)

	// Recipes grouped by menu item id.
	byItem := make(map[string][]models.RecipeAssociation)
	for _, rec := range recipes {
		byItem[rec.MenuItemID] = append(byItem[rec.MenuItemID], rec)
	}

	dailyUsage := make(map[string]float64, len(ingredients))
	for itemName, avg := range avgSales {
		for _, rec := range byItem[models.NormalizeItemID(itemName)] {
			dailyUsage[rec.IngredientID] += rec.QuantityPerServing * avg
		}
	}

	names := make(map[string]string, len(ingredients))
	for _, ing := range ingredients {
		names[ing.ID] = ing.Name
	}

	today := e.now()
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	forecasts := make([]models.IngredientForecast, 0, len(ingredients))
	for _, ing := range ingredients {
		usage := dailyUsage[ing.ID]
		days := make([]models.ForecastDay, e.horizon)
		for i := range days {
			days[i] = models.ForecastDay{
				Date:     start.AddDate(0, 0, i),
				Quantity: usage,
			}
		}
		forecasts = append(forecasts, models.IngredientForecast{
			IngredientID:   ing.ID,
			IngredientName: names[ing.ID],
			Days:           days,
			TotalForecast:  usage * float64(e.horizon),
		})
	}

	sort.SliceStable(forecasts, func(i, j int) bool {
		return forecasts[i].TotalForecast > forecasts[j].TotalForecast
	})
	return forecasts
}

// Alerts flags ingredients whose projected usage exceeds current stock.
// DaysUntilEmpty counts the days whose cumulative usage still fits within
// stock; status is critical at two days or less. Ingredients whose stock
// covers the forecast produce no alert. Results come back ordered by
// DaysUntilEmpty ascending.
func Alerts(forecasts []models.IngredientForecast, ingredients []models.Ingredient) []models.StockAlert {
	stock := make(map[string]float64, len(ingredients))
	for _, ing := range ingredients {
		stock[ing.ID] = ing.CurrentStock
	}

	var alerts []models.StockAlert
	for _, f := range forecasts {
		current, ok := stock[f.IngredientID]
		if !ok || f.TotalForecast <= current {
			continue
		}

		daysUntilEmpty := 0
		var running float64
		for _, day := range f.Days {
			running += day.Quantity
			if running > current {
				break
			}
			daysUntilEmpty++
		}

		status := models.AlertWarning
		if daysUntilEmpty <= 2 {
			status = models.AlertCritical
		}

		alerts = append(alerts, models.StockAlert{
			IngredientID:   f.IngredientID,
			IngredientName: f.IngredientName,
			CurrentStock:   current,
			ForecastUsage:  f.TotalForecast,
			DaysUntilEmpty: daysUntilEmpty,
			Deficit:        f.TotalForecast - current,
			Status:         status,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DaysUntilEmpty < alerts[j].DaysUntilEmpty
	})
	return alerts
}

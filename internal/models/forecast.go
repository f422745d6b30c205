package models

import "time"

type ForecastDay struct {
	Date     time.Time `json:"date"`
	Quantity float64   `json:"quantity"`
}

// IngredientForecast is a derived entity: it is regenerated wholesale
// whenever sales history, recipes or the horizon change, never edited.
type IngredientForecast struct {
	IngredientID   string        `json:"ingredient_id"`
	IngredientName string        `json:"ingredient_name"`
	Days           []ForecastDay `json:"forecast"`
	TotalForecast  float64       `json:"total_forecast"`
}

type AlertStatus string

const (
	AlertCritical AlertStatus = "critical"
	AlertWarning  AlertStatus = "warning"
)

type StockAlert struct {
	IngredientID   string      `json:"ingredient_id"`
	IngredientName string      `json:"ingredient_name"`
	CurrentStock   float64     `json:"current_stock"`
	ForecastUsage  float64     `json:"forecast_usage"`
	DaysUntilEmpty int         `json:"days_until_empty"`
	Deficit        float64     `json:"deficit"`
	Status         AlertStatus `json:"status"`
}

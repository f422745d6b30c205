package models

type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

type PriceRecommendation struct {
	ItemID           string     `json:"item_id"`
	ItemName         string     `json:"item_name"`
	CurrentPrice     float64    `json:"current_price"`
	RecommendedPrice float64    `json:"recommended_price"`
	AchievedMargin   float64    `json:"achieved_margin"`
	Confidence       Confidence `json:"confidence"`
	Rationale        string     `json:"rationale"`
}

// OptimizationSummary aggregates a batch optimization run. Revenue and
// profit figures are weighted by each item's sales volume.
type OptimizationSummary struct {
	CurrentRevenue    float64 `json:"current_revenue"`
	CurrentProfit     float64 `json:"current_profit"`
	CurrentMargin     float64 `json:"current_margin"`
	SuggestedRevenue  float64 `json:"suggested_revenue"`
	SuggestedProfit   float64 `json:"suggested_profit"`
	SuggestedMargin   float64 `json:"suggested_margin"`
	ProfitIncrease    float64 `json:"profit_increase"`
	ProfitIncreasePct float64 `json:"profit_increase_pct"`
	ItemsOptimized    int     `json:"items_optimized"`
}

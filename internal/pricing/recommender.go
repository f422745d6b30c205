package pricing

import (
	"fmt"
	"math"

	"github.com/menulytics/menulytics/internal/models"
)

// Popularity bands. A score below PopularityLow is a slow seller, above
// PopularityHigh a strong one; everything between is medium.
const (
	PopularityLow     = 0.7
	PopularityHigh    = 1.3
	PopularityDefault = 1.0
)

// Request carries one item through the recommender. CompetitorPrice and
// Popularity are optional; their Has flags say whether they were supplied.
type Request struct {
	Item               models.MenuItem
	CompetitorPrice    float64
	HasCompetitorPrice bool
	Popularity         float64
	HasPopularity      bool
}

// Recommend produces a cost-plus, demand-adjusted price suggestion for an
// item with a known cost. The result always lands inside the allowed band
// around the current price and on a multiple of the rounding precision.
func Recommend(req Request, settings models.PricingSettings) (models.PriceRecommendation, error) {
	item := req.Item

	popularity := PopularityDefault
	if req.HasPopularity {
		popularity = req.Popularity
	}

	margin := settings.TargetMargin
	var demandNote string
	switch {
	case popularity > PopularityHigh:
		margin += settings.HighVolumeBonus
		demandNote = "strong demand supports a higher margin"
	case popularity < PopularityLow:
		margin -= settings.LowVolumeDiscount
		demandNote = "weak demand warrants a lower margin to stimulate sales"
	default:
		demandNote = "steady demand keeps the target margin unchanged"
	}
	if margin < settings.MinimumMargin {
		margin = settings.MinimumMargin
	}
	if margin >= 100 {
		return models.PriceRecommendation{}, models.ErrDegenerateMargin
	}

	basePrice := item.Cost / (1 - margin/100)

	price := basePrice
	if req.HasCompetitorPrice {
		w := settings.CompetitorPriceWeight / 100
		price = basePrice*(1-w) + req.CompetitorPrice*w
	}

	low := item.CurrentPrice * (1 - settings.MinPriceDecrease/100)
	high := item.CurrentPrice * (1 + settings.MaxPriceIncrease/100)
	clamped := false
	if price > high {
		price = high
		clamped = true
	}
	if price < low {
		price = low
		clamped = true
	}

	price = roundToIncrement(price, settings.RoundingPrecision)

	// Rounding can nudge the price just outside the band; pull it back to
	// the exact bound so the clamp invariant holds for any inputs.
	if price > high {
		price = high
	}
	if price < low {
		price = low
	}

	confidence := models.ConfidenceMedium
	switch {
	case req.HasPopularity && req.HasCompetitorPrice:
		confidence = models.ConfidenceHigh
	case !req.HasPopularity && !req.HasCompetitorPrice:
		confidence = models.ConfidenceLow
	}

	var achieved float64
	if price > 0 {
		achieved = (price - item.Cost) / price * 100
	}

	rationale := fmt.Sprintf("cost-plus price at a %.0f%% target margin; %s", margin, demandNote)
	if req.HasCompetitorPrice {
		rationale += fmt.Sprintf("; blended %.0f%% toward the competitor price of %.2f", settings.CompetitorPriceWeight, req.CompetitorPrice)
	}
	if clamped {
		rationale += fmt.Sprintf("; held within -%.0f%%/+%.0f%% of the current price", settings.MinPriceDecrease, settings.MaxPriceIncrease)
	}

	return models.PriceRecommendation{
		ItemID:           item.ID,
		ItemName:         item.Name,
		CurrentPrice:     item.CurrentPrice,
		RecommendedPrice: price,
		AchievedMargin:   achieved,
		Confidence:       confidence,
		Rationale:        rationale,
	}, nil
}

func roundToIncrement(price, increment float64) float64 {
	if increment <= 0 {
		increment = 0.01
	}
	return math.Round(price/increment) * increment
}

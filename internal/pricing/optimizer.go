package pricing

import (
	"fmt"
	"math"
	"sort"

	"github.com/menulytics/menulytics/internal/models"
)

// OptimizeMenu runs the recommender across a whole menu. volumes maps
// item id to historical sales volume; items present there are banded into
// low/medium/high popularity around the volume distribution (median plus
// or minus half a standard deviation), items absent fall back to plain
// cost-plus. Items without a cost or a current price are skipped.
func OptimizeMenu(items []models.MenuItem, volumes map[string]float64, settings models.PricingSettings) ([]models.PriceRecommendation, models.OptimizationSummary, error) {
	lowCut, highCut := volumeThresholds(volumes)

	recs := make([]models.PriceRecommendation, 0, len(items))
	var summary models.OptimizationSummary

	for _, item := range items {
		if item.Cost <= 0 || item.CurrentPrice <= 0 {
			continue
		}

		volume, hasVolume := volumes[item.ID]
		req := Request{Item: item}
		if hasVolume {
			req.HasPopularity = true
			req.Popularity = popularityScore(volume, lowCut, highCut)
		}

		rec, err := Recommend(req, settings)
		if err != nil {
			return nil, models.OptimizationSummary{}, fmt.Errorf("optimizing %q: %w", item.Name, err)
		}
		recs = append(recs, rec)

		summary.CurrentRevenue += item.CurrentPrice * volume
		summary.SuggestedRevenue += rec.RecommendedPrice * volume
		summary.CurrentProfit += (item.CurrentPrice - item.Cost) * volume
		summary.SuggestedProfit += (rec.RecommendedPrice - item.Cost) * volume
	}

	summary.ItemsOptimized = len(recs)
	if summary.CurrentRevenue > 0 {
		summary.CurrentMargin = summary.CurrentProfit / summary.CurrentRevenue * 100
	}
	if summary.SuggestedRevenue > 0 {
		summary.SuggestedMargin = summary.SuggestedProfit / summary.SuggestedRevenue * 100
	}
	summary.ProfitIncrease = summary.SuggestedProfit - summary.CurrentProfit
	if summary.CurrentProfit > 0 {
		summary.ProfitIncreasePct = summary.ProfitIncrease / summary.CurrentProfit * 100
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return volumes[recs[i].ItemID] > volumes[recs[j].ItemID]
	})
	return recs, summary, nil
}

// volumeThresholds places the popularity cuts half a standard deviation
// either side of the median sales volume.
func volumeThresholds(volumes map[string]float64) (low, high float64) {
	if len(volumes) == 0 {
		return 0, 0
	}

	values := make([]float64, 0, len(volumes))
	for _, v := range volumes {
		values = append(values, v)
	}
	sort.Float64s(values)

	median := values[len(values)/2]
	if len(values)%2 == 0 {
		median = (values[len(values)/2-1] + values[len(values)/2]) / 2
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	std := math.Sqrt(variance / float64(len(values)))

	return median - std*0.5, median + std*0.5
}

func popularityScore(volume, lowCut, highCut float64) float64 {
	switch {
	case volume >= highCut:
		return PopularityHigh + 0.2
	case volume <= lowCut:
		return PopularityLow - 0.2
	default:
		return PopularityDefault
	}
}

// SalesVolumes counts sales per normalized item id from raw history, the
// figure the popularity bands are computed from.
func SalesVolumes(records []models.SalesRecord) map[string]float64 {
	volumes := make(map[string]float64)
	for _, r := range records {
		volumes[models.NormalizeItemID(r.ItemName)] += r.SalesAmount
	}
	return volumes
}

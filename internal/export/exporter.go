package export

import (
	"encoding/json"

	"github.com/menulytics/menulytics/internal/models"
)

const dateLayout = "2006-01-02"

// Exporter flattens domain entities into row payloads and feeds them to
// a destination. Callers own the destination's lifecycle via Close.
type Exporter struct {
	dest Destination
}

func NewExporter(dest Destination) *Exporter {
	return &Exporter{dest: dest}
}

func (e *Exporter) Sales(records []models.SalesRecord) error {
	for _, r := range records {
		row := SalesRow{
			Date:        r.Date.Format(dateLayout),
			ItemName:    r.ItemName,
			SalesAmount: r.SalesAmount,
			Price:       r.Price,
			Cost:        r.Cost,
			Category:    r.Category,
		}
		if err := e.write(TopicSalesRecords, row); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) Forecasts(forecasts []models.IngredientForecast) error {
	for _, f := range forecasts {
		for _, day := range f.Days {
			row := ForecastRow{
				IngredientID:   f.IngredientID,
				IngredientName: f.IngredientName,
				Date:           day.Date.Format(dateLayout),
				Quantity:       day.Quantity,
			}
			if err := e.write(TopicForecasts, row); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Exporter) Recommendations(recs []models.PriceRecommendation) error {
	for _, r := range recs {
		row := RecommendationRow{
			ItemID:           r.ItemID,
			ItemName:         r.ItemName,
			CurrentPrice:     r.CurrentPrice,
			RecommendedPrice: r.RecommendedPrice,
			AchievedMargin:   r.AchievedMargin,
			Confidence:       string(r.Confidence),
			Rationale:        r.Rationale,
		}
		if err := e.write(TopicRecommendations, row); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) Close() error {
	return e.dest.Close()
}

func (e *Exporter) write(topic string, row interface{}) error {
	msg, err := json.Marshal(row)
	if err != nil {
		return err
	}
	return e.dest.WriteMessage(topic, msg)
}

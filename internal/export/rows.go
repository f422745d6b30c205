package export

import "fmt"

// Row types are the flat wire shape shared by every destination. Nested
// structures (forecast day lists) are flattened to one row per day so
// the same payload round-trips through CSV, JSON lines and Parquet.

type SalesRow struct {
	Date        string  `json:"date" parquet:"name=date, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	ItemName    string  `json:"item_name" parquet:"name=item_name, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	SalesAmount float64 `json:"sales_amount" parquet:"name=sales_amount, type=DOUBLE"`
	Price       float64 `json:"price" parquet:"name=price, type=DOUBLE"`
	Cost        float64 `json:"cost" parquet:"name=cost, type=DOUBLE"`
	Category    string  `json:"category" parquet:"name=category, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
}

type ForecastRow struct {
	IngredientID   string  `json:"ingredient_id" parquet:"name=ingredient_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	IngredientName string  `json:"ingredient_name" parquet:"name=ingredient_name, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Date           string  `json:"date" parquet:"name=date, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Quantity       float64 `json:"quantity" parquet:"name=quantity, type=DOUBLE"`
}

type RecommendationRow struct {
	ItemID           string  `json:"item_id" parquet:"name=item_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	ItemName         string  `json:"item_name" parquet:"name=item_name, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	CurrentPrice     float64 `json:"current_price" parquet:"name=current_price, type=DOUBLE"`
	RecommendedPrice float64 `json:"recommended_price" parquet:"name=recommended_price, type=DOUBLE"`
	AchievedMargin   float64 `json:"achieved_margin" parquet:"name=achieved_margin, type=DOUBLE"`
	Confidence       string  `json:"confidence" parquet:"name=confidence, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Rationale        string  `json:"rationale" parquet:"name=rationale, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
}

// newRow returns an empty row value for a topic, used by destinations
// that need a typed schema to decode into.
func newRow(topic string) (interface{}, error) {
	switch topic {
	case TopicSalesRecords:
		return new(SalesRow), nil
	case TopicForecasts:
		return new(ForecastRow), nil
	case TopicRecommendations:
		return new(RecommendationRow), nil
	default:
		return nil, fmt.Errorf("unknown export topic: %s", topic)
	}
}

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/menulytics/menulytics/internal/models"
)

// captureDestination records every message for assertions.
type captureDestination struct {
	messages map[string][][]byte
	closed   bool
}

func newCaptureDestination() *captureDestination {
	return &captureDestination{messages: make(map[string][][]byte)}
}

func (c *captureDestination) WriteMessage(topic string, msg []byte) error {
	c.messages[topic] = append(c.messages[topic], msg)
	return nil
}

func (c *captureDestination) Close() error {
	c.closed = true
	return nil
}

func TestExporterFlattensForecasts(t *testing.T) {
	dest := newCaptureDestination()
	exporter := NewExporter(dest)

	forecasts := []models.IngredientForecast{{
		IngredientID:   "ing-a",
		IngredientName: "Cheese",
		Days: []models.ForecastDay{
			{Date: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), Quantity: 2},
			{Date: time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), Quantity: 2},
		},
		TotalForecast: 4,
	}}
	if err := exporter.Forecasts(forecasts); err != nil {
		t.Fatalf("Forecasts returned error: %v", err)
	}

	msgs := dest.messages[TopicForecasts]
	if len(msgs) != 2 {
		t.Fatalf("expected one message per forecast day, got %d", len(msgs))
	}

	var row ForecastRow
	if err := json.Unmarshal(msgs[0], &row); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if row.IngredientName != "Cheese" || row.Date != "2024-06-15" || row.Quantity != 2 {
		t.Errorf("unexpected row: %+v", row)
	}
}

func TestExporterSalesAndRecommendations(t *testing.T) {
	dest := newCaptureDestination()
	exporter := NewExporter(dest)

	records := []models.SalesRecord{{
		Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		ItemName:    "Burger",
		SalesAmount: 3,
		Price:       10,
		Cost:        3.5,
		Category:    "Burgers & Sandwiches",
	}}
	if err := exporter.Sales(records); err != nil {
		t.Fatalf("Sales returned error: %v", err)
	}

	recs := []models.PriceRecommendation{{
		ItemID:           "burger",
		ItemName:         "Burger",
		CurrentPrice:     10,
		RecommendedPrice: 10.5,
		AchievedMargin:   66.7,
		Confidence:       models.ConfidenceMedium,
		Rationale:        "steady demand",
	}}
	if err := exporter.Recommendations(recs); err != nil {
		t.Fatalf("Recommendations returned error: %v", err)
	}

	if len(dest.messages[TopicSalesRecords]) != 1 {
		t.Errorf("expected 1 sales message, got %d", len(dest.messages[TopicSalesRecords]))
	}
	var row RecommendationRow
	if err := json.Unmarshal(dest.messages[TopicRecommendations][0], &row); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if row.Confidence != "medium" || row.RecommendedPrice != 10.5 {
		t.Errorf("unexpected recommendation row: %+v", row)
	}

	if err := exporter.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if !dest.closed {
		t.Error("Close must close the destination")
	}
}

func TestJSONDestinationWritesLines(t *testing.T) {
	dir := t.TempDir()
	dest := NewJSONDestination(dir, "exports")

	if err := dest.WriteMessage(TopicSalesRecords, []byte(`{"item_name":"Burger"}`)); err != nil {
		t.Fatalf("WriteMessage returned error: %v", err)
	}
	if err := dest.WriteMessage(TopicSalesRecords, []byte(`{"item_name":"Pizza"}`)); err != nil {
		t.Fatalf("WriteMessage returned error: %v", err)
	}
	if err := dest.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "exports", TopicSalesRecords, "data.json"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	var row map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &row); err != nil {
		t.Fatalf("line is not valid JSON: %v", err)
	}
	if row["item_name"] != "Pizza" {
		t.Errorf("unexpected second line: %v", row)
	}
}

func TestCSVDestinationSortedHeaders(t *testing.T) {
	dir := t.TempDir()
	dest := NewCSVDestination(dir, "exports")

	if err := dest.WriteMessage(TopicSalesRecords, []byte(`{"item_name":"Burger","date":"2024-06-01","price":10}`)); err != nil {
		t.Fatalf("WriteMessage returned error: %v", err)
	}
	if err := dest.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "exports", TopicSalesRecords, "data.csv"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "date,item_name,price" {
		t.Errorf("header = %q, want alphabetical columns", lines[0])
	}
	if !strings.Contains(lines[1], "Burger") {
		t.Errorf("data row = %q", lines[1])
	}
}

func TestNewDestinationSelection(t *testing.T) {
	cfg := &models.Config{OutputFormat: "console"}
	dest, err := NewDestination(cfg)
	if err != nil {
		t.Fatalf("NewDestination returned error: %v", err)
	}
	if _, ok := dest.(*ConsoleDestination); !ok {
		t.Errorf("expected console destination, got %T", dest)
	}

	cfg.OutputFormat = "avro"
	if _, err := NewDestination(cfg); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}

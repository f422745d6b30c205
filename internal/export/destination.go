package export

import (
	"fmt"
	"os"

	"github.com/menulytics/menulytics/internal/models"
)

// Topics label the record streams a destination receives. File based
// destinations use them as folder names, Kafka uses them verbatim.
const (
	TopicSalesRecords    = "sales_records"
	TopicForecasts       = "ingredient_forecasts"
	TopicRecommendations = "price_recommendations"
)

type Destination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

// NewDestination selects an output sink from the configured format.
// kafka_enabled wins over the format so a config switch can redirect
// every export to the brokers.
func NewDestination(cfg *models.Config) (Destination, error) {
	if cfg.KafkaEnabled {
		return NewKafkaDestination(cfg)
	}
	switch cfg.OutputFormat {
	case "csv":
		return NewCSVDestination(cfg.OutputPath, cfg.OutputFolder), nil
	case "json":
		return NewJSONDestination(cfg.OutputPath, cfg.OutputFolder), nil
	case "parquet":
		return NewParquetDestination(cfg)
	case "kafka":
		return NewKafkaDestination(cfg)
	case "console", "":
		return &ConsoleDestination{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", cfg.OutputFormat)
	}
}

type ConsoleDestination struct{}

func (c *ConsoleDestination) WriteMessage(topic string, msg []byte) error {
	_, err := fmt.Fprintf(os.Stdout, "[%s] %s\n", topic, string(msg))
	if err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

func (c *ConsoleDestination) Close() error {
	return nil
}

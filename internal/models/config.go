package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// PricingSettings drive the price recommender. Percentages are expressed
// as whole numbers (65 means 65%).
type PricingSettings struct {
	TargetMargin          float64 `mapstructure:"target_margin"`
	HighVolumeBonus       float64 `mapstructure:"high_volume_bonus"`
	LowVolumeDiscount     float64 `mapstructure:"low_volume_discount"`
	MaxPriceIncrease      float64 `mapstructure:"max_price_increase"`
	MinPriceDecrease      float64 `mapstructure:"min_price_decrease"`
	CompetitorPriceWeight float64 `mapstructure:"competitor_price_weight"`
	RoundingPrecision     float64 `mapstructure:"rounding_precision"`
	MinimumMargin         float64 `mapstructure:"minimum_margin"`
}

type Config struct {
	Profile        string    `mapstructure:"profile"`
	DataDir        string    `mapstructure:"data_dir"`
	StorageBackend string    `mapstructure:"storage_backend"`
	ChunkSize      int       `mapstructure:"chunk_size"`
	ForecastDays   int       `mapstructure:"forecast_days"`
	Seed           int       `mapstructure:"seed"`
	SeedRecords    int       `mapstructure:"seed_records"`
	SeedStartDate  time.Time `mapstructure:"seed_start_date"`

	Database DatabaseConfig `mapstructure:"database"`

	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`

	OutputFormat      string             `mapstructure:"output_format"`
	OutputPath        string             `mapstructure:"output_path"`
	OutputFolder      string             `mapstructure:"output_folder"`
	OutputDestination string             `mapstructure:"output_destination"`
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`

	OptimizerURL string `mapstructure:"optimizer_url"`

	Pricing PricingSettings `mapstructure:"pricing"`
}

// DefaultPricingSettings mirrors the defaults the optimizer ships with.
func DefaultPricingSettings() PricingSettings {
	return PricingSettings{
		TargetMargin:          65,
		HighVolumeBonus:       10,
		LowVolumeDiscount:     5,
		MaxPriceIncrease:      15,
		MinPriceDecrease:      5,
		CompetitorPriceWeight: 30,
		RoundingPrecision:     0.25,
		MinimumMargin:         10,
	}
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("menulytics")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("profile", "default")
	viper.SetDefault("data_dir", "data")
	viper.SetDefault("storage_backend", "file")
	viper.SetDefault("chunk_size", 1000)
	viper.SetDefault("forecast_days", 7)
	viper.SetDefault("seed", 42)
	viper.SetDefault("seed_records", 500)
	viper.SetDefault("output_format", "console")
	viper.SetDefault("output_destination", "local")
	viper.SetDefault("pricing.target_margin", 65)
	viper.SetDefault("pricing.high_volume_bonus", 10)
	viper.SetDefault("pricing.low_volume_discount", 5)
	viper.SetDefault("pricing.max_price_increase", 15)
	viper.SetDefault("pricing.min_price_decrease", 5)
	viper.SetDefault("pricing.competitor_price_weight", 30)
	viper.SetDefault("pricing.rounding_precision", 0.25)
	viper.SetDefault("pricing.minimum_margin", 10)

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional; defaults plus flags are enough,
		// but an explicitly named file must exist.
		if cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

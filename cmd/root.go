package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/menulytics/menulytics/internal/models"
	"github.com/menulytics/menulytics/internal/store"
	"github.com/menulytics/menulytics/internal/store/filestore"
	"github.com/menulytics/menulytics/internal/store/postgres"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "menulytics",
	Short: "Sales analytics and menu optimization for restaurants",
	Long: `menulytics ingests raw point-of-sale exports, classifies menu items into
categories, aggregates sales, forecasts ingredient demand from recipes and
recommends menu prices. Data is kept per profile so several venues can
share one installation.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./menulytics.json)")
	rootCmd.PersistentFlags().String("profile", "default", "data profile to operate on")
	rootCmd.PersistentFlags().String("data-dir", "data", "directory for file backed storage")
	rootCmd.PersistentFlags().String("storage-backend", "file", "storage backend: file or postgres")

	viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("storage_backend", rootCmd.PersistentFlags().Lookup("storage-backend"))
}

func loadConfig() (*models.Config, error) {
	return models.LoadConfig(cfgFile)
}

// openStore selects the storage backend for the configured profile.
func openStore(ctx context.Context, cfg *models.Config) (store.Store, error) {
	switch cfg.StorageBackend {
	case "postgres":
		return postgres.New(ctx, cfg.Database, cfg.Profile)
	case "file", "":
		return filestore.New(cfg.DataDir, cfg.Profile)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.StorageBackend)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

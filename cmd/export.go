package cmd

import (
	"fmt"

	"github.com/menulytics/menulytics/internal/export"
	"github.com/menulytics/menulytics/internal/models"
	"github.com/menulytics/menulytics/internal/pricing"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export sales, forecasts and price recommendations",
	Long: `Exports the profile's sales history, the last saved ingredient
forecasts and a fresh set of price recommendations to the configured
destination: console, csv, json, parquet (local or S3) or kafka.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("format") {
			cfg.OutputFormat, _ = cmd.Flags().GetString("format")
		}
		if cmd.Flags().Changed("output-path") {
			cfg.OutputPath, _ = cmd.Flags().GetString("output-path")
		}
		if cmd.Flags().Changed("output-folder") {
			cfg.OutputFolder, _ = cmd.Flags().GetString("output-folder")
		}

		ctx := cmd.Context()
		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := st.Sales().GetAll(ctx)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return models.ErrNoSalesData
		}
		forecasts, err := st.Forecasts().GetAll(ctx)
		if err != nil {
			return err
		}
		items, err := st.MenuItems().GetAll(ctx)
		if err != nil {
			return err
		}

		recs, _, err := pricing.OptimizeMenu(items, pricing.SalesVolumes(records), cfg.Pricing)
		if err != nil {
			return err
		}

		dest, err := export.NewDestination(cfg)
		if err != nil {
			return err
		}
		exporter := export.NewExporter(dest)

		if err := exporter.Sales(records); err != nil {
			exporter.Close()
			return err
		}
		if err := exporter.Forecasts(forecasts); err != nil {
			exporter.Close()
			return err
		}
		if err := exporter.Recommendations(recs); err != nil {
			exporter.Close()
			return err
		}
		if err := exporter.Close(); err != nil {
			return err
		}

		fmt.Printf("Exported %d sales records, %d forecasts and %d recommendations (%s)\n",
			len(records), len(forecasts), len(recs), cfg.OutputFormat)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", "", "output format: console, csv, json, parquet or kafka")
	exportCmd.Flags().String("output-path", "", "base path for file exports")
	exportCmd.Flags().String("output-folder", "", "folder under the base path")
	rootCmd.AddCommand(exportCmd)
}

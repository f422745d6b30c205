package cmd

import (
	"fmt"

	"github.com/menulytics/menulytics/internal/forecast"
	"github.com/menulytics/menulytics/internal/models"
	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project ingredient demand from sales history and recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		days := cfg.ForecastDays
		if cmd.Flags().Changed("days") {
			days, _ = cmd.Flags().GetInt("days")
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
		recipes, err := st.Recipes().GetAll(ctx)
		if err != nil {
			return err
		}
		ingredients, err := st.Ingredients().GetAll(ctx)
		if err != nil {
			return err
		}

		engine := forecast.NewEngine(days)
		forecasts := engine.Project(records, recipes, ingredients)
		if err := st.Forecasts().SaveAll(ctx, forecasts); err != nil {
			return err
		}

		fmt.Printf("Forecast horizon: %d days, %d ingredients\n\n", days, len(forecasts))
		for _, f := range forecasts {
			fmt.Printf("  %-24s %10.1f total\n", f.IngredientName, f.TotalForecast)
		}

		alerts := forecast.Alerts(forecasts, ingredients)
		if len(alerts) == 0 {
			fmt.Println("\nAll ingredients are stocked for the horizon.")
			return nil
		}

		fmt.Printf("\n%d stock alerts:\n", len(alerts))
		for _, a := range alerts {
			fmt.Printf("  [%s] %s runs out in %d days (short %.1f)\n",
				a.Status, a.IngredientName, a.DaysUntilEmpty, a.Deficit)
		}
		return nil
	},
}

func init() {
	forecastCmd.Flags().Int("days", 7, "forecast horizon in days")
	rootCmd.AddCommand(forecastCmd)
}

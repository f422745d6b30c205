package cmd

import (
	"fmt"
	"log"

	"github.com/menulytics/menulytics/internal/models"
	"github.com/menulytics/menulytics/internal/pricing"
	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Recommend new prices for the whole menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		items, err := st.MenuItems().GetAll(ctx)
		if err != nil {
			return err
		}
		records, err := st.Sales().GetAll(ctx)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return models.ErrNoSalesData
		}

		// The remote optimizer is optional. When it is unreachable the
		// local rules produce the same shape of result.
		if cfg.OptimizerURL != "" {
			remote := pricing.NewRemoteOptimizer(cfg.OptimizerURL)
			if err := remote.Ping(ctx); err != nil {
				log.Printf("remote optimizer unavailable, using local rules: %v", err)
			}
		}

		recs, summary, err := pricing.OptimizeMenu(items, pricing.SalesVolumes(records), cfg.Pricing)
		if err != nil {
			return err
		}

		for _, r := range recs {
			direction := "keep"
			if r.RecommendedPrice > r.CurrentPrice {
				direction = "raise"
			} else if r.RecommendedPrice < r.CurrentPrice {
				direction = "lower"
			}
			fmt.Printf("%-28s %7.2f -> %7.2f  (%s, margin %.1f%%, %s confidence)\n",
				r.ItemName, r.CurrentPrice, r.RecommendedPrice, direction, r.AchievedMargin, r.Confidence)
		}

		fmt.Printf("\nOptimized %d items\n", summary.ItemsOptimized)
		fmt.Printf("Revenue:  %10.2f -> %10.2f\n", summary.CurrentRevenue, summary.SuggestedRevenue)
		fmt.Printf("Profit:   %10.2f -> %10.2f (+%.1f%%)\n",
			summary.CurrentProfit, summary.SuggestedProfit, summary.ProfitIncreasePct)
		fmt.Printf("Margin:   %9.1f%% -> %9.1f%%\n", summary.CurrentMargin, summary.SuggestedMargin)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
}

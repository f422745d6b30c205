package cmd

import (
	"fmt"

	"github.com/menulytics/menulytics/internal/models"
	"github.com/menulytics/menulytics/internal/pricing"
	"github.com/spf13/cobra"
)

var priceCmd = &cobra.Command{
	Use:   "price <item name>",
	Short: "Recommend a price for a single menu item",
	Args:  cobra.ExactArgs(1),
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

		id := models.NormalizeItemID(args[0])
		var item *models.MenuItem
		for i := range items {
			if items[i].ID == id {
				item = &items[i]
				break
			}
		}
		if item == nil {
			return fmt.Errorf("menu item %q not found in profile %q", args[0], cfg.Profile)
		}

		req := pricing.Request{Item: *item}
		if cmd.Flags().Changed("competitor-price") {
			req.CompetitorPrice, _ = cmd.Flags().GetFloat64("competitor-price")
			req.HasCompetitorPrice = true
		}
		if cmd.Flags().Changed("popularity") {
			req.Popularity, _ = cmd.Flags().GetFloat64("popularity")
			req.HasPopularity = true
		}

		rec, err := pricing.Recommend(req, cfg.Pricing)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", rec.ItemName)
		fmt.Printf("  current:     %.2f\n", rec.CurrentPrice)
		fmt.Printf("  recommended: %.2f (margin %.1f%%, %s confidence)\n",
			rec.RecommendedPrice, rec.AchievedMargin, rec.Confidence)
		fmt.Printf("  rationale:   %s\n", rec.Rationale)
		return nil
	},
}

func init() {
	priceCmd.Flags().Float64("competitor-price", 0, "competitor price for the same item")
	priceCmd.Flags().Float64("popularity", 0, "popularity multiplier (0.7 low, 1.0 normal, 1.3 high)")
	rootCmd.AddCommand(priceCmd)
}

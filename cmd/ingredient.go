package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lucsky/cuid"
	"github.com/menulytics/menulytics/internal/models"
	"github.com/spf13/cobra"
)

var ingredientCmd = &cobra.Command{
	Use:   "ingredient",
	Short: "Manage the ingredient pantry",
}

var ingredientAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an ingredient with its stock level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		stock, _ := cmd.Flags().GetFloat64("stock")
		unit, _ := cmd.Flags().GetString("unit")

		ctx := cmd.Context()
		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ingredients, err := st.Ingredients().GetAll(ctx)
		if err != nil {
			return err
		}

		// Re-adding by name updates the stock instead of duplicating.
		for i := range ingredients {
			if ingredients[i].Name == args[0] {
				ingredients[i].CurrentStock = stock
				if unit != "" {
					ingredients[i].Unit = unit
				}
				if err := st.Ingredients().SaveAll(ctx, ingredients); err != nil {
					return err
				}
				fmt.Printf("Updated %s: %.1f %s\n", args[0], stock, ingredients[i].Unit)
				return nil
			}
		}

		ing := models.Ingredient{
			ID:           cuid.New(),
			Name:         args[0],
			CurrentStock: stock,
			Unit:         unit,
		}
		ingredients = append(ingredients, ing)
		if err := st.Ingredients().SaveAll(ctx, ingredients); err != nil {
			return err
		}
		fmt.Printf("Added %s (%s): %.1f %s\n", ing.Name, ing.ID, ing.CurrentStock, ing.Unit)
		return nil
	},
}

var ingredientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ingredients and stock levels",
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

		ingredients, err := st.Ingredients().GetAll(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSTOCK\tUNIT")
		for _, ing := range ingredients {
			fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\n", ing.ID, ing.Name, ing.CurrentStock, ing.Unit)
		}
		return w.Flush()
	},
}

func init() {
	ingredientAddCmd.Flags().Float64("stock", 0, "current stock level")
	ingredientAddCmd.Flags().String("unit", "kg", "unit of measure")
	ingredientCmd.AddCommand(ingredientAddCmd)
	ingredientCmd.AddCommand(ingredientListCmd)
	rootCmd.AddCommand(ingredientCmd)
}

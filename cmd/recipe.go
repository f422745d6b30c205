package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/menulytics/menulytics/internal/models"
	"github.com/menulytics/menulytics/internal/store"
	"github.com/spf13/cobra"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Link menu items to the ingredients they consume",
}

var recipeSetCmd = &cobra.Command{
	Use:   "set <menu item> <ingredient id>",
	Short: "Set the per serving quantity for a menu item / ingredient pair",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		quantity, _ := cmd.Flags().GetFloat64("quantity")
		if quantity <= 0 {
			return fmt.Errorf("quantity must be positive")
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
		found := false
		for _, ing := range ingredients {
			if ing.ID == args[1] {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("ingredient %q not found in profile %q", args[1], cfg.Profile)
		}

		recipes, err := st.Recipes().GetAll(ctx)
		if err != nil {
			return err
		}
		recipes = store.UpsertRecipe(recipes, models.RecipeAssociation{
			MenuItemID:         models.NormalizeItemID(args[0]),
			IngredientID:       args[1],
			QuantityPerServing: quantity,
		})
		if err := st.Recipes().SaveAll(ctx, recipes); err != nil {
			return err
		}
		fmt.Printf("Recipe set: %s uses %.2f per serving of %s\n", args[0], quantity, args[1])
		return nil
	},
}

var recipeRemoveCmd = &cobra.Command{
	Use:   "remove <menu item> <ingredient id>",
	Short: "Remove a menu item / ingredient association",
	Args:  cobra.ExactArgs(2),
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

		recipes, err := st.Recipes().GetAll(ctx)
		if err != nil {
			return err
		}
		recipes = store.RemoveRecipe(recipes, models.NormalizeItemID(args[0]), args[1])
		if err := st.Recipes().SaveAll(ctx, recipes); err != nil {
			return err
		}
		fmt.Printf("Recipe removed for %s\n", args[0])
		return nil
	},
}

var recipeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipe associations",
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

		recipes, err := st.Recipes().GetAll(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MENU ITEM\tINGREDIENT\tQTY/SERVING")
		for _, r := range recipes {
			fmt.Fprintf(w, "%s\t%s\t%.2f\n", r.MenuItemID, r.IngredientID, r.QuantityPerServing)
		}
		return w.Flush()
	},
}

func init() {
	recipeSetCmd.Flags().Float64("quantity", 0, "ingredient quantity consumed per serving")
	recipeCmd.AddCommand(recipeSetCmd)
	recipeCmd.AddCommand(recipeRemoveCmd)
	recipeCmd.AddCommand(recipeListCmd)
	rootCmd.AddCommand(recipeCmd)
}

package cmd

import (
	"fmt"
	"time"

	"github.com/menulytics/menulytics/internal/classifier"
	"github.com/menulytics/menulytics/internal/factories"
	"github.com/menulytics/menulytics/internal/ingest"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the profile with deterministic demo data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		records := cfg.SeedRecords
		if cmd.Flags().Changed("records") {
			records, _ = cmd.Flags().GetInt("records")
		}
		start := cfg.SeedStartDate
		if start.IsZero() {
			start = time.Now().UTC()
		}
		if cmd.Flags().Changed("start-date") {
			raw, _ := cmd.Flags().GetString("start-date")
			start, err = time.Parse("2006-01-02", raw)
			if err != nil {
				return fmt.Errorf("invalid start date: %w", err)
			}
		}

		ctx := cmd.Context()
		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		factory := factories.NewSalesDataFactory(int64(cfg.Seed))

		raw := factory.SalesCSV(records, start)
		importer := ingest.NewImporter(classifier.New(), cfg.ChunkSize)
		result, err := importer.Import(raw, nil, nil)
		if err != nil {
			return err
		}

		ingredients := factory.Ingredients()
		recipes := factory.Recipes(ingredients)

		if err := st.Sales().Append(ctx, result.Records); err != nil {
			return err
		}
		if err := st.MenuItems().SaveAll(ctx, result.MenuItems); err != nil {
			return err
		}
		if err := st.Ingredients().SaveAll(ctx, ingredients); err != nil {
			return err
		}
		if err := st.Recipes().SaveAll(ctx, recipes); err != nil {
			return err
		}

		fmt.Printf("Seeded profile %q: %d sales records, %d menu items, %d ingredients, %d recipes\n",
			cfg.Profile, len(result.Records), len(result.MenuItems), len(ingredients), len(recipes))
		return nil
	},
}

func init() {
	seedCmd.Flags().Int("records", 500, "number of sales rows to generate")
	seedCmd.Flags().String("start-date", "", "newest sales date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(seedCmd)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/menulytics/menulytics/internal/classifier"
	"github.com/menulytics/menulytics/internal/ingest"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a raw sales export (CSV, semicolon, tab or pipe delimited)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading sales file: %w", err)
		}

		ctx := cmd.Context()
		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		existing, err := st.MenuItems().GetAll(ctx)
		if err != nil {
			return err
		}

		var bar *progressbar.ProgressBar
		importer := ingest.NewImporter(classifier.New(), cfg.ChunkSize)
		result, err := importer.Import(string(raw), existing, func(done, total int) {
			if bar == nil {
				bar = progressbar.Default(int64(total), "importing rows")
			}
			bar.Set(done)
		})
		if err != nil {
			return err
		}
		if bar != nil {
			bar.Finish()
		}

		if err := st.Sales().Append(ctx, result.Records); err != nil {
			return err
		}
		if err := st.MenuItems().SaveAll(ctx, result.MenuItems); err != nil {
			return err
		}

		fmt.Printf("\nImported %d records (%d rows skipped) into profile %q\n",
			len(result.Records), result.SkippedRows, cfg.Profile)
		fmt.Printf("Menu catalogue now holds %d items\n", len(result.MenuItems))
		if len(result.CategoryVolumes) > 0 {
			fmt.Println("\nSales volume by category:")
			for _, cv := range result.CategoryVolumes {
				fmt.Printf("  %-24s %10.1f\n", cv.Category, cv.Volume)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

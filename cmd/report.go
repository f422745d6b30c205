package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/menulytics/menulytics/internal/analytics"
	"github.com/menulytics/menulytics/internal/models"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Aggregate sales by item or by month",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		by, _ := cmd.Flags().GetString("by")
		top, _ := cmd.Flags().GetInt("top")

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

		var buckets []analytics.Bucket
		switch by {
		case "item":
			buckets = analytics.TopN(analytics.ByItem(records), top)
		case "month":
			buckets = analytics.ByMonth(records)
		default:
			return fmt.Errorf("unsupported report dimension: %s (use item or month)", by)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "%s\tSALES\n", by)
		for _, b := range buckets {
			fmt.Fprintf(w, "%s\t%.1f\n", b.Key, b.Total)
		}
		return w.Flush()
	},
}

func init() {
	reportCmd.Flags().String("by", "item", "report dimension: item or month")
	reportCmd.Flags().Int("top", analytics.DefaultTopGroups, "number of item groups before collapsing into Other")
	rootCmd.AddCommand(reportCmd)
}

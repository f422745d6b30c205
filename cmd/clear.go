package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all data for the active profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to clear profile %q without --yes", cfg.Profile)
		}

		ctx := cmd.Context()
		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ClearAll(ctx); err != nil {
			return err
		}
		fmt.Printf("Cleared all data for profile %q\n", cfg.Profile)
		return nil
	},
}

func init() {
	clearCmd.Flags().Bool("yes", false, "confirm deletion")
	rootCmd.AddCommand(clearCmd)
}

package cli

import (
	"fmt"
	"os"

	"github.com/daryltucker/bench-harness/internal/config"
	"github.com/daryltucker/bench-harness/internal/output"
	"github.com/spf13/cobra"
)

// The orchestrator never promotes on its own: which run becomes the diff
// baseline is the developer's call.
var promoteCmd = &cobra.Command{
	Use:   "promote",
	Short: "Promote the latest raw store to be the next run's diff baseline",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		if outputOverride != "" {
			cfg.OutputDir = outputOverride
		}

		latest := cfg.LatestPath()
		previous := cfg.PreviousPath()
		if _, err := os.Stat(latest); err != nil {
			return fmt.Errorf("nothing to promote: %w", err)
		}

		if err := os.Rename(latest, previous); err != nil {
			return fmt.Errorf("failed to promote %s to %s: %w", latest, previous, err)
		}
		output.Logger.Info("Promoted latest run to baseline", "from", latest, "to", previous)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promoteCmd)
	promoteCmd.Flags().StringVarP(&outputOverride, "output-dir", "o", "", "Output directory holding the stores")
}

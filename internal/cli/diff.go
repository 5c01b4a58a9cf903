/*
PURPOSE:
  Defines the 'diff' subcommand.
  Diffs two stored raw output files without running the suite.

REQUIREMENTS:
  User-specified:
  - Re-run the classification offline, e.g. against an older capture.

  Implementation-discovered:
  - Argument order mirrors the in-run diff: current first, previous second.

ARCHITECTURE INTEGRATION:
  - Calls: internal/extract.ParseFile, internal/diff.Compare

ERROR HANDLING:
  - Prints error if either file is missing or malformed.

IMPLEMENTATION RULES:
  - Simple output to stdout; empty report means no differences.

USAGE:
  bench-harness diff results/latest.txt results/last.txt

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/diff/diff.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"os"

	"github.com/daryltucker/bench-harness/internal/config"
	"github.com/daryltucker/bench-harness/internal/diff"
	"github.com/daryltucker/bench-harness/internal/extract"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff <current-raw> <previous-raw>",
	Short: "Diff two stored raw output files and print the report",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		current, err := extract.ParseFile(args[0], cfg.Labels())
		if err != nil {
			return err
		}
		previous, err := extract.ParseFile(args[1], cfg.Labels())
		if err != nil {
			return err
		}

		diff.WriteReport(os.Stdout, diff.Compare(current, previous))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

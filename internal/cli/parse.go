/*
PURPOSE:
  Defines the 'parse' subcommand.
  Re-extracts a stored raw output file and prints its CSV table.

REQUIREMENTS:
  User-specified:
  - Inspect what the extractor sees in a stored stream without running
    the suite.

  Implementation-discovered:
  - Useful for checking label configuration against old captures.

ARCHITECTURE INTEGRATION:
  - Calls: internal/extract.ParseFile, internal/output.WriteTable

ERROR HANDLING:
  - Prints error if the file is missing or a timing line is malformed.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  bench-harness parse results/latest.txt

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/extract/extractor.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"os"

	"github.com/daryltucker/bench-harness/internal/config"
	"github.com/daryltucker/bench-harness/internal/extract"
	"github.com/daryltucker/bench-harness/internal/output"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <raw-file>",
	Short: "Extract records from a stored raw output file and print them as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		records, err := extract.ParseFile(args[0], cfg.Labels())
		if err != nil {
			return err
		}

		return output.WriteTable(os.Stdout, records)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

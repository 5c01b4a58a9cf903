/*
PURPOSE:
  Defines the 'run' subcommand.
  Executes the full harness sequence.

REQUIREMENTS:
  User-specified:
  - Run build -> run -> persist -> diff.
  - Specific flags for overrides.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load fails or engine run fails.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Engine.Run.

USAGE:
  bench-harness run -o ./results

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"github.com/daryltucker/bench-harness/internal/config"
	"github.com/daryltucker/bench-harness/internal/engine"
	"github.com/spf13/cobra"
)

var (
	outputOverride   string
	buildCmdOverride []string
	runCmdOverride   []string
	skipBuild        bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build and run the suite, persist results, diff against the previous run",
	Long: `Executes the full harness sequence:
1. Build: compiles the suite in release mode; a failure aborts everything.
2. Run: streams the suite's combined output, echoing each line while
   recording it to the raw store and extracting per-problem results.
3. Persist: writes the extracted results as a CSV table.
4. Diff: if a previous run's raw store exists, reports new answers and
   mismatches; otherwise the diff is skipped silently.

A non-zero exit from the suite is reported only after the output collected
so far has been persisted and diffed.`,
	Example: `  # Run with defaults (uses harness.yaml if present)
  bench-harness run

  # Override the results directory
  bench-harness run -o ./results-experiment

  # Iterate without rebuilding
  bench-harness run --skip-build

  # Harness a different suite
  bench-harness run --build-cmd go,build,./... --run-cmd ./solver`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		// 2. Overrides
		if outputOverride != "" {
			cfg.OutputDir = outputOverride
		}
		if len(buildCmdOverride) > 0 {
			cfg.BuildCommand = buildCmdOverride
		}
		if len(runCmdOverride) > 0 {
			cfg.RunCommand = runCmdOverride
		}
		if skipBuild {
			cfg.SkipBuild = true
		}

		// 3. Execution
		return engine.Run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&outputOverride, "output-dir", "o", "", "Output directory for the raw/table stores")
	runCmd.Flags().StringSliceVar(&buildCmdOverride, "build-cmd", nil, "Comma-separated build command argv")
	runCmd.Flags().StringSliceVar(&runCmdOverride, "run-cmd", nil, "Comma-separated run command argv")
	runCmd.Flags().BoolVar(&skipBuild, "skip-build", false, "Skip the build step")
}

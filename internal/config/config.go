/*
PURPOSE:
  Defines the configuration structure and loading logic for Bench Harness.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Configure the build/run commands, the results directory, the store
    file names, and the three recognized output labels.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Needs to support environment variable overrides (BENCH_...), with an
    optional .env file loaded first.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3, github.com/joho/godotenv

ERROR HANDLING:
  - Returns explicit error if a user-specified config file is invalid.
  - A missing default config file is not an error; defaults apply.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults must reproduce the historical harness behavior (cargo
    release build/run, results/ directory, latest.txt / last.txt /
    latest.csv).
  - Precedence: defaults < file < environment < CLI flags.

USAGE:
  cfg, err := config.Load("harness.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update Load() defaults.

RELATED FILES:
  - internal/cli/run.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/daryltucker/bench-harness/internal/extract"
)

// Config represents the full configuration for Bench Harness.
type Config struct {
	// BuildCommand and RunCommand are argv vectors for the two external
	// collaborators. Empty BuildCommand disables the build step.
	BuildCommand []string `yaml:"build_command"`
	RunCommand   []string `yaml:"run_command"`

	// OutputDir holds the three durable stores.
	OutputDir    string `yaml:"output_dir"`
	LatestFile   string `yaml:"latest_file"`   // raw output of the most recent run
	PreviousFile string `yaml:"previous_file"` // promoted raw output of the prior run
	TableFile    string `yaml:"table_file"`    // CSV table of the most recent run

	// The literal prefixes of the three recognized output line shapes.
	RunningLabel string `yaml:"running_label"`
	AnswerLabel  string `yaml:"answer_label"`
	ElapsedLabel string `yaml:"elapsed_label"`

	SkipBuild bool `yaml:"skip_build"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		BuildCommand: []string{"cargo", "build", "--release"},
		RunCommand:   []string{"cargo", "run", "--release"},
		OutputDir:    "results",
		LatestFile:   "latest.txt",
		PreviousFile: "last.txt",
		TableFile:    "latest.csv",
		RunningLabel: "Running:",
		AnswerLabel:  "Answer:",
		ElapsedLabel: "Elapsed Time:",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
// Environment overrides (BENCH_*) apply last, after an optional .env file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		// Search for defaults
		defaults := []string{"harness.yaml", "bench_harness.yaml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				found = true
				break
			}
		}
		if !found {
			cfg.applyEnv()
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays BENCH_* environment variables. A .env file in the
// working directory is loaded first when present; godotenv never
// overwrites variables already set in the environment.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("BENCH_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("BENCH_BUILD_CMD"); v != "" {
		c.BuildCommand = strings.Fields(v)
	}
	if v := os.Getenv("BENCH_RUN_CMD"); v != "" {
		c.RunCommand = strings.Fields(v)
	}
}

// Labels returns the extractor labels configured for the suite's output.
func (c *Config) Labels() extract.Labels {
	return extract.Labels{
		Running: c.RunningLabel,
		Answer:  c.AnswerLabel,
		Elapsed: c.ElapsedLabel,
	}
}

// LatestPath is the raw-output store for the most recent run.
func (c *Config) LatestPath() string {
	return filepath.Join(c.OutputDir, c.LatestFile)
}

// PreviousPath is the promoted raw-output store from the prior run.
func (c *Config) PreviousPath() string {
	return filepath.Join(c.OutputDir, c.PreviousFile)
}

// TablePath is the CSV table for the most recent run.
func (c *Config) TablePath() string {
	return filepath.Join(c.OutputDir, c.TableFile)
}

/*
PURPOSE:
  High-level runner that orchestrates one harness invocation.
  Build -> run/tee/extract -> persist -> diff against the previous run.

REQUIREMENTS:
  User-specified:
  - Echo every suite output line to the console while recording it.
  - Persist raw output and the CSV table; diff against the previous run
    when its store exists, skip silently when it does not.
  - A non-zero run exit must not discard what was already collected: the
    table is still written and the diff still printed before the error is
    returned.

  Implementation-discovered:
  - A ParseError from the extractor aborts immediately; nothing is
    persisted past corrupt output.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/extract, internal/diff, internal/output, internal/config

ERROR HANDLING:
  - BuildError aborts before the run.
  - RunError is remembered and returned after persist+diff.
  - Everything else aborts at the step that failed.

IMPLEMENTATION RULES:
  - Fixed call order; every step's failure is fatal for the remaining ones.
  - No retries: the developer re-runs the harness manually.

USAGE:
  engine.Run(cfg)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/proc.go

MAINTENANCE:
  - Update if promotion of latest -> previous ever moves in-process.
*/

package engine

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/daryltucker/bench-harness/internal/config"
	"github.com/daryltucker/bench-harness/internal/diff"
	"github.com/daryltucker/bench-harness/internal/extract"
	"github.com/daryltucker/bench-harness/internal/model"
	"github.com/daryltucker/bench-harness/internal/output"
)

// Engine drives one harness invocation.
type Engine struct {
	Config *config.Config

	// Console receives the tee'd suite output and the diff report.
	// Defaults to os.Stdout.
	Console io.Writer
}

// New creates a new Engine.
func New(cfg *config.Config) *Engine {
	return &Engine{
		Config:  cfg,
		Console: os.Stdout,
	}
}

// Run executes the full harness sequence with a fresh Engine.
func Run(cfg *config.Config) error {
	return New(cfg).Run()
}

// Run executes build -> run -> persist -> diff. See the file header for
// the ordering contract.
func (e *Engine) Run() error {
	cfg := e.Config

	// Ensure output directory exists
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	// 1. Build Phase
	if cfg.SkipBuild || len(cfg.BuildCommand) == 0 {
		output.Logger.Info("Skipping build")
	} else {
		output.Logger.Info("Building", "command", cfg.BuildCommand)
		if err := build(cfg.BuildCommand, e.Console, os.Stderr); err != nil {
			return err
		}
	}

	// 2. Run Phase: tee the stream to console + raw store while extracting.
	output.Logger.Info("Running", "command", cfg.RunCommand)
	records, runErr := e.runAndTee()
	if runErr != nil {
		var exitErr *RunError
		if !errors.As(runErr, &exitErr) {
			// ParseError or I/O failure: nothing trustworthy to persist.
			return runErr
		}
		output.Logger.Error("Run exited non-zero; persisting partial results", "exit_code", exitErr.ExitCode)
	}

	// 3. Persist Phase
	if err := output.WriteTableFile(cfg.TablePath(), records); err != nil {
		return fmt.Errorf("failed to write table %s: %w", cfg.TablePath(), err)
	}
	output.Logger.Info("Wrote results", "raw", cfg.LatestPath(), "table", cfg.TablePath(), "records", len(records))

	// 4. Diff Phase: previous store is optional.
	if err := e.diffAgainstPrevious(records); err != nil {
		return err
	}

	return runErr
}

// runAndTee spawns the run collaborator and processes its combined output
// line by line: console echo, raw store append, extractor feed. Returns
// the extracted records; on *RunError the records collected before exit
// are still returned.
func (e *Engine) runAndTee() ([]model.Record, error) {
	raw, err := os.Create(e.Config.LatestPath())
	if err != nil {
		return nil, fmt.Errorf("failed to create raw store %s: %w", e.Config.LatestPath(), err)
	}
	defer raw.Close()

	x := extract.New(e.Config.Labels())
	err = streamRun(e.Config.RunCommand, func(line string) error {
		fmt.Fprintln(e.Console, line)
		if _, err := fmt.Fprintln(raw, line); err != nil {
			return err
		}
		return x.ConsumeLine(line)
	})
	return x.Records(), err
}

// diffAgainstPrevious prints the classification report when the previous
// run's raw store exists. A missing store skips diffing silently.
func (e *Engine) diffAgainstPrevious(records []model.Record) error {
	prevPath := e.Config.PreviousPath()
	if _, err := os.Stat(prevPath); err != nil {
		if os.IsNotExist(err) {
			output.Logger.Info("No previous run found, skipping diff", "path", prevPath)
			return nil
		}
		return fmt.Errorf("failed to stat previous store %s: %w", prevPath, err)
	}

	previous, err := extract.ParseFile(prevPath, e.Config.Labels())
	if err != nil {
		return fmt.Errorf("failed to parse previous store %s: %w", prevPath, err)
	}

	events := diff.Compare(records, previous)
	diff.WriteReport(e.Console, events)
	if len(events) == 0 {
		output.Logger.Info("No answer differences")
	}
	return nil
}

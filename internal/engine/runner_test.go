package engine

import (
	"bytes"
	"errors"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/daryltucker/bench-harness/internal/config"
	"github.com/daryltucker/bench-harness/internal/extract"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("skip on windows: tests drive the harness through sh -c")
	}
}

func testConfig(t *testing.T, script string) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.OutputDir = t.TempDir()
	cfg.SkipBuild = true
	cfg.RunCommand = []string{"sh", "-c", script}
	return cfg
}

const cleanScript = "printf 'Building suite...\\n" +
	"Running: p1\\n" +
	"Answer: 42\\n" +
	"Elapsed Time: 0.5 milliseconds.\\n" +
	"Running: p2\\n" +
	"Elapsed Time: 1.2 milliseconds.\\n'"

func TestRun_CleanRunPersistsRawAndTable(t *testing.T) {
	requireShell(t)
	cfg := testConfig(t, cleanScript)

	e := New(cfg)
	var console bytes.Buffer
	e.Console = &console

	if err := e.Run(); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	raw, err := os.ReadFile(cfg.LatestPath())
	if err != nil {
		t.Fatalf("read raw store: %v", err)
	}
	if !strings.Contains(string(raw), "Running: p1") || !strings.Contains(string(raw), "Building suite...") {
		t.Fatalf("raw store missing lines: %q", string(raw))
	}

	table, err := os.ReadFile(cfg.TablePath())
	if err != nil {
		t.Fatalf("read table: %v", err)
	}
	want := "Problem,ElapsedTime,Answer\np1,0.5,42\np2,1.2,\n"
	if string(table) != want {
		t.Fatalf("table = %q, want %q", string(table), want)
	}

	if !strings.Contains(console.String(), "Running: p1") {
		t.Fatalf("console echo missing: %q", console.String())
	}
	if strings.Contains(console.String(), "Answer Differences:") {
		t.Fatalf("unexpected diff report with no previous store: %q", console.String())
	}
}

func TestRun_DiffAgainstPreviousStore(t *testing.T) {
	requireShell(t)
	cfg := testConfig(t, cleanScript)

	previous := strings.Join([]string{
		"Running: p1",
		"Answer: 41",
		"Elapsed Time: 0.4",
	}, "\n") + "\n"
	if err := os.WriteFile(cfg.PreviousPath(), []byte(previous), 0644); err != nil {
		t.Fatalf("write previous store: %v", err)
	}

	e := New(cfg)
	var console bytes.Buffer
	e.Console = &console

	if err := e.Run(); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	out := console.String()
	if !strings.Contains(out, "Answer Differences:") {
		t.Fatalf("missing report header: %q", out)
	}
	if !strings.Contains(out, "Mismatch: p1 41 != 42") {
		t.Fatalf("missing mismatch line: %q", out)
	}
	if !strings.Contains(out, "New answer: p2 -> (none)") {
		t.Fatalf("missing new line: %q", out)
	}
}

func TestRun_NonZeroExitStillPersistsAndDiffs(t *testing.T) {
	requireShell(t)
	cfg := testConfig(t, cleanScript+"; exit 3")

	previous := "Running: p1\nAnswer: 41\nElapsed Time: 0.4\n"
	if err := os.WriteFile(cfg.PreviousPath(), []byte(previous), 0644); err != nil {
		t.Fatalf("write previous store: %v", err)
	}

	e := New(cfg)
	var console bytes.Buffer
	e.Console = &console

	err := e.Run()
	var runErr *RunError
	if !errors.As(err, &runErr) {
		t.Fatalf("expected *RunError, got %v", err)
	}
	if runErr.ExitCode != 3 {
		t.Fatalf("exit code = %d", runErr.ExitCode)
	}

	if _, err := os.Stat(cfg.TablePath()); err != nil {
		t.Fatalf("table not persisted on non-zero exit: %v", err)
	}
	if !strings.Contains(console.String(), "Mismatch: p1 41 != 42") {
		t.Fatalf("diff not reported on non-zero exit: %q", console.String())
	}
}

func TestRun_BuildFailureAbortsBeforeRun(t *testing.T) {
	requireShell(t)
	cfg := testConfig(t, cleanScript)
	cfg.SkipBuild = false
	cfg.BuildCommand = []string{"sh", "-c", "exit 2"}

	e := New(cfg)
	e.Console = &bytes.Buffer{}

	err := e.Run()
	var buildErr *BuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("expected *BuildError, got %v", err)
	}
	if buildErr.ExitCode != 2 {
		t.Fatalf("exit code = %d", buildErr.ExitCode)
	}

	if _, statErr := os.Stat(cfg.LatestPath()); !os.IsNotExist(statErr) {
		t.Fatalf("run happened despite build failure")
	}
}

func TestRun_ParseErrorAbortsWithoutTable(t *testing.T) {
	requireShell(t)
	cfg := testConfig(t, "printf 'Running: p1\\nElapsed Time: fast\\n'; sleep 5")

	e := New(cfg)
	e.Console = &bytes.Buffer{}

	err := e.Run()
	var perr *extract.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}

	if _, statErr := os.Stat(cfg.TablePath()); !os.IsNotExist(statErr) {
		t.Fatalf("table written despite corrupt output")
	}
}

func TestStreamRun_EmptyCommand(t *testing.T) {
	if err := streamRun(nil, func(string) error { return nil }); err == nil {
		t.Fatalf("expected error for empty run command")
	}
}

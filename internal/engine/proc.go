/*
PURPOSE:
  Subprocess collaborators: the build step and the streamed run step.
  Wraps os/exec so the orchestrator never touches process plumbing.

REQUIREMENTS:
  User-specified:
  - Build: inherit the console, report pass/fail.
  - Run: combined stdout+stderr as one line-buffered stream; each line is
    echoed to the console, appended to the raw store, and handed to the
    provided sink before the next line is read.

  Implementation-discovered:
  - Combining the streams via Stderr = Stdout after StdoutPipe keeps the
    scan loop single-threaded; no goroutines, no interleaving races.
  - A sink error (corrupt output) must kill the child before returning,
    or the pipe writer blocks forever.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go
  - Uses: os/exec, bufio

ERROR HANDLING:
  - Build failure -> *BuildError with the exit code.
  - Run non-zero exit -> *RunError, returned after the stream is drained.
  - Sink and scanner errors propagate as-is.

IMPLEMENTATION RULES:
  - One line fully processed before the next is requested; no overlap
    between extraction and I/O.
  - No timeout, no cancellation: the suite runs to completion.

USAGE:
  err := build(cfg.BuildCommand)
  code, err := streamRun(cfg.RunCommand, tee, sink)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/runner.go

MAINTENANCE:
  - Update if the suite ever needs stdin or environment injection.
*/

package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// exitCode extracts the child's exit code from an exec error, or -1 when
// the process never ran (e.g. command not found).
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// build runs the build collaborator with the console inherited.
func build(argv []string, stdout, stderr io.Writer) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty build command")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return &BuildError{ExitCode: exitCode(err), Err: err}
	}
	return nil
}

// streamRun spawns the run collaborator and feeds every line of its
// combined output to sink, in order, one at a time. On a sink error the
// child is killed and the error returned immediately. A non-zero exit is
// reported as *RunError only after the stream is fully drained.
func streamRun(argv []string, sink func(line string) error) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty run command")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		if err := sink(scanner.Text()); err != nil {
			cmd.Process.Kill()
			cmd.Wait()
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		cmd.Process.Kill()
		cmd.Wait()
		return err
	}

	if err := cmd.Wait(); err != nil {
		return &RunError{ExitCode: exitCode(err)}
	}
	return nil
}

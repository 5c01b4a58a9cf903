package engine

import "fmt"

// BuildError reports a non-zero exit from the build collaborator. It is
// fatal before any run is attempted.
type BuildError struct {
	ExitCode int
	Err      error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build failed with exit code %d: %v", e.ExitCode, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// RunError reports a non-zero exit from the run collaborator. It is
// surfaced only after the output collected so far has been drained,
// persisted, and diffed; partial results are never discarded.
type RunError struct {
	ExitCode int
}

func (e *RunError) Error() string {
	return fmt.Sprintf("run exited with non zero exit code (%d)", e.ExitCode)
}

/*
PURPOSE:
  Defines the core data structures used throughout Bench Harness.
  These models represent one extracted benchmark result.

REQUIREMENTS:
  User-specified:
  - Record problem identifier, answer, elapsed time.
  - Problem and answer may be absent (the suite's output is not guaranteed
    to emit them before the timing line).

  Implementation-discovered:
  - Absence must be distinguishable from the empty string, so the optional
    fields are pointers.

ARCHITECTURE INTEGRATION:
  - Produced by: internal/extract
  - Consumed by: internal/diff, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Records are immutable once emitted; nothing mutates them downstream.

USAGE:
  rec := model.Record{Problem: model.Ptr("problem1::part1"), ElapsedTime: 0.5}

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add here and update the CSV writer mapping.

RELATED FILES:
  - internal/extract/extractor.go
  - internal/output/csv.go

MAINTENANCE:
  - Update when the suite starts reporting new per-problem metrics.
*/

package model

// Record represents one finalized result from a single problem run.
// Problem and Answer are nil when the corresponding line never appeared
// before the timing line that emitted the record.
type Record struct {
	Problem     *string
	Answer      *string
	ElapsedTime float64
}

// String dereferences an optional field, returning fallback when absent.
func String(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// Ptr returns a pointer to s. Convenience for building records inline.
func Ptr(s string) *string {
	return &s
}

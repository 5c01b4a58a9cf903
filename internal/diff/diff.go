/*
PURPOSE:
  Compares the latest run's records against the previous run's records
  and classifies each latest record as new, matching, or mismatched.

REQUIREMENTS:
  User-specified:
  - Key by problem identifier.
  - Surface new problems and changed answers; matching answers are silent.
  - Problems that disappeared since the previous run are not reported.

  Implementation-discovered:
  - The previous side collapses to a map; duplicate problems keep the last
    occurrence. Lossy, and deliberately so — the previous run is only a
    baseline, not a ledger.
  - A record with an absent problem can never match anything and is always
    classified New.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/cli
  - Consumes: internal/model.Record

ERROR HANDLING:
  - None. Comparison is total over its inputs.

IMPLEMENTATION RULES:
  - Events preserve the order of the current sequence.
  - Answer equality is exact string equality; absent equals absent only.
  - The report header prints once, before the first event, and not at all
    when there are no events.

USAGE:
  events := diff.Compare(latest, previous)
  diff.WriteReport(os.Stdout, events)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update WriteReport if the console wording changes.
*/

package diff

import (
	"fmt"
	"io"

	"github.com/daryltucker/bench-harness/internal/model"
)

// Kind classifies a diff event.
type Kind int

const (
	// New marks a problem absent from the previous run.
	New Kind = iota
	// Mismatch marks a problem whose answer changed since the previous run.
	Mismatch
)

// Event is one reportable difference. Previous is nil for New events.
type Event struct {
	Kind     Kind
	Current  model.Record
	Previous *model.Record
}

// Compare classifies every record of current against previous, keyed by
// problem. Matching records produce no event. Duplicate problems on the
// previous side keep only the last occurrence; previous records with an
// absent problem are unmatchable and dropped from the lookup.
func Compare(current, previous []model.Record) []Event {
	prevByProblem := make(map[string]model.Record, len(previous))
	for _, p := range previous {
		if p.Problem == nil {
			continue
		}
		prevByProblem[*p.Problem] = p
	}

	var events []Event
	for _, r := range current {
		if r.Problem == nil {
			events = append(events, Event{Kind: New, Current: r})
			continue
		}
		p, ok := prevByProblem[*r.Problem]
		if !ok {
			events = append(events, Event{Kind: New, Current: r})
			continue
		}
		if !answersEqual(p.Answer, r.Answer) {
			prev := p
			events = append(events, Event{Kind: Mismatch, Current: r, Previous: &prev})
		}
	}
	return events
}

// answersEqual is exact string equality; absent-vs-absent is equal,
// absent-vs-present is not.
func answersEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

const reportRule = "--------------------------------------"

// WriteReport renders events as the console report. The header is
// suppressed entirely when there are no events.
func WriteReport(w io.Writer, events []Event) {
	if len(events) == 0 {
		return
	}

	fmt.Fprintln(w, reportRule)
	fmt.Fprintln(w, "Answer Differences:")
	fmt.Fprintln(w, reportRule)

	for _, ev := range events {
		problem := model.String(ev.Current.Problem, "(none)")
		answer := model.String(ev.Current.Answer, "(none)")
		switch ev.Kind {
		case New:
			fmt.Fprintf(w, "New answer: %s -> %s\n", problem, answer)
		case Mismatch:
			previous := model.String(ev.Previous.Answer, "(none)")
			fmt.Fprintf(w, "Mismatch: %s %s != %s\n", problem, previous, answer)
		}
	}
}

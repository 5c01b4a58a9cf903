package diff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/daryltucker/bench-harness/internal/model"
)

func rec(problem, answer string) model.Record {
	r := model.Record{ElapsedTime: 1.0}
	if problem != "" {
		r.Problem = model.Ptr(problem)
	}
	if answer != "" {
		r.Answer = model.Ptr(answer)
	}
	return r
}

func TestCompare_IdenticalRunsProduceNoEvents(t *testing.T) {
	current := []model.Record{rec("p1", "42"), rec("p2", "7")}
	previous := []model.Record{rec("p1", "42"), rec("p2", "7")}

	if events := Compare(current, previous); len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}

func TestCompare_NewProblem(t *testing.T) {
	events := Compare([]model.Record{rec("p1", "42")}, nil)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Kind != New {
		t.Fatalf("kind = %v", events[0].Kind)
	}
	if model.String(events[0].Current.Problem, "") != "p1" {
		t.Fatalf("problem = %v", events[0].Current.Problem)
	}
}

func TestCompare_Mismatch(t *testing.T) {
	events := Compare([]model.Record{rec("p1", "6")}, []model.Record{rec("p1", "5")})
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.Kind != Mismatch {
		t.Fatalf("kind = %v", ev.Kind)
	}
	if model.String(ev.Current.Answer, "") != "6" {
		t.Fatalf("current answer = %v", ev.Current.Answer)
	}
	if ev.Previous == nil || model.String(ev.Previous.Answer, "") != "5" {
		t.Fatalf("previous answer = %+v", ev.Previous)
	}
}

func TestCompare_AbsentProblemNeverMatches(t *testing.T) {
	// Even when the previous run also had a record with no problem, an
	// absent identifier cannot be a join key.
	events := Compare([]model.Record{rec("", "42")}, []model.Record{rec("", "42")})
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Kind != New {
		t.Fatalf("kind = %v", events[0].Kind)
	}
}

func TestCompare_AbsentVsPresentAnswerIsMismatch(t *testing.T) {
	events := Compare([]model.Record{rec("p1", "")}, []model.Record{rec("p1", "5")})
	if len(events) != 1 || events[0].Kind != Mismatch {
		t.Fatalf("expected mismatch, got %+v", events)
	}

	events = Compare([]model.Record{rec("p1", "5")}, []model.Record{rec("p1", "")})
	if len(events) != 1 || events[0].Kind != Mismatch {
		t.Fatalf("expected mismatch, got %+v", events)
	}
}

func TestCompare_BothAnswersAbsentIsEqual(t *testing.T) {
	if events := Compare([]model.Record{rec("p1", "")}, []model.Record{rec("p1", "")}); len(events) != 0 {
		t.Fatalf("expected no events, got %+v", events)
	}
}

func TestCompare_AnswerEqualityIsCaseSensitive(t *testing.T) {
	events := Compare([]model.Record{rec("p1", "abc")}, []model.Record{rec("p1", "ABC")})
	if len(events) != 1 || events[0].Kind != Mismatch {
		t.Fatalf("expected mismatch, got %+v", events)
	}
}

func TestCompare_DuplicatePreviousKeyLastWins(t *testing.T) {
	previous := []model.Record{rec("p1", "old"), rec("p1", "new")}

	if events := Compare([]model.Record{rec("p1", "new")}, previous); len(events) != 0 {
		t.Fatalf("expected last previous occurrence to win, got %+v", events)
	}
	if events := Compare([]model.Record{rec("p1", "old")}, previous); len(events) != 1 {
		t.Fatalf("expected mismatch against last occurrence, got %+v", events)
	}
}

func TestCompare_EventsPreserveCurrentOrder(t *testing.T) {
	current := []model.Record{
		rec("p3", "1"),
		rec("p1", "ok"),
		rec("p2", "changed"),
		rec("p4", "2"),
	}
	previous := []model.Record{rec("p1", "ok"), rec("p2", "orig")}

	events := Compare(current, previous)
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	got := []string{
		model.String(events[0].Current.Problem, ""),
		model.String(events[1].Current.Problem, ""),
		model.String(events[2].Current.Problem, ""),
	}
	if got[0] != "p3" || got[1] != "p2" || got[2] != "p4" {
		t.Fatalf("event order = %v", got)
	}
}

func TestCompare_RemovedProblemsNotReported(t *testing.T) {
	events := Compare([]model.Record{rec("p1", "42")}, []model.Record{rec("p1", "42"), rec("gone", "9")})
	if len(events) != 0 {
		t.Fatalf("expected no events, got %+v", events)
	}
}

func TestWriteReport_SuppressedWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, nil)
	if buf.Len() != 0 {
		t.Fatalf("expected empty report, got %q", buf.String())
	}
}

func TestWriteReport_HeaderAndLines(t *testing.T) {
	events := Compare(
		[]model.Record{rec("p1", "6"), rec("p9", "3")},
		[]model.Record{rec("p1", "5")},
	)

	var buf bytes.Buffer
	WriteReport(&buf, events)
	out := buf.String()

	if !strings.Contains(out, "Answer Differences:") {
		t.Fatalf("missing header: %q", out)
	}
	if strings.Count(out, "--------------------------------------") != 2 {
		t.Fatalf("header rule mismatch: %q", out)
	}
	if !strings.Contains(out, "Mismatch: p1 5 != 6") {
		t.Fatalf("missing mismatch line: %q", out)
	}
	if !strings.Contains(out, "New answer: p9 -> 3") {
		t.Fatalf("missing new line: %q", out)
	}
}

func TestWriteReport_AbsentFieldsRendered(t *testing.T) {
	events := Compare([]model.Record{rec("p1", "")}, []model.Record{rec("p1", "5")})

	var buf bytes.Buffer
	WriteReport(&buf, events)
	if !strings.Contains(buf.String(), "Mismatch: p1 5 != (none)") {
		t.Fatalf("unexpected rendering: %q", buf.String())
	}
}

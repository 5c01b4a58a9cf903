/*
PURPOSE:
  Incremental line-oriented extraction of benchmark results from the
  suite's interleaved text output.

REQUIREMENTS:
  User-specified:
  - Recognize the three line shapes emitted by the suite:
      Running: <problem>
      Answer: <answer>
      Elapsed Time: <seconds> ...
  - The timing line finalizes and emits a record; anything else between
    recognized lines is diagnostic noise and must be ignored.

  Implementation-discovered:
  - The pending fields are per-record state shared by three match branches;
    keeping them in one small struct lets emission reset them atomically.
  - A malformed timing token means the suite's output is corrupt; that is
    an error, unlike unrecognized lines.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (live stream), internal/cli (stored files)
  - Produces: internal/model.Record

ERROR HANDLING:
  - ConsumeLine returns *ParseError when a timing token is not numeric.
    Callers abort; the extractor does not attempt recovery.

IMPLEMENTATION RULES:
  - Patterns anchor at line start: literal label, separator, single token.
  - Match priority is fixed: start, answer, timing; first match wins.
  - A new start line before a timing line overwrites the pending problem.
  - A stream ending mid-record emits nothing for the partial data.

USAGE:
  x := extract.New(extract.DefaultLabels())
  for each line { x.ConsumeLine(line) }
  recs := x.Records()

SELF-HEALING INSTRUCTIONS:
  - If the suite changes its output labels, adjust the config labels, not
    this file.

RELATED FILES:
  - internal/model/types.go
  - internal/engine/runner.go

MAINTENANCE:
  - Update if the suite grows a fourth recognized line shape.
*/

package extract

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/daryltucker/bench-harness/internal/model"
)

// Labels holds the literal line prefixes that drive extraction.
type Labels struct {
	Running string
	Answer  string
	Elapsed string
}

// DefaultLabels returns the labels the solver suite prints.
func DefaultLabels() Labels {
	return Labels{
		Running: "Running:",
		Answer:  "Answer:",
		Elapsed: "Elapsed Time:",
	}
}

// pending is the in-progress record state. It is replaced wholesale on
// emission so fields cannot leak across records.
type pending struct {
	problem *string
	answer  *string
}

// Extractor converts a stream of text lines into Records, one record per
// timing line, in the order the timing lines occur. It holds no reference
// to the stream; callers feed it line by line.
type Extractor struct {
	runningRe *regexp.Regexp
	answerRe  *regexp.Regexp
	elapsedRe *regexp.Regexp

	cur     pending
	records []model.Record
}

// tokenPattern anchors a literal label at line start, followed by
// whitespace and a single token with no embedded whitespace.
func tokenPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(label) + `\s+(\S+)`)
}

// New returns an Extractor recognizing the given labels.
func New(labels Labels) *Extractor {
	return &Extractor{
		runningRe: tokenPattern(labels.Running),
		answerRe:  tokenPattern(labels.Answer),
		elapsedRe: tokenPattern(labels.Elapsed),
	}
}

// ConsumeLine processes one line of suite output. Unrecognized lines are
// inert. A timing line with a non-numeric token returns a *ParseError.
func (x *Extractor) ConsumeLine(line string) error {
	if m := x.runningRe.FindStringSubmatch(line); m != nil {
		x.cur.problem = model.Ptr(m[1])
		return nil
	}

	if m := x.answerRe.FindStringSubmatch(line); m != nil {
		x.cur.answer = model.Ptr(m[1])
		return nil
	}

	if m := x.elapsedRe.FindStringSubmatch(line); m != nil {
		elapsed, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return &ParseError{Line: line, Token: m[1], Err: err}
		}
		x.records = append(x.records, model.Record{
			Problem:     x.cur.problem,
			Answer:      x.cur.answer,
			ElapsedTime: elapsed,
		})
		x.cur = pending{}
		return nil
	}

	return nil
}

// Records returns the records emitted so far. The slice is owned by the
// extractor; callers must not mutate it while still feeding lines.
func (x *Extractor) Records() []model.Record {
	return x.records
}

// ParseReader drives a fresh Extractor over r and returns its records.
// Partial trailing state (a start or answer line with no timing line) is
// discarded silently, matching live-stream behavior.
func ParseReader(r io.Reader, labels Labels) ([]model.Record, error) {
	x := New(labels)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := x.ConsumeLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return x.Records(), nil
}

// ParseFile parses a stored raw-output file, typically the previous run.
func ParseFile(path string, labels Labels) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseReader(f, labels)
}

/*
PURPOSE:
  Writes extracted records to a CSV table.
  Pure serialization; the caller owns file lifecycle for stream writes.

REQUIREMENTS:
  User-specified:
  - Fixed header: Problem,ElapsedTime,Answer.
  - Absent fields render as empty cells.

  Implementation-discovered:
  - ElapsedTime must round-trip exactly, so it is formatted with the
    shortest representation that re-parses to the same float64.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/cli
  - Consumes: internal/model.Record

ERROR HANDLING:
  - Returns error on write failure; csv.Writer errors surface via Error().

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Field values are assumed not to contain the delimiter; no escaping
    beyond what encoding/csv does on its own.

USAGE:
  err := output.WriteTable(w, records)
  err := output.WriteTableFile("results/latest.csv", records)

SELF-HEALING INSTRUCTIONS:
  - If the table format changes, update the header and the row mapping.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update the row mapping when Record grows fields.
*/

package output

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/daryltucker/bench-harness/internal/model"
)

// TableHeader is the fixed CSV header row.
var TableHeader = []string{"Problem", "ElapsedTime", "Answer"}

// WriteTable serializes records to w as a CSV table with the fixed header.
// A zero-record input produces only the header line.
func WriteTable(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(TableHeader); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			model.String(r.Problem, ""),
			strconv.FormatFloat(r.ElapsedTime, 'g', -1, 64),
			model.String(r.Answer, ""),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteTableFile writes the table to path, overwriting any existing file.
func WriteTableFile(path string, records []model.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteTable(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

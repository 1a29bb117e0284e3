// Package csvfile persists the attendance ledger as a single CSV table.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/SebastianGomezdv/control-asistencia-go/internal/domain/ledger"
)

// Column order is part of the external contract and must not change.
var header = []string{"employee_id", "date", "clock_in", "clock_out", "worked_hours"}

// Decode parses the persisted table into records, preserving row order.
// An empty source yields an empty ledger. A row with the wrong column
// count is a hard error wrapping ledger.ErrMalformedLedger: dropping it
// silently could hide an open session.
func Decode(r io.Reader) ([]ledger.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ledger.ErrMalformedLedger, err)
	}
	if len(rows) == 0 {
		return []ledger.Record{}, nil
	}

	for i, name := range header {
		if rows[0][i] != name {
			return nil, fmt.Errorf("%w: unexpected header column %q", ledger.ErrMalformedLedger, rows[0][i])
		}
	}

	records := make([]ledger.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, ledger.Record{
			EmployeeID:  row[0],
			Date:        row[1],
			ClockIn:     row[2],
			ClockOut:    row[3],
			WorkedHours: row[4],
		})
	}
	return records, nil
}

// Encode writes the header and all records in order. Together with
// Decode it round-trips every field verbatim, the NoCheckout sentinel
// included.
func Encode(w io.Writer, records []ledger.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write ledger header: %w", err)
	}
	for _, rec := range records {
		row := []string{rec.EmployeeID, rec.Date, rec.ClockIn, rec.ClockOut, rec.WorkedHours}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write ledger row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush ledger: %w", err)
	}
	return nil
}

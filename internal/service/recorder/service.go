package recorder

import (
	"context"
	"log/slog"

	"github.com/SebastianGomezdv/control-asistencia-go/internal/domain/ledger"
	"github.com/SebastianGomezdv/control-asistencia-go/internal/pkg/timeutil"
)

type RecorderServiceImpl struct {
	store ledger.Store
}

func NewRecorderService(store ledger.Store) ledger.RecorderService {
	return &RecorderServiceImpl{store: store}
}

// Toggle implements ledger.RecorderService. The whole scan-and-mutate
// runs inside one Store.Update acquisition, which is what keeps the
// at-most-one-open-session-per-day invariant safe under concurrent
// requests.
func (s *RecorderServiceImpl) Toggle(ctx context.Context, req ledger.ToggleRequest) (ledger.ToggleResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.ToggleResponse{}, err
	}

	clock := req.Now.Format(ledger.ClockLayout)
	kind := ledger.EventEntrance

	err := s.store.Update(ctx, func(records []ledger.Record) ([]ledger.Record, bool, error) {
		// First open match wins; find-before-create is what prevents a
		// second simultaneously open session for the same day.
		for i := range records {
			rec := &records[i]
			if rec.EmployeeID != req.EmployeeID || rec.Date != req.Date || !rec.Open() {
				continue
			}

			rec.ClockOut = clock
			// A clock-in that no longer parses blanks the duration but
			// never aborts the checkout.
			if worked, ok := timeutil.WorkedDuration(rec.ClockIn, clock); ok {
				rec.WorkedHours = worked
			} else {
				rec.WorkedHours = ""
			}
			kind = ledger.EventExit
			return records, true, nil
		}

		records = append(records, ledger.Record{
			EmployeeID: req.EmployeeID,
			Date:       req.Date,
			ClockIn:    clock,
		})
		return records, true, nil
	})
	if err != nil {
		return ledger.ToggleResponse{}, err
	}

	slog.Info("Attendance event recorded",
		"employee_id", req.EmployeeID,
		"date", req.Date,
		"kind", kind,
	)

	return ledger.ToggleResponse{Status: "ok", Kind: kind}, nil
}

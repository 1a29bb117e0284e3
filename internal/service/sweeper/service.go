package sweeper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SebastianGomezdv/control-asistencia-go/internal/domain/ledger"
)

type SweeperServiceImpl struct {
	store         ledger.Store
	cutoffSeconds int
}

// NewSweeperService builds a sweeper with a fixed daily cutoff, given as
// "HH:MM" or "HH:MM:SS" local time-of-day.
func NewSweeperService(store ledger.Store, cutoff string) (ledger.SweeperService, error) {
	secs, err := parseCutoff(cutoff)
	if err != nil {
		return nil, err
	}
	return &SweeperServiceImpl{store: store, cutoffSeconds: secs}, nil
}

// Sweep implements ledger.SweeperService. Only sessions dated now's own
// day are eligible; past and future dates and already-closed rows are
// never touched, no matter how long they have been open.
func (s *SweeperServiceImpl) Sweep(ctx context.Context, now time.Time) (int, error) {
	if secondsOfDay(now) < s.cutoffSeconds {
		return 0, nil
	}

	today := now.Format(ledger.DateLayout)
	closed := 0

	err := s.store.Update(ctx, func(records []ledger.Record) ([]ledger.Record, bool, error) {
		changed := false
		for i := range records {
			rec := &records[i]
			if rec.Date != today || !rec.Open() {
				continue
			}
			rec.ClockOut = ledger.NoCheckout
			rec.WorkedHours = ""
			changed = true
			closed++
		}
		return records, changed, nil
	})
	if err != nil {
		return 0, err
	}

	if closed > 0 {
		slog.Info("Forced closure sweep closed open sessions", "date", today, "count", closed)
	}
	return closed, nil
}

func parseCutoff(cutoff string) (int, error) {
	t, err := time.Parse("15:04:05", cutoff)
	if err != nil {
		t, err = time.Parse("15:04", cutoff)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid sweep cutoff %q: %w", cutoff, err)
	}
	return secondsOfDay(t), nil
}

func secondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

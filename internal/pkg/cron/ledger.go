package cron

import (
	"context"
	"time"

	"github.com/SebastianGomezdv/control-asistencia-go/internal/domain/ledger"
)

// LedgerJobs wires the forced-closure sweep into the scheduler. The
// sweep also runs before every HTTP request; this job covers quiet
// periods with no inbound traffic. Both paths are idempotent, so the
// overlap is harmless.
type LedgerJobs struct {
	sweeper ledger.SweeperService
	loc     *time.Location
}

func NewLedgerJobs(sweeper ledger.SweeperService, loc *time.Location) *LedgerJobs {
	return &LedgerJobs{
		sweeper: sweeper,
		loc:     loc,
	}
}

func (j *LedgerJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("force_close_open_sessions", interval, j.ForceCloseOpenSessions)
}

func (j *LedgerJobs) ForceCloseOpenSessions(ctx context.Context) error {
	_, err := j.sweeper.Sweep(ctx, time.Now().In(j.loc))
	return err
}

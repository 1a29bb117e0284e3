package ledger

import (
	"context"
	"time"
)

// RecorderService defines business logic for the clock in / clock out toggle
type RecorderService interface {
	// Toggle closes the first open session for (employee, date) or, when
	// none exists, opens a new one. The effect is inferred from ledger
	// state, not chosen by the caller.
	Toggle(ctx context.Context, req ToggleRequest) (ToggleResponse, error)
}

// SweeperService defines the forced-closure sweep
type SweeperService interface {
	// Sweep force-closes every still-open session dated now's day once
	// now's time-of-day has passed the configured cutoff. It returns the
	// number of sessions closed and is idempotent: a second run right
	// after finds nothing open and writes nothing.
	Sweep(ctx context.Context, now time.Time) (int, error)
}

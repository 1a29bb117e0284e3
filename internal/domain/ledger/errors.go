package ledger

import "errors"

// Ledger domain errors
var (
	// ErrMalformedLedger marks a persisted table whose shape is corrupt
	// (wrong column count, broken quoting). Rows are never silently
	// dropped or repaired.
	ErrMalformedLedger = errors.New("attendance ledger is malformed")
)

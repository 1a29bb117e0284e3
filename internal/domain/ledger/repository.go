package ledger

import "context"

// UpdateFunc mutates a loaded ledger in place. It returns the records to
// persist, whether anything changed (false skips the write entirely) and
// an error that aborts the update without writing.
type UpdateFunc func(records []Record) ([]Record, bool, error)

// Store owns the persisted ledger. Load and Save each take the store's
// exclusive lock; Update runs a whole load-mutate-save sequence under one
// acquisition so concurrent toggles and sweeps cannot interleave.
type Store interface {
	// Load returns the full ledger in stored order. A missing backing
	// file is an empty ledger, not an error.
	Load(ctx context.Context) ([]Record, error)

	// Save rewrites the whole ledger (header plus all rows). Failure is
	// surfaced to the caller and never retried.
	Save(ctx context.Context, records []Record) error

	// Update executes load -> fn -> save under the store lock.
	Update(ctx context.Context, fn UpdateFunc) error
}

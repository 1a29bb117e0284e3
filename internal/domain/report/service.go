package report

import (
	"context"
	"io"
)

// ReportService exports daily slices of the attendance ledger into an
// archive of downloadable spreadsheets. The NO_CHECKOUT sentinel and an
// empty worked-hours field are literal display values in an export,
// never errors.
type ReportService interface {
	// Export renders every ledger record of the given date into a fresh
	// archived report and returns its metadata.
	Export(ctx context.Context, req ExportRequest) (ReportFile, error)

	// List returns the archived reports, newest first.
	List(ctx context.Context) ([]ReportFile, error)

	// Open streams a single archived report by name.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

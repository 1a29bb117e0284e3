package report

import "errors"

// Report domain errors
var (
	ErrReportNotFound = errors.New("report not found")
)

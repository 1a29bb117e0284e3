package response

import (
	"errors"
	"net/http"

	"github.com/SebastianGomezdv/control-asistencia-go/internal/domain/ledger"
	"github.com/SebastianGomezdv/control-asistencia-go/internal/domain/report"
	"github.com/SebastianGomezdv/control-asistencia-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Ledger domain errors. A corrupt table means the store cannot be
	// trusted; the request fails instead of guessing at repairs.
	case errors.Is(err, ledger.ErrMalformedLedger):
		ServiceUnavailable(w, "Attendance ledger is unavailable")

	// Report domain errors
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Report not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

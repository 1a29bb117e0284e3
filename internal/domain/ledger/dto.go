package ledger

import (
	"time"

	"github.com/SebastianGomezdv/control-asistencia-go/internal/pkg/validator"
)

type ToggleRequest struct {
	EmployeeID string
	Date       string // DateLayout
	Now        time.Time
}

func (r *ToggleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.Now.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "now",
			Message: "event timestamp is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ToggleResponse struct {
	Status string    `json:"status"`
	Kind   EventKind `json:"kind"`
}

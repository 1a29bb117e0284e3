package http

import (
	"net/http"
	"time"

	"github.com/SebastianGomezdv/control-asistencia-go/internal/domain/ledger"
	"github.com/SebastianGomezdv/control-asistencia-go/internal/handler/http/response"
)

type RegistrarHandler interface {
	Toggle(w http.ResponseWriter, r *http.Request)
}

type registrarHandlerImpl struct {
	recorder          ledger.RecorderService
	defaultEmployeeID string
	loc               *time.Location
}

func NewRegistrarHandler(recorder ledger.RecorderService, defaultEmployeeID string, loc *time.Location) RegistrarHandler {
	return &registrarHandlerImpl{
		recorder:          recorder,
		defaultEmployeeID: defaultEmployeeID,
		loc:               loc,
	}
}

// Toggle implements RegistrarHandler. The caller never states entrance
// or exit; the recorder infers it from ledger state and reports which
// one happened as {"status":"ok","kind":"entrance"|"exit"}.
func (h *registrarHandlerImpl) Toggle(w http.ResponseWriter, r *http.Request) {
	now := time.Now().In(h.loc)

	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		employeeID = h.defaultEmployeeID
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = now.Format(ledger.DateLayout)
	}

	req := ledger.ToggleRequest{
		EmployeeID: employeeID,
		Date:       date,
		Now:        now,
	}

	result, err := h.recorder.Toggle(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

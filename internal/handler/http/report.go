package http

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/SebastianGomezdv/control-asistencia-go/internal/domain/ledger"
	"github.com/SebastianGomezdv/control-asistencia-go/internal/domain/report"
	"github.com/SebastianGomezdv/control-asistencia-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	Export(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	loc           *time.Location
}

func NewReportHandler(reportService report.ReportService, loc *time.Location) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		loc:           loc,
	}
}

// Export implements ReportHandler.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().In(h.loc).Format(ledger.DateLayout)
	}

	result, err := h.reportService.Export(r.Context(), report.ExportRequest{Date: date})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Report generated successfully", result)
}

// List implements ReportHandler.
func (h *reportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.reportService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Download implements ReportHandler.
func (h *reportHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	rc, err := h.reportService.Open(r.Context(), name)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	if _, err := io.Copy(w, rc); err != nil {
		slog.Error("Failed to stream report", "name", name, "error", err)
	}
}

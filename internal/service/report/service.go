package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SebastianGomezdv/control-asistencia-go/internal/domain/ledger"
	"github.com/SebastianGomezdv/control-asistencia-go/internal/domain/report"
	"github.com/SebastianGomezdv/control-asistencia-go/internal/pkg/storage"
	"github.com/SebastianGomezdv/control-asistencia-go/internal/pkg/validator"
	"github.com/SebastianGomezdv/control-asistencia-go/internal/repository/csvfile"
	"github.com/google/uuid"
)

type ReportServiceImpl struct {
	store   ledger.Store
	archive storage.FileStorage
}

func NewReportService(store ledger.Store, archive storage.FileStorage) report.ReportService {
	return &ReportServiceImpl{
		store:   store,
		archive: archive,
	}
}

// Export implements report.ReportService. The ledger snapshot is read
// under the store lock, so an export never sees a half-applied toggle.
func (s *ReportServiceImpl) Export(ctx context.Context, req report.ExportRequest) (report.ReportFile, error) {
	if err := req.Validate(); err != nil {
		return report.ReportFile{}, err
	}

	records, err := s.store.Load(ctx)
	if err != nil {
		return report.ReportFile{}, err
	}

	daily := make([]ledger.Record, 0)
	for _, rec := range records {
		if rec.Date == req.Date {
			daily = append(daily, rec)
		}
	}

	var buf bytes.Buffer
	if err := csvfile.Encode(&buf, daily); err != nil {
		return report.ReportFile{}, fmt.Errorf("failed to render report: %w", err)
	}
	size := int64(buf.Len())

	name := fmt.Sprintf("attendance-%s-%s.csv", req.Date, uuid.New().String()[:8])
	if _, err := s.archive.Upload(ctx, &buf, name); err != nil {
		return report.ReportFile{}, fmt.Errorf("failed to archive report: %w", err)
	}

	slog.Info("Attendance report exported", "name", name, "date", req.Date, "rows", len(daily))

	return report.ReportFile{
		Name:       name,
		Size:       size,
		ModifiedAt: time.Now(),
	}, nil
}

// List implements report.ReportService.
func (s *ReportServiceImpl) List(ctx context.Context) ([]report.ReportFile, error) {
	files, err := s.archive.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	reports := make([]report.ReportFile, 0, len(files))
	for _, f := range files {
		reports = append(reports, report.ReportFile{
			Name:       f.Name,
			Size:       f.Size,
			ModifiedAt: f.ModifiedAt,
		})
	}
	return reports, nil
}

// Open implements report.ReportService.
func (s *ReportServiceImpl) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if !validator.IsValidReportName(name) {
		return nil, report.ErrReportNotFound
	}

	exists, err := s.archive.Exists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to stat report %s: %w", name, err)
	}
	if !exists {
		return nil, report.ErrReportNotFound
	}

	return s.archive.Download(ctx, name)
}

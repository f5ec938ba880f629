package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"sentrydesk/internal/domain"
	"sentrydesk/internal/export"
	"sentrydesk/internal/port"
)

// ExportResult holds a rendered export ready for download.
type ExportResult struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ExportService renders a week's reports as a downloadable file.
type ExportService interface {
	ExportWeek(ctx context.Context, tenantID, weekID uuid.UUID, format string) (*ExportResult, error)
}

type exportService struct {
	weekRepo  port.WeekRepository
	dailyRepo port.DailyReportRepository
	themeRepo port.ThemeRepository
}

// NewExportService creates a new ExportService implementation.
func NewExportService(
	weekRepo port.WeekRepository,
	dailyRepo port.DailyReportRepository,
	themeRepo port.ThemeRepository,
) ExportService {
	return &exportService{
		weekRepo:  weekRepo,
		dailyRepo: dailyRepo,
		themeRepo: themeRepo,
	}
}

func (s *exportService) ExportWeek(ctx context.Context, tenantID, weekID uuid.UUID, format string) (*ExportResult, error) {
	if format != "csv" && format != "xlsx" {
		return nil, domain.ErrInvalidExportFormat
	}

	week, err := s.weekRepo.GetByID(ctx, tenantID, weekID)
	if err != nil {
		return nil, err
	}
	reports, err := s.dailyRepo.ListByWeek(ctx, tenantID, weekID)
	if err != nil {
		return nil, err
	}

	if format == "csv" {
		data, err := renderCSV(week, reports)
		if err != nil {
			return nil, err
		}
		return &ExportResult{
			FileName:    export.BuildFilename(week.SiteName, week.WeekStart, "csv"),
			ContentType: "text/csv; charset=utf-8",
			Data:        data,
		}, nil
	}

	var theme *domain.ThemePreset
	if week.ThemeID != nil {
		theme, err = s.themeRepo.GetByID(ctx, tenantID, *week.ThemeID)
		if err != nil && !errors.Is(err, domain.ErrThemeNotFound) {
			return nil, err
		}
	}

	workbook, err := export.BuildWorkbook(week, reports, theme)
	if err != nil {
		return nil, fmt.Errorf("export.ExportWeek: building workbook: %w", err)
	}
	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		return nil, fmt.Errorf("export.ExportWeek: writing workbook: %w", err)
	}

	return &ExportResult{
		FileName:    export.BuildFilename(week.SiteName, week.WeekStart, "xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

func renderCSV(week *domain.ReportWeek, reports []domain.DailyReport) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(export.BOM)

	w := export.NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}
	if err := w.WriteReports(reports); err != nil {
		return nil, fmt.Errorf("writing csv rows: %w", err)
	}
	if err := w.WriteSummary(week.Summary); err != nil {
		return nil, fmt.Errorf("writing csv summary: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}
	return buf.Bytes(), nil
}

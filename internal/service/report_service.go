package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"sentrydesk/internal/bulkreport"
	"sentrydesk/internal/domain"
	"sentrydesk/internal/port"
)

// CreateWeekInput is the DTO for creating a report week.
type CreateWeekInput struct {
	SiteName  string     `json:"site_name" binding:"required"`
	WeekStart string     `json:"week_start" binding:"required"`
	ThemeID   *uuid.UUID `json:"theme_id"`
}

// UpdateWeekInput is the DTO for updating a report week.
type UpdateWeekInput struct {
	SiteName *string            `json:"site_name"`
	ThemeID  *uuid.UUID         `json:"theme_id"`
	Summary  *string            `json:"summary"`
	Status   *domain.WeekStatus `json:"status"`
}

// UpsertReportInput is the DTO for writing one day's report.
type UpsertReportInput struct {
	Content string `json:"content" binding:"required"`
}

// BulkImportInput is the DTO for bulk preview and apply requests.
type BulkImportInput struct {
	Text string `json:"text" binding:"required"`
}

// BulkPreview is the dry-run result of a bulk import: what would be written,
// without touching storage.
type BulkPreview struct {
	Valid    bool                      `json:"valid"`
	Errors   []string                  `json:"errors,omitempty"`
	Warnings []string                  `json:"warnings,omitempty"`
	Reports  []bulkreport.ParsedReport `json:"reports"`
	Summary  string                    `json:"summary,omitempty"`
	Orphaned int                       `json:"orphaned"`
}

// BulkApplyResult confirms what a bulk import wrote.
type BulkApplyResult struct {
	AppliedCount   int  `json:"applied_count"`
	SummaryApplied bool `json:"summary_applied"`
}

// ReportService defines week and daily report operations.
type ReportService interface {
	CreateWeek(ctx context.Context, tenantID, userID uuid.UUID, input CreateWeekInput) (*domain.ReportWeek, error)
	GetWeek(ctx context.Context, tenantID, weekID uuid.UUID) (*domain.ReportWeek, error)
	ListWeeks(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.ReportWeek, int, error)
	UpdateWeek(ctx context.Context, tenantID, weekID uuid.UUID, input UpdateWeekInput) (*domain.ReportWeek, error)
	DeleteWeek(ctx context.Context, tenantID, weekID uuid.UUID) error

	ListReports(ctx context.Context, tenantID, weekID uuid.UUID) ([]domain.DailyReport, error)
	UpsertReport(ctx context.Context, tenantID, weekID, userID uuid.UUID, day domain.Weekday, input UpsertReportInput) (*domain.DailyReport, error)
	SubmitReport(ctx context.Context, tenantID, weekID uuid.UUID, day domain.Weekday) (*domain.DailyReport, error)

	PreviewBulkImport(ctx context.Context, tenantID, weekID uuid.UUID, text string) (*BulkPreview, error)
	ApplyBulkImport(ctx context.Context, tenantID, weekID, userID uuid.UUID, text string) (*BulkApplyResult, error)
}

type reportService struct {
	weekRepo  port.WeekRepository
	dailyRepo port.DailyReportRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(weekRepo port.WeekRepository, dailyRepo port.DailyReportRepository) ReportService {
	return &reportService{
		weekRepo:  weekRepo,
		dailyRepo: dailyRepo,
	}
}

func (s *reportService) CreateWeek(ctx context.Context, tenantID, userID uuid.UUID, input CreateWeekInput) (*domain.ReportWeek, error) {
	weekStart, err := time.Parse("2006-01-02", input.WeekStart)
	if err != nil {
		return nil, fmt.Errorf("report.CreateWeek: parsing week_start: %w", err)
	}
	// Snap to the Monday of the containing week.
	offset := (int(weekStart.Weekday()) + 6) % 7
	weekStart = weekStart.AddDate(0, 0, -offset)

	week := &domain.ReportWeek{
		TenantID:  tenantID,
		SiteName:  strings.TrimSpace(input.SiteName),
		WeekStart: weekStart,
		ThemeID:   input.ThemeID,
		Status:    domain.WeekStatusOpen,
		CreatedBy: userID,
	}
	if err := s.weekRepo.Create(ctx, week); err != nil {
		return nil, err
	}
	return week, nil
}

func (s *reportService) GetWeek(ctx context.Context, tenantID, weekID uuid.UUID) (*domain.ReportWeek, error) {
	return s.weekRepo.GetByID(ctx, tenantID, weekID)
}

func (s *reportService) ListWeeks(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.ReportWeek, int, error) {
	return s.weekRepo.ListByTenant(ctx, tenantID, offset, limit)
}

func (s *reportService) UpdateWeek(ctx context.Context, tenantID, weekID uuid.UUID, input UpdateWeekInput) (*domain.ReportWeek, error) {
	week, err := s.weekRepo.GetByID(ctx, tenantID, weekID)
	if err != nil {
		return nil, err
	}

	if input.SiteName != nil {
		week.SiteName = strings.TrimSpace(*input.SiteName)
	}
	if input.ThemeID != nil {
		week.ThemeID = input.ThemeID
	}
	if input.Summary != nil {
		week.Summary = *input.Summary
	}
	if input.Status != nil {
		week.Status = *input.Status
	}

	if err := s.weekRepo.Update(ctx, week); err != nil {
		return nil, err
	}
	return week, nil
}

func (s *reportService) DeleteWeek(ctx context.Context, tenantID, weekID uuid.UUID) error {
	return s.weekRepo.Delete(ctx, tenantID, weekID)
}

func (s *reportService) ListReports(ctx context.Context, tenantID, weekID uuid.UUID) ([]domain.DailyReport, error) {
	if _, err := s.weekRepo.GetByID(ctx, tenantID, weekID); err != nil {
		return nil, err
	}
	return s.dailyRepo.ListByWeek(ctx, tenantID, weekID)
}

func (s *reportService) UpsertReport(ctx context.Context, tenantID, weekID, userID uuid.UUID, day domain.Weekday, input UpsertReportInput) (*domain.DailyReport, error) {
	week, err := s.weekRepo.GetByID(ctx, tenantID, weekID)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(input.Content)
	report := &domain.DailyReport{
		WeekID:     weekID,
		TenantID:   tenantID,
		Day:        day,
		ReportDate: week.WeekStart.AddDate(0, 0, day.Offset()),
		Content:    content,
		WordCount:  len(strings.Fields(content)),
		Status:     domain.ReportStatusDraft,
		CreatedBy:  userID,
	}
	if err := s.dailyRepo.Upsert(ctx, report); err != nil {
		return nil, err
	}
	return s.dailyRepo.GetByDay(ctx, tenantID, weekID, day)
}

func (s *reportService) SubmitReport(ctx context.Context, tenantID, weekID uuid.UUID, day domain.Weekday) (*domain.DailyReport, error) {
	return s.dailyRepo.MarkSubmitted(ctx, tenantID, weekID, day)
}

// PreviewBulkImport runs validation and the parser over raw pasted text
// without persisting anything.
func (s *reportService) PreviewBulkImport(ctx context.Context, tenantID, weekID uuid.UUID, text string) (*BulkPreview, error) {
	if _, err := s.weekRepo.GetByID(ctx, tenantID, weekID); err != nil {
		return nil, err
	}

	check := bulkreport.Validate(text)
	result := bulkreport.Parse(text)

	return &BulkPreview{
		Valid:    check.OK(),
		Errors:   check.Errors,
		Warnings: check.Warnings,
		Reports:  result.Reports,
		Summary:  result.Summary,
		Orphaned: result.Orphaned,
	}, nil
}

// ApplyBulkImport parses pasted text and writes the outcome: one upsert per
// parsed day record, in parse order, plus the week summary when present.
// Duplicate day records are applied in order, so the later one wins.
func (s *reportService) ApplyBulkImport(ctx context.Context, tenantID, weekID, userID uuid.UUID, text string) (*BulkApplyResult, error) {
	week, err := s.weekRepo.GetByID(ctx, tenantID, weekID)
	if err != nil {
		return nil, err
	}

	result := bulkreport.Parse(text)
	if len(result.Reports) == 0 && result.Summary == "" {
		return nil, domain.ErrBulkNothingToApply
	}

	applied := 0
	for _, parsed := range result.Reports {
		report := &domain.DailyReport{
			WeekID:     weekID,
			TenantID:   tenantID,
			Day:        parsed.Day,
			ReportDate: week.WeekStart.AddDate(0, 0, parsed.Day.Offset()),
			Content:    parsed.Content,
			WordCount:  len(strings.Fields(parsed.Content)),
			Status:     domain.ReportStatusDraft,
			CreatedBy:  userID,
		}
		if err := s.dailyRepo.Upsert(ctx, report); err != nil {
			return nil, fmt.Errorf("report.ApplyBulkImport: day %s: %w", parsed.Day, err)
		}
		applied++
	}

	summaryApplied := false
	if result.Summary != "" {
		if err := s.weekRepo.UpdateSummary(ctx, tenantID, weekID, result.Summary); err != nil {
			return nil, fmt.Errorf("report.ApplyBulkImport: summary: %w", err)
		}
		summaryApplied = true
	}

	log.Printf("report.ApplyBulkImport: week=%s applied=%d summary=%t orphaned=%d",
		weekID, applied, summaryApplied, result.Orphaned)

	return &BulkApplyResult{
		AppliedCount:   applied,
		SummaryApplied: summaryApplied,
	}, nil
}

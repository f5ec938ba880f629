package port

import (
	"context"

	"github.com/google/uuid"

	"sentrydesk/internal/domain"
)

// WeekRepository defines the contract for report week persistence.
type WeekRepository interface {
	Create(ctx context.Context, week *domain.ReportWeek) error
	GetByID(ctx context.Context, tenantID, weekID uuid.UUID) (*domain.ReportWeek, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.ReportWeek, int, error)
	Update(ctx context.Context, week *domain.ReportWeek) error
	UpdateSummary(ctx context.Context, tenantID, weekID uuid.UUID, summary string) error
	Delete(ctx context.Context, tenantID, weekID uuid.UUID) error
}

// DailyReportRepository defines the contract for daily report persistence.
// Upsert inserts or replaces the report for its (week, day) slot, preserving
// the original row identity on conflict.
type DailyReportRepository interface {
	Upsert(ctx context.Context, report *domain.DailyReport) error
	GetByDay(ctx context.Context, tenantID, weekID uuid.UUID, day domain.Weekday) (*domain.DailyReport, error)
	ListByWeek(ctx context.Context, tenantID, weekID uuid.UUID) ([]domain.DailyReport, error)
	MarkSubmitted(ctx context.Context, tenantID, weekID uuid.UUID, day domain.Weekday) (*domain.DailyReport, error)
	ClaimUnnotified(ctx context.Context, limit int) ([]domain.DailyReport, error)
	Delete(ctx context.Context, tenantID, weekID uuid.UUID, day domain.Weekday) error
}

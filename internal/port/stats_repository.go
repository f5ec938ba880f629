package port

import (
	"context"

	"github.com/google/uuid"

	"sentrydesk/internal/domain"
)

// StatsRepository defines analytics aggregations over daily reports.
type StatsRepository interface {
	Overview(ctx context.Context, tenantID uuid.UUID) (*domain.OverviewStats, error)
	ActivityTrend(ctx context.Context, tenantID uuid.UUID, filters *domain.StatsFilters) ([]domain.ActivityRow, error)
	WeekdayBreakdown(ctx context.Context, tenantID uuid.UUID, filters *domain.StatsFilters) ([]domain.WeekdayRow, error)
	TopContributors(ctx context.Context, tenantID uuid.UUID, filters *domain.StatsFilters) ([]domain.ContributorRow, int, error)
}

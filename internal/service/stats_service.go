package service

import (
	"context"

	"github.com/google/uuid"

	"sentrydesk/internal/domain"
	"sentrydesk/internal/port"
)

// StatsService defines analytics hub operations.
type StatsService interface {
	Overview(ctx context.Context, tenantID uuid.UUID) (*domain.OverviewStats, error)
	ActivityTrend(ctx context.Context, tenantID uuid.UUID, filters *domain.StatsFilters) ([]domain.ActivityRow, error)
	WeekdayBreakdown(ctx context.Context, tenantID uuid.UUID, filters *domain.StatsFilters) ([]domain.WeekdayRow, error)
	TopContributors(ctx context.Context, tenantID uuid.UUID, filters *domain.StatsFilters) ([]domain.ContributorRow, int, error)
}

type statsService struct {
	statsRepo port.StatsRepository
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(statsRepo port.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) Overview(ctx context.Context, tenantID uuid.UUID) (*domain.OverviewStats, error) {
	return s.statsRepo.Overview(ctx, tenantID)
}

func (s *statsService) ActivityTrend(ctx context.Context, tenantID uuid.UUID, filters *domain.StatsFilters) ([]domain.ActivityRow, error) {
	applyStatsDefaults(filters)
	return s.statsRepo.ActivityTrend(ctx, tenantID, filters)
}

func (s *statsService) WeekdayBreakdown(ctx context.Context, tenantID uuid.UUID, filters *domain.StatsFilters) ([]domain.WeekdayRow, error) {
	applyStatsDefaults(filters)
	return s.statsRepo.WeekdayBreakdown(ctx, tenantID, filters)
}

func (s *statsService) TopContributors(ctx context.Context, tenantID uuid.UUID, filters *domain.StatsFilters) ([]domain.ContributorRow, int, error) {
	applyStatsDefaults(filters)
	return s.statsRepo.TopContributors(ctx, tenantID, filters)
}

func applyStatsDefaults(filters *domain.StatsFilters) {
	if filters.Granularity == "" {
		filters.Granularity = "weekly"
	}
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 20
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}
}

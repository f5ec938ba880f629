package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sentrydesk/internal/domain"
)

// MockDailyReportRepo is a mock implementation of port.DailyReportRepository.
type MockDailyReportRepo struct {
	mock.Mock
}

func (m *MockDailyReportRepo) Upsert(ctx context.Context, report *domain.DailyReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockDailyReportRepo) GetByDay(ctx context.Context, tenantID, weekID uuid.UUID, day domain.Weekday) (*domain.DailyReport, error) {
	args := m.Called(ctx, tenantID, weekID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReport), args.Error(1)
}

func (m *MockDailyReportRepo) ListByWeek(ctx context.Context, tenantID, weekID uuid.UUID) ([]domain.DailyReport, error) {
	args := m.Called(ctx, tenantID, weekID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyReport), args.Error(1)
}

func (m *MockDailyReportRepo) MarkSubmitted(ctx context.Context, tenantID, weekID uuid.UUID, day domain.Weekday) (*domain.DailyReport, error) {
	args := m.Called(ctx, tenantID, weekID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReport), args.Error(1)
}

func (m *MockDailyReportRepo) ClaimUnnotified(ctx context.Context, limit int) ([]domain.DailyReport, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyReport), args.Error(1)
}

func (m *MockDailyReportRepo) Delete(ctx context.Context, tenantID, weekID uuid.UUID, day domain.Weekday) error {
	args := m.Called(ctx, tenantID, weekID, day)
	return args.Error(0)
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sentrydesk/internal/domain"
)

// MockWeekRepo is a mock implementation of port.WeekRepository.
type MockWeekRepo struct {
	mock.Mock
}

func (m *MockWeekRepo) Create(ctx context.Context, week *domain.ReportWeek) error {
	args := m.Called(ctx, week)
	return args.Error(0)
}

func (m *MockWeekRepo) GetByID(ctx context.Context, tenantID, weekID uuid.UUID) (*domain.ReportWeek, error) {
	args := m.Called(ctx, tenantID, weekID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportWeek), args.Error(1)
}

func (m *MockWeekRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.ReportWeek, int, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ReportWeek), args.Int(1), args.Error(2)
}

func (m *MockWeekRepo) Update(ctx context.Context, week *domain.ReportWeek) error {
	args := m.Called(ctx, week)
	return args.Error(0)
}

func (m *MockWeekRepo) UpdateSummary(ctx context.Context, tenantID, weekID uuid.UUID, summary string) error {
	args := m.Called(ctx, tenantID, weekID, summary)
	return args.Error(0)
}

func (m *MockWeekRepo) Delete(ctx context.Context, tenantID, weekID uuid.UUID) error {
	args := m.Called(ctx, tenantID, weekID)
	return args.Error(0)
}

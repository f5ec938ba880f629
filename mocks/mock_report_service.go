package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sentrydesk/internal/domain"
	"sentrydesk/internal/service"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) CreateWeek(ctx context.Context, tenantID, userID uuid.UUID, input service.CreateWeekInput) (*domain.ReportWeek, error) {
	args := m.Called(ctx, tenantID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportWeek), args.Error(1)
}

func (m *MockReportService) GetWeek(ctx context.Context, tenantID, weekID uuid.UUID) (*domain.ReportWeek, error) {
	args := m.Called(ctx, tenantID, weekID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportWeek), args.Error(1)
}

func (m *MockReportService) ListWeeks(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.ReportWeek, int, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ReportWeek), args.Int(1), args.Error(2)
}

func (m *MockReportService) UpdateWeek(ctx context.Context, tenantID, weekID uuid.UUID, input service.UpdateWeekInput) (*domain.ReportWeek, error) {
	args := m.Called(ctx, tenantID, weekID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportWeek), args.Error(1)
}

func (m *MockReportService) DeleteWeek(ctx context.Context, tenantID, weekID uuid.UUID) error {
	args := m.Called(ctx, tenantID, weekID)
	return args.Error(0)
}

func (m *MockReportService) ListReports(ctx context.Context, tenantID, weekID uuid.UUID) ([]domain.DailyReport, error) {
	args := m.Called(ctx, tenantID, weekID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyReport), args.Error(1)
}

func (m *MockReportService) UpsertReport(ctx context.Context, tenantID, weekID, userID uuid.UUID, day domain.Weekday, input service.UpsertReportInput) (*domain.DailyReport, error) {
	args := m.Called(ctx, tenantID, weekID, userID, day, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReport), args.Error(1)
}

func (m *MockReportService) SubmitReport(ctx context.Context, tenantID, weekID uuid.UUID, day domain.Weekday) (*domain.DailyReport, error) {
	args := m.Called(ctx, tenantID, weekID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReport), args.Error(1)
}

func (m *MockReportService) PreviewBulkImport(ctx context.Context, tenantID, weekID uuid.UUID, text string) (*service.BulkPreview, error) {
	args := m.Called(ctx, tenantID, weekID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BulkPreview), args.Error(1)
}

func (m *MockReportService) ApplyBulkImport(ctx context.Context, tenantID, weekID, userID uuid.UUID, text string) (*service.BulkApplyResult, error) {
	args := m.Called(ctx, tenantID, weekID, userID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BulkApplyResult), args.Error(1)
}

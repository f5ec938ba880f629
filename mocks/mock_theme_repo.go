package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sentrydesk/internal/domain"
)

// MockThemeRepo is a mock implementation of port.ThemeRepository.
type MockThemeRepo struct {
	mock.Mock
}

func (m *MockThemeRepo) Create(ctx context.Context, theme *domain.ThemePreset) error {
	args := m.Called(ctx, theme)
	return args.Error(0)
}

func (m *MockThemeRepo) GetByID(ctx context.Context, tenantID, themeID uuid.UUID) (*domain.ThemePreset, error) {
	args := m.Called(ctx, tenantID, themeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ThemePreset), args.Error(1)
}

func (m *MockThemeRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.ThemePreset, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ThemePreset), args.Error(1)
}

func (m *MockThemeRepo) Update(ctx context.Context, theme *domain.ThemePreset) error {
	args := m.Called(ctx, theme)
	return args.Error(0)
}

func (m *MockThemeRepo) SetDefault(ctx context.Context, tenantID, themeID uuid.UUID) error {
	args := m.Called(ctx, tenantID, themeID)
	return args.Error(0)
}

func (m *MockThemeRepo) Delete(ctx context.Context, tenantID, themeID uuid.UUID) error {
	args := m.Called(ctx, tenantID, themeID)
	return args.Error(0)
}

package port

import (
	"context"

	"github.com/google/uuid"

	"sentrydesk/internal/domain"
)

// ThemeRepository defines the contract for theme preset persistence.
type ThemeRepository interface {
	Create(ctx context.Context, theme *domain.ThemePreset) error
	GetByID(ctx context.Context, tenantID, themeID uuid.UUID) (*domain.ThemePreset, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.ThemePreset, error)
	Update(ctx context.Context, theme *domain.ThemePreset) error
	SetDefault(ctx context.Context, tenantID, themeID uuid.UUID) error
	Delete(ctx context.Context, tenantID, themeID uuid.UUID) error
}

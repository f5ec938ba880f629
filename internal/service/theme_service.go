package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"sentrydesk/internal/domain"
	"sentrydesk/internal/port"
)

// CreateThemeInput is the DTO for creating a theme preset.
type CreateThemeInput struct {
	Name         string `json:"name" binding:"required"`
	PrimaryColor string `json:"primary_color" binding:"required"`
	AccentColor  string `json:"accent_color" binding:"required"`
	FontFamily   string `json:"font_family"`
	IsDefault    bool   `json:"is_default"`
}

// UpdateThemeInput is the DTO for updating a theme preset.
type UpdateThemeInput struct {
	Name         *string `json:"name"`
	PrimaryColor *string `json:"primary_color"`
	AccentColor  *string `json:"accent_color"`
	FontFamily   *string `json:"font_family"`
}

// ThemeService defines theme preset operations.
type ThemeService interface {
	Create(ctx context.Context, tenantID, userID uuid.UUID, input CreateThemeInput) (*domain.ThemePreset, error)
	Get(ctx context.Context, tenantID, themeID uuid.UUID) (*domain.ThemePreset, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]domain.ThemePreset, error)
	Update(ctx context.Context, tenantID, themeID uuid.UUID, input UpdateThemeInput) (*domain.ThemePreset, error)
	SetDefault(ctx context.Context, tenantID, themeID uuid.UUID) error
	Delete(ctx context.Context, tenantID, themeID uuid.UUID) error
}

type themeService struct {
	themeRepo port.ThemeRepository
}

// NewThemeService creates a new ThemeService implementation.
func NewThemeService(themeRepo port.ThemeRepository) ThemeService {
	return &themeService{themeRepo: themeRepo}
}

func (s *themeService) Create(ctx context.Context, tenantID, userID uuid.UUID, input CreateThemeInput) (*domain.ThemePreset, error) {
	theme := &domain.ThemePreset{
		TenantID:     tenantID,
		Name:         strings.TrimSpace(input.Name),
		PrimaryColor: input.PrimaryColor,
		AccentColor:  input.AccentColor,
		FontFamily:   input.FontFamily,
		CreatedBy:    userID,
	}
	if err := s.themeRepo.Create(ctx, theme); err != nil {
		return nil, err
	}
	if input.IsDefault {
		if err := s.themeRepo.SetDefault(ctx, tenantID, theme.ID); err != nil {
			return nil, err
		}
		theme.IsDefault = true
	}
	return theme, nil
}

func (s *themeService) Get(ctx context.Context, tenantID, themeID uuid.UUID) (*domain.ThemePreset, error) {
	return s.themeRepo.GetByID(ctx, tenantID, themeID)
}

func (s *themeService) List(ctx context.Context, tenantID uuid.UUID) ([]domain.ThemePreset, error) {
	return s.themeRepo.ListByTenant(ctx, tenantID)
}

func (s *themeService) Update(ctx context.Context, tenantID, themeID uuid.UUID, input UpdateThemeInput) (*domain.ThemePreset, error) {
	theme, err := s.themeRepo.GetByID(ctx, tenantID, themeID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		theme.Name = strings.TrimSpace(*input.Name)
	}
	if input.PrimaryColor != nil {
		theme.PrimaryColor = *input.PrimaryColor
	}
	if input.AccentColor != nil {
		theme.AccentColor = *input.AccentColor
	}
	if input.FontFamily != nil {
		theme.FontFamily = *input.FontFamily
	}

	if err := s.themeRepo.Update(ctx, theme); err != nil {
		return nil, err
	}
	return theme, nil
}

func (s *themeService) SetDefault(ctx context.Context, tenantID, themeID uuid.UUID) error {
	return s.themeRepo.SetDefault(ctx, tenantID, themeID)
}

func (s *themeService) Delete(ctx context.Context, tenantID, themeID uuid.UUID) error {
	return s.themeRepo.Delete(ctx, tenantID, themeID)
}

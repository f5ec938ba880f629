package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"sentrydesk/internal/domain"
	"sentrydesk/internal/port"
)

type themeRepo struct {
	db *sqlx.DB
}

// NewThemeRepo creates a new PostgreSQL-backed ThemeRepository.
func NewThemeRepo(db *sqlx.DB) port.ThemeRepository {
	return &themeRepo{db: db}
}

func (r *themeRepo) Create(ctx context.Context, theme *domain.ThemePreset) error {
	theme.ID = uuid.New()
	now := time.Now().UTC()
	theme.CreatedAt = now
	theme.UpdatedAt = now

	query := `INSERT INTO theme_presets (id, tenant_id, name, primary_color, accent_color, font_family, is_default, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		theme.ID, theme.TenantID, theme.Name, theme.PrimaryColor, theme.AccentColor,
		theme.FontFamily, theme.IsDefault, theme.CreatedBy, theme.CreatedAt, theme.UpdatedAt)
	if isUniqueViolation(err, "") {
		return domain.ErrDuplicateThemeName
	}
	if err != nil {
		return fmt.Errorf("themeRepo.Create: %w", err)
	}
	return nil
}

func (r *themeRepo) GetByID(ctx context.Context, tenantID, themeID uuid.UUID) (*domain.ThemePreset, error) {
	var theme domain.ThemePreset
	err := r.db.GetContext(ctx, &theme,
		"SELECT * FROM theme_presets WHERE id = $1 AND tenant_id = $2", themeID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrThemeNotFound
		}
		return nil, fmt.Errorf("themeRepo.GetByID: %w", err)
	}
	return &theme, nil
}

func (r *themeRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.ThemePreset, error) {
	var themes []domain.ThemePreset
	err := r.db.SelectContext(ctx, &themes,
		"SELECT * FROM theme_presets WHERE tenant_id = $1 ORDER BY is_default DESC, name", tenantID)
	if err != nil {
		return nil, fmt.Errorf("themeRepo.ListByTenant: %w", err)
	}
	return themes, nil
}

func (r *themeRepo) Update(ctx context.Context, theme *domain.ThemePreset) error {
	theme.UpdatedAt = time.Now().UTC()
	query := `UPDATE theme_presets SET name = $1, primary_color = $2, accent_color = $3,
		font_family = $4, updated_at = $5 WHERE id = $6 AND tenant_id = $7`
	result, err := r.db.ExecContext(ctx, query,
		theme.Name, theme.PrimaryColor, theme.AccentColor, theme.FontFamily,
		theme.UpdatedAt, theme.ID, theme.TenantID)
	if isUniqueViolation(err, "") {
		return domain.ErrDuplicateThemeName
	}
	if err != nil {
		return fmt.Errorf("themeRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrThemeNotFound
	}
	return nil
}

// SetDefault makes the given preset the tenant default. The clear and set
// run in one transaction so the tenant never has two defaults.
func (r *themeRepo) SetDefault(ctx context.Context, tenantID, themeID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("themeRepo.SetDefault begin: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		"UPDATE theme_presets SET is_default = false, updated_at = $1 WHERE tenant_id = $2 AND is_default = true",
		now, tenantID)
	if err != nil {
		return fmt.Errorf("themeRepo.SetDefault clear: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		"UPDATE theme_presets SET is_default = true, updated_at = $1 WHERE id = $2 AND tenant_id = $3",
		now, themeID, tenantID)
	if err != nil {
		return fmt.Errorf("themeRepo.SetDefault set: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrThemeNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("themeRepo.SetDefault commit: %w", err)
	}
	return nil
}

func (r *themeRepo) Delete(ctx context.Context, tenantID, themeID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM theme_presets WHERE id = $1 AND tenant_id = $2", themeID, tenantID)
	if err != nil {
		return fmt.Errorf("themeRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrThemeNotFound
	}
	return nil
}

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

type weekRepo struct {
	db *sqlx.DB
}

// NewWeekRepo creates a new PostgreSQL-backed WeekRepository.
func NewWeekRepo(db *sqlx.DB) port.WeekRepository {
	return &weekRepo{db: db}
}

func (r *weekRepo) Create(ctx context.Context, week *domain.ReportWeek) error {
	week.ID = uuid.New()
	now := time.Now().UTC()
	week.CreatedAt = now
	week.UpdatedAt = now

	query := `INSERT INTO report_weeks (id, tenant_id, site_name, week_start, theme_id, summary, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		week.ID, week.TenantID, week.SiteName, week.WeekStart, week.ThemeID,
		week.Summary, week.Status, week.CreatedBy, week.CreatedAt, week.UpdatedAt)
	if isUniqueViolation(err, "") {
		return domain.ErrDuplicateWeek
	}
	if err != nil {
		return fmt.Errorf("weekRepo.Create: %w", err)
	}
	return nil
}

func (r *weekRepo) GetByID(ctx context.Context, tenantID, weekID uuid.UUID) (*domain.ReportWeek, error) {
	var week domain.ReportWeek
	err := r.db.GetContext(ctx, &week,
		"SELECT * FROM report_weeks WHERE id = $1 AND tenant_id = $2", weekID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWeekNotFound
		}
		return nil, fmt.Errorf("weekRepo.GetByID: %w", err)
	}
	return &week, nil
}

func (r *weekRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.ReportWeek, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM report_weeks WHERE tenant_id = $1", tenantID)
	if err != nil {
		return nil, 0, fmt.Errorf("weekRepo.ListByTenant count: %w", err)
	}

	var weeks []domain.ReportWeek
	err = r.db.SelectContext(ctx, &weeks,
		"SELECT * FROM report_weeks WHERE tenant_id = $1 ORDER BY week_start DESC LIMIT $2 OFFSET $3",
		tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("weekRepo.ListByTenant: %w", err)
	}
	return weeks, total, nil
}

func (r *weekRepo) Update(ctx context.Context, week *domain.ReportWeek) error {
	week.UpdatedAt = time.Now().UTC()
	query := `UPDATE report_weeks SET site_name = $1, week_start = $2, theme_id = $3,
		summary = $4, status = $5, updated_at = $6 WHERE id = $7 AND tenant_id = $8`
	result, err := r.db.ExecContext(ctx, query,
		week.SiteName, week.WeekStart, week.ThemeID, week.Summary,
		week.Status, week.UpdatedAt, week.ID, week.TenantID)
	if isUniqueViolation(err, "") {
		return domain.ErrDuplicateWeek
	}
	if err != nil {
		return fmt.Errorf("weekRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrWeekNotFound
	}
	return nil
}

func (r *weekRepo) UpdateSummary(ctx context.Context, tenantID, weekID uuid.UUID, summary string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE report_weeks SET summary = $1, updated_at = $2 WHERE id = $3 AND tenant_id = $4",
		summary, time.Now().UTC(), weekID, tenantID)
	if err != nil {
		return fmt.Errorf("weekRepo.UpdateSummary: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrWeekNotFound
	}
	return nil
}

func (r *weekRepo) Delete(ctx context.Context, tenantID, weekID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM report_weeks WHERE id = $1 AND tenant_id = $2", weekID, tenantID)
	if err != nil {
		return fmt.Errorf("weekRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrWeekNotFound
	}
	return nil
}

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

type dailyReportRepo struct {
	db *sqlx.DB
}

// NewDailyReportRepo creates a new PostgreSQL-backed DailyReportRepository.
func NewDailyReportRepo(db *sqlx.DB) port.DailyReportRepository {
	return &dailyReportRepo{db: db}
}

// Upsert inserts the report or, when the (week_id, day) slot is already
// taken, replaces its content while keeping the existing row id. The slot
// drops back to draft and clears notification state so a rewritten report
// is picked up by the digest cycle again after resubmission.
func (r *dailyReportRepo) Upsert(ctx context.Context, report *domain.DailyReport) error {
	report.ID = uuid.New()
	now := time.Now().UTC()
	report.CreatedAt = now
	report.UpdatedAt = now

	query := `
		INSERT INTO daily_reports (
			id, week_id, tenant_id, day, report_date,
			content, word_count, status, submitted_at, notified_at,
			created_by, created_at, updated_at
		) VALUES (
			:id, :week_id, :tenant_id, :day, :report_date,
			:content, :word_count, :status, :submitted_at, :notified_at,
			:created_by, NOW(), NOW()
		)
		ON CONFLICT (week_id, day) DO UPDATE SET
			report_date = EXCLUDED.report_date,
			content = EXCLUDED.content,
			word_count = EXCLUDED.word_count,
			status = EXCLUDED.status,
			submitted_at = NULL,
			notified_at = NULL,
			created_by = EXCLUDED.created_by,
			updated_at = NOW()`

	_, err := r.db.NamedExecContext(ctx, query, report)
	if err != nil {
		return fmt.Errorf("upserting daily report: %w", err)
	}
	return nil
}

func (r *dailyReportRepo) GetByDay(ctx context.Context, tenantID, weekID uuid.UUID, day domain.Weekday) (*domain.DailyReport, error) {
	var report domain.DailyReport
	err := r.db.GetContext(ctx, &report,
		"SELECT * FROM daily_reports WHERE tenant_id = $1 AND week_id = $2 AND day = $3",
		tenantID, weekID, day)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("dailyReportRepo.GetByDay: %w", err)
	}
	return &report, nil
}

func (r *dailyReportRepo) ListByWeek(ctx context.Context, tenantID, weekID uuid.UUID) ([]domain.DailyReport, error) {
	var reports []domain.DailyReport
	err := r.db.SelectContext(ctx, &reports,
		"SELECT * FROM daily_reports WHERE tenant_id = $1 AND week_id = $2 ORDER BY report_date",
		tenantID, weekID)
	if err != nil {
		return nil, fmt.Errorf("dailyReportRepo.ListByWeek: %w", err)
	}
	return reports, nil
}

func (r *dailyReportRepo) MarkSubmitted(ctx context.Context, tenantID, weekID uuid.UUID, day domain.Weekday) (*domain.DailyReport, error) {
	var report domain.DailyReport
	query := `UPDATE daily_reports
		SET status = $1, submitted_at = $2, updated_at = $2
		WHERE tenant_id = $3 AND week_id = $4 AND day = $5
		RETURNING *`
	err := r.db.GetContext(ctx, &report, query,
		domain.ReportStatusSubmitted, time.Now().UTC(), tenantID, weekID, day)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("dailyReportRepo.MarkSubmitted: %w", err)
	}
	return &report, nil
}

// ClaimUnnotified atomically claims up to limit submitted reports that have
// not yet been included in a digest. FOR UPDATE SKIP LOCKED keeps concurrent
// worker instances from claiming the same rows.
func (r *dailyReportRepo) ClaimUnnotified(ctx context.Context, limit int) ([]domain.DailyReport, error) {
	var reports []domain.DailyReport
	query := `
		UPDATE daily_reports
		SET notified_at = NOW(), updated_at = NOW()
		WHERE id IN (
			SELECT id FROM daily_reports
			WHERE status = $1 AND notified_at IS NULL
			ORDER BY submitted_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING *`
	err := r.db.SelectContext(ctx, &reports, query, domain.ReportStatusSubmitted, limit)
	if err != nil {
		return nil, fmt.Errorf("dailyReportRepo.ClaimUnnotified: %w", err)
	}
	return reports, nil
}

func (r *dailyReportRepo) Delete(ctx context.Context, tenantID, weekID uuid.UUID, day domain.Weekday) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM daily_reports WHERE tenant_id = $1 AND week_id = $2 AND day = $3",
		tenantID, weekID, day)
	if err != nil {
		return fmt.Errorf("dailyReportRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

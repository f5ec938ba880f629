package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"sentrydesk/internal/domain"
	"sentrydesk/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

// buildStatsWhere constructs a dynamic WHERE clause over daily_reports.
// It returns the clause string (starting with "WHERE") and the positional arguments.
func buildStatsWhere(tenantID uuid.UUID, filters *domain.StatsFilters) (clause string, args []interface{}) {
	args = []interface{}{tenantID}
	clause = "WHERE dr.tenant_id = $1"

	if filters.From != nil {
		args = append(args, *filters.From)
		clause += fmt.Sprintf(" AND dr.report_date >= $%d", len(args))
	}
	if filters.To != nil {
		args = append(args, *filters.To)
		clause += fmt.Sprintf(" AND dr.report_date <= $%d", len(args))
	}

	return clause, args
}

// dateTruncExpr returns the PostgreSQL date_trunc expression for the given granularity.
func dateTruncExpr(granularity string) string {
	switch granularity {
	case "daily":
		return "date_trunc('day', dr.report_date)"
	case "weekly":
		return "date_trunc('week', dr.report_date)"
	case "monthly":
		return "date_trunc('month', dr.report_date)"
	default:
		return "date_trunc('week', dr.report_date)"
	}
}

// formatPeriod formats a period start into a human-readable label for its granularity.
func formatPeriod(t time.Time, granularity string) string {
	switch granularity {
	case "daily":
		return t.Format("2006-01-02")
	case "monthly":
		return t.Format("2006-01")
	default:
		_, week := t.ISOWeek()
		return fmt.Sprintf("%s-W%02d", t.Format("2006"), week)
	}
}

// periodEnd computes the end of a period given its start and the granularity.
func periodEnd(start time.Time, granularity string) time.Time {
	switch granularity {
	case "daily":
		return start.AddDate(0, 0, 1).Add(-time.Second)
	case "monthly":
		return start.AddDate(0, 1, 0).Add(-time.Second)
	default:
		return start.AddDate(0, 0, 7).Add(-time.Second)
	}
}

func (r *statsRepo) Overview(ctx context.Context, tenantID uuid.UUID) (*domain.OverviewStats, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM report_weeks WHERE tenant_id = $1) AS week_count,
		COUNT(dr.id) AS report_count,
		COUNT(dr.id) FILTER (WHERE dr.status = 'submitted') AS submitted_count,
		COUNT(dr.id) FILTER (WHERE dr.status = 'draft') AS draft_count,
		(SELECT COUNT(*) FROM media_attachments WHERE tenant_id = $1 AND status != 'deleted') AS attachment_count,
		COALESCE(AVG(dr.word_count), 0) AS avg_word_count
	FROM daily_reports dr
	WHERE dr.tenant_id = $1`

	var stats domain.OverviewStats
	if err := r.db.GetContext(ctx, &stats, query, tenantID); err != nil {
		return nil, fmt.Errorf("statsRepo.Overview: %w", err)
	}
	return &stats, nil
}

// activityDBRow is an intermediate struct for scanning time-series results.
type activityDBRow struct {
	PeriodStart time.Time `db:"period_start"`
	ReportCount int       `db:"report_count"`
	WordCount   int       `db:"word_count"`
}

func (r *statsRepo) ActivityTrend(ctx context.Context, tenantID uuid.UUID, filters *domain.StatsFilters) ([]domain.ActivityRow, error) {
	whereClause, args := buildStatsWhere(tenantID, filters)
	truncExpr := dateTruncExpr(filters.Granularity)

	query := fmt.Sprintf(`SELECT
		%s AS period_start,
		COUNT(*) AS report_count,
		COALESCE(SUM(dr.word_count), 0) AS word_count
	FROM daily_reports dr
	%s
	GROUP BY period_start
	ORDER BY period_start`, truncExpr, whereClause)

	var dbRows []activityDBRow
	if err := sqlx.SelectContext(ctx, r.db, &dbRows, query, args...); err != nil {
		return nil, fmt.Errorf("statsRepo.ActivityTrend: %w", err)
	}

	rows := make([]domain.ActivityRow, 0, len(dbRows))
	for _, row := range dbRows {
		rows = append(rows, domain.ActivityRow{
			Period:      formatPeriod(row.PeriodStart, filters.Granularity),
			PeriodStart: row.PeriodStart,
			PeriodEnd:   periodEnd(row.PeriodStart, filters.Granularity),
			ReportCount: row.ReportCount,
			WordCount:   row.WordCount,
		})
	}
	return rows, nil
}

func (r *statsRepo) WeekdayBreakdown(ctx context.Context, tenantID uuid.UUID, filters *domain.StatsFilters) ([]domain.WeekdayRow, error) {
	whereClause, args := buildStatsWhere(tenantID, filters)

	query := fmt.Sprintf(`SELECT
		dr.day,
		COUNT(*) AS report_count,
		COALESCE(AVG(dr.word_count), 0) AS avg_word_count
	FROM daily_reports dr
	%s
	GROUP BY dr.day`, whereClause)

	var rows []domain.WeekdayRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("statsRepo.WeekdayBreakdown: %w", err)
	}

	// Present days in calendar order regardless of aggregation order.
	byDay := make(map[domain.Weekday]domain.WeekdayRow, len(rows))
	for _, row := range rows {
		byDay[row.Day] = row
	}
	ordered := make([]domain.WeekdayRow, 0, len(rows))
	for _, day := range domain.Weekdays {
		if row, ok := byDay[day]; ok {
			ordered = append(ordered, row)
		}
	}
	return ordered, nil
}

func (r *statsRepo) TopContributors(ctx context.Context, tenantID uuid.UUID, filters *domain.StatsFilters) ([]domain.ContributorRow, int, error) {
	whereClause, args := buildStatsWhere(tenantID, filters)

	dataQuery := fmt.Sprintf(`SELECT
		dr.created_by AS user_id,
		COALESCE(MAX(u.full_name), '') AS full_name,
		COUNT(*) AS report_count,
		COALESCE(SUM(dr.word_count), 0) AS word_count
	FROM daily_reports dr
	LEFT JOIN users u ON u.id = dr.created_by
	%s
	GROUP BY dr.created_by
	ORDER BY report_count DESC
	OFFSET %d LIMIT %d`, whereClause, filters.Offset, filters.Limit)

	var rows []domain.ContributorRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, dataQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("statsRepo.TopContributors data: %w", err)
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(DISTINCT dr.created_by)
	FROM daily_reports dr
	%s`, whereClause)

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("statsRepo.TopContributors count: %w", err)
	}

	return rows, total, nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// StatsFilters narrows analytics queries.
type StatsFilters struct {
	From        *time.Time
	To          *time.Time
	Granularity string
	Offset      int
	Limit       int
}

// OverviewStats is the analytics hub headline card data.
type OverviewStats struct {
	WeekCount       int     `db:"week_count" json:"week_count"`
	ReportCount     int     `db:"report_count" json:"report_count"`
	SubmittedCount  int     `db:"submitted_count" json:"submitted_count"`
	DraftCount      int     `db:"draft_count" json:"draft_count"`
	AttachmentCount int     `db:"attachment_count" json:"attachment_count"`
	AvgWordCount    float64 `db:"avg_word_count" json:"avg_word_count"`
}

// ActivityRow is one period bucket in the report activity trend.
type ActivityRow struct {
	Period      string    `json:"period"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	ReportCount int       `json:"report_count"`
	WordCount   int       `json:"word_count"`
}

// WeekdayRow aggregates report volume for one day of the week.
type WeekdayRow struct {
	Day          Weekday `db:"day" json:"day"`
	ReportCount  int     `db:"report_count" json:"report_count"`
	AvgWordCount float64 `db:"avg_word_count" json:"avg_word_count"`
}

// ContributorRow aggregates report activity per author.
type ContributorRow struct {
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	FullName    string    `db:"full_name" json:"full_name"`
	ReportCount int       `db:"report_count" json:"report_count"`
	WordCount   int       `db:"word_count" json:"word_count"`
}

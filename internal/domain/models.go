package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tenant represents an isolated client organization (a guard company or site
// operator using the portal).
type Tenant struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User represents an authenticated user belonging to a tenant.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TenantID     uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// ReportWeek groups one site's daily reports for a single week.
type ReportWeek struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	TenantID  uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	SiteName  string     `db:"site_name" json:"site_name"`
	WeekStart time.Time  `db:"week_start" json:"week_start"`
	ThemeID   *uuid.UUID `db:"theme_id" json:"theme_id"`
	Summary   string     `db:"summary" json:"summary"`
	Status    WeekStatus `db:"status" json:"status"`
	CreatedBy uuid.UUID  `db:"created_by" json:"created_by"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// DailyReport is one weekday's report within a week. At most one report
// exists per (week, day); the bulk-import apply step upserts on that key.
type DailyReport struct {
	ID          uuid.UUID    `db:"id" json:"id"`
	WeekID      uuid.UUID    `db:"week_id" json:"week_id"`
	TenantID    uuid.UUID    `db:"tenant_id" json:"tenant_id"`
	Day         Weekday      `db:"day" json:"day"`
	ReportDate  time.Time    `db:"report_date" json:"report_date"`
	Content     string       `db:"content" json:"content"`
	WordCount   int          `db:"word_count" json:"word_count"`
	Status      ReportStatus `db:"status" json:"status"`
	SubmittedAt *time.Time   `db:"submitted_at" json:"submitted_at"`
	NotifiedAt  *time.Time   `db:"notified_at" json:"notified_at"`
	CreatedBy   uuid.UUID    `db:"created_by" json:"created_by"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updated_at"`
}

// ThemePreset is a named report styling preset. At most one preset per tenant
// is the default.
type ThemePreset struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TenantID     uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Name         string    `db:"name" json:"name"`
	PrimaryColor string    `db:"primary_color" json:"primary_color"`
	AccentColor  string    `db:"accent_color" json:"accent_color"`
	FontFamily   string    `db:"font_family" json:"font_family"`
	IsDefault    bool      `db:"is_default" json:"is_default"`
	CreatedBy    uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// MediaAttachment stores metadata about an evidence file (photo, PDF)
// attached to a report week. The bytes live in object storage.
type MediaAttachment struct {
	ID           uuid.UUID   `db:"id" json:"id"`
	TenantID     uuid.UUID   `db:"tenant_id" json:"tenant_id"`
	WeekID       uuid.UUID   `db:"week_id" json:"week_id"`
	UploadedBy   uuid.UUID   `db:"uploaded_by" json:"uploaded_by"`
	FileName     string      `db:"file_name" json:"file_name"`
	OriginalName string      `db:"original_name" json:"original_name"`
	FileType     MediaType   `db:"file_type" json:"file_type"`
	FileSize     int64       `db:"file_size" json:"file_size"`
	S3Bucket     string      `db:"s3_bucket" json:"s3_bucket"`
	S3Key        string      `db:"s3_key" json:"s3_key"`
	ContentType  string      `db:"content_type" json:"content_type"`
	Status       MediaStatus `db:"status" json:"status"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at" json:"updated_at"`
}

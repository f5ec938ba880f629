package domain

import "strings"

// Weekday is the canonical (capitalized) name of a day of the week.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists all weekdays in report order (Monday first).
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayByName = map[string]Weekday{
	"monday":    Monday,
	"tuesday":   Tuesday,
	"wednesday": Wednesday,
	"thursday":  Thursday,
	"friday":    Friday,
	"saturday":  Saturday,
	"sunday":    Sunday,
}

// ParseWeekday canonicalizes a weekday name, case-insensitively. Partial or
// misspelled names are not matched.
func ParseWeekday(s string) (Weekday, bool) {
	d, ok := weekdayByName[strings.ToLower(strings.TrimSpace(s))]
	return d, ok
}

// Offset returns the day's position within the week, Monday = 0.
func (d Weekday) Offset() int {
	for i, w := range Weekdays {
		if w == d {
			return i
		}
	}
	return 0
}

// UserRole defines the role hierarchy within a tenant.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// WeekStatus represents the lifecycle of a report week.
type WeekStatus string

const (
	WeekStatusOpen     WeekStatus = "open"
	WeekStatusFinished WeekStatus = "finished"
)

// ReportStatus represents the lifecycle of a daily report.
type ReportStatus string

const (
	ReportStatusDraft     ReportStatus = "draft"
	ReportStatusSubmitted ReportStatus = "submitted"
)

// MediaType represents the allowed attachment types.
type MediaType string

const (
	MediaTypePDF MediaType = "pdf"
	MediaTypeJPG MediaType = "jpg"
	MediaTypePNG MediaType = "png"
)

// AllowedMediaTypes maps MediaType to its MIME content type.
var AllowedMediaTypes = map[MediaType]string{
	MediaTypePDF: "application/pdf",
	MediaTypeJPG: "image/jpeg",
	MediaTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to MediaType.
var AllowedContentTypes = map[string]MediaType{
	"application/pdf": MediaTypePDF,
	"image/jpeg":      MediaTypeJPG,
	"image/png":       MediaTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to MediaType.
var AllowedExtensions = map[string]MediaType{
	"pdf":  MediaTypePDF,
	"jpg":  MediaTypeJPG,
	"jpeg": MediaTypeJPG,
	"png":  MediaTypePNG,
}

// MediaStatus represents the lifecycle of an uploaded attachment.
type MediaStatus string

const (
	MediaStatusPending  MediaStatus = "pending"
	MediaStatusUploaded MediaStatus = "uploaded"
	MediaStatusFailed   MediaStatus = "failed"
	MediaStatusDeleted  MediaStatus = "deleted"
)

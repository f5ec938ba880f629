package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTenantInactive      = errors.New("tenant is inactive")
	ErrUserInactive        = errors.New("user is inactive")
	ErrDuplicateEmail      = errors.New("email already exists for this tenant")
	ErrDuplicateTenantSlug = errors.New("tenant slug already exists")
	ErrInsufficientRole    = errors.New("insufficient role for this action")

	ErrWeekNotFound   = errors.New("report week not found")
	ErrDuplicateWeek  = errors.New("report week already exists for this site and week start")
	ErrInvalidWeekday = errors.New("invalid weekday")
	ErrReportNotFound = errors.New("daily report not found")

	ErrBulkTextEmpty      = errors.New("bulk report text is empty or too short")
	ErrBulkNoDayMarkers   = errors.New("no day markers found in bulk report text")
	ErrBulkNothingToApply = errors.New("bulk import produced no reports to apply")

	ErrThemeNotFound      = errors.New("theme preset not found")
	ErrDuplicateThemeName = errors.New("theme preset name already exists for this tenant")

	ErrUnsupportedMediaType = errors.New("unsupported attachment type")
	ErrMediaTooLarge        = errors.New("attachment exceeds maximum allowed size")
	ErrUploadFailed         = errors.New("attachment upload to storage failed")
	ErrMediaNotFound        = errors.New("attachment not found")

	ErrInvalidExportFormat = errors.New("invalid export format")
)

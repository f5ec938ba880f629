package port

import (
	"context"

	"sentrydesk/internal/domain"
)

// DigestItem is one submitted report summarized in a digest email.
type DigestItem struct {
	SiteName   string
	Day        domain.Weekday
	ReportDate string
	WordCount  int
}

// EmailSender defines the contract for sending notification emails.
type EmailSender interface {
	SendSubmissionDigest(ctx context.Context, toEmail, toName string, items []DigestItem) error
}

package noop

import (
	"context"
	"log"

	"sentrydesk/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs digests to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendSubmissionDigest(_ context.Context, toEmail, toName string, items []port.DigestItem) error {
	log.Printf("[NOOP EMAIL] Submission digest for %s (%s): %d item(s)", toName, toEmail, len(items))
	for _, item := range items {
		log.Printf("[NOOP EMAIL]   %s %s %s (%d words)", item.SiteName, item.Day, item.ReportDate, item.WordCount)
	}
	return nil
}

package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"sentrydesk/internal/domain"
	"sentrydesk/internal/port"
)

// DigestWorkerConfig holds settings for the submission digest worker.
type DigestWorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
	Concurrency  int
}

// DigestWorker polls for newly submitted daily reports and emails each
// tenant's admins a digest of what came in.
type DigestWorker struct {
	dailyRepo port.DailyReportRepository
	weekRepo  port.WeekRepository
	userRepo  port.UserRepository
	sender    port.EmailSender
	cfg       DigestWorkerConfig
	wg        sync.WaitGroup
}

// NewDigestWorker creates a new DigestWorker.
func NewDigestWorker(
	dailyRepo port.DailyReportRepository,
	weekRepo port.WeekRepository,
	userRepo port.UserRepository,
	sender port.EmailSender,
	cfg DigestWorkerConfig,
) *DigestWorker {
	return &DigestWorker{
		dailyRepo: dailyRepo,
		weekRepo:  weekRepo,
		userRepo:  userRepo,
		sender:    sender,
		cfg:       cfg,
	}
}

// Start runs the polling loop until ctx is canceled. It blocks until all
// in-flight digest sends have finished.
func (w *DigestWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	sem := make(chan struct{}, w.cfg.Concurrency)

	log.Printf("digestWorker: started (poll=%s, batch=%d, concurrency=%d)",
		w.cfg.PollInterval, w.cfg.BatchSize, w.cfg.Concurrency)

	for {
		select {
		case <-ctx.Done():
			log.Printf("digestWorker: shutting down, waiting for in-flight digests...")
			w.wg.Wait()
			log.Printf("digestWorker: shutdown complete")
			return
		case <-ticker.C:
			reports, err := w.dailyRepo.ClaimUnnotified(ctx, w.cfg.BatchSize)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				log.Printf("digestWorker: ClaimUnnotified error: %v", err)
				continue
			}
			if len(reports) == 0 {
				continue
			}

			for tenantID, batch := range groupByTenant(reports) {
				batch := batch
				tenantID := tenantID

				sem <- struct{}{} // acquire
				w.wg.Add(1)
				go func() {
					defer w.wg.Done()
					defer func() { <-sem }() // release

					// Fresh context so in-flight sends complete during shutdown.
					sendCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
					defer cancel()

					w.sendTenantDigest(sendCtx, tenantID, batch)
				}()
			}
		}
	}
}

func (w *DigestWorker) sendTenantDigest(ctx context.Context, tenantID uuid.UUID, reports []domain.DailyReport) {
	items := make([]port.DigestItem, 0, len(reports))
	siteNames := make(map[uuid.UUID]string)
	for _, report := range reports {
		siteName, ok := siteNames[report.WeekID]
		if !ok {
			week, err := w.weekRepo.GetByID(ctx, tenantID, report.WeekID)
			if err != nil {
				log.Printf("digestWorker: week %s lookup failed: %v", report.WeekID, err)
				continue
			}
			siteName = week.SiteName
			siteNames[report.WeekID] = siteName
		}
		items = append(items, port.DigestItem{
			SiteName:   siteName,
			Day:        report.Day,
			ReportDate: report.ReportDate.Format("2006-01-02"),
			WordCount:  report.WordCount,
		})
	}
	if len(items) == 0 {
		return
	}

	admins, err := w.userRepo.ListAdmins(ctx, tenantID)
	if err != nil {
		log.Printf("digestWorker: ListAdmins for tenant %s failed: %v", tenantID, err)
		return
	}

	for _, admin := range admins {
		if err := w.sender.SendSubmissionDigest(ctx, admin.Email, admin.FullName, items); err != nil {
			log.Printf("digestWorker: digest to %s failed: %v", admin.Email, err)
			continue
		}
	}
	log.Printf("digestWorker: sent digest of %d report(s) to %d admin(s) for tenant %s",
		len(items), len(admins), tenantID)
}

func groupByTenant(reports []domain.DailyReport) map[uuid.UUID][]domain.DailyReport {
	grouped := make(map[uuid.UUID][]domain.DailyReport)
	for _, report := range reports {
		grouped[report.TenantID] = append(grouped[report.TenantID], report)
	}
	return grouped
}

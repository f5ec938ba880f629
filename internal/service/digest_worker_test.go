package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sentrydesk/internal/domain"
	"sentrydesk/internal/port"
	"sentrydesk/internal/service"
	"sentrydesk/mocks"
)

func submittedReport(tenantID, weekID uuid.UUID, day domain.Weekday) domain.DailyReport {
	return domain.DailyReport{
		ID:         uuid.New(),
		WeekID:     weekID,
		TenantID:   tenantID,
		Day:        day,
		ReportDate: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day.Offset()),
		WordCount:  42,
		Status:     domain.ReportStatusSubmitted,
	}
}

func TestGroupByTenant(t *testing.T) {
	tenantA := uuid.New()
	tenantB := uuid.New()
	weekID := uuid.New()

	grouped := service.GroupByTenant([]domain.DailyReport{
		submittedReport(tenantA, weekID, domain.Monday),
		submittedReport(tenantB, weekID, domain.Monday),
		submittedReport(tenantA, weekID, domain.Tuesday),
	})

	assert.Len(t, grouped, 2)
	assert.Len(t, grouped[tenantA], 2)
	assert.Len(t, grouped[tenantB], 1)
}

func TestDigestWorker_SendTenantDigest(t *testing.T) {
	dailyRepo := new(mocks.MockDailyReportRepo)
	weekRepo := new(mocks.MockWeekRepo)
	userRepo := new(mocks.MockUserRepo)
	sender := new(mocks.MockEmailSender)
	worker := service.NewDigestWorker(dailyRepo, weekRepo, userRepo, sender, service.DigestWorkerConfig{
		PollInterval: time.Second,
		BatchSize:    10,
		Concurrency:  2,
	})

	tenantID := uuid.New()
	weekID := uuid.New()
	week := &domain.ReportWeek{ID: weekID, TenantID: tenantID, SiteName: "Dock 4"}

	// Two reports from the same week: the site name lookup happens once.
	weekRepo.On("GetByID", mock.Anything, tenantID, weekID).Return(week, nil).Once()
	userRepo.On("ListAdmins", mock.Anything, tenantID).Return([]domain.User{
		{Email: "lead@dock4.example", FullName: "Site Lead"},
		{Email: "ops@dock4.example", FullName: "Ops"},
	}, nil)

	matchItems := mock.MatchedBy(func(items []port.DigestItem) bool {
		return len(items) == 2 &&
			items[0].SiteName == "Dock 4" &&
			items[0].Day == domain.Monday &&
			items[1].Day == domain.Wednesday
	})
	sender.On("SendSubmissionDigest", mock.Anything, "lead@dock4.example", "Site Lead", matchItems).Return(nil)
	sender.On("SendSubmissionDigest", mock.Anything, "ops@dock4.example", "Ops", matchItems).Return(nil)

	worker.SendTenantDigest(context.Background(), tenantID, []domain.DailyReport{
		submittedReport(tenantID, weekID, domain.Monday),
		submittedReport(tenantID, weekID, domain.Wednesday),
	})

	weekRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestDigestWorker_SendTenantDigest_MissingWeekSkipped(t *testing.T) {
	dailyRepo := new(mocks.MockDailyReportRepo)
	weekRepo := new(mocks.MockWeekRepo)
	userRepo := new(mocks.MockUserRepo)
	sender := new(mocks.MockEmailSender)
	worker := service.NewDigestWorker(dailyRepo, weekRepo, userRepo, sender, service.DigestWorkerConfig{
		PollInterval: time.Second,
		BatchSize:    10,
		Concurrency:  2,
	})

	tenantID := uuid.New()
	weekID := uuid.New()
	weekRepo.On("GetByID", mock.Anything, tenantID, weekID).Return(nil, domain.ErrWeekNotFound)

	worker.SendTenantDigest(context.Background(), tenantID, []domain.DailyReport{
		submittedReport(tenantID, weekID, domain.Friday),
	})

	// Every item was dropped, so no admin lookup and no email.
	userRepo.AssertNotCalled(t, "ListAdmins", mock.Anything, mock.Anything)
	sender.AssertNotCalled(t, "SendSubmissionDigest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDigestWorker_Start_ClaimsAndSends(t *testing.T) {
	dailyRepo := new(mocks.MockDailyReportRepo)
	weekRepo := new(mocks.MockWeekRepo)
	userRepo := new(mocks.MockUserRepo)
	sender := new(mocks.MockEmailSender)
	worker := service.NewDigestWorker(dailyRepo, weekRepo, userRepo, sender, service.DigestWorkerConfig{
		PollInterval: 10 * time.Millisecond,
		BatchSize:    5,
		Concurrency:  2,
	})

	tenantID := uuid.New()
	weekID := uuid.New()
	week := &domain.ReportWeek{ID: weekID, TenantID: tenantID, SiteName: "Dock 4"}

	sent := make(chan struct{})
	dailyRepo.On("ClaimUnnotified", mock.Anything, 5).Return([]domain.DailyReport{
		submittedReport(tenantID, weekID, domain.Monday),
	}, nil).Once()
	dailyRepo.On("ClaimUnnotified", mock.Anything, 5).Return([]domain.DailyReport{}, nil)
	weekRepo.On("GetByID", mock.Anything, tenantID, weekID).Return(week, nil)
	userRepo.On("ListAdmins", mock.Anything, tenantID).Return([]domain.User{
		{Email: "lead@dock4.example", FullName: "Site Lead"},
	}, nil)
	sender.On("SendSubmissionDigest", mock.Anything, "lead@dock4.example", "Site Lead", mock.Anything).
		Run(func(mock.Arguments) { close(sent) }).
		Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	select {
	case <-sent:
	case <-time.After(2 * time.Second):
		t.Fatal("digest was never sent")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not shut down")
	}

	dailyRepo.AssertExpectations(t)
	sender.AssertExpectations(t)
}

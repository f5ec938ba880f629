package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sentrydesk/internal/domain"
	"sentrydesk/internal/service"
	"sentrydesk/mocks"
)

func testWeek(tenantID uuid.UUID) *domain.ReportWeek {
	return &domain.ReportWeek{
		ID:        uuid.New(),
		TenantID:  tenantID,
		SiteName:  "Perimeter East",
		WeekStart: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), // a Monday
		Status:    domain.WeekStatusOpen,
	}
}

func TestReportService_CreateWeek_SnapsToMonday(t *testing.T) {
	weekRepo := new(mocks.MockWeekRepo)
	dailyRepo := new(mocks.MockDailyReportRepo)
	svc := service.NewReportService(weekRepo, dailyRepo)

	tenantID := uuid.New()
	userID := uuid.New()

	var created *domain.ReportWeek
	weekRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ReportWeek")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.ReportWeek)
		}).
		Return(nil)

	// 2026-08-26 is a Wednesday.
	week, err := svc.CreateWeek(context.Background(), tenantID, userID, service.CreateWeekInput{
		SiteName:  "  Perimeter East  ",
		WeekStart: "2026-08-26",
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), week.WeekStart)
	assert.Equal(t, "Perimeter East", week.SiteName)
	assert.Equal(t, domain.WeekStatusOpen, week.Status)
	assert.Equal(t, userID, week.CreatedBy)
	weekRepo.AssertExpectations(t)
}

func TestReportService_CreateWeek_BadDate(t *testing.T) {
	weekRepo := new(mocks.MockWeekRepo)
	dailyRepo := new(mocks.MockDailyReportRepo)
	svc := service.NewReportService(weekRepo, dailyRepo)

	_, err := svc.CreateWeek(context.Background(), uuid.New(), uuid.New(), service.CreateWeekInput{
		SiteName:  "Perimeter East",
		WeekStart: "26/08/2026",
	})

	assert.Error(t, err)
	weekRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReportService_UpsertReport(t *testing.T) {
	weekRepo := new(mocks.MockWeekRepo)
	dailyRepo := new(mocks.MockDailyReportRepo)
	svc := service.NewReportService(weekRepo, dailyRepo)

	tenantID := uuid.New()
	userID := uuid.New()
	week := testWeek(tenantID)

	weekRepo.On("GetByID", mock.Anything, tenantID, week.ID).Return(week, nil)

	var written *domain.DailyReport
	dailyRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.DailyReport")).
		Run(func(args mock.Arguments) {
			written = args.Get(1).(*domain.DailyReport)
		}).
		Return(nil)
	dailyRepo.On("GetByDay", mock.Anything, tenantID, week.ID, domain.Wednesday).
		Return(&domain.DailyReport{WeekID: week.ID, Day: domain.Wednesday}, nil)

	report, err := svc.UpsertReport(context.Background(), tenantID, week.ID, userID, domain.Wednesday, service.UpsertReportInput{
		Content: "  Gate check complete. Two badge anomalies logged.  ",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.Wednesday, report.Day)
	assert.NotNil(t, written)
	assert.Equal(t, "Gate check complete. Two badge anomalies logged.", written.Content)
	assert.Equal(t, 7, written.WordCount)
	assert.Equal(t, week.WeekStart.AddDate(0, 0, 2), written.ReportDate)
	assert.Equal(t, domain.ReportStatusDraft, written.Status)
	weekRepo.AssertExpectations(t)
	dailyRepo.AssertExpectations(t)
}

func TestReportService_PreviewBulkImport_PersistsNothing(t *testing.T) {
	weekRepo := new(mocks.MockWeekRepo)
	dailyRepo := new(mocks.MockDailyReportRepo)
	svc := service.NewReportService(weekRepo, dailyRepo)

	tenantID := uuid.New()
	week := testWeek(tenantID)
	weekRepo.On("GetByID", mock.Anything, tenantID, week.ID).Return(week, nil)

	text := "Monday: calm shift, no incidents\nTuesday: two visitor escorts\nSummary: quiet week overall"
	preview, err := svc.PreviewBulkImport(context.Background(), tenantID, week.ID, text)

	assert.NoError(t, err)
	assert.True(t, preview.Valid)
	assert.Len(t, preview.Reports, 2)
	assert.Equal(t, domain.Monday, preview.Reports[0].Day)
	assert.Equal(t, domain.Tuesday, preview.Reports[1].Day)
	assert.Equal(t, "quiet week overall", preview.Summary)

	dailyRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	weekRepo.AssertNotCalled(t, "UpdateSummary", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportService_PreviewBulkImport_WeekNotFound(t *testing.T) {
	weekRepo := new(mocks.MockWeekRepo)
	dailyRepo := new(mocks.MockDailyReportRepo)
	svc := service.NewReportService(weekRepo, dailyRepo)

	tenantID := uuid.New()
	weekID := uuid.New()
	weekRepo.On("GetByID", mock.Anything, tenantID, weekID).Return(nil, domain.ErrWeekNotFound)

	_, err := svc.PreviewBulkImport(context.Background(), tenantID, weekID, "Monday: fine")

	assert.ErrorIs(t, err, domain.ErrWeekNotFound)
}

func TestReportService_ApplyBulkImport(t *testing.T) {
	weekRepo := new(mocks.MockWeekRepo)
	dailyRepo := new(mocks.MockDailyReportRepo)
	svc := service.NewReportService(weekRepo, dailyRepo)

	tenantID := uuid.New()
	userID := uuid.New()
	week := testWeek(tenantID)
	weekRepo.On("GetByID", mock.Anything, tenantID, week.ID).Return(week, nil)

	var written []*domain.DailyReport
	dailyRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.DailyReport")).
		Run(func(args mock.Arguments) {
			written = append(written, args.Get(1).(*domain.DailyReport))
		}).
		Return(nil)
	weekRepo.On("UpdateSummary", mock.Anything, tenantID, week.ID, "no open findings").Return(nil)

	text := "Monday: swept lot B\n" +
		"Tuesday: reviewed camera footage\nfollowed up on alarm 114\n" +
		"Weekly Summary: no open findings"
	result, err := svc.ApplyBulkImport(context.Background(), tenantID, week.ID, userID, text)

	assert.NoError(t, err)
	assert.Equal(t, 2, result.AppliedCount)
	assert.True(t, result.SummaryApplied)

	assert.Len(t, written, 2)
	assert.Equal(t, domain.Monday, written[0].Day)
	assert.Equal(t, week.WeekStart, written[0].ReportDate)
	assert.Equal(t, domain.Tuesday, written[1].Day)
	assert.Equal(t, week.WeekStart.AddDate(0, 0, 1), written[1].ReportDate)
	assert.Equal(t, "reviewed camera footage\nfollowed up on alarm 114", written[1].Content)
	assert.Equal(t, 8, written[1].WordCount)
	weekRepo.AssertExpectations(t)
	dailyRepo.AssertExpectations(t)
}

func TestReportService_ApplyBulkImport_DuplicateDayAppliedInOrder(t *testing.T) {
	weekRepo := new(mocks.MockWeekRepo)
	dailyRepo := new(mocks.MockDailyReportRepo)
	svc := service.NewReportService(weekRepo, dailyRepo)

	tenantID := uuid.New()
	week := testWeek(tenantID)
	weekRepo.On("GetByID", mock.Anything, tenantID, week.ID).Return(week, nil)

	var contents []string
	dailyRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.DailyReport")).
		Run(func(args mock.Arguments) {
			contents = append(contents, args.Get(1).(*domain.DailyReport).Content)
		}).
		Return(nil)

	text := "Monday: first entry\nMonday: corrected entry"
	result, err := svc.ApplyBulkImport(context.Background(), tenantID, week.ID, uuid.New(), text)

	assert.NoError(t, err)
	assert.Equal(t, 2, result.AppliedCount)
	// The later record is upserted last, so it is the one that sticks.
	assert.Equal(t, []string{"first entry", "corrected entry"}, contents)
}

func TestReportService_ApplyBulkImport_SummaryOnly(t *testing.T) {
	weekRepo := new(mocks.MockWeekRepo)
	dailyRepo := new(mocks.MockDailyReportRepo)
	svc := service.NewReportService(weekRepo, dailyRepo)

	tenantID := uuid.New()
	week := testWeek(tenantID)
	weekRepo.On("GetByID", mock.Anything, tenantID, week.ID).Return(week, nil)
	weekRepo.On("UpdateSummary", mock.Anything, tenantID, week.ID, "all posts covered").Return(nil)

	result, err := svc.ApplyBulkImport(context.Background(), tenantID, week.ID, uuid.New(), "Summary: all posts covered")

	assert.NoError(t, err)
	assert.Equal(t, 0, result.AppliedCount)
	assert.True(t, result.SummaryApplied)
	dailyRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	weekRepo.AssertExpectations(t)
}

func TestReportService_ApplyBulkImport_NothingToApply(t *testing.T) {
	weekRepo := new(mocks.MockWeekRepo)
	dailyRepo := new(mocks.MockDailyReportRepo)
	svc := service.NewReportService(weekRepo, dailyRepo)

	tenantID := uuid.New()
	week := testWeek(tenantID)
	weekRepo.On("GetByID", mock.Anything, tenantID, week.ID).Return(week, nil)

	_, err := svc.ApplyBulkImport(context.Background(), tenantID, week.ID, uuid.New(), "just some loose text\nwith no day markers")

	assert.ErrorIs(t, err, domain.ErrBulkNothingToApply)
	dailyRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestReportService_UpdateWeek_PartialFields(t *testing.T) {
	weekRepo := new(mocks.MockWeekRepo)
	dailyRepo := new(mocks.MockDailyReportRepo)
	svc := service.NewReportService(weekRepo, dailyRepo)

	tenantID := uuid.New()
	week := testWeek(tenantID)
	weekRepo.On("GetByID", mock.Anything, tenantID, week.ID).Return(week, nil)
	weekRepo.On("Update", mock.Anything, week).Return(nil)

	status := domain.WeekStatusFinished
	updated, err := svc.UpdateWeek(context.Background(), tenantID, week.ID, service.UpdateWeekInput{
		Status: &status,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.WeekStatusFinished, updated.Status)
	assert.Equal(t, "Perimeter East", updated.SiteName)
	weekRepo.AssertExpectations(t)
}

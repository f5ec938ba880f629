package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sentrydesk/internal/domain"
	"sentrydesk/internal/handler"
	"sentrydesk/internal/middleware"
	"sentrydesk/internal/service"
	"sentrydesk/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setAuthContext(c *gin.Context, tenantID, userID uuid.UUID, role string) {
	c.Set(middleware.ContextKeyTenantID, tenantID)
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyRole, role)
}

func newWeekHandler() (*handler.WeekHandler, *mocks.MockReportService) {
	mockSvc := new(mocks.MockReportService)
	h := handler.NewWeekHandler(mockSvc)
	return h, mockSvc
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	raw, _ := json.Marshal(body)
	req, _ := http.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestWeekHandler_CreateWeek_Success(t *testing.T) {
	h, mockSvc := newWeekHandler()

	tenantID := uuid.New()
	userID := uuid.New()
	week := &domain.ReportWeek{
		ID:        uuid.New(),
		TenantID:  tenantID,
		SiteName:  "Perimeter East",
		WeekStart: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		Status:    domain.WeekStatusOpen,
	}

	mockSvc.On("CreateWeek", mock.Anything, tenantID, userID, mock.AnythingOfType("service.CreateWeekInput")).
		Return(week, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/weeks", gin.H{
		"site_name":  "Perimeter East",
		"week_start": "2026-08-24",
	})
	setAuthContext(c, tenantID, userID, "member")

	h.CreateWeek(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestWeekHandler_CreateWeek_MissingBody(t *testing.T) {
	h, mockSvc := newWeekHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/weeks", gin.H{"site_name": "Perimeter East"})
	setAuthContext(c, uuid.New(), uuid.New(), "member")

	h.CreateWeek(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "CreateWeek", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWeekHandler_CreateWeek_NoAuthContext(t *testing.T) {
	h, mockSvc := newWeekHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/weeks", gin.H{
		"site_name":  "Perimeter East",
		"week_start": "2026-08-24",
	})

	h.CreateWeek(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockSvc.AssertNotCalled(t, "CreateWeek", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWeekHandler_GetWeek_NotFound(t *testing.T) {
	h, mockSvc := newWeekHandler()

	tenantID := uuid.New()
	weekID := uuid.New()
	mockSvc.On("GetWeek", mock.Anything, tenantID, weekID).Return(nil, domain.ErrWeekNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/weeks/"+weekID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: weekID.String()}}
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.GetWeek(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "WEEK_NOT_FOUND", resp.Error.Code)
}

func TestWeekHandler_GetWeek_BadID(t *testing.T) {
	h, mockSvc := newWeekHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/weeks/not-a-uuid", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
	setAuthContext(c, uuid.New(), uuid.New(), "member")

	h.GetWeek(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "GetWeek", mock.Anything, mock.Anything, mock.Anything)
}

func TestWeekHandler_UpsertReport_InvalidDay(t *testing.T) {
	h, mockSvc := newWeekHandler()

	weekID := uuid.New()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPut, "/api/v1/weeks/"+weekID.String()+"/reports/Funday", gin.H{
		"content": "nothing to report",
	})
	c.Params = gin.Params{
		{Key: "id", Value: weekID.String()},
		{Key: "day", Value: "Funday"},
	}
	setAuthContext(c, uuid.New(), uuid.New(), "member")

	h.UpsertReport(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_WEEKDAY", resp.Error.Code)
	mockSvc.AssertNotCalled(t, "UpsertReport",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWeekHandler_PreviewBulkImport_Success(t *testing.T) {
	h, mockSvc := newWeekHandler()

	tenantID := uuid.New()
	weekID := uuid.New()
	mockSvc.On("PreviewBulkImport", mock.Anything, tenantID, weekID, "Monday: fine\nTuesday: fine").
		Return(&service.BulkPreview{Valid: true, Summary: "calm week"}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/weeks/"+weekID.String()+"/bulk/preview", gin.H{
		"text": "Monday: fine\nTuesday: fine",
	})
	c.Params = gin.Params{{Key: "id", Value: weekID.String()}}
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.PreviewBulkImport(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestWeekHandler_ApplyBulkImport_NothingToApply(t *testing.T) {
	h, mockSvc := newWeekHandler()

	tenantID := uuid.New()
	userID := uuid.New()
	weekID := uuid.New()
	mockSvc.On("ApplyBulkImport", mock.Anything, tenantID, weekID, userID, "loose text").
		Return(nil, domain.ErrBulkNothingToApply)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/weeks/"+weekID.String()+"/bulk/apply", gin.H{
		"text": "loose text",
	})
	c.Params = gin.Params{{Key: "id", Value: weekID.String()}}
	setAuthContext(c, tenantID, userID, "member")

	h.ApplyBulkImport(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "BULK_NOTHING_TO_APPLY", resp.Error.Code)
}

func TestWeekHandler_ListWeeks_ClampsLimit(t *testing.T) {
	h, mockSvc := newWeekHandler()

	tenantID := uuid.New()
	mockSvc.On("ListWeeks", mock.Anything, tenantID, 0, 20).Return([]domain.ReportWeek{}, 0, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/weeks?limit=5000", http.NoBody)
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.ListWeeks(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Meta)
	assert.Equal(t, 20, resp.Meta.Limit)
	mockSvc.AssertExpectations(t)
}

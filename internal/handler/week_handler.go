package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sentrydesk/internal/domain"
	"sentrydesk/internal/service"
)

// WeekHandler handles report week and daily report endpoints.
type WeekHandler struct {
	reportService service.ReportService
}

// NewWeekHandler creates a new WeekHandler.
func NewWeekHandler(reportService service.ReportService) *WeekHandler {
	return &WeekHandler{reportService: reportService}
}

// CreateWeek handles POST /api/v1/weeks
func (h *WeekHandler) CreateWeek(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateWeekInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	week, err := h.reportService.CreateWeek(c.Request.Context(), tenantID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, week)
}

// ListWeeks handles GET /api/v1/weeks
func (h *WeekHandler) ListWeeks(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	weeks, total, err := h.reportService.ListWeeks(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, weeks, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetWeek handles GET /api/v1/weeks/:id
func (h *WeekHandler) GetWeek(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	weekID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid week id")
		return
	}

	week, err := h.reportService.GetWeek(c.Request.Context(), tenantID, weekID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, week)
}

// UpdateWeek handles PUT /api/v1/weeks/:id
func (h *WeekHandler) UpdateWeek(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	weekID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid week id")
		return
	}

	var input service.UpdateWeekInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	week, err := h.reportService.UpdateWeek(c.Request.Context(), tenantID, weekID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, week)
}

// DeleteWeek handles DELETE /api/v1/weeks/:id
func (h *WeekHandler) DeleteWeek(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	weekID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid week id")
		return
	}

	if err := h.reportService.DeleteWeek(c.Request.Context(), tenantID, weekID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}

// ListReports handles GET /api/v1/weeks/:id/reports
func (h *WeekHandler) ListReports(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	weekID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid week id")
		return
	}

	reports, err := h.reportService.ListReports(c.Request.Context(), tenantID, weekID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, reports)
}

// UpsertReport handles PUT /api/v1/weeks/:id/reports/:day
func (h *WeekHandler) UpsertReport(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	weekID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid week id")
		return
	}
	day, ok := domain.ParseWeekday(c.Param("day"))
	if !ok {
		HandleError(c, domain.ErrInvalidWeekday)
		return
	}

	var input service.UpsertReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	report, err := h.reportService.UpsertReport(c.Request.Context(), tenantID, weekID, userID, day, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}

// SubmitReport handles POST /api/v1/weeks/:id/reports/:day/submit
func (h *WeekHandler) SubmitReport(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	weekID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid week id")
		return
	}
	day, ok := domain.ParseWeekday(c.Param("day"))
	if !ok {
		HandleError(c, domain.ErrInvalidWeekday)
		return
	}

	report, err := h.reportService.SubmitReport(c.Request.Context(), tenantID, weekID, day)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}

// PreviewBulkImport handles POST /api/v1/weeks/:id/bulk/preview
func (h *WeekHandler) PreviewBulkImport(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	weekID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid week id")
		return
	}

	var input service.BulkImportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	preview, err := h.reportService.PreviewBulkImport(c.Request.Context(), tenantID, weekID, input.Text)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, preview)
}

// ApplyBulkImport handles POST /api/v1/weeks/:id/bulk/apply
func (h *WeekHandler) ApplyBulkImport(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	weekID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid week id")
		return
	}

	var input service.BulkImportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.reportService.ApplyBulkImport(c.Request.Context(), tenantID, weekID, userID, input.Text)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

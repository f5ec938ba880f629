package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"sentrydesk/internal/domain"
	"sentrydesk/internal/service"
)

// StatsHandler handles analytics hub endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// parseStatsFilters extracts common filter query parameters.
func parseStatsFilters(c *gin.Context) *domain.StatsFilters {
	filters := &domain.StatsFilters{
		Granularity: c.DefaultQuery("granularity", "weekly"),
	}

	if fromStr := c.Query("from"); fromStr != "" {
		if t, err := time.Parse("2006-01-02", fromStr); err == nil {
			filters.From = &t
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if t, err := time.Parse("2006-01-02", toStr); err == nil {
			filters.To = &t
		}
	}

	filters.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	filters.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	return filters
}

// Overview handles GET /api/v1/stats/overview
func (h *StatsHandler) Overview(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	stats, err := h.statsService.Overview(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}

// ActivityTrend handles GET /api/v1/stats/activity
func (h *StatsHandler) ActivityTrend(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	rows, err := h.statsService.ActivityTrend(c.Request.Context(), tenantID, parseStatsFilters(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// WeekdayBreakdown handles GET /api/v1/stats/weekdays
func (h *StatsHandler) WeekdayBreakdown(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	rows, err := h.statsService.WeekdayBreakdown(c.Request.Context(), tenantID, parseStatsFilters(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// TopContributors handles GET /api/v1/stats/contributors
func (h *StatsHandler) TopContributors(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	filters := parseStatsFilters(c)
	rows, total, err := h.statsService.TopContributors(c.Request.Context(), tenantID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, rows, PagMeta{Total: total, Offset: filters.Offset, Limit: filters.Limit})
}

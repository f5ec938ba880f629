package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sentrydesk/internal/service"
)

// ThemeHandler handles theme preset endpoints.
type ThemeHandler struct {
	themeService service.ThemeService
}

// NewThemeHandler creates a new ThemeHandler.
func NewThemeHandler(themeService service.ThemeService) *ThemeHandler {
	return &ThemeHandler{themeService: themeService}
}

// Create handles POST /api/v1/themes
func (h *ThemeHandler) Create(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateThemeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	theme, err := h.themeService.Create(c.Request.Context(), tenantID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, theme)
}

// List handles GET /api/v1/themes
func (h *ThemeHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	themes, err := h.themeService.List(c.Request.Context(), tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, themes)
}

// Get handles GET /api/v1/themes/:id
func (h *ThemeHandler) Get(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	themeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid theme id")
		return
	}

	theme, err := h.themeService.Get(c.Request.Context(), tenantID, themeID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, theme)
}

// Update handles PUT /api/v1/themes/:id
func (h *ThemeHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	themeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid theme id")
		return
	}

	var input service.UpdateThemeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	theme, err := h.themeService.Update(c.Request.Context(), tenantID, themeID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, theme)
}

// SetDefault handles POST /api/v1/themes/:id/default
func (h *ThemeHandler) SetDefault(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	themeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid theme id")
		return
	}

	if err := h.themeService.SetDefault(c.Request.Context(), tenantID, themeID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"default": true})
}

// Delete handles DELETE /api/v1/themes/:id
func (h *ThemeHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	themeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid theme id")
		return
	}

	if err := h.themeService.Delete(c.Request.Context(), tenantID, themeID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}

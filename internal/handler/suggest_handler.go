package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sentrydesk/internal/service"
)

// SuggestHandler handles writing suggestion endpoints.
type SuggestHandler struct {
	suggestionService service.SuggestionService
}

// NewSuggestHandler creates a new SuggestHandler.
func NewSuggestHandler(suggestionService service.SuggestionService) *SuggestHandler {
	return &SuggestHandler{suggestionService: suggestionService}
}

// Analyze handles POST /api/v1/suggestions/analyze
func (h *SuggestHandler) Analyze(c *gin.Context) {
	if _, _, _, ok := extractAuthContext(c); !ok {
		return
	}

	var input service.AnalyzeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	analysis, err := h.suggestionService.Analyze(c.Request.Context(), input.Content)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, analysis)
}

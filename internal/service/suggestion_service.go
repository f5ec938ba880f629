package service

import (
	"context"

	"sentrydesk/internal/suggest"
)

// AnalyzeInput is the DTO for suggestion analysis requests.
type AnalyzeInput struct {
	Content string `json:"content" binding:"required"`
}

// SuggestionService runs the writing suggestion engine over report content.
type SuggestionService interface {
	Analyze(ctx context.Context, content string) (*suggest.Analysis, error)
}

type suggestionService struct {
	engine *suggest.Engine
}

// NewSuggestionService creates a SuggestionService backed by the given engine.
func NewSuggestionService(engine *suggest.Engine) SuggestionService {
	return &suggestionService{engine: engine}
}

func (s *suggestionService) Analyze(_ context.Context, content string) (*suggest.Analysis, error) {
	return s.engine.Analyze(content), nil
}

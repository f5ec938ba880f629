package suggest

import (
	"log"
	"strings"
)

// Analysis is the result of running every registered rule against one
// report's content.
type Analysis struct {
	Suggestions []Suggestion `json:"suggestions"`
	WordCount   int          `json:"word_count"`
	Score       int          `json:"score"`
}

// Engine runs registered rules against report content.
type Engine struct {
	registry *Registry
}

// NewEngine creates an engine over the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// NewDefaultEngine creates an engine with all built-in rules registered.
func NewDefaultEngine() *Engine {
	reg := NewRegistry()
	for _, r := range AllBuiltinRules() {
		reg.Register(r)
	}
	return NewEngine(reg)
}

// Analyze evaluates all rules against content and computes a quality score.
// The score starts at 100 and loses 10 per warning and 5 per info finding;
// empty content scores zero.
func (e *Engine) Analyze(content string) *Analysis {
	analysis := &Analysis{
		Suggestions: []Suggestion{},
		WordCount:   len(strings.Fields(content)),
	}

	if strings.TrimSpace(content) == "" {
		return analysis
	}

	for _, rule := range e.registry.All() {
		analysis.Suggestions = append(analysis.Suggestions, rule.Evaluate(content)...)
	}

	score := 100
	for _, s := range analysis.Suggestions {
		switch s.Severity {
		case SeverityWarning:
			score -= 10
		default:
			score -= 5
		}
	}
	if score < 0 {
		score = 0
	}
	analysis.Score = score

	log.Printf("suggest.Engine: analyzed %d words, %d suggestion(s), score=%d",
		analysis.WordCount, len(analysis.Suggestions), analysis.Score)
	return analysis
}

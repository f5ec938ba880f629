// Package suggest implements the report writing assistant: pattern-matching
// over static regex rule tables that produces improvement suggestions for
// daily report text. There is no model behind it; rules are deterministic and
// individually testable.
package suggest

// Category groups suggestions by the aspect of the report they address.
type Category string

const (
	CategoryClarity     Category = "clarity"
	CategoryDetail      Category = "detail"
	CategoryTerminology Category = "terminology"
	CategoryTime        Category = "time"
)

// Severity indicates how strongly a suggestion should be surfaced.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Suggestion is a single finding against a report's content.
type Suggestion struct {
	RuleKey     string   `json:"rule_key"`
	Category    Category `json:"category"`
	Severity    Severity `json:"severity"`
	Matched     string   `json:"matched,omitempty"`
	Message     string   `json:"message"`
	Replacement string   `json:"replacement,omitempty"`
}

// Rule is the interface for a single built-in suggestion rule.
type Rule interface {
	RuleKey() string
	RuleName() string
	Category() Category
	Severity() Severity
	Evaluate(content string) []Suggestion
}

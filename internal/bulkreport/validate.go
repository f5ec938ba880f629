package bulkreport

import "strings"

// CheckResult reports advisory pre-validation findings for a bulk paste.
// Errors mean parsing would produce nothing useful; warnings are
// non-blocking. Callers may still invoke Parse either way.
type CheckResult struct {
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// OK reports whether the text passed every blocking check.
func (r *CheckResult) OK() bool { return len(r.Errors) == 0 }

const (
	minTextLength = 10
	minLineCount  = 3
)

// Validate inspects raw bulk text without parsing or mutating anything.
func Validate(text string) *CheckResult {
	res := &CheckResult{}

	if len(strings.TrimSpace(text)) < minTextLength {
		res.Errors = append(res.Errors, "report text is empty or too short")
		return res
	}

	lines := nonEmptyLines(text)

	found := false
	for _, line := range lines {
		if _, _, ok := matchDayMarker(line); ok {
			found = true
			break
		}
	}
	if !found {
		res.Errors = append(res.Errors, "no day markers (Monday through Sunday) found in text")
	}

	if len(lines) < minLineCount {
		res.Warnings = append(res.Warnings, "fewer than 3 non-empty lines; results may be incomplete")
	}

	return res
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			out = append(out, line)
		}
	}
	return out
}

package suggest

import (
	"fmt"
	"regexp"
	"strings"
)

// maxHitsPerRule caps how many suggestions a single pattern rule emits for
// one report, so a sloppy report does not flood the UI.
const maxHitsPerRule = 3

// patternRule flags occurrences of a regex and optionally proposes a
// replacement phrase.
type patternRule struct {
	key         string
	name        string
	category    Category
	severity    Severity
	re          *regexp.Regexp
	message     string
	replacement string
}

func (r *patternRule) RuleKey() string    { return r.key }
func (r *patternRule) RuleName() string   { return r.name }
func (r *patternRule) Category() Category { return r.category }
func (r *patternRule) Severity() Severity { return r.severity }

func (r *patternRule) Evaluate(content string) []Suggestion {
	matches := r.re.FindAllString(content, maxHitsPerRule)
	out := make([]Suggestion, 0, len(matches))
	for _, m := range matches {
		out = append(out, Suggestion{
			RuleKey:     r.key,
			Category:    r.category,
			Severity:    r.severity,
			Matched:     m,
			Message:     fmt.Sprintf("%s: %q", r.message, m),
			Replacement: r.replacement,
		})
	}
	return out
}

// predicateRule emits a single suggestion when its check fails for the whole
// report.
type predicateRule struct {
	key      string
	name     string
	category Category
	severity Severity
	message  string
	ok       func(content string) bool
}

func (r *predicateRule) RuleKey() string    { return r.key }
func (r *predicateRule) RuleName() string   { return r.name }
func (r *predicateRule) Category() Category { return r.category }
func (r *predicateRule) Severity() Severity { return r.severity }

func (r *predicateRule) Evaluate(content string) []Suggestion {
	if r.ok(content) {
		return nil
	}
	return []Suggestion{{
		RuleKey:  r.key,
		Category: r.category,
		Severity: r.severity,
		Message:  r.message,
	}}
}

var (
	vaguePattern     = regexp.MustCompile(`(?i)\b(stuff|things|something|somehow|whatever|etc\.?)\b`)
	informalPersons  = regexp.MustCompile(`(?i)\b(guy|guys|dude|some kid|kids)\b`)
	informalPolice   = regexp.MustCompile(`(?i)\b(cops|the police showed up)\b`)
	informalEntry    = regexp.MustCompile(`(?i)\b(broke in|break.?in|busted in)\b`)
	informalRemoval  = regexp.MustCompile(`(?i)\b(kicked (him |her |them )?out|threw (him |her |them )?out)\b`)
	allClearFiller   = regexp.MustCompile(`(?i)\b(nothing happened|all good|no issues|pretty quiet|uneventful night)\b`)
	clockTimePattern = regexp.MustCompile(`(?i)(\b\d{1,2}:\d{2}\b|\b\d{3,4}\s*(hours|hrs)\b|\b\d{1,2}\s*(am|pm)\b)`)
)

const minDetailWords = 10

// AllBuiltinRules returns every built-in suggestion rule in evaluation order.
func AllBuiltinRules() []Rule {
	return []Rule{
		&patternRule{
			key:      "clarity.vague_language",
			name:     "Vague language",
			category: CategoryClarity,
			severity: SeverityWarning,
			re:       vaguePattern,
			message:  "Replace vague wording with specifics",
		},
		&patternRule{
			key:         "terminology.informal_person",
			name:        "Informal reference to a person",
			category:    CategoryTerminology,
			severity:    SeverityInfo,
			re:          informalPersons,
			message:     "Use formal terminology for persons",
			replacement: "individual(s)",
		},
		&patternRule{
			key:         "terminology.informal_police",
			name:        "Informal reference to law enforcement",
			category:    CategoryTerminology,
			severity:    SeverityInfo,
			re:          informalPolice,
			message:     "Use formal terminology for law enforcement",
			replacement: "law enforcement responded",
		},
		&patternRule{
			key:         "terminology.informal_entry",
			name:        "Informal description of unauthorized entry",
			category:    CategoryTerminology,
			severity:    SeverityWarning,
			re:          informalEntry,
			message:     "Describe entry incidents formally",
			replacement: "gained unauthorized entry",
		},
		&patternRule{
			key:         "terminology.informal_removal",
			name:        "Informal description of removal",
			category:    CategoryTerminology,
			severity:    SeverityInfo,
			re:          informalRemoval,
			message:     "Describe removals formally",
			replacement: "escorted off the premises",
		},
		&patternRule{
			key:         "clarity.all_clear_filler",
			name:        "All-clear filler phrase",
			category:    CategoryClarity,
			severity:    SeverityInfo,
			re:          allClearFiller,
			message:     "Prefer the standard all-clear phrasing",
			replacement: "No reportable incidents observed during the shift.",
		},
		&predicateRule{
			key:      "time.missing_timestamps",
			name:     "Missing timestamps",
			category: CategoryTime,
			severity: SeverityWarning,
			message:  "No specific times found; note when rounds, checks, and incidents occurred",
			ok: func(content string) bool {
				return clockTimePattern.MatchString(content)
			},
		},
		&predicateRule{
			key:      "detail.too_short",
			name:     "Report too short",
			category: CategoryDetail,
			severity: SeverityWarning,
			message:  "Report is very short; describe patrols, access control, and observations",
			ok: func(content string) bool {
				return len(strings.Fields(content)) >= minDetailWords
			},
		},
	}
}

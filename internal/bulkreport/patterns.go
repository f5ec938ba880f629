package bulkreport

import (
	"regexp"

	"sentrydesk/internal/domain"
)

const weekdayAlt = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`

// summaryMarkers are tried in order against each trimmed line. The first
// match switches the scan into summary mode; the remainder of the line after
// the marker seeds the summary text. Order matters: longer labels first so
// "Weekly Summary:" is not consumed by the bare "Summary" pattern.
var summaryMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^weekly\s+summary\s*[:\-]?\s*`),
	regexp.MustCompile(`(?i)^summary\s*[:\-]?\s*`),
	regexp.MustCompile(`(?i)^conclusion\s*[:\-]?\s*`),
	regexp.MustCompile(`(?i)^overall\s*[:\-]?\s*`),
	regexp.MustCompile(`(?i)^notes\s*[:\-]?\s*`),
}

// dayMarkers are tried in order against each trimmed line. Submatch 1 is the
// weekday name; everything after the full match is same-line content for the
// new day. Labeled and numbered forms come before the bare weekday so their
// prefixes are stripped.
var dayMarkers = []*regexp.Regexp{
	// "Day 3 - Wednesday", "Day: Monday"
	regexp.MustCompile(`(?i)^day\s*\d*\s*[-:.)]?\s*(` + weekdayAlt + `)\b[\s:.\-)]*`),
	// "1. Monday", "2) Tuesday -"
	regexp.MustCompile(`(?i)^\d+\s*[-:.)]\s*(` + weekdayAlt + `)\b[\s:.\-)]*`),
	// "Monday:", "**Tuesday**", "- Wednesday"
	regexp.MustCompile(`(?i)^[\s*#>\-]*(` + weekdayAlt + `)\b[\s:.\-*]*`),
}

// matchSummaryMarker returns the text after the marker prefix when the line
// opens a summary section.
func matchSummaryMarker(line string) (rest string, ok bool) {
	for _, re := range summaryMarkers {
		if loc := re.FindStringIndex(line); loc != nil {
			return line[loc[1]:], true
		}
	}
	return "", false
}

// matchDayMarker returns the canonical weekday and the same-line remainder
// when the line starts a new day section.
func matchDayMarker(line string) (day domain.Weekday, rest string, ok bool) {
	for _, re := range dayMarkers {
		loc := re.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}
		day, ok = domain.ParseWeekday(line[loc[2]:loc[3]])
		if !ok {
			continue
		}
		return day, line[loc[1]:], true
	}
	return "", "", false
}

// Package bulkreport splits freeform pasted weekly report text into per-day
// report records plus an optional trailing summary. The parser is a
// single-pass line segmenter driven by ordered regex pattern tables; it never
// fails on malformed input, degrading to an empty result.
package bulkreport

import (
	"log"
	"strings"

	"sentrydesk/internal/domain"
)

// ParsedReport is one day's report split out of a bulk paste.
type ParsedReport struct {
	Day     domain.Weekday `json:"day"`
	Content string         `json:"content"`
}

// Result holds the output of one parsing pass. Summary is empty when no
// summary marker was seen. Orphaned counts content lines dropped because no
// day marker had opened a section yet.
type Result struct {
	Reports  []ParsedReport `json:"reports"`
	Summary  string         `json:"summary,omitempty"`
	Orphaned int            `json:"orphaned"`
}

// scanMode tags the parser state. The scanning -> inSummary transition is
// terminal: once a summary marker is seen, day markers are absorbed as
// summary content.
type scanMode int

const (
	modeScanning scanMode = iota
	modeInSummary
)

// Same-line content shorter than this after trimming is treated as trailing
// marker punctuation and dropped.
const minInlineContentLen = 3

// Parse segments text into per-day reports and an optional summary. Lines are
// processed in order with no backtracking; a day's buffered lines are flushed
// when the next day marker, a summary marker, or end of input is reached.
// Flushing an empty buffer produces no record, and repeated day names are
// kept as separate records in encounter order.
func Parse(text string) *Result {
	res := &Result{}

	mode := modeScanning
	var currentDay domain.Weekday
	dayOpen := false
	var buf []string
	var summary []string

	flush := func() {
		if dayOpen && len(buf) > 0 {
			res.Reports = append(res.Reports, ParsedReport{
				Day:     currentDay,
				Content: strings.Join(buf, "\n"),
			})
		}
		buf = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if mode == modeInSummary {
			summary = append(summary, line)
			continue
		}

		if rest, ok := matchSummaryMarker(line); ok {
			flush()
			mode = modeInSummary
			if rest = strings.TrimSpace(rest); rest != "" {
				summary = append(summary, rest)
			}
			continue
		}

		if day, rest, ok := matchDayMarker(line); ok {
			flush()
			currentDay = day
			dayOpen = true
			if rest = strings.TrimSpace(rest); len(rest) >= minInlineContentLen {
				buf = append(buf, rest)
			}
			continue
		}

		if dayOpen {
			buf = append(buf, line)
		} else {
			res.Orphaned++
		}
	}
	flush()

	res.Summary = strings.TrimSpace(strings.Join(summary, "\n"))

	if res.Orphaned > 0 {
		log.Printf("bulkreport.Parse: dropped %d orphaned line(s) preceding the first day marker", res.Orphaned)
	}
	return res
}

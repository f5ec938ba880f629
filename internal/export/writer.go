package export

import (
	"encoding/csv"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"sentrydesk/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Day",
	"Date",
	"Status",
	"Word Count",
	"Content",
	"Submitted At",
}

// Writer wraps csv.Writer for exporting a week of daily reports as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteReports converts daily reports to CSV rows and writes them in weekday
// order.
func (w *Writer) WriteReports(reports []domain.DailyReport) error {
	for _, day := range domain.Weekdays {
		for i := range reports {
			if reports[i].Day != day {
				continue
			}
			if err := w.csv.Write(reportToRow(&reports[i])); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteSummary appends the week's trailing summary as a final row, if any.
func (w *Writer) WriteSummary(summary string) error {
	if strings.TrimSpace(summary) == "" {
		return nil
	}
	return w.csv.Write([]string{"Summary", "", "", "", summary, ""})
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func reportToRow(r *domain.DailyReport) []string {
	return []string{
		string(r.Day),
		r.ReportDate.Format("2006-01-02"),
		string(r.Status),
		strconv.Itoa(r.WordCount),
		r.Content,
		formatTime(r.SubmittedAt),
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a site name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized download filename for a week export.
// Format: {sanitized_site_name}_{week_start}.{ext}
func BuildFilename(siteName string, weekStart time.Time, ext string) string {
	base := SanitizeFilename(siteName)
	if base == "" {
		base = "weekly_report"
	}
	return base + "_" + weekStart.Format("2006-01-02") + "." + ext
}

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sentrydesk/internal/bulkreport"
	"sentrydesk/internal/domain"
	"sentrydesk/internal/export"
)

func newExportCommand() *cobra.Command {
	var (
		format    string
		siteName  string
		weekStart string
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "export <report-file>",
		Short: "Convert a bulk report file to CSV or XLSX on disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "csv" && format != "xlsx" {
				return fmt.Errorf("invalid format %q; allowed: csv, xlsx", format)
			}

			start, err := time.Parse("2006-01-02", weekStart)
			if err != nil {
				return fmt.Errorf("invalid --week-start: %w", err)
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading report file: %w", err)
			}

			result := bulkreport.Parse(string(data))
			if len(result.Reports) == 0 && result.Summary == "" {
				return fmt.Errorf("no day records or summary parsed from %s", args[0])
			}

			week := &domain.ReportWeek{
				SiteName:  siteName,
				WeekStart: start,
				Summary:   result.Summary,
			}
			reports := make([]domain.DailyReport, 0, len(result.Reports))
			for _, parsed := range result.Reports {
				reports = append(reports, domain.DailyReport{
					Day:        parsed.Day,
					ReportDate: start.AddDate(0, 0, parsed.Day.Offset()),
					Content:    parsed.Content,
					WordCount:  len(strings.Fields(parsed.Content)),
					Status:     domain.ReportStatusDraft,
				})
			}

			if outPath == "" {
				outPath = export.BuildFilename(siteName, start, format)
			}

			if format == "csv" {
				if err := writeCSV(outPath, week, reports); err != nil {
					return err
				}
			} else {
				workbook, err := export.BuildWorkbook(week, reports, nil)
				if err != nil {
					return fmt.Errorf("building workbook: %w", err)
				}
				if err := workbook.SaveAs(outPath); err != nil {
					return fmt.Errorf("writing workbook: %w", err)
				}
			}

			fmt.Printf("Wrote %d day record(s) to %s\n", len(reports), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv or xlsx")
	cmd.Flags().StringVar(&siteName, "site", "site", "site name for the export header")
	cmd.Flags().StringVar(&weekStart, "week-start", time.Now().Format("2006-01-02"), "week start date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file path (defaults to a sanitized name)")
	return cmd
}

func writeCSV(path string, week *domain.ReportWeek, reports []domain.DailyReport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(export.BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	w := export.NewWriter(f)
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	if err := w.WriteReports(reports); err != nil {
		return fmt.Errorf("writing csv rows: %w", err)
	}
	if err := w.WriteSummary(week.Summary); err != nil {
		return fmt.Errorf("writing csv summary: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"sentrydesk/internal/domain"
)

const sheetName = "Weekly Report"

// BuildWorkbook renders a week of daily reports as an XLSX workbook: a title
// row, one row per weekday (blank content for days without a report), and the
// trailing summary. Theme colors drive the header fill when a preset is set.
func BuildWorkbook(week *domain.ReportWeek, reports []domain.DailyReport, theme *domain.ThemePreset) (*excelize.File, error) {
	f := excelize.NewFile()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}

	headerFill := "#1F2937"
	if theme != nil && theme.PrimaryColor != "" {
		headerFill = theme.PrimaryColor
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
	})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	title := fmt.Sprintf("%s - week of %s", week.SiteName, week.WeekStart.Format("2006-01-02"))
	if err := f.SetCellValue(sheetName, "A1", title); err != nil {
		return nil, err
	}

	headers := []string{"Day", "Date", "Status", "Word Count", "Content"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(sheetName, "A2", "E2", headerStyle); err != nil {
		return nil, err
	}

	byDay := make(map[domain.Weekday]*domain.DailyReport, len(reports))
	for i := range reports {
		byDay[reports[i].Day] = &reports[i]
	}

	row := 3
	for _, day := range domain.Weekdays {
		date := week.WeekStart.AddDate(0, 0, day.Offset())
		values := []interface{}{string(day), date.Format("2006-01-02"), "", 0, ""}
		if r, ok := byDay[day]; ok {
			values[2] = string(r.Status)
			values[3] = r.WordCount
			values[4] = r.Content
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
		row++
	}

	if week.Summary != "" {
		cell, _ := excelize.CoordinatesToCellName(1, row+1)
		if err := f.SetCellValue(sheetName, cell, "Summary"); err != nil {
			return nil, err
		}
		cell, _ = excelize.CoordinatesToCellName(5, row+1)
		if err := f.SetCellValue(sheetName, cell, week.Summary); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(sheetName, "A", "D", 14); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "E", "E", 80); err != nil {
		return nil, err
	}

	return f, nil
}

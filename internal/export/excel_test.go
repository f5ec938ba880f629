package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentrydesk/internal/domain"
)

func TestBuildWorkbook(t *testing.T) {
	week := &domain.ReportWeek{
		SiteName:  "Harbor Point Mall",
		WeekStart: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		Summary:   "calm week overall",
	}

	f, err := BuildWorkbook(week, sampleReports(), nil)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Contains(t, title, "Harbor Point Mall")

	// Row 3 is Monday, row 4 Tuesday; all seven weekdays get a row.
	day, err := f.GetCellValue(sheetName, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Monday", day)

	content, err := f.GetCellValue(sheetName, "E4")
	require.NoError(t, err)
	assert.Equal(t, "Gate checks completed at 21:00.", content)

	sunday, err := f.GetCellValue(sheetName, "A9")
	require.NoError(t, err)
	assert.Equal(t, "Sunday", sunday)

	summary, err := f.GetCellValue(sheetName, "E11")
	require.NoError(t, err)
	assert.Equal(t, "calm week overall", summary)
}

func TestBuildWorkbook_ThemeColorsHeader(t *testing.T) {
	week := &domain.ReportWeek{
		SiteName:  "Depot",
		WeekStart: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
	}
	theme := &domain.ThemePreset{PrimaryColor: "#0B3D91"}

	f, err := BuildWorkbook(week, nil, theme)
	require.NoError(t, err)
	defer f.Close()

	styleID, err := f.GetCellStyle(sheetName, "A2")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style)
	assert.Equal(t, "pattern", style.Fill.Type)
	require.NotEmpty(t, style.Fill.Color)
	assert.Contains(t, style.Fill.Color[0], "0B3D91")
}

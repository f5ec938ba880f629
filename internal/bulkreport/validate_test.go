package bulkreport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sentrydesk/internal/bulkreport"
)

func TestValidate_EmptyText(t *testing.T) {
	res := bulkreport.Validate("")
	assert.False(t, res.OK())
	assert.Len(t, res.Errors, 1)
}

func TestValidate_TooShortText(t *testing.T) {
	res := bulkreport.Validate("  hi  ")
	assert.False(t, res.OK())
}

func TestValidate_NoDayMarkers(t *testing.T) {
	res := bulkreport.Validate("plenty of text here\nbut not one marker\nanywhere in sight")
	assert.False(t, res.OK())
	assert.Contains(t, res.Errors[0], "day markers")
}

func TestValidate_FewLinesWarnsOnly(t *testing.T) {
	res := bulkreport.Validate("Monday: patrol done")
	assert.True(t, res.OK())
	assert.Len(t, res.Warnings, 1)
}

func TestValidate_WellFormedText(t *testing.T) {
	res := bulkreport.Validate("Monday\npatrol done\nTuesday\ngate checks done")
	assert.True(t, res.OK())
	assert.Empty(t, res.Warnings)
}

func TestValidate_DayMarkerAnywhereCountsEvenMidText(t *testing.T) {
	res := bulkreport.Validate("preamble line first\nthen Wednesday appears\nWednesday\nreal content")
	assert.True(t, res.OK())
}

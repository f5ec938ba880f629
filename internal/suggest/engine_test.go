package suggest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentrydesk/internal/suggest"
)

func keys(suggestions []suggest.Suggestion) []string {
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, s.RuleKey)
	}
	return out
}

func TestAnalyze_EmptyContent(t *testing.T) {
	a := suggest.NewDefaultEngine().Analyze("   ")
	assert.Empty(t, a.Suggestions)
	assert.Zero(t, a.Score)
	assert.Zero(t, a.WordCount)
}

func TestAnalyze_CleanReportScoresFull(t *testing.T) {
	content := "Started shift at 18:00 and completed three perimeter patrols. " +
		"Checked all access doors at 20:15 and 22:30; every door was secured. " +
		"Logged two vehicles entering through the main gate with valid passes."

	a := suggest.NewDefaultEngine().Analyze(content)
	assert.Empty(t, a.Suggestions)
	assert.Equal(t, 100, a.Score)
}

func TestAnalyze_VagueLanguageFlagged(t *testing.T) {
	content := "Saw some stuff near the loading dock around 21:00 and did things about it afterwards."

	a := suggest.NewDefaultEngine().Analyze(content)
	assert.Contains(t, keys(a.Suggestions), "clarity.vague_language")
	assert.Less(t, a.Score, 100)
}

func TestAnalyze_TerminologyReplacementsProposed(t *testing.T) {
	content := "A guy broke in through the side window at 02:15. We kicked him out and the cops arrived at 02:40 to take statements."

	a := suggest.NewDefaultEngine().Analyze(content)

	got := keys(a.Suggestions)
	assert.Contains(t, got, "terminology.informal_person")
	assert.Contains(t, got, "terminology.informal_entry")
	assert.Contains(t, got, "terminology.informal_removal")
	assert.Contains(t, got, "terminology.informal_police")

	for _, s := range a.Suggestions {
		if s.RuleKey == "terminology.informal_entry" {
			assert.Equal(t, "gained unauthorized entry", s.Replacement)
		}
	}
}

func TestAnalyze_MissingTimestampsWarned(t *testing.T) {
	content := "Patrolled the east fence line twice and checked every storage unit door during the overnight shift without noting anything unusual."

	a := suggest.NewDefaultEngine().Analyze(content)
	assert.Contains(t, keys(a.Suggestions), "time.missing_timestamps")
}

func TestAnalyze_TimestampFormatsAccepted(t *testing.T) {
	engine := suggest.NewDefaultEngine()
	for _, content := range []string{
		"Completed the first patrol round at 23:45 and found all systems and access points fully operational tonight.",
		"Completed the first patrol round at 2345 hours and found all systems and access points fully operational tonight.",
		"Completed the first patrol round at 11 pm and found all systems and access points fully operational tonight.",
	} {
		a := engine.Analyze(content)
		assert.NotContains(t, keys(a.Suggestions), "time.missing_timestamps", content)
	}
}

func TestAnalyze_ShortReportWarned(t *testing.T) {
	a := suggest.NewDefaultEngine().Analyze("Quiet night at 22:00.")
	assert.Contains(t, keys(a.Suggestions), "detail.too_short")
}

func TestAnalyze_AllClearFillerGetsStandardPhrasing(t *testing.T) {
	content := "Nothing happened during the shift; patrol rounds completed at 20:00, 23:00 and 02:00 without any observations worth noting."

	a := suggest.NewDefaultEngine().Analyze(content)

	require.Contains(t, keys(a.Suggestions), "clarity.all_clear_filler")
	for _, s := range a.Suggestions {
		if s.RuleKey == "clarity.all_clear_filler" {
			assert.Equal(t, "No reportable incidents observed during the shift.", s.Replacement)
		}
	}
}

func TestAnalyze_ScoreFloorsAtZero(t *testing.T) {
	// Pile up enough findings to push the raw score below zero.
	content := "stuff things something somehow whatever stuff things something somehow"

	a := suggest.NewDefaultEngine().Analyze(content)
	assert.GreaterOrEqual(t, a.Score, 0)
}

func TestPatternRuleHitCap(t *testing.T) {
	content := "stuff stuff stuff stuff stuff stuff at 21:00 while patrolling the warehouse perimeter and checking doors"

	a := suggest.NewDefaultEngine().Analyze(content)

	count := 0
	for _, s := range a.Suggestions {
		if s.RuleKey == "clarity.vague_language" {
			count++
		}
	}
	assert.Equal(t, 3, count)
}

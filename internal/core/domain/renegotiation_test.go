package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"momentum/internal/core/domain"
)

func TestHasPattern_ThresholdBoundary(t *testing.T) {
	require.False(t, domain.HasPattern(0))
	require.False(t, domain.HasPattern(domain.PatternThreshold-1))
	require.True(t, domain.HasPattern(domain.PatternThreshold))
	require.True(t, domain.HasPattern(domain.PatternThreshold+1))
}

func TestDominantReason_MostFrequentWins(t *testing.T) {
	history := []domain.ReasonCode{
		domain.ReasonUnderestimated,
		domain.ReasonUnderestimated,
		domain.ReasonLowEnergy,
	}

	reason, ok := domain.DominantReason(history)

	require.True(t, ok)
	require.Equal(t, domain.ReasonUnderestimated, reason)
}

func TestDominantReason_TieBrokenByMostRecent(t *testing.T) {
	history := []domain.ReasonCode{
		domain.ReasonUnderestimated,
		domain.ReasonLowEnergy,
		domain.ReasonUnderestimated,
		domain.ReasonLowEnergy,
	}

	reason, ok := domain.DominantReason(history)

	require.True(t, ok)
	require.Equal(t, domain.ReasonLowEnergy, reason)
}

func TestDominantReason_EmptyHistory(t *testing.T) {
	_, ok := domain.DominantReason(nil)
	require.False(t, ok)
}

func TestRecommend_NoPatternNoRecommendation(t *testing.T) {
	_, ok := domain.Recommend(2, []domain.ReasonCode{domain.ReasonUnderestimated})
	require.False(t, ok)
}

func TestRecommend_UnderestimatedSuggestsSplit(t *testing.T) {
	history := []domain.ReasonCode{
		domain.ReasonUnderestimated,
		domain.ReasonUnderestimated,
		domain.ReasonLowEnergy,
	}

	rec, ok := domain.Recommend(3, history)

	require.True(t, ok)
	require.Equal(t, domain.ActionSplit, rec.Action)
	require.Equal(t, domain.MsgRecommendSplit, rec.MessageKey)
}

func TestRecommend_LowEnergySuggestsReschedule(t *testing.T) {
	history := []domain.ReasonCode{
		domain.ReasonLowEnergy,
		domain.ReasonLowEnergy,
		domain.ReasonBlocked,
	}

	rec, ok := domain.Recommend(3, history)

	require.True(t, ok)
	require.Equal(t, domain.ActionReschedule, rec.Action)
}

func TestRecommend_HighCountSuggestsDropRegardlessOfReason(t *testing.T) {
	history := []domain.ReasonCode{
		domain.ReasonUnderestimated,
		domain.ReasonUnderestimated,
		domain.ReasonUnderestimated,
	}

	rec, ok := domain.Recommend(domain.DropThreshold, history)

	require.True(t, ok)
	require.Equal(t, domain.ActionDrop, rec.Action)
	require.Equal(t, domain.MsgRecommendDrop, rec.MessageKey)
}

func TestRecommend_OtherReasonSuggestsDrop(t *testing.T) {
	history := []domain.ReasonCode{
		domain.ReasonBlocked,
		domain.ReasonOther,
		domain.ReasonOther,
	}

	rec, ok := domain.Recommend(3, history)

	require.True(t, ok)
	require.Equal(t, domain.ActionDrop, rec.Action)
}

func TestRecommend_PatternWithEmptyHistory(t *testing.T) {
	rec, ok := domain.Recommend(4, nil)

	require.True(t, ok)
	require.Equal(t, domain.ActionDrop, rec.Action)
}

func TestValidateRescheduleDate_FutureDate(t *testing.T) {
	now := time.Date(2024, time.March, 10, 18, 0, 0, 0, time.UTC)
	raw := "2024-03-11"

	due, err := domain.ValidateRescheduleDate(&raw, now)

	require.NoError(t, err)
	require.Equal(t, date(2024, time.March, 11), *due)
}

func TestValidateRescheduleDate_Yesterday(t *testing.T) {
	now := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)
	raw := "2024-03-09"

	_, err := domain.ValidateRescheduleDate(&raw, now)

	require.ErrorIs(t, err, domain.ErrDueDateNotFuture)
}

func TestValidateRescheduleDate_TodayIsNotStrictlyFuture(t *testing.T) {
	now := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)
	raw := "2024-03-10"

	_, err := domain.ValidateRescheduleDate(&raw, now)

	require.ErrorIs(t, err, domain.ErrDueDateNotFuture)
}

func TestValidateRescheduleDate_Malformed(t *testing.T) {
	now := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)

	for _, raw := range []string{"next tuesday", "03/10/2024", "2024-13-01"} {
		value := raw
		_, err := domain.ValidateRescheduleDate(&value, now)
		require.ErrorIs(t, err, domain.ErrMalformedDueDate, "input %q", raw)
	}
}

func TestValidateRescheduleDate_Missing(t *testing.T) {
	now := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)
	empty := "  "

	_, err := domain.ValidateRescheduleDate(nil, now)
	require.ErrorIs(t, err, domain.ErrDueDateRequired)

	_, err = domain.ValidateRescheduleDate(&empty, now)
	require.ErrorIs(t, err, domain.ErrDueDateRequired)
}

func TestValidateSubtasks_Bounds(t *testing.T) {
	require.ErrorIs(t, domain.ValidateSubtasks(nil), domain.ErrSubtaskCount)

	tooMany := make([]domain.SubtaskInput, domain.MaxSubtasks+1)
	for i := range tooMany {
		tooMany[i] = domain.SubtaskInput{Title: "piece"}
	}
	require.ErrorIs(t, domain.ValidateSubtasks(tooMany), domain.ErrSubtaskCount)

	atLimit := tooMany[:domain.MaxSubtasks]
	require.NoError(t, domain.ValidateSubtasks(atLimit))
}

func TestValidateSubtasks_Titles(t *testing.T) {
	require.ErrorIs(t,
		domain.ValidateSubtasks([]domain.SubtaskInput{{Title: "   "}}),
		domain.ErrSubtaskTitle,
	)

	long := strings.Repeat("x", domain.MaxSubtaskTitleLen+1)
	require.ErrorIs(t,
		domain.ValidateSubtasks([]domain.SubtaskInput{{Title: long}}),
		domain.ErrSubtaskTitle,
	)

	exact := strings.Repeat("x", domain.MaxSubtaskTitleLen)
	require.NoError(t, domain.ValidateSubtasks([]domain.SubtaskInput{{Title: exact}}))
}

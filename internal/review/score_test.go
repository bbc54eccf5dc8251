package review_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykondo/camper-journal/internal/domain"
	"github.com/ykondo/camper-journal/internal/review"
)

func mainPurposes(n int) []domain.Purpose {
	out := make([]domain.Purpose, n)
	for i := range out {
		out[i] = domain.Purpose{Category: domain.CategoryMain}
	}
	return out
}

func subPurposes(n int) []domain.Purpose {
	out := make([]domain.Purpose, n)
	for i := range out {
		out[i] = domain.Purpose{Category: domain.CategorySub}
	}
	return out
}

func TestScore_NoPurposesPlanned(t *testing.T) {
	report := review.Score(review.ReconciledState{})

	assert.Zero(t, report.OverallRate)
	assert.Zero(t, report.MainRate)
	assert.Zero(t, report.SubRate)
	assert.False(t, report.HasPurposes(), "callers should suppress the score display")
}

func TestScore_WeightedOverall(t *testing.T) {
	state := review.ReconciledState{
		MainAchieved: mainPurposes(2),
		MainTotal:    2,
		SubAchieved:  subPurposes(1),
		SubTotal:     2,
	}

	report := review.Score(state)

	assert.Equal(t, 100, report.MainRate)
	assert.Equal(t, 50, report.SubRate)
	// round(100*0.7 + 50*0.3) = 85
	assert.Equal(t, 85, report.OverallRate)
}

func TestScore_RoundsHalfUp(t *testing.T) {
	// 1/3 achieved = 33.33…% → 33; 2/3 = 66.66…% → 67.
	state := review.ReconciledState{
		MainAchieved: mainPurposes(1),
		MainTotal:    3,
		SubAchieved:  subPurposes(2),
		SubTotal:     3,
	}

	report := review.Score(state)

	assert.Equal(t, 33, report.MainRate)
	assert.Equal(t, 67, report.SubRate)
}

func TestScore_ItemsRateInformationalOnly(t *testing.T) {
	state := review.ReconciledState{
		MainAchieved: mainPurposes(1),
		MainTotal:    1,
		SubAchieved:  subPurposes(1),
		SubTotal:     1,
		ItemsUsed:    []domain.ChecklistItem{},
		ItemsTotal:   10,
	}

	report := review.Score(state)

	assert.Zero(t, report.ItemsRate)
	assert.Equal(t, 100, report.OverallRate, "gear usage must not drag the overall score")
}

func TestScore_OnlySubPurposesPlanned(t *testing.T) {
	state := review.ReconciledState{
		SubAchieved: subPurposes(2),
		SubTotal:    2,
	}

	report := review.Score(state)

	require.True(t, report.HasPurposes())
	assert.Zero(t, report.MainRate)
	assert.Equal(t, 100, report.SubRate)
	// round(0*0.7 + 100*0.3) = 30
	assert.Equal(t, 30, report.OverallRate)
}

func TestScore_FullAchievementIsExactly100(t *testing.T) {
	state := review.ReconciledState{
		MainAchieved: mainPurposes(3),
		MainTotal:    3,
		SubAchieved:  subPurposes(4),
		SubTotal:     4,
		ItemsUsed:    []domain.ChecklistItem{{Identity: "Stove"}},
		ItemsTotal:   1,
	}

	report := review.Score(state)

	assert.Equal(t, 100, report.MainRate)
	assert.Equal(t, 100, report.SubRate)
	assert.Equal(t, 100, report.ItemsRate)
	assert.Equal(t, 100, report.OverallRate)
}

// TestScore_EndToEnd runs the full pipeline over a realistic trip: one
// catalog main purpose, one custom sub purpose, and a snapshot holding the
// canonical identifier forms.
func TestScore_EndToEnd(t *testing.T) {
	plan := &review.Plan{
		Purposes: []domain.Purpose{
			{Identity: "Hiking", RawID: "10", Category: domain.CategoryMain, Origin: domain.OriginCatalog},
			{Identity: "Lake Viewpoint", RawID: "custom_1699999999", Category: domain.CategorySub, Origin: domain.OriginCustom},
		},
	}
	progress := review.Progress{
		AchievedMainRaw: []string{"10"},
		AchievedSubRaw:  []string{"custom:Lake Viewpoint"},
	}

	state, err := review.Reconcile(plan, progress)
	require.NoError(t, err)

	report := review.Score(state)

	assert.Equal(t, 100, report.MainRate)
	assert.Equal(t, 100, report.SubRate)
	assert.Equal(t, 100, report.OverallRate)
}

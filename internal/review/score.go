package review

import "math"

// Weighting of the overall score. Main purposes are the reason the trip
// happened; sub purposes are optional stops. The 70/30 split is a product
// decision, not derived from data.
const (
	mainWeight = 0.7
	subWeight  = 0.3
)

// ScoreReport is the displayable outcome of a trip review. All rates are
// integer percentages in [0, 100].
//
// ItemsRate is informational only and excluded from OverallRate: gear usage
// is not a travel-purpose achievement.
type ScoreReport struct {
	MainRate    int `json:"main_rate"`
	SubRate     int `json:"sub_rate"`
	ItemsRate   int `json:"items_rate"`
	OverallRate int `json:"overall_rate"`

	MainAchieved int `json:"main_achieved"`
	MainTotal    int `json:"main_total"`
	SubAchieved  int `json:"sub_achieved"`
	SubTotal     int `json:"sub_total"`
	ItemsUsed    int `json:"items_used"`
	ItemsTotal   int `json:"items_total"`
}

// HasPurposes reports whether any purposes were planned at all. When false,
// OverallRate is 0 by definition and callers should suppress the score
// display rather than show a misleading 0%.
func (r ScoreReport) HasPurposes() bool {
	return r.MainTotal > 0 || r.SubTotal > 0
}

// Score turns a reconciled state into percentages. Pure function; rounding
// is half-up to the nearest integer and every rate is clamped to [0, 100].
func Score(state ReconciledState) ScoreReport {
	report := ScoreReport{
		MainAchieved: len(state.MainAchieved),
		MainTotal:    state.MainTotal,
		SubAchieved:  len(state.SubAchieved),
		SubTotal:     state.SubTotal,
		ItemsUsed:    len(state.ItemsUsed),
		ItemsTotal:   state.ItemsTotal,
	}

	report.MainRate = rate(report.MainAchieved, report.MainTotal)
	report.SubRate = rate(report.SubAchieved, report.SubTotal)
	report.ItemsRate = rate(report.ItemsUsed, report.ItemsTotal)

	if report.HasPurposes() {
		weighted := float64(report.MainRate)*mainWeight + float64(report.SubRate)*subWeight
		report.OverallRate = clamp(roundHalfUp(weighted))
	}

	return report
}

// rate returns round(achieved/total*100), or 0 when nothing was planned.
func rate(achieved, total int) int {
	if total <= 0 {
		return 0
	}
	return clamp(roundHalfUp(float64(achieved) / float64(total) * 100))
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

package stats

import "fmt"

const (
	// ShortSleepMinutes and LongSleepMinutes bound the adequate-duration band
	// for the insight rules (7 and 9 hours).
	ShortSleepMinutes = 420
	LongSleepMinutes  = 540

	// LowQualityThreshold and HighQualityThreshold split average quality into
	// needs-improvement / moderate / excellent.
	LowQualityThreshold  = 3.0
	HighQualityThreshold = 4.0

	// LowConsistencyScore flags an irregular schedule.
	LowConsistencyScore = 70

	// WeekendGapMinutes flags a weekend/weekday duration divergence.
	WeekendGapMinutes = 60.0
)

// Insights evaluates the threshold rules against a summary in fixed priority
// order: duration adequacy, quality adequacy, consistency, weekend/weekday
// divergence. Each rule contributes at most one sentence; the result is
// never empty.
func Insights(s Summary) []string {
	insights := make([]string, 0, 4)

	switch {
	case s.AvgDuration < ShortSleepMinutes:
		insights = append(insights, "Your average sleep duration is below 7 hours. Try moving your bedtime earlier.")
	case s.AvgDuration > LongSleepMinutes:
		insights = append(insights, "You are averaging more than 9 hours of sleep. Oversleeping can leave you groggy during the day.")
	default:
		insights = append(insights, "Your average sleep duration sits in the healthy 7-9 hour range.")
	}

	switch {
	case s.AvgQuality < LowQualityThreshold:
		insights = append(insights, "Your sleep quality needs improvement. Review your sleep environment and wind-down routine.")
	case s.AvgQuality >= HighQualityThreshold:
		insights = append(insights, "Your sleep quality is excellent. Keep your current habits going.")
	default:
		insights = append(insights, "Your sleep quality is moderate. Small routine changes could push it higher.")
	}

	if s.ConsistencyScore < LowConsistencyScore {
		insights = append(insights, "Your sleep schedule is irregular. Going to bed at a consistent time should help.")
	}

	if weekendGap(s) > WeekendGapMinutes {
		insights = append(insights, "Your weekend and weekday sleep durations differ by more than an hour. Narrowing that gap keeps your rhythm steady.")
	}

	if len(insights) == 0 {
		insights = append(insights, "Your sleep pattern looks healthy. Keep it up.")
	}

	return insights
}

// weekendGap is the absolute difference between weekend and weekday average
// durations. It is zero unless both groups have entries.
func weekendGap(s Summary) float64 {
	weekendCount := s.WeekdayPattern[0].Count + s.WeekdayPattern[6].Count
	weekdayCount := s.TotalEntries - weekendCount
	if weekendCount == 0 || weekdayCount == 0 {
		return 0
	}

	gap := s.WeekendAvgDuration - s.WeekdayAvgDuration
	if gap < 0 {
		gap = -gap
	}
	return gap
}

// Recommendations produces the rule-based guidance used by the fallback
// advice path. Each threshold contributes at most one item; an all-clear
// summary yields a single keep-it-up message.
func Recommendations(s Summary) []string {
	recs := make([]string, 0, 3)

	if s.AvgDuration < ShortSleepMinutes {
		recs = append(recs, "Aim for 7-9 hours of sleep each night.")
	}
	if s.AvgQuality < HighQualityThreshold {
		recs = append(recs, "Improve your sleep environment and keep a regular evening routine.")
	}
	if s.ConsistencyScore < LowConsistencyScore {
		recs = append(recs, "Go to bed and wake up at the same time every day.")
	}

	if len(recs) == 0 {
		recs = append(recs, "Keep up your current sleep pattern.")
	}

	return recs
}

const (
	// LowIdealDurationRate and LowGoodQualityRate gate the fallback insight
	// sentences about how often nights land in the healthy ranges.
	LowIdealDurationRate = 50.0
	LowGoodQualityRate   = 60.0
)

// FallbackAnalysis builds the deterministic narrative used when the
// generative model is unavailable or returns an unusable reply.
func FallbackAnalysis(s Summary) string {
	text := fmt.Sprintf("Looking at your last %d nights, ", s.TotalEntries)

	switch {
	case s.AvgDuration < ShortSleepMinutes:
		text += "your sleep duration is below the recommended amount. "
	case s.AvgDuration > LongSleepMinutes:
		text += "your sleep duration is longer than the recommended amount. "
	default:
		text += "your sleep duration is at a healthy level. "
	}

	switch {
	case s.AvgQuality < LowQualityThreshold:
		text += "Your sleep quality could use some attention."
	case s.AvgQuality >= HighQualityThreshold:
		text += "Your sleep quality is in good shape."
	default:
		text += "Your sleep quality is about average."
	}

	return text
}

// FallbackInsights derives the observation list for fallback advice.
func FallbackInsights(s Summary) []string {
	insights := make([]string, 0, 2)

	if s.IdealDurationRate < LowIdealDurationRate {
		insights = append(insights, "Fewer than half of your nights land in the ideal 7-9 hour range.")
	}
	if s.GoodQualityRate < LowGoodQualityRate {
		insights = append(insights, "The share of nights you rated 4 or better is on the low side.")
	}

	if len(insights) == 0 {
		insights = append(insights, "Overall your sleep pattern looks solid.")
	}

	return insights
}

package stats

import "math"

const (
	// TargetDurationMinutes anchors the duration component: averaging 8 hours
	// scores 100.
	TargetDurationMinutes = 480.0

	// Component weights for the overall score.
	DurationWeight    = 0.3
	QualityWeight     = 0.4
	ConsistencyWeight = 0.3

	// RegularityBonus is added when more than RegularityBonusRate percent of
	// nights fall in the ideal duration range.
	RegularityBonus     = 10.0
	RegularityBonusRate = 70.0
)

// Score combines duration, quality and consistency into a single 1-100
// value. The function is deterministic and order-independent: it reads only
// per-entry aggregates, never sequence position.
func Score(s Summary) int {
	durationScore := math.Min(100, s.AvgDuration/TargetDurationMinutes*100)
	qualityScore := s.AvgQuality / 5 * 100
	consistencyScore := float64(s.ConsistencyScore)

	bonus := 0.0
	if s.IdealDurationRate > RegularityBonusRate {
		bonus = RegularityBonus
	}

	total := durationScore*DurationWeight +
		qualityScore*QualityWeight +
		consistencyScore*ConsistencyWeight +
		bonus

	return clampScore(int(math.Round(total)))
}

func clampScore(v int) int {
	if v < 1 {
		return 1
	}
	if v > 100 {
		return 100
	}
	return v
}

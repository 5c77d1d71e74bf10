// Package stats is the pure computation core of the sleep diary: it turns an
// in-memory batch of sleep entries into aggregate metrics, rule-based
// insights and recommendations, and an overall sleep score. Nothing in this
// package touches storage or the network.
package stats

import (
	"math"
	"time"

	"github.com/slumberlog/sleep-diary/pkg/clock"
)

const (
	// MaxAnalysisEntries caps the batch size accepted by the advice path.
	MaxAnalysisEntries = 30

	// ConsistencyNormalizerMinutes maps a combined 3-hour average deviation
	// of sleep/wake times to a consistency score of zero.
	ConsistencyNormalizerMinutes = 180.0

	// IdealDurationMinMinutes and IdealDurationMaxMinutes bound the 7-9 hour
	// range considered a healthy night.
	IdealDurationMinMinutes = 420
	IdealDurationMaxMinutes = 540

	// GoodQualityScore is the lowest rating counted as a good night.
	GoodQualityScore = 4
)

// Entry is one night of sleep as consumed by the aggregations. Entries are
// immutable once handed to this package.
type Entry struct {
	Date      string // YYYY-MM-DD
	SleepTime string // HH:MM
	WakeTime  string // HH:MM
	Duration  int    // minutes, overnight-aware
	Quality   int    // 1..5
}

// WeekdayBucket aggregates entries sharing a calendar weekday.
type WeekdayBucket struct {
	Weekday     time.Weekday
	AvgDuration float64
	AvgQuality  float64
	Count       int
}

// Summary holds the derived metrics for a batch of entries. Averages keep
// full float precision; presentation rounding happens at the response layer.
type Summary struct {
	TotalEntries       int
	AvgDuration        float64 // minutes
	AvgQuality         float64
	ConsistencyScore   int        // 0..100
	WeekdayPattern     [7]WeekdayBucket // Sunday first
	QualityHistogram   [5]int           // index 0 counts quality 1
	IdealDurationRate  float64 // percent of entries in [7h, 9h]
	GoodQualityRate    float64 // percent of entries rated >= GoodQualityScore
	WeekendAvgDuration float64 // minutes, 0 when no weekend entries
	WeekdayAvgDuration float64 // minutes, 0 when no weekday entries
}

// Summarize computes a Summary over the given entries. The batch is expected
// to be non-empty; an empty batch yields a zero Summary and is handled by the
// calling layer before any insight or score is derived.
func Summarize(entries []Entry) Summary {
	s := Summary{TotalEntries: len(entries)}
	if len(entries) == 0 {
		return s
	}

	var totalDuration, totalQuality float64
	var idealCount, goodQualityCount int

	var weekdaySum [7]float64
	var weekdayQualitySum [7]float64
	var weekendDurationSum, weekdayDurationSum float64
	var weekendCount, weekdayCount int

	for _, e := range entries {
		totalDuration += float64(e.Duration)
		totalQuality += float64(e.Quality)

		if e.Duration >= IdealDurationMinMinutes && e.Duration <= IdealDurationMaxMinutes {
			idealCount++
		}
		if e.Quality >= GoodQualityScore {
			goodQualityCount++
		}
		if e.Quality >= 1 && e.Quality <= 5 {
			s.QualityHistogram[e.Quality-1]++
		}

		wd := weekdayOf(e.Date)
		weekdaySum[wd] += float64(e.Duration)
		weekdayQualitySum[wd] += float64(e.Quality)
		s.WeekdayPattern[wd].Count++

		if wd == int(time.Saturday) || wd == int(time.Sunday) {
			weekendDurationSum += float64(e.Duration)
			weekendCount++
		} else {
			weekdayDurationSum += float64(e.Duration)
			weekdayCount++
		}
	}

	n := float64(len(entries))
	s.AvgDuration = totalDuration / n
	s.AvgQuality = totalQuality / n
	s.IdealDurationRate = float64(idealCount) / n * 100
	s.GoodQualityRate = float64(goodQualityCount) / n * 100
	s.ConsistencyScore = consistency(entries)

	for i := range s.WeekdayPattern {
		s.WeekdayPattern[i].Weekday = time.Weekday(i)
		if c := s.WeekdayPattern[i].Count; c > 0 {
			s.WeekdayPattern[i].AvgDuration = weekdaySum[i] / float64(c)
			s.WeekdayPattern[i].AvgQuality = weekdayQualitySum[i] / float64(c)
		}
	}

	if weekendCount > 0 {
		s.WeekendAvgDuration = weekendDurationSum / float64(weekendCount)
	}
	if weekdayCount > 0 {
		s.WeekdayAvgDuration = weekdayDurationSum / float64(weekdayCount)
	}

	return s
}

// consistency scores how stable the sleep and wake clock times are: the
// population standard deviations of the two minute-of-day series are
// averaged and mapped so that a combined 3-hour deviation scores zero.
// Fewer than two entries exhibit no variability and score 100.
func consistency(entries []Entry) int {
	if len(entries) < 2 {
		return 100
	}

	sleepMinutes := make([]float64, 0, len(entries))
	wakeMinutes := make([]float64, 0, len(entries))
	for _, e := range entries {
		sm, err := clock.ToMinutes(e.SleepTime)
		if err != nil {
			continue
		}
		wm, err := clock.ToMinutes(e.WakeTime)
		if err != nil {
			continue
		}
		sleepMinutes = append(sleepMinutes, float64(sm))
		wakeMinutes = append(wakeMinutes, float64(wm))
	}
	if len(sleepMinutes) < 2 {
		return 100
	}

	avgStdDev := (populationStdDev(sleepMinutes) + populationStdDev(wakeMinutes)) / 2
	score := 100 - avgStdDev/ConsistencyNormalizerMinutes*100
	if score < 0 {
		score = 0
	}
	return int(math.Round(score))
}

func populationStdDev(values []float64) float64 {
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	sumSquares := 0.0
	for _, v := range values {
		diff := v - mean
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(values)))
}

func weekdayOf(date string) int {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0
	}
	return int(d.Weekday())
}

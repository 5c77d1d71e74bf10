package domain

// TrendPoint is one day in the sleep trend series.
// @Description One night in the duration/quality trend.
type TrendPoint struct {
	Date string `json:"date" example:"2024-01-15"`
	// Duration in minutes
	Duration int `json:"duration" example:"480"`
	Quality  int `json:"quality" example:"4"`
}

// QualityBucket is one bar of the quality distribution histogram.
// @Description Count of nights rated with a given quality score.
type QualityBucket struct {
	// Quality score this bucket counts (1-5)
	Quality int `json:"quality" example:"4"`
	// Human-readable label for the score
	Label string `json:"label" example:"good"`
	Count int    `json:"count" example:"7"`
}

// WeekdayStats aggregates sleep for one day of the week.
// @Description Per-weekday averages; days without data report zeros.
type WeekdayStats struct {
	// Weekday name, Sunday first
	Day string `json:"day" example:"Sunday"`
	// Average duration in minutes, rounded
	AverageDuration int `json:"average_duration" example:"465"`
	// Average quality, one decimal
	AverageQuality float64 `json:"average_quality" example:"3.8"`
	Count          int     `json:"count" example:"4"`
}

// StatisticsResponse is the response for the statistics endpoint.
// @Description Aggregated sleep statistics over the requested window.
type StatisticsResponse struct {
	TotalRecords int `json:"total_records" example:"28"`
	// Average sleep duration in minutes, rounded to the nearest integer
	AverageSleepDuration int `json:"average_sleep_duration" example:"445"`
	// Average quality rating, one decimal
	AverageQuality float64 `json:"average_quality" example:"3.6"`
	// 0-100 stability of sleep/wake clock times
	ConsistencyScore int `json:"consistency_score" example:"82"`
	// Oldest-first duration/quality series, capped at 30 points
	SleepTrend []TrendPoint `json:"sleep_trend"`
	// Five buckets, one per quality score; zero-count buckets retained
	QualityDistribution []QualityBucket `json:"quality_distribution"`
	// Seven buckets, Sunday first; empty days retained with zeros
	WeeklyPattern []WeekdayStats `json:"weekly_pattern"`
	// Rule-based observations; empty only when there are no records
	Insights []string `json:"insights"`
}

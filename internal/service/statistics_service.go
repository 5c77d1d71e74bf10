package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/slumberlog/sleep-diary/internal/domain"
	"github.com/slumberlog/sleep-diary/internal/repository"
	"github.com/slumberlog/sleep-diary/internal/stats"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultStatisticsWindowDays is the default lookback for statistics.
	DefaultStatisticsWindowDays = 30

	// TrendMaxPoints caps the trend series returned to charts.
	TrendMaxPoints = 30
)

// qualityLabels maps quality scores 1..5 to display labels for the
// distribution buckets.
var qualityLabels = [5]string{"very poor", "poor", "fair", "good", "very good"}

// weekdayNames is Sunday-first, matching the weekly pattern ordering.
var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// StatisticsService computes aggregate sleep statistics for a user.
type StatisticsService interface {
	// Compute aggregates the user's records over the trailing window of days.
	Compute(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.StatisticsResponse, error)
}

type statisticsService struct {
	recordRepo repository.SleepRecordRepository
}

// NewStatisticsService creates a new StatisticsService.
func NewStatisticsService(recordRepo repository.SleepRecordRepository) StatisticsService {
	return &statisticsService{recordRepo: recordRepo}
}

func (s *statisticsService) Compute(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.StatisticsResponse, error) {
	if windowDays <= 0 {
		windowDays = DefaultStatisticsWindowDays
	}

	tracer := otel.Tracer("sleep-diary-api/statistics")
	ctx, span := tracer.Start(ctx, "StatisticsService.Compute",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("window.days", windowDays),
		),
	)
	defer span.End()

	// The window includes today, so a windowDays lookback starts
	// windowDays-1 days back.
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -(windowDays - 1)).Format("2006-01-02")
	to := now.Format("2006-01-02")

	records, err := s.recordRepo.ListByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	// The aggregator's precondition is a non-empty batch; with zero records
	// the response is all zeros with empty series.
	if len(records) == 0 {
		return emptyStatistics(), nil
	}

	entries := entriesFromRecords(records)
	summary := stats.Summarize(entries)

	response := &domain.StatisticsResponse{
		TotalRecords:         summary.TotalEntries,
		AverageSleepDuration: int(math.Round(summary.AvgDuration)),
		AverageQuality:       round1(summary.AvgQuality),
		ConsistencyScore:     summary.ConsistencyScore,
		SleepTrend:           buildTrend(records),
		QualityDistribution:  buildDistribution(summary),
		WeeklyPattern:        buildWeeklyPattern(summary),
		Insights:             stats.Insights(summary),
	}

	if outputJSON, err := json.Marshal(response); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return response, nil
}

func emptyStatistics() *domain.StatisticsResponse {
	return &domain.StatisticsResponse{
		SleepTrend:          []domain.TrendPoint{},
		QualityDistribution: []domain.QualityBucket{},
		WeeklyPattern:       []domain.WeekdayStats{},
		Insights:            []string{},
	}
}

// entriesFromRecords maps stored records to the aggregation input.
func entriesFromRecords(records []domain.SleepRecord) []stats.Entry {
	entries := make([]stats.Entry, len(records))
	for i, r := range records {
		entries[i] = stats.Entry{
			Date:      r.Date,
			SleepTime: r.SleepTime,
			WakeTime:  r.WakeTime,
			Duration:  r.Duration,
			Quality:   r.Quality,
		}
	}
	return entries
}

// buildTrend takes the newest TrendMaxPoints records and reverses them so
// charts read oldest to newest.
func buildTrend(records []domain.SleepRecord) []domain.TrendPoint {
	n := len(records)
	if n > TrendMaxPoints {
		n = TrendMaxPoints
	}

	trend := make([]domain.TrendPoint, n)
	for i := 0; i < n; i++ {
		r := records[n-1-i]
		trend[i] = domain.TrendPoint{
			Date:     r.Date,
			Duration: r.Duration,
			Quality:  r.Quality,
		}
	}
	return trend
}

// buildDistribution keeps all five buckets, including zero counts; chart
// consumers filter if they want to.
func buildDistribution(summary stats.Summary) []domain.QualityBucket {
	buckets := make([]domain.QualityBucket, 5)
	for i := range buckets {
		buckets[i] = domain.QualityBucket{
			Quality: i + 1,
			Label:   qualityLabels[i],
			Count:   summary.QualityHistogram[i],
		}
	}
	return buckets
}

func buildWeeklyPattern(summary stats.Summary) []domain.WeekdayStats {
	pattern := make([]domain.WeekdayStats, 7)
	for i, bucket := range summary.WeekdayPattern {
		pattern[i] = domain.WeekdayStats{
			Day:             weekdayNames[i],
			AverageDuration: int(math.Round(bucket.AvgDuration)),
			AverageQuality:  round1(bucket.AvgQuality),
			Count:           bucket.Count,
		}
	}
	return pattern
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

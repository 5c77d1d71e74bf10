package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/slumberlog/sleep-diary/internal/domain"
)

// seedRecords creates one record per request through the record service.
func seedRecords(t *testing.T, repo *MockSleepRecordRepository, userID uuid.UUID, reqs []domain.CreateSleepRecordRequest) {
	t.Helper()
	svc := NewSleepRecordService(repo)
	for i := range reqs {
		if _, err := svc.Create(context.Background(), userID, &reqs[i]); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
}

func daysAgo(n int) string {
	return time.Now().UTC().AddDate(0, 0, -n).Format("2006-01-02")
}

func TestStatisticsService_Compute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("no records yields zeroed statistics", func(t *testing.T) {
		svc := NewStatisticsService(NewMockSleepRecordRepository())

		resp, err := svc.Compute(ctx, userID, 30)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if resp.TotalRecords != 0 {
			t.Errorf("TotalRecords = %d, want 0", resp.TotalRecords)
		}
		if resp.AverageSleepDuration != 0 || resp.AverageQuality != 0 || resp.ConsistencyScore != 0 {
			t.Errorf("averages not zeroed: %+v", resp)
		}
		// Empty but non-nil so they serialize as [] rather than null.
		if resp.SleepTrend == nil || resp.QualityDistribution == nil || resp.WeeklyPattern == nil || resp.Insights == nil {
			t.Error("expected empty slices, got nil")
		}
		if len(resp.SleepTrend) != 0 || len(resp.Insights) != 0 {
			t.Errorf("expected empty series, got %d trend points and %d insights", len(resp.SleepTrend), len(resp.Insights))
		}
	})

	t.Run("aggregates two nights", func(t *testing.T) {
		repo := NewMockSleepRecordRepository()
		seedRecords(t, repo, userID, []domain.CreateSleepRecordRequest{
			{Date: daysAgo(2), SleepTime: "23:00", WakeTime: "07:00", Quality: 4}, // 480 min
			{Date: daysAgo(1), SleepTime: "22:00", WakeTime: "06:00", Quality: 3}, // 480 min
		})
		svc := NewStatisticsService(repo)

		resp, err := svc.Compute(ctx, userID, 30)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if resp.TotalRecords != 2 {
			t.Fatalf("TotalRecords = %d, want 2", resp.TotalRecords)
		}
		if resp.AverageSleepDuration != 480 {
			t.Errorf("AverageSleepDuration = %d, want 480", resp.AverageSleepDuration)
		}
		if resp.AverageQuality != 3.5 {
			t.Errorf("AverageQuality = %v, want 3.5", resp.AverageQuality)
		}
		// Both clock series deviate 30 minutes from their means:
		// 100 - 30/180*100 = 83.
		if resp.ConsistencyScore != 83 {
			t.Errorf("ConsistencyScore = %d, want 83", resp.ConsistencyScore)
		}
	})

	t.Run("trend is oldest first and capped", func(t *testing.T) {
		repo := NewMockSleepRecordRepository()
		var reqs []domain.CreateSleepRecordRequest
		for i := 40; i >= 1; i-- {
			reqs = append(reqs, domain.CreateSleepRecordRequest{
				Date: daysAgo(i), SleepTime: "23:00", WakeTime: "07:00", Quality: 3,
			})
		}
		seedRecords(t, repo, userID, reqs)
		svc := NewStatisticsService(repo)

		resp, err := svc.Compute(ctx, userID, 60)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if resp.TotalRecords != 40 {
			t.Fatalf("TotalRecords = %d, want 40", resp.TotalRecords)
		}
		if len(resp.SleepTrend) != TrendMaxPoints {
			t.Fatalf("trend size = %d, want %d", len(resp.SleepTrend), TrendMaxPoints)
		}
		// The trend keeps the newest 30 nights, displayed oldest to newest.
		if resp.SleepTrend[0].Date != daysAgo(30) {
			t.Errorf("trend[0].Date = %q, want %q", resp.SleepTrend[0].Date, daysAgo(30))
		}
		if last := resp.SleepTrend[len(resp.SleepTrend)-1]; last.Date != daysAgo(1) {
			t.Errorf("trend last date = %q, want %q", last.Date, daysAgo(1))
		}
		for i := 1; i < len(resp.SleepTrend); i++ {
			if resp.SleepTrend[i].Date <= resp.SleepTrend[i-1].Date {
				t.Fatalf("trend not ascending at %d: %q then %q", i, resp.SleepTrend[i-1].Date, resp.SleepTrend[i].Date)
			}
		}
	})

	t.Run("distribution keeps all five buckets", func(t *testing.T) {
		repo := NewMockSleepRecordRepository()
		seedRecords(t, repo, userID, []domain.CreateSleepRecordRequest{
			{Date: daysAgo(3), SleepTime: "23:00", WakeTime: "07:00", Quality: 4},
			{Date: daysAgo(2), SleepTime: "23:00", WakeTime: "07:00", Quality: 4},
			{Date: daysAgo(1), SleepTime: "23:00", WakeTime: "07:00", Quality: 2},
		})
		svc := NewStatisticsService(repo)

		resp, err := svc.Compute(ctx, userID, 30)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if len(resp.QualityDistribution) != 5 {
			t.Fatalf("distribution size = %d, want 5", len(resp.QualityDistribution))
		}
		wantLabels := []string{"very poor", "poor", "fair", "good", "very good"}
		wantCounts := []int{0, 1, 0, 2, 0}
		for i, bucket := range resp.QualityDistribution {
			if bucket.Quality != i+1 {
				t.Errorf("bucket[%d].Quality = %d, want %d", i, bucket.Quality, i+1)
			}
			if bucket.Label != wantLabels[i] {
				t.Errorf("bucket[%d].Label = %q, want %q", i, bucket.Label, wantLabels[i])
			}
			if bucket.Count != wantCounts[i] {
				t.Errorf("bucket[%d].Count = %d, want %d", i, bucket.Count, wantCounts[i])
			}
		}
	})

	t.Run("weekly pattern covers all seven days", func(t *testing.T) {
		repo := NewMockSleepRecordRepository()
		var reqs []domain.CreateSleepRecordRequest
		for i := 7; i >= 1; i-- {
			reqs = append(reqs, domain.CreateSleepRecordRequest{
				Date: daysAgo(i), SleepTime: "23:00", WakeTime: "07:00", Quality: 3,
			})
		}
		seedRecords(t, repo, userID, reqs)
		svc := NewStatisticsService(repo)

		resp, err := svc.Compute(ctx, userID, 30)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if len(resp.WeeklyPattern) != 7 {
			t.Fatalf("pattern size = %d, want 7", len(resp.WeeklyPattern))
		}
		wantDays := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
		for i, day := range resp.WeeklyPattern {
			if day.Day != wantDays[i] {
				t.Errorf("pattern[%d].Day = %q, want %q", i, day.Day, wantDays[i])
			}
			if day.Count != 1 {
				t.Errorf("pattern[%d].Count = %d, want 1", i, day.Count)
			}
			if day.AverageDuration != 480 {
				t.Errorf("pattern[%d].AverageDuration = %d, want 480", i, day.AverageDuration)
			}
		}
	})

	t.Run("window excludes older records", func(t *testing.T) {
		repo := NewMockSleepRecordRepository()
		seedRecords(t, repo, userID, []domain.CreateSleepRecordRequest{
			{Date: daysAgo(50), SleepTime: "23:00", WakeTime: "07:00", Quality: 1},
			{Date: daysAgo(1), SleepTime: "23:00", WakeTime: "07:00", Quality: 5},
		})
		svc := NewStatisticsService(repo)

		resp, err := svc.Compute(ctx, userID, 7)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if resp.TotalRecords != 1 {
			t.Fatalf("TotalRecords = %d, want 1", resp.TotalRecords)
		}
		if resp.AverageQuality != 5 {
			t.Errorf("AverageQuality = %v, want 5", resp.AverageQuality)
		}
	})

	t.Run("window spans exactly the requested days", func(t *testing.T) {
		// A 30-day window over a nightly diary is 30 records, today
		// included.
		repo := NewMockSleepRecordRepository()
		var reqs []domain.CreateSleepRecordRequest
		for i := 40; i >= 0; i-- {
			reqs = append(reqs, domain.CreateSleepRecordRequest{
				Date: daysAgo(i), SleepTime: "23:00", WakeTime: "07:00", Quality: 3,
			})
		}
		seedRecords(t, repo, userID, reqs)
		svc := NewStatisticsService(repo)

		resp, err := svc.Compute(ctx, userID, 30)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if resp.TotalRecords != 30 {
			t.Fatalf("TotalRecords = %d, want 30", resp.TotalRecords)
		}
	})
}

func TestStatisticsService_Compute_DefaultWindow(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := NewMockSleepRecordRepository()
	var reqs []domain.CreateSleepRecordRequest
	for i := 1; i <= 3; i++ {
		reqs = append(reqs, domain.CreateSleepRecordRequest{
			Date: daysAgo(i), SleepTime: "23:00", WakeTime: "07:00", Quality: 3,
		})
	}
	seedRecords(t, repo, userID, reqs)
	svc := NewStatisticsService(repo)

	for _, days := range []int{0, -5} {
		resp, err := svc.Compute(ctx, userID, days)
		if err != nil {
			t.Fatalf("Compute(%d) error = %v", days, err)
		}
		if resp.TotalRecords != 3 {
			t.Errorf("Compute(%d) TotalRecords = %d, want 3", days, resp.TotalRecords)
		}
	}
}

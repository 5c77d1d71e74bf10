package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/slumberlog/sleep-diary/internal/domain"
	"github.com/slumberlog/sleep-diary/internal/llm"
	"github.com/slumberlog/sleep-diary/internal/repository"
	"github.com/slumberlog/sleep-diary/internal/stats"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// DefaultAdviceWindowDays is the default lookback for advice generation.
	DefaultAdviceWindowDays = 7

	// DefaultAdviceTimeout bounds a single model call.
	DefaultAdviceTimeout = 30 * time.Second
)

// AdviceService generates personalized sleep advice. When the model call
// fails for any reason the response degrades to deterministic advice
// derived from the same aggregates.
type AdviceService interface {
	Generate(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AdviceResponse, error)
}

type adviceService struct {
	recordRepo repository.SleepRecordRepository
	llmClient  llm.AdviceLLM
	timeout    time.Duration
	logger     *zap.Logger
}

// NewAdviceService creates a new AdviceService. llmClient may be nil, in
// which case every response uses the deterministic fallback.
func NewAdviceService(recordRepo repository.SleepRecordRepository, llmClient llm.AdviceLLM, timeout time.Duration, logger *zap.Logger) AdviceService {
	if timeout <= 0 {
		timeout = DefaultAdviceTimeout
	}
	return &adviceService{
		recordRepo: recordRepo,
		llmClient:  llmClient,
		timeout:    timeout,
		logger:     logger,
	}
}

func (s *adviceService) Generate(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AdviceResponse, error) {
	if windowDays <= 0 {
		windowDays = DefaultAdviceWindowDays
	}

	tracer := otel.Tracer("sleep-diary-api/advice")
	ctx, span := tracer.Start(ctx, "AdviceService.Generate",
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
	if len(records) == 0 {
		return nil, domain.ErrNoSleepData
	}
	if len(records) > stats.MaxAnalysisEntries {
		return nil, domain.ErrTooManyRecords
	}

	// ListByDateRange returns newest first; the prompt and the fallback
	// narrative both read chronologically.
	entries := entriesFromRecords(records)
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	summary := stats.Summarize(entries)

	advice, model, fallback := s.generateAdvice(ctx, entries, summary)
	advice.Score = stats.Score(summary)

	response := &domain.AdviceResponse{
		Advice: *advice,
		Metadata: domain.AdviceMetadata{
			AnalyzedDays: len(entries),
			Model:        model,
			Fallback:     fallback,
			GeneratedAt:  now,
		},
	}
	if sc := span.SpanContext(); sc.HasTraceID() {
		response.TraceID = sc.TraceID().String()
	}

	span.SetAttributes(attribute.Bool("advice.fallback", fallback))
	if outputJSON, err := json.Marshal(response.Advice); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return response, nil
}

// generateAdvice tries a single model call within the configured timeout
// and falls back to deterministic advice on any failure. The returned
// advice never carries a score; the caller fills it in locally.
func (s *adviceService) generateAdvice(ctx context.Context, entries []stats.Entry, summary stats.Summary) (advice *domain.SleepAdvice, model string, fallback bool) {
	if s.llmClient == nil {
		return s.fallbackAdvice(summary), "", true
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	output, err := s.llmClient.GenerateAdvice(callCtx, entries, summary)
	if err != nil {
		s.logger.Warn("advice model call failed, using fallback",
			zap.Int("entries", len(entries)),
			zap.Error(err),
		)
		if span := trace.SpanFromContext(ctx); span.IsRecording() {
			span.SetStatus(codes.Error, "model call failed")
			span.RecordError(err)
		}
		return s.fallbackAdvice(summary), "", true
	}

	// The model's self-assessed score is discarded; scoring stays local so
	// it is stable across providers.
	return &domain.SleepAdvice{
		Analysis:        output.Analysis,
		Recommendations: output.Recommendations,
		Insights:        output.Insights,
	}, s.llmClient.Model(), false
}

func (s *adviceService) fallbackAdvice(summary stats.Summary) *domain.SleepAdvice {
	return &domain.SleepAdvice{
		Analysis:        stats.FallbackAnalysis(summary),
		Recommendations: stats.Recommendations(summary),
		Insights:        stats.FallbackInsights(summary),
	}
}

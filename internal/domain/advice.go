package domain

import "time"

// SleepAdvice is the model- or rule-generated analysis of a sleep window.
// @Description Narrative sleep analysis with recommendations and a 1-100 score.
type SleepAdvice struct {
	// Narrative analysis of the sleep pattern
	Analysis string `json:"analysis" example:"Over the last 14 nights your sleep has been slightly short but stable."`
	// Ordered, actionable recommendations
	Recommendations []string `json:"recommendations" example:"[\"Aim for 7-9 hours of sleep each night\"]"`
	// Ordered observations drawn from the data
	Insights []string `json:"insights" example:"[\"Fewer than half of your nights hit the 7-9 hour range\"]"`
	// Overall sleep score, always computed locally, clamped to 1-100
	Score int `json:"score" example:"74" minimum:"1" maximum:"100"`
}

// AdviceMetadata describes how a piece of advice was produced.
// @Description Provenance of an advice response.
type AdviceMetadata struct {
	// Number of sleep records analyzed (1-30)
	AnalyzedDays int `json:"analyzed_days" example:"14"`
	// Model that produced the narrative, empty when rule-based
	Model string `json:"model,omitempty" example:"gpt-4o-mini"`
	// True when the deterministic fallback produced the advice
	Fallback    bool      `json:"fallback" example:"false"`
	GeneratedAt time.Time `json:"generated_at" example:"2024-01-16T08:00:00Z"`
}

// AdviceFeedbackRequest is the request body for rating a piece of advice.
// @Description User rating for a previously generated advice response.
type AdviceFeedbackRequest struct {
	// Trace ID from the advice response being rated
	TraceID string `json:"trace_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating from 1 (useless) to 5 (very helpful)
	Rating int `json:"rating" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Optional free-form comment
	Comment string `json:"comment,omitempty" validate:"omitempty,max=2000" example:"The bedtime tip worked."`
}

// AdviceResponse is the response for the advice endpoint.
// @Description Sleep advice plus provenance metadata.
type AdviceResponse struct {
	Advice   SleepAdvice    `json:"advice"`
	Metadata AdviceMetadata `json:"metadata"`
	// Trace ID for feedback (present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/slumberlog/sleep-diary/internal/stats"
)

var (
	// ErrUnavailable indicates the OpenAI service is not configured.
	ErrUnavailable = errors.New("OpenAI service unavailable")
	// ErrRequest indicates an error during the OpenAI API request.
	ErrRequest = errors.New("OpenAI request failed")
	// ErrMalformedResponse indicates the model replied but the JSON shape is unusable.
	ErrMalformedResponse = errors.New("malformed OpenAI response")
)

// DefaultSystemPrompt instructs the model to reply as strict JSON. It can be
// overridden via Langfuse prompt management.
const DefaultSystemPrompt = `You are a non-medical sleep coach analyzing one user's nightly sleep diary.

You receive per-night rows (date, bedtime, wake time, duration, quality 1-5) and aggregate metrics. Base every conclusion only on the provided data.

Rules:
- Do NOT provide medical advice, diagnoses, or mention disorders or treatment.
- Focus on behavior: bedtime regularity, wind-down habits, schedule gaps.
- Be concrete and concise.

You must respond as strict JSON with exactly this shape:

{
  "analysis": "3-4 sentences describing the main characteristics and problems of the sleep pattern.",
  "recommendations": [
    "The highest-priority improvement first.",
    "2-3 further concrete, actionable steps."
  ],
  "insights": [
    "2-3 notable patterns found in the data."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Analyze the following %d nights of sleep diary data:

%s

Current sleep metrics:
- Average sleep duration: %.0f minutes
- Average sleep quality: %.1f/5
- Schedule consistency: %d%%
- Nights in the ideal 7-9h range: %.1f%%
- Nights rated 4 or better: %.1f%%

Respond in the required JSON format.`

// AdviceOutput is the structured reply parsed from the model. The model may
// volunteer a score; the caller ignores it and computes its own.
type AdviceOutput struct {
	Analysis        string   `json:"analysis"`
	Recommendations []string `json:"recommendations"`
	Insights        []string `json:"insights"`
	Score           *int     `json:"score,omitempty"`
}

// AdviceLLM is the interface for generating narrative sleep advice.
type AdviceLLM interface {
	// GenerateAdvice produces a narrative analysis of the given entries and
	// summary. Implementations return ErrUnavailable, ErrRequest or
	// ErrMalformedResponse; callers convert all of these to fallback advice.
	GenerateAdvice(ctx context.Context, entries []stats.Entry, summary stats.Summary) (*AdviceOutput, error)

	// Model reports the model name used for generation.
	Model() string
}

// OpenAIClient implements AdviceLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI advice client.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model, systemPrompt string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// Model returns the configured model name.
func (c *OpenAIClient) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}

// GenerateAdvice calls OpenAI with a single attempt and parses the reply.
func (c *OpenAIClient) GenerateAdvice(ctx context.Context, entries []stats.Entry, summary stats.Summary) (*AdviceOutput, error) {
	if c == nil {
		return nil, ErrUnavailable
	}

	userPrompt := buildUserPrompt(entries, summary)

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrMalformedResponse)
	}

	return parseAdviceReply(resp.Choices[0].Message.Content)
}

// buildUserPrompt renders one row per night plus the aggregate metrics.
func buildUserPrompt(entries []stats.Entry, summary stats.Summary) string {
	var rows strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&rows, "%s: %s-%s (%d min, quality %d/5)\n",
			e.Date, e.SleepTime, e.WakeTime, e.Duration, e.Quality)
	}

	return fmt.Sprintf(userPromptTemplate,
		summary.TotalEntries,
		rows.String(),
		summary.AvgDuration,
		summary.AvgQuality,
		summary.ConsistencyScore,
		summary.IdealDurationRate,
		summary.GoodQualityRate,
	)
}

// parseAdviceReply validates the strict-JSON contract: analysis plus two
// non-nil lists. Anything else is a malformed response.
func parseAdviceReply(content string) (*AdviceOutput, error) {
	var output AdviceOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if output.Analysis == "" {
		return nil, fmt.Errorf("%w: missing analysis", ErrMalformedResponse)
	}
	if output.Recommendations == nil {
		return nil, fmt.Errorf("%w: missing recommendations", ErrMalformedResponse)
	}
	if output.Insights == nil {
		return nil, fmt.Errorf("%w: missing insights", ErrMalformedResponse)
	}

	return &output, nil
}

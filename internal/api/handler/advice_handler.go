package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/slumberlog/sleep-diary/internal/api/middleware"
	"github.com/slumberlog/sleep-diary/internal/api/validation"
	"github.com/slumberlog/sleep-diary/internal/domain"
	"github.com/slumberlog/sleep-diary/internal/langfuse"
	"github.com/slumberlog/sleep-diary/internal/service"
	"github.com/slumberlog/sleep-diary/internal/stats"
	"github.com/slumberlog/sleep-diary/pkg/problem"
)

type AdviceHandler struct {
	service  service.AdviceService
	langfuse langfuse.Client
}

func NewAdviceHandler(service service.AdviceService, langfuseClient langfuse.Client) *AdviceHandler {
	return &AdviceHandler{
		service:  service,
		langfuse: langfuseClient,
	}
}

// Get handles GET /v1/advice
// @Summary Personalized sleep advice
// @Description Generate a narrative analysis of the recent sleep window. Uses a language model when configured; otherwise (or on any model failure) deterministic rule-based advice is returned. The score is always computed locally.
// @Tags advice
// @Produce json
// @Security BearerAuth
// @Param days query integer false "Window size in days (1-30)" default(7) minimum(1) maximum(30)
// @Success 200 {object} domain.AdviceResponse "Advice with provenance metadata"
// @Failure 400 {object} problem.Problem "No sleep data, or too many records in the window"
// @Failure 401 {object} problem.Problem "Not authenticated"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /advice [get]
func (h *AdviceHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		problem.Unauthorized("Not authenticated").Write(w)
		return
	}

	days := service.DefaultAdviceWindowDays
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 1 || parsed > stats.MaxAnalysisEntries {
			problem.ValidationError("Invalid query parameters", []problem.FieldError{{
				Field:   "days",
				Message: "must be an integer between 1 and 30",
			}}).Write(w)
			return
		}
		days = parsed
	}

	response, err := h.service.Generate(r.Context(), user.ID, days)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoSleepData):
			problem.BadRequest("No sleep records in the requested window").Write(w)
		case errors.Is(err, domain.ErrTooManyRecords):
			problem.BadRequest("Too many sleep records in the requested window; narrow the range").Write(w)
		default:
			problem.InternalError("Failed to generate advice").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// PostFeedback handles POST /v1/advice/feedback
// @Summary Rate sleep advice
// @Description Attach a user rating to a previously generated advice trace. Fire-and-forget; always returns 204 once the payload validates.
// @Tags advice
// @Accept json
// @Security BearerAuth
// @Param request body domain.AdviceFeedbackRequest true "Rating"
// @Success 204 "Feedback recorded"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 401 {object} problem.Problem "Not authenticated"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Router /advice/feedback [post]
func (h *AdviceHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		problem.Unauthorized("Not authenticated").Write(w)
		return
	}

	var req domain.AdviceFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	// Scores are shipped asynchronously; a disabled client is a no-op.
	_ = h.langfuse.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "advice_rating",
		Value:   float64(req.Rating),
		Comment: req.Comment,
	})

	w.WriteHeader(http.StatusNoContent)
}

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/slumberlog/sleep-diary/internal/api/middleware"
	"github.com/slumberlog/sleep-diary/internal/service"
	"github.com/slumberlog/sleep-diary/pkg/problem"
)

const maxStatisticsWindowDays = 365

type StatisticsHandler struct {
	service service.StatisticsService
}

func NewStatisticsHandler(service service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{service: service}
}

// Get handles GET /v1/statistics
// @Summary Sleep statistics
// @Description Aggregate sleep statistics over a trailing window: averages, consistency, trend, quality distribution, weekday pattern and rule-based insights.
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Param days query integer false "Window size in days (1-365)" default(30) minimum(1) maximum(365)
// @Success 200 {object} domain.StatisticsResponse "Aggregated statistics"
// @Failure 401 {object} problem.Problem "Not authenticated"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /statistics [get]
func (h *StatisticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		problem.Unauthorized("Not authenticated").Write(w)
		return
	}

	days := service.DefaultStatisticsWindowDays
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 1 || parsed > maxStatisticsWindowDays {
			problem.ValidationError("Invalid query parameters", []problem.FieldError{{
				Field:   "days",
				Message: "must be an integer between 1 and 365",
			}}).Write(w)
			return
		}
		days = parsed
	}

	response, err := h.service.Compute(r.Context(), user.ID, days)
	if err != nil {
		problem.InternalError("Failed to compute statistics").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

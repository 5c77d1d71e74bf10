package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/slumberlog/sleep-diary/internal/api/middleware"
	"github.com/slumberlog/sleep-diary/internal/api/validation"
	"github.com/slumberlog/sleep-diary/internal/domain"
	"github.com/slumberlog/sleep-diary/internal/service"
	"github.com/slumberlog/sleep-diary/pkg/problem"
)

const dateLayout = "2006-01-02"

type SleepRecordHandler struct {
	service service.SleepRecordService
}

func NewSleepRecordHandler(service service.SleepRecordService) *SleepRecordHandler {
	return &SleepRecordHandler{service: service}
}

// Create handles POST /v1/sleep-records
// @Summary Record a night's sleep
// @Description Store one night's sleep for the authenticated user. One record per calendar day; the duration is computed from the clock times and handles crossing midnight.
// @Tags sleep-records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.CreateSleepRecordRequest true "Night's sleep"
// @Success 201 {object} domain.SleepRecordResponse "Record created"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 401 {object} problem.Problem "Not authenticated"
// @Failure 409 {object} problem.Problem "A record already exists for that date"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-records [post]
func (h *SleepRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		problem.Unauthorized("Not authenticated").Write(w)
		return
	}

	var req domain.CreateSleepRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	record, err := h.service.Create(r.Context(), user.ID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateDate) {
			problem.Conflict("A sleep record already exists for that date").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid sleep or wake time").Write(w)
			return
		}
		problem.InternalError("Failed to create sleep record").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record.ToResponse())
}

// GetByID handles GET /v1/sleep-records/{recordId}
// @Summary Get a sleep record
// @Tags sleep-records
// @Produce json
// @Security BearerAuth
// @Param recordId path string true "Record UUID" format(uuid)
// @Success 200 {object} domain.SleepRecordResponse "The record"
// @Failure 400 {object} problem.Problem "Invalid record ID"
// @Failure 401 {object} problem.Problem "Not authenticated"
// @Failure 404 {object} problem.Problem "Record not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-records/{recordId} [get]
func (h *SleepRecordHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		problem.Unauthorized("Not authenticated").Write(w)
		return
	}

	recordID, err := uuid.Parse(chi.URLParam(r, "recordId"))
	if err != nil {
		problem.BadRequest("Invalid record ID format").Write(w)
		return
	}

	record, err := h.service.GetByID(r.Context(), user.ID, recordID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Sleep record not found").Write(w)
			return
		}
		problem.InternalError("Failed to fetch sleep record").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record.ToResponse())
}

// Update handles PATCH /v1/sleep-records/{recordId}
// @Summary Update a sleep record
// @Description Change any subset of the record's fields. The duration is recomputed when a clock time changes.
// @Tags sleep-records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recordId path string true "Record UUID" format(uuid)
// @Param request body domain.UpdateSleepRecordRequest true "Fields to change"
// @Success 200 {object} domain.SleepRecordResponse "Updated record"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 401 {object} problem.Problem "Not authenticated"
// @Failure 404 {object} problem.Problem "Record not found"
// @Failure 409 {object} problem.Problem "A record already exists for the target date"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-records/{recordId} [patch]
func (h *SleepRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		problem.Unauthorized("Not authenticated").Write(w)
		return
	}

	recordID, err := uuid.Parse(chi.URLParam(r, "recordId"))
	if err != nil {
		problem.BadRequest("Invalid record ID format").Write(w)
		return
	}

	var req domain.UpdateSleepRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	record, err := h.service.Update(r.Context(), user.ID, recordID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Sleep record not found").Write(w)
		case errors.Is(err, domain.ErrDuplicateDate):
			problem.Conflict("A sleep record already exists for that date").Write(w)
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest("Invalid sleep or wake time").Write(w)
		default:
			problem.InternalError("Failed to update sleep record").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record.ToResponse())
}

// Delete handles DELETE /v1/sleep-records/{recordId}
// @Summary Delete a sleep record
// @Tags sleep-records
// @Security BearerAuth
// @Param recordId path string true "Record UUID" format(uuid)
// @Success 204 "Record deleted"
// @Failure 400 {object} problem.Problem "Invalid record ID"
// @Failure 401 {object} problem.Problem "Not authenticated"
// @Failure 404 {object} problem.Problem "Record not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-records/{recordId} [delete]
func (h *SleepRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		problem.Unauthorized("Not authenticated").Write(w)
		return
	}

	recordID, err := uuid.Parse(chi.URLParam(r, "recordId"))
	if err != nil {
		problem.BadRequest("Invalid record ID format").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), user.ID, recordID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Sleep record not found").Write(w)
			return
		}
		problem.InternalError("Failed to delete sleep record").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /v1/sleep-records
// @Summary List sleep records
// @Description Fetch the authenticated user's sleep history, newest date first, with cursor pagination.
// @Tags sleep-records
// @Produce json
// @Security BearerAuth
// @Param from query string false "Inclusive lower date bound (YYYY-MM-DD)" format(date) example(2024-01-01)
// @Param to query string false "Inclusive upper date bound (YYYY-MM-DD)" format(date) example(2024-01-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SleepRecordListResponse "Records with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 401 {object} problem.Problem "Not authenticated"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-records [get]
func (h *SleepRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		problem.Unauthorized("Not authenticated").Write(w)
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), user.ID, filter)
	if err != nil {
		problem.InternalError("Failed to list sleep records").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseListFilter(r *http.Request) (domain.SleepRecordFilter, []problem.FieldError) {
	var filter domain.SleepRecordFilter
	var fieldErrors []problem.FieldError

	if from := r.URL.Query().Get("from"); from != "" {
		if !validDate(from) {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a date in YYYY-MM-DD format",
			})
		} else {
			filter.From = from
		}
	}

	if to := r.URL.Query().Get("to"); to != "" {
		if !validDate(to) {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a date in YYYY-MM-DD format",
			})
		} else {
			filter.To = to
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	return filter, fieldErrors
}

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

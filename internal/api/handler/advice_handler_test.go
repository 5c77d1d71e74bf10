package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/slumberlog/sleep-diary/internal/domain"
)

func TestAdviceHandler_Get(t *testing.T) {
	user := &domain.User{ID: uuid.New()}

	t.Run("returns advice", func(t *testing.T) {
		h := NewAdviceHandler(&MockAdviceService{}, &MockLangfuseClient{})

		req := authedRequest(http.MethodGet, "/v1/advice", "", user)
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
		}
		var resp domain.AdviceResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if resp.Advice.Analysis == "" {
			t.Error("analysis missing")
		}
		if resp.Advice.Score < 1 || resp.Advice.Score > 100 {
			t.Errorf("score = %d, want 1-100", resp.Advice.Score)
		}
	})

	t.Run("custom window", func(t *testing.T) {
		var gotDays int
		h := NewAdviceHandler(&MockAdviceService{
			generateFunc: func(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AdviceResponse, error) {
				gotDays = windowDays
				return &domain.AdviceResponse{}, nil
			},
		}, &MockLangfuseClient{})

		req := authedRequest(http.MethodGet, "/v1/advice?days=14", "", user)
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if gotDays != 14 {
			t.Errorf("days = %d, want 14", gotDays)
		}
	})

	t.Run("rejects out-of-range windows", func(t *testing.T) {
		h := NewAdviceHandler(&MockAdviceService{}, &MockLangfuseClient{})

		for _, days := range []string{"0", "31", "x"} {
			req := authedRequest(http.MethodGet, "/v1/advice?days="+days, "", user)
			rec := httptest.NewRecorder()
			h.Get(rec, req)

			if rec.Code != http.StatusUnprocessableEntity {
				t.Errorf("days=%s: status = %d, want 422", days, rec.Code)
			}
		}
	})

	t.Run("no sleep data", func(t *testing.T) {
		h := NewAdviceHandler(&MockAdviceService{
			generateFunc: func(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AdviceResponse, error) {
				return nil, domain.ErrNoSleepData
			},
		}, &MockLangfuseClient{})

		req := authedRequest(http.MethodGet, "/v1/advice", "", user)
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("too many records", func(t *testing.T) {
		h := NewAdviceHandler(&MockAdviceService{
			generateFunc: func(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AdviceResponse, error) {
				return nil, domain.ErrTooManyRecords
			},
		}, &MockLangfuseClient{})

		req := authedRequest(http.MethodGet, "/v1/advice", "", user)
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("not authenticated", func(t *testing.T) {
		h := NewAdviceHandler(&MockAdviceService{}, &MockLangfuseClient{})

		req := authedRequest(http.MethodGet, "/v1/advice", "", nil)
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}

func TestAdviceHandler_PostFeedback(t *testing.T) {
	user := &domain.User{ID: uuid.New()}

	t.Run("records a score", func(t *testing.T) {
		lf := &MockLangfuseClient{}
		h := NewAdviceHandler(&MockAdviceService{}, lf)

		body := `{"trace_id": "trace-123", "rating": 4, "comment": "Helped a lot"}`
		req := authedRequest(http.MethodPost, "/v1/advice/feedback", body, user)
		rec := httptest.NewRecorder()
		h.PostFeedback(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204; body: %s", rec.Code, rec.Body.String())
		}
		if len(lf.scores) != 1 {
			t.Fatalf("scores recorded = %d, want 1", len(lf.scores))
		}
		score := lf.scores[0]
		if score.TraceID != "trace-123" || score.Value != 4 || score.Comment != "Helped a lot" {
			t.Errorf("score = %+v", score)
		}
		if score.Name != "advice_rating" {
			t.Errorf("score name = %q, want advice_rating", score.Name)
		}
	})

	t.Run("validates the rating range", func(t *testing.T) {
		lf := &MockLangfuseClient{}
		h := NewAdviceHandler(&MockAdviceService{}, lf)

		for _, body := range []string{
			`{"trace_id": "trace-123", "rating": 0}`,
			`{"trace_id": "trace-123", "rating": 6}`,
			`{"rating": 4}`,
		} {
			req := authedRequest(http.MethodPost, "/v1/advice/feedback", body, user)
			rec := httptest.NewRecorder()
			h.PostFeedback(rec, req)

			if rec.Code != http.StatusUnprocessableEntity {
				t.Errorf("body %s: status = %d, want 422", body, rec.Code)
			}
		}
		if len(lf.scores) != 0 {
			t.Errorf("scores recorded = %d, want 0", len(lf.scores))
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		h := NewAdviceHandler(&MockAdviceService{}, &MockLangfuseClient{})

		req := authedRequest(http.MethodPost, "/v1/advice/feedback", `{nope`, user)
		rec := httptest.NewRecorder()
		h.PostFeedback(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

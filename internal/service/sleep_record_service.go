package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/slumberlog/sleep-diary/internal/domain"
	"github.com/slumberlog/sleep-diary/internal/repository"
	"github.com/slumberlog/sleep-diary/pkg/clock"
	"github.com/slumberlog/sleep-diary/pkg/pagination"
)

type SleepRecordService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error)
	GetByID(ctx context.Context, userID, recordID uuid.UUID) (*domain.SleepRecord, error)
	Update(ctx context.Context, userID, recordID uuid.UUID, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecord, error)
	Delete(ctx context.Context, userID, recordID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error)
}

type sleepRecordService struct {
	repo repository.SleepRecordRepository
}

func NewSleepRecordService(repo repository.SleepRecordRepository) SleepRecordService {
	return &sleepRecordService{repo: repo}
}

// Create stores a night's sleep. The duration is always computed server-side
// from the clock strings; one record per user per calendar day.
func (s *sleepRecordService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error) {
	duration, err := clock.Duration(req.SleepTime, req.WakeTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	existing, err := s.repo.GetByUserAndDate(ctx, userID, req.Date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateDate
	}

	record := &domain.SleepRecord{
		UserID:    userID,
		Date:      req.Date,
		SleepTime: req.SleepTime,
		WakeTime:  req.WakeTime,
		Duration:  duration,
		Quality:   req.Quality,
		Notes:     req.Notes,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *sleepRecordService) GetByID(ctx context.Context, userID, recordID uuid.UUID) (*domain.SleepRecord, error) {
	record, err := s.repo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	// Ownership check: other users' records are indistinguishable from absent ones.
	if record.UserID != userID {
		return nil, domain.ErrNotFound
	}

	return record, nil
}

// Update applies the present fields and recomputes the duration whenever
// either clock time changes. Moving a record onto a day that already has one
// is a conflict.
func (s *sleepRecordService) Update(ctx context.Context, userID, recordID uuid.UUID, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecord, error) {
	record, err := s.GetByID(ctx, userID, recordID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil && *req.Date != record.Date {
		other, err := s.repo.GetByUserAndDate(ctx, userID, *req.Date)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicateDate
		}
		record.Date = *req.Date
	}

	clockChanged := false
	if req.SleepTime != nil {
		record.SleepTime = *req.SleepTime
		clockChanged = true
	}
	if req.WakeTime != nil {
		record.WakeTime = *req.WakeTime
		clockChanged = true
	}
	if clockChanged {
		duration, err := clock.Duration(record.SleepTime, record.WakeTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		record.Duration = duration
	}

	if req.Quality != nil {
		record.Quality = *req.Quality
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *sleepRecordService) Delete(ctx context.Context, userID, recordID uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, recordID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, recordID)
}

func (s *sleepRecordService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error) {
	records, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(records) > limit

	// Trim to actual limit
	if hasMore {
		records = records[:limit]
	}

	response := &domain.SleepRecordListResponse{
		Data: make([]domain.SleepRecordResponse, len(records)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, record := range records {
		response.Data[i] = record.ToResponse()
	}

	if hasMore && len(records) > 0 {
		last := records[len(records)-1]
		cursor := &pagination.Cursor{
			ID:   last.ID,
			Date: last.Date,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

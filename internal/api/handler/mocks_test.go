package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/slumberlog/sleep-diary/internal/domain"
	"github.com/slumberlog/sleep-diary/internal/langfuse"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	registerFunc     func(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error)
	loginFunc        func(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error)
	logoutFunc       func(ctx context.Context, token string) error
	authenticateFunc func(ctx context.Context, token string) (*domain.User, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, req)
	}
	return &domain.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, req)
	}
	return &domain.LoginResponse{
		Token:     "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
		User:      domain.UserResponse{ID: uuid.New(), Email: req.Email},
	}, nil
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, token)
	}
	return nil
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if m.authenticateFunc != nil {
		return m.authenticateFunc(ctx, token)
	}
	return nil, domain.ErrSessionExpired
}

// MockSleepRecordService is a mock implementation of SleepRecordService
type MockSleepRecordService struct {
	createFunc  func(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error)
	getByIDFunc func(ctx context.Context, userID, recordID uuid.UUID) (*domain.SleepRecord, error)
	updateFunc  func(ctx context.Context, userID, recordID uuid.UUID, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecord, error)
	deleteFunc  func(ctx context.Context, userID, recordID uuid.UUID) error
	listFunc    func(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error)
}

func (m *MockSleepRecordService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.SleepRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      req.Date,
		SleepTime: req.SleepTime,
		WakeTime:  req.WakeTime,
		Duration:  480,
		Quality:   req.Quality,
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockSleepRecordService) GetByID(ctx context.Context, userID, recordID uuid.UUID) (*domain.SleepRecord, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, userID, recordID)
	}
	return &domain.SleepRecord{
		ID:        recordID,
		UserID:    userID,
		Date:      "2024-01-15",
		SleepTime: "23:00",
		WakeTime:  "07:00",
		Duration:  480,
		Quality:   4,
	}, nil
}

func (m *MockSleepRecordService) Update(ctx context.Context, userID, recordID uuid.UUID, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecord, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, recordID, req)
	}
	return &domain.SleepRecord{
		ID:        recordID,
		UserID:    userID,
		Date:      "2024-01-15",
		SleepTime: "23:00",
		WakeTime:  "07:00",
		Duration:  480,
		Quality:   4,
	}, nil
}

func (m *MockSleepRecordService) Delete(ctx context.Context, userID, recordID uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, recordID)
	}
	return nil
}

func (m *MockSleepRecordService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.SleepRecordListResponse{
		Data:       []domain.SleepRecordResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockStatisticsService is a mock implementation of StatisticsService
type MockStatisticsService struct {
	computeFunc func(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.StatisticsResponse, error)
}

func (m *MockStatisticsService) Compute(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.StatisticsResponse, error) {
	if m.computeFunc != nil {
		return m.computeFunc(ctx, userID, windowDays)
	}
	return &domain.StatisticsResponse{
		SleepTrend:          []domain.TrendPoint{},
		QualityDistribution: []domain.QualityBucket{},
		WeeklyPattern:       []domain.WeekdayStats{},
		Insights:            []string{},
	}, nil
}

// MockAdviceService is a mock implementation of AdviceService
type MockAdviceService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AdviceResponse, error)
}

func (m *MockAdviceService) Generate(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AdviceResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID, windowDays)
	}
	return &domain.AdviceResponse{
		Advice: domain.SleepAdvice{
			Analysis:        "Stable pattern.",
			Recommendations: []string{"Keep it up."},
			Insights:        []string{"Consistent bedtimes."},
			Score:           80,
		},
		Metadata: domain.AdviceMetadata{
			AnalyzedDays: windowDays,
			Fallback:     true,
			GeneratedAt:  time.Now(),
		},
	}, nil
}

// MockLangfuseClient is a mock implementation of langfuse.Client
type MockLangfuseClient struct {
	scores []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return true
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}

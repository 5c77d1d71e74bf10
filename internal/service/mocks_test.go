package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/slumberlog/sleep-diary/internal/domain"
	"github.com/slumberlog/sleep-diary/internal/llm"
	"github.com/slumberlog/sleep-diary/internal/stats"
	"github.com/slumberlog/sleep-diary/pkg/pagination"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users   map[uuid.UUID]*domain.User
	byEmail map[string]*domain.User
	err     error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:   make(map[uuid.UUID]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	m.byEmail[user.Email] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.byEmail[email]
	return ok, nil
}

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	sessions map[string]*domain.Session
	err      error
}

func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{
		sessions: make(map[string]*domain.Session),
	}
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if m.err != nil {
		return m.err
	}
	session.CreatedAt = time.Now()
	m.sessions[session.Token] = session
	return nil
}

func (m *MockSessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	session, ok := m.sessions[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

func (m *MockSessionRepository) Delete(ctx context.Context, token string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.sessions, token)
	return nil
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) error {
	if m.err != nil {
		return m.err
	}
	for token, session := range m.sessions {
		if session.Expired(now) {
			delete(m.sessions, token)
		}
	}
	return nil
}

// MockSleepRecordRepository is a mock implementation of SleepRecordRepository
type MockSleepRecordRepository struct {
	records map[uuid.UUID]*domain.SleepRecord
	err     error
}

func NewMockSleepRecordRepository() *MockSleepRecordRepository {
	return &MockSleepRecordRepository{
		records: make(map[uuid.UUID]*domain.SleepRecord),
	}
}

func (m *MockSleepRecordRepository) Create(ctx context.Context, record *domain.SleepRecord) error {
	if m.err != nil {
		return m.err
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	m.records[record.ID] = record
	return nil
}

func (m *MockSleepRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	record, ok := m.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

func (m *MockSleepRecordRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, record := range m.records {
		if record.UserID == userID && record.Date == date {
			return record, nil
		}
	}
	return nil, nil
}

func (m *MockSleepRecordRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) ([]domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := m.forUser(userID, filter.From, filter.To)
	if filter.Cursor != "" {
		if cursor, err := pagination.DecodeCursor(filter.Cursor); err == nil && cursor != nil {
			var after []domain.SleepRecord
			for _, record := range result {
				if record.Date < cursor.Date || (record.Date == cursor.Date && record.ID.String() < cursor.ID.String()) {
					after = append(after, record)
				}
			}
			result = after
		}
	}
	// Fetch one extra like the real repository, so the service can detect
	// whether more pages exist.
	limit := pagination.NormalizeLimit(filter.Limit) + 1
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockSleepRecordRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.forUser(userID, from, to), nil
}

func (m *MockSleepRecordRepository) Update(ctx context.Context, record *domain.SleepRecord) error {
	if m.err != nil {
		return m.err
	}
	record.UpdatedAt = time.Now()
	m.records[record.ID] = record
	return nil
}

func (m *MockSleepRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	delete(m.records, id)
	return nil
}

// forUser filters by user and date bounds and sorts newest date first, the
// same ordering the real repository returns.
func (m *MockSleepRecordRepository) forUser(userID uuid.UUID, from, to string) []domain.SleepRecord {
	var result []domain.SleepRecord
	for _, record := range m.records {
		if record.UserID != userID {
			continue
		}
		if from != "" && record.Date < from {
			continue
		}
		if to != "" && record.Date > to {
			continue
		}
		result = append(result, *record)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})
	return result
}

// MockAdviceLLM is a mock implementation of llm.AdviceLLM
type MockAdviceLLM struct {
	output  *llm.AdviceOutput
	err     error
	calls   int
	entries []stats.Entry
}

func (m *MockAdviceLLM) GenerateAdvice(ctx context.Context, entries []stats.Entry, summary stats.Summary) (*llm.AdviceOutput, error) {
	m.calls++
	m.entries = entries
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

func (m *MockAdviceLLM) Model() string {
	return "test-model"
}

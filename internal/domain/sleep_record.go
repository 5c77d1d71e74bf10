package domain

import (
	"time"

	"github.com/google/uuid"
)

// SleepRecord is one user's record of a single night's sleep. Records are
// keyed by (user, calendar day); clock times are stored as the HH:MM strings
// the user entered and the duration in minutes is computed server-side.
type SleepRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sleep_records_user_date" json:"user_id"`
	Date      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_sleep_records_user_date" json:"date"`
	SleepTime string    `gorm:"type:varchar(5);not null" json:"sleep_time"`
	WakeTime  string    `gorm:"type:varchar(5);not null" json:"wake_time"`
	Duration  int       `gorm:"not null" json:"duration"`
	Quality   int       `gorm:"type:smallint;not null" json:"quality"`
	Notes     *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepRecord) TableName() string {
	return "sleep_records"
}

// CreateSleepRecordRequest is the request body for recording a night's sleep.
// @Description Request payload for creating a sleep record.
type CreateSleepRecordRequest struct {
	// Calendar day the sleep belongs to (YYYY-MM-DD)
	Date string `json:"date" validate:"required,datetime=2006-01-02" example:"2024-01-15"`
	// Bedtime as HH:MM
	SleepTime string `json:"sleep_time" validate:"required,clock" example:"23:00"`
	// Wake-up time as HH:MM (may be earlier than sleep_time when crossing midnight)
	WakeTime string `json:"wake_time" validate:"required,clock" example:"07:00"`
	// Subjective quality rating from 1 (worst) to 5 (best)
	Quality int `json:"quality" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Optional free-form notes
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=2000" example:"Late coffee"`
}

// UpdateSleepRecordRequest is the request body for editing a sleep record.
// Only present fields are changed; the duration is recomputed when either
// clock time changes.
// @Description Request payload for updating a sleep record.
type UpdateSleepRecordRequest struct {
	Date      *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-01-15"`
	SleepTime *string `json:"sleep_time,omitempty" validate:"omitempty,clock" example:"22:30"`
	WakeTime  *string `json:"wake_time,omitempty" validate:"omitempty,clock" example:"06:30"`
	Quality   *int    `json:"quality,omitempty" validate:"omitempty,min=1,max=5" example:"3"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// SleepRecordResponse is the response body for sleep record endpoints.
// @Description A stored sleep record.
type SleepRecordResponse struct {
	ID        uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID    uuid.UUID `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	Date      string    `json:"date" example:"2024-01-15"`
	SleepTime string    `json:"sleep_time" example:"23:00"`
	WakeTime  string    `json:"wake_time" example:"07:00"`
	// Duration in minutes, overnight-aware
	Duration  int       `json:"duration" example:"480"`
	Quality   int       `json:"quality" example:"4"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-16T07:05:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-16T07:05:00Z"`
}

func (s *SleepRecord) ToResponse() SleepRecordResponse {
	return SleepRecordResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		Date:      s.Date,
		SleepTime: s.SleepTime,
		WakeTime:  s.WakeTime,
		Duration:  s.Duration,
		Quality:   s.Quality,
		Notes:     s.Notes,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// SleepRecordListResponse is the response body for listing sleep records.
// @Description Paginated list of sleep records, newest date first.
type SleepRecordListResponse struct {
	Data       []SleepRecordResponse `json:"data"`
	Pagination PaginationResponse    `json:"pagination"`
}

// PaginationResponse contains cursor pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// SleepRecordFilter contains filter parameters for listing sleep records.
type SleepRecordFilter struct {
	From   string // inclusive YYYY-MM-DD lower bound
	To     string // inclusive YYYY-MM-DD upper bound
	Limit  int
	Cursor string
}

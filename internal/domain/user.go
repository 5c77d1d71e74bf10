package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(100);not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// RegisterRequest is the request body for creating an account.
// @Description Request payload for user registration.
type RegisterRequest struct {
	// Display name
	Name string `json:"name" validate:"required,min=1,max=100" example:"Dana"`
	// Email address (used for login, must be unique)
	Email string `json:"email" validate:"required,email,max=255" example:"dana@example.com"`
	// Password (8-72 characters)
	Password string `json:"password" validate:"required,min=8,max=72" example:"hunter2hunter2"`
}

// LoginRequest is the request body for logging in.
// @Description Request payload for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"dana@example.com"`
	Password string `json:"password" validate:"required" example:"hunter2hunter2"`
}

// UserResponse is the public view of a user.
// @Description User account details.
type UserResponse struct {
	ID        uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"Dana"`
	Email     string    `json:"email" example:"dana@example.com"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T09:00:00Z"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// LoginResponse is returned on successful authentication.
// @Description Session token plus the authenticated user.
type LoginResponse struct {
	// Opaque bearer token for subsequent requests
	Token string `json:"token" example:"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"`
	// Token expiry timestamp
	ExpiresAt time.Time    `json:"expires_at" example:"2024-01-08T09:00:00Z"`
	User      UserResponse `json:"user"`
}

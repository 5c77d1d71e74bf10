package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicateDate      = errors.New("sleep record for this date already exists")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionExpired     = errors.New("session expired or invalid")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNoSleepData        = errors.New("no sleep data to analyze")
	ErrTooManyRecords     = errors.New("too many sleep records for analysis")
)

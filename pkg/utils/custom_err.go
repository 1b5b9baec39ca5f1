package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrTripNotFound       = errors.New("trip not found")
	ErrDayNotFound        = errors.New("day not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDatabaseError      = errors.New("database error")
)

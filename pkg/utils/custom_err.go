package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidDateRange   = errors.New("end date is before start date")
	ErrTripTooLong        = errors.New("trip is too long")
	ErrUnknownCategory    = errors.New("unknown preference category")
	ErrNoCandidates       = errors.New("no points of interest found for destination")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
	ErrPOINotFound        = errors.New("poi not found")
	ErrJourneyNotFound    = errors.New("journey not found")
	ErrDayNotFound        = errors.New("journey day not found")
	ErrForbidden          = errors.New("journey belongs to another account")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrSuggestionFailed   = errors.New("poi suggestion provider failed")
)

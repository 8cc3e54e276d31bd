package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
	ErrInvalidCoordinate  = errors.New("invalid coordinate")
	ErrItineraryNotFound  = errors.New("itinerary not found")
	ErrLocationNotFound   = errors.New("location not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrNotOwner           = errors.New("itinerary does not belong to account")
)

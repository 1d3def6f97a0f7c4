package domain

import "errors"

var (
	// ErrInvalidDateRange end date is before start date
	ErrInvalidDateRange = errors.New("domain: end date is before start date")

	// ErrMissingDates start or end date is not set
	ErrMissingDates = errors.New("domain: start and end dates are required")

	// ErrInvalidPrice price per day is not positive
	ErrInvalidPrice = errors.New("domain: price per day must be positive")

	// ErrInvalidStatus unknown reservation status
	ErrInvalidStatus = errors.New("domain: invalid reservation status")

	// ErrInvalidProjection unknown read model projection
	ErrInvalidProjection = errors.New("domain: invalid projection")
)

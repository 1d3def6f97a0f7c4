package domain

import "time"

// Quote result of pricing a date range
type Quote struct {
	Days       int
	TotalPrice float64
}

// ComputePrice returns pricePerDay * days for the inclusive range.
// A same-day rental bills one day.
func ComputePrice(pricePerDay float64, startDate, endDate time.Time) (Quote, error) {
	if pricePerDay <= 0 {
		return Quote{}, ErrInvalidPrice
	}

	period, err := NewDateRange(startDate, endDate)
	if err != nil {
		return Quote{}, err
	}

	days := period.Days()
	return Quote{
		Days:       days,
		TotalPrice: float64(days) * pricePerDay,
	}, nil
}

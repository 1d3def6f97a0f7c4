package domain

import "time"

// Car is a catalog entry. The reservation core only reads it.
type Car struct {
	ID           int64
	Name         string
	Brand        string
	Model        string
	Type         string
	PricePerDay  float64
	Fuel         string
	Transmission string
	Seats        int
	Location     string
	Description  string
	// Availability is set by an admin and is advisory for booking;
	// date conflicts are decided by existing reservations.
	Availability bool
	CreatedAt    time.Time
}

// CarFilter catalog search filters, nil means no filtering
type CarFilter struct {
	Type         *string
	Brand        *string
	Fuel         *string
	Transmission *string
	MinPrice     *float64
	MaxPrice     *float64
	Seats        *int
	Availability *bool
	Location     *string
}

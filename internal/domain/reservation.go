package domain

import (
	"fmt"
	"time"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// validTransitions is the reservation state machine.
// cancelled and completed are terminal.
var validTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
	StatusCancelled: {},
	StatusCompleted: {},
}

// IsValid returns true if the status is a known reservation status
func (s ReservationStatus) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// IsActive returns true if a reservation in this status blocks overlapping bookings
func (s ReservationStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo returns true if the state machine allows moving to target
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible
func (s ReservationStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

func (s ReservationStatus) String() string {
	return string(s)
}

// ParseReservationStatus converts a string to a ReservationStatus
func ParseReservationStatus(s string) (ReservationStatus, error) {
	status := ReservationStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

// CustomerInfo contact details captured at booking time
type CustomerInfo struct {
	Name  string
	Email string
	Phone string
}

// Reservation represents a car rental reservation
type Reservation struct {
	ID              int64
	UserID          int64
	CarID           int64
	StartDate       time.Time
	EndDate         time.Time
	TotalPrice      float64 // pricePerDay * days, fixed at creation
	Status          ReservationStatus
	PickupLocation  string
	DropoffLocation string
	CustomerInfo    *CustomerInfo

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation blocks the car for its dates
func (r *Reservation) IsActive() bool {
	return r.Status.IsActive()
}

// Period returns the inclusive date range of the reservation
func (r *Reservation) Period() DateRange {
	return DateRange{Start: r.StartDate, End: r.EndDate}
}

// IsOwnedBy returns true if the reservation belongs to the user
func (r *Reservation) IsOwnedBy(userID int64) bool {
	return r.UserID == userID
}

// CanBeTransitionedBy applies the authorization matrix:
// confirm and complete are admin-only, cancel is allowed to the owner or an admin.
func (r *Reservation) CanBeTransitionedBy(caller Caller, target ReservationStatus) bool {
	if caller.IsAdmin() {
		return true
	}
	return target == StatusCancelled && r.IsOwnedBy(caller.UserID)
}

// CanBeViewedBy returns true if the caller may read the reservation
func (r *Reservation) CanBeViewedBy(caller Caller) bool {
	return caller.IsAdmin() || r.IsOwnedBy(caller.UserID)
}

// ReservationFilter optional filters for listing reservations
type ReservationFilter struct {
	UserID *int64
	CarID  *int64
	Status *ReservationStatus
}

// Projection selects the shape of reservation read models
type Projection string

const (
	// ProjectionSummary returns reservations with ids only
	ProjectionSummary Projection = "summary"
	// ProjectionDetail resolves the nested car and user
	ProjectionDetail Projection = "detail"
)

// ParseProjection converts a string to a Projection, empty means summary
func ParseProjection(s string) (Projection, error) {
	switch Projection(s) {
	case "", ProjectionSummary:
		return ProjectionSummary, nil
	case ProjectionDetail:
		return ProjectionDetail, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidProjection, s)
	}
}

// ReservationDetail reservation with resolved car and user
type ReservationDetail struct {
	Reservation *Reservation
	Car         *Car
	User        *User
}

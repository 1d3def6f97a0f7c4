package transition_reservation

import "github.com/m04kA/SMC-CarRentalService/internal/domain"

// Request модель запроса на смену статуса
type Request struct {
	ReservationID int64
	Caller        domain.Caller
	TargetStatus  domain.ReservationStatus
}

// Response модель ответа с обновленным бронированием
type Response struct {
	Reservation    *domain.Reservation
	PreviousStatus domain.ReservationStatus
}

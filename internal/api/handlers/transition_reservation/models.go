package transition_reservation

import (
	"github.com/m04kA/SMC-CarRentalService/internal/service/reservations/models"
	transitionReservation "github.com/m04kA/SMC-CarRentalService/internal/usecase/transition_reservation"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // confirmed | cancelled | completed
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	models.ReservationSummary
	PreviousStatus string `json:"previousStatus"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *transitionReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ReservationSummary: *models.FromDomainReservation(resp.Reservation),
		PreviousStatus:     string(resp.PreviousStatus),
	}
}

package create_reservation

import (
	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-CarRentalService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CarID           int64                `json:"carId"`
	StartDate       string               `json:"startDate"` // "2024-06-01"
	EndDate         string               `json:"endDate"`   // "2024-06-03"
	PickupLocation  string               `json:"pickupLocation"`
	DropoffLocation string               `json:"dropoffLocation"`
	CustomerInfo    *CustomerInfoRequest `json:"customerInfo,omitempty"`

	// Цена, посчитанная клиентом. Принимается для совместимости, не используется:
	// итоговая стоимость всегда считается на сервере
	TotalPrice *float64 `json:"totalPrice,omitempty"`
}

// CustomerInfoRequest контактные данные клиента
type CustomerInfoRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	models.ReservationSummary
	Days int `json:"days"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Владелец бронирования берется из аутентификации, а не из тела запроса
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	startDate, err := handlers.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := handlers.ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	req := &createReservation.Request{
		UserID:          userID,
		CarID:           r.CarID,
		StartDate:       startDate,
		EndDate:         endDate,
		PickupLocation:  r.PickupLocation,
		DropoffLocation: r.DropoffLocation,
	}

	if r.CustomerInfo != nil {
		req.CustomerInfo = &domain.CustomerInfo{
			Name:  r.CustomerInfo.Name,
			Email: r.CustomerInfo.Email,
			Phone: r.CustomerInfo.Phone,
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ReservationSummary: *models.FromDomainReservation(resp.Reservation),
		Days:               resp.Days,
	}
}

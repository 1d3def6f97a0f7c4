package check_availability

import (
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-CarRentalService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CarID       int64   `json:"carId"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Available   bool    `json:"available"`
	Days        int     `json:"days"`
	PricePerDay float64 `json:"pricePerDay"`
	TotalPrice  float64 `json:"totalPrice"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		CarID:       resp.CarID,
		StartDate:   resp.StartDate.Format(domain.DateFormat),
		EndDate:     resp.EndDate.Format(domain.DateFormat),
		Available:   resp.Available,
		Days:        resp.Days,
		PricePerDay: resp.PricePerDay,
		TotalPrice:  resp.TotalPrice,
	}
}

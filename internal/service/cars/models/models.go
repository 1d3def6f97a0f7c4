package models

import (
	"time"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// ListCarsRequest параметры поиска по каталогу, nil - без фильтра
type ListCarsRequest struct {
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

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListCarsRequest) ToDomainFilter() domain.CarFilter {
	return domain.CarFilter{
		Type:         r.Type,
		Brand:        r.Brand,
		Fuel:         r.Fuel,
		Transmission: r.Transmission,
		MinPrice:     r.MinPrice,
		MaxPrice:     r.MaxPrice,
		Seats:        r.Seats,
		Availability: r.Availability,
		Location:     r.Location,
	}
}

// CarResponse данные автомобиля
type CarResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Type         string    `json:"type"`
	PricePerDay  float64   `json:"pricePerDay"`
	Fuel         string    `json:"fuel"`
	Transmission string    `json:"transmission"`
	Seats        int       `json:"seats"`
	Location     string    `json:"location"`
	Description  string    `json:"description,omitempty"`
	Availability bool      `json:"availability"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CarListResponse ответ со списком автомобилей
type CarListResponse struct {
	Cars  []CarResponse `json:"cars"`
	Count int           `json:"count"`
}

// FromDomainCar конвертирует domain модель в DTO
func FromDomainCar(c *domain.Car) *CarResponse {
	if c == nil {
		return nil
	}

	return &CarResponse{
		ID:           c.ID,
		Name:         c.Name,
		Brand:        c.Brand,
		Model:        c.Model,
		Type:         c.Type,
		PricePerDay:  c.PricePerDay,
		Fuel:         c.Fuel,
		Transmission: c.Transmission,
		Seats:        c.Seats,
		Location:     c.Location,
		Description:  c.Description,
		Availability: c.Availability,
		CreatedAt:    c.CreatedAt,
	}
}

// FromDomainCarList конвертирует список автомобилей в DTO
func FromDomainCarList(cars []*domain.Car) *CarListResponse {
	resp := &CarListResponse{
		Cars: make([]CarResponse, 0, len(cars)),
	}

	for _, c := range cars {
		if carResp := FromDomainCar(c); carResp != nil {
			resp.Cars = append(resp.Cars, *carResp)
		}
	}
	resp.Count = len(resp.Cars)

	return resp
}

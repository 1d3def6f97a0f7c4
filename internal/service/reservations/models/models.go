package models

import (
	"time"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// Request модели

// ListReservationsRequest запрос на получение списка бронирований
type ListReservationsRequest struct {
	Caller domain.Caller
	UserID *int64  // Фильтр по пользователю (для обычных пользователей игнорируется)
	CarID  *int64  // Фильтр по автомобилю
	Status *string // Фильтр по статусу
	View   string  // summary | detail
}

// StatsRequest запрос на получение статистики
type StatsRequest struct {
	Caller domain.Caller
	UserID *int64
	CarID  *int64
	Status *string
}

// Response модели

// CustomerInfoResponse контактные данные клиента
type CustomerInfoResponse struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ReservationSummary бронирование со ссылками на автомобиль и пользователя по ID
type ReservationSummary struct {
	ID              int64                 `json:"id"`
	UserID          int64                 `json:"userId"`
	CarID           int64                 `json:"carId"`
	StartDate       string                `json:"startDate"` // "2024-06-01"
	EndDate         string                `json:"endDate"`
	TotalPrice      float64               `json:"totalPrice"`
	Status          string                `json:"status"`
	PickupLocation  string                `json:"pickupLocation"`
	DropoffLocation string                `json:"dropoffLocation"`
	CustomerInfo    *CustomerInfoResponse `json:"customerInfo,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// ReservationDetail бронирование с вложенными автомобилем и пользователем
// Car или User равны nil, если их не удалось получить
type ReservationDetail struct {
	ReservationSummary
	Car  *CarResponse  `json:"car"`
	User *UserResponse `json:"user"`
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

// UserResponse данные пользователя
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

// ReservationResult бронирование в выбранной проекции
// Заполнено ровно одно из полей Summary или Detail
type ReservationResult struct {
	View    domain.Projection
	Summary *ReservationSummary
	Detail  *ReservationDetail
}

// Body возвращает тело ответа для выбранной проекции
func (r *ReservationResult) Body() interface{} {
	if r.View == domain.ProjectionDetail {
		return r.Detail
	}
	return r.Summary
}

// ReservationListResponse ответ со списком бронирований
// Reservations содержит []ReservationSummary или []ReservationDetail
type ReservationListResponse struct {
	View         string      `json:"view"`
	Count        int         `json:"count"`
	Reservations interface{} `json:"reservations"`
}

// StatsResponse статистика бронирований
type StatsResponse struct {
	TotalReservations     int     `json:"totalReservations"`
	PendingReservations   int     `json:"pendingReservations"`
	ConfirmedReservations int     `json:"confirmedReservations"`
	CancelledReservations int     `json:"cancelledReservations"`
	CompletedReservations int     `json:"completedReservations"`
	TotalRevenue          float64 `json:"totalRevenue"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в краткое представление
func FromDomainReservation(r *domain.Reservation) *ReservationSummary {
	if r == nil {
		return nil
	}

	resp := &ReservationSummary{
		ID:              r.ID,
		UserID:          r.UserID,
		CarID:           r.CarID,
		StartDate:       r.StartDate.Format(domain.DateFormat),
		EndDate:         r.EndDate.Format(domain.DateFormat),
		TotalPrice:      r.TotalPrice,
		Status:          string(r.Status),
		PickupLocation:  r.PickupLocation,
		DropoffLocation: r.DropoffLocation,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}

	if r.CustomerInfo != nil {
		resp.CustomerInfo = &CustomerInfoResponse{
			Name:  r.CustomerInfo.Name,
			Email: r.CustomerInfo.Email,
			Phone: r.CustomerInfo.Phone,
		}
	}

	return resp
}

// FromDomainReservationList конвертирует список бронирований в краткое представление
func FromDomainReservationList(reservations []*domain.Reservation) []ReservationSummary {
	result := make([]ReservationSummary, 0, len(reservations))
	for _, r := range reservations {
		if summary := FromDomainReservation(r); summary != nil {
			result = append(result, *summary)
		}
	}
	return result
}

// FromDomainDetail конвертирует бронирование с вложенными сущностями
func FromDomainDetail(d *domain.ReservationDetail) *ReservationDetail {
	if d == nil || d.Reservation == nil {
		return nil
	}

	return &ReservationDetail{
		ReservationSummary: *FromDomainReservation(d.Reservation),
		Car:                FromDomainCar(d.Car),
		User:               FromDomainUser(d.User),
	}
}

// FromDomainCar конвертирует domain модель автомобиля в DTO
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

// FromDomainUser конвертирует domain модель пользователя в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

// FromDomainStats конвертирует статистику в DTO
func FromDomainStats(s domain.Stats) *StatsResponse {
	return &StatsResponse{
		TotalReservations:     s.TotalReservations,
		PendingReservations:   s.PendingReservations,
		ConfirmedReservations: s.ConfirmedReservations,
		CancelledReservations: s.CancelledReservations,
		CompletedReservations: s.CompletedReservations,
		TotalRevenue:          s.TotalRevenue,
	}
}

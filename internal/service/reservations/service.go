package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	carRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/car"
	reservationRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CarRentalService/internal/service/reservations/models"
)

// Service сервис чтения бронирований и статистики
type Service struct {
	reservationRepo ReservationRepository
	carRepo         CarRepository
	userClient      UserServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	carRepo CarRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		carRepo:         carRepo,
		userClient:      userClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только свои бронирования, администратор - любые
func (s *Service) GetByID(ctx context.Context, id int64, caller domain.Caller, view string) (*models.ReservationResult, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d, view=%s", id, caller.UserID, view)

	projection, err := domain.ParseProjection(view)
	if err != nil {
		s.logger.Warn("GetByID: invalid view=%s", view)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if !reservation.CanBeViewedBy(caller) {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", caller.UserID, id)
		return nil, ErrForbidden
	}

	result := &models.ReservationResult{View: projection}
	if projection == domain.ProjectionDetail {
		details := s.resolveDetails(ctx, []*domain.Reservation{reservation})
		result.Detail = &details[0]
	} else {
		result.Summary = models.FromDomainReservation(reservation)
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return result, nil
}

// List получает бронирования с фильтрацией
// Обычный пользователь всегда получает только свои бронирования
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations for user=%d (%s), view=%s", req.Caller.UserID, req.Caller.Role, req.View)

	projection, err := domain.ParseProjection(req.View)
	if err != nil {
		s.logger.Warn("List: invalid view=%s", req.View)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	filter, err := s.buildFilter(req.Caller, req.UserID, req.CarID, req.Status)
	if err != nil {
		s.logger.Warn("List: invalid filter for user=%d: %v", req.Caller.UserID, err)
		return nil, err
	}

	reservations, err := s.listSnapshot(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.Caller.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.ReservationListResponse{
		View:  string(projection),
		Count: len(reservations),
	}
	if projection == domain.ProjectionDetail {
		resp.Reservations = s.resolveDetails(ctx, reservations)
	} else {
		resp.Reservations = models.FromDomainReservationList(reservations)
	}

	s.logger.Info("List: successfully fetched %d reservations for user=%d", len(reservations), req.Caller.UserID)
	return resp, nil
}

// Stats считает статистику бронирований, доступно только администратору
// Пересчитывается на каждый запрос
func (s *Service) Stats(ctx context.Context, req *models.StatsRequest) (*models.StatsResponse, error) {
	s.logger.Info("Stats: requested by user=%d", req.Caller.UserID)

	if !req.Caller.IsAdmin() {
		s.logger.Warn("Stats: access denied for user=%d", req.Caller.UserID)
		return nil, ErrForbidden
	}

	filter, err := s.buildFilter(req.Caller, req.UserID, req.CarID, req.Status)
	if err != nil {
		s.logger.Warn("Stats: invalid filter: %v", err)
		return nil, err
	}

	reservations, err := s.listSnapshot(ctx, filter)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	stats := domain.ComputeStats(reservations)

	s.logger.Info("Stats: %d reservations, revenue=%.2f", stats.TotalReservations, stats.TotalRevenue)
	return models.FromDomainStats(stats), nil
}

// Вспомогательные методы

// listSnapshot читает бронирования в read-only транзакции
func (s *Service) listSnapshot(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	var reservations []*domain.Reservation
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		reservations, err = s.reservationRepo.List(txCtx, filter)
		return err
	})
	return reservations, err
}

// buildFilter собирает фильтр, для обычного пользователя фильтр по пользователю фиксируется
func (s *Service) buildFilter(caller domain.Caller, userID, carID *int64, status *string) (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		UserID: userID,
		CarID:  carID,
	}

	if !caller.IsAdmin() {
		own := caller.UserID
		filter.UserID = &own
	}

	if status != nil {
		parsed, err := domain.ParseReservationStatus(*status)
		if err != nil {
			return filter, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = &parsed
	}

	return filter, nil
}

// resolveDetails подгружает автомобили и пользователей для детального представления
// Каждый автомобиль и пользователь запрашивается один раз. Ошибки получения не прерывают
// запрос: соответствующее поле остается пустым.
func (s *Service) resolveDetails(ctx context.Context, reservations []*domain.Reservation) []models.ReservationDetail {
	cars := make(map[int64]*domain.Car)
	users := make(map[int64]*domain.User)

	details := make([]models.ReservationDetail, 0, len(reservations))
	for _, r := range reservations {
		car, ok := cars[r.CarID]
		if !ok {
			car = s.lookupCar(ctx, r.CarID)
			cars[r.CarID] = car
		}

		user, ok := users[r.UserID]
		if !ok {
			user = s.lookupUser(ctx, r.UserID)
			users[r.UserID] = user
		}

		details = append(details, *models.FromDomainDetail(&domain.ReservationDetail{
			Reservation: r,
			Car:         car,
			User:        user,
		}))
	}

	return details
}

func (s *Service) lookupCar(ctx context.Context, carID int64) *domain.Car {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("resolveDetails: car id=%d not found", carID)
			return nil
		}
		s.logger.Error("resolveDetails: failed to get car id=%d: %v", carID, err)
		return nil
	}
	return car
}

func (s *Service) lookupUser(ctx context.Context, userID int64) *domain.User {
	user, err := s.userClient.GetUser(ctx, userID)
	if err != nil {
		s.logger.Warn("resolveDetails: failed to get user id=%d: %v", userID, err)
		return nil
	}
	return user
}

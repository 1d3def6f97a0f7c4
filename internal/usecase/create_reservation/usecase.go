package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	carRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/car"
	reservationRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/reservation"
)

// Стадии, на которых фиксируется конфликт (метка метрики)
const (
	conflictStageCheck      = "create_check"
	conflictStageConstraint = "create_constraint"
	conflictStageSerialize  = "create_serialization"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	carRepo         CarRepository
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	carRepo CarRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		carRepo:         carRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, car=%d, start=%s, end=%s",
		req.UserID, req.CarID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем диапазон дат
	period, err := domain.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Warn("CreateReservation: invalid date range: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}

	// 3. Получаем автомобиль
	car, err := uc.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			uc.logger.Warn("CreateReservation: car id=%d not found", req.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("CreateReservation: failed to get car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	// Флаг доступности выставляется администратором и не блокирует бронирование
	if !car.Availability {
		uc.logger.Warn("CreateReservation: car id=%d is marked unavailable, proceeding", car.ID)
	}

	// 4. Считаем стоимость
	quote, err := domain.ComputePrice(car.PricePerDay, period.Start, period.End)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to compute price for car id=%d: %v", car.ID, err)
		return nil, fmt.Errorf("%w: failed to compute price: %v", ErrInternal, err)
	}

	var result *domain.Reservation

	// 5. Проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Ищем активные бронирования на эти даты
		conflict, err := uc.reservationRepo.HasConflict(txCtx, car.ID, period, nil)
		if err != nil {
			return fmt.Errorf("failed to check conflicts: %w", err)
		}
		if conflict {
			uc.metrics.RecordConflict(conflictStageCheck)
			return ErrConflict
		}

		// 5.2. Создаем бронирование в статусе pending
		reservation := &domain.Reservation{
			UserID:          req.UserID,
			CarID:           car.ID,
			StartDate:       period.Start,
			EndDate:         period.End,
			TotalPrice:      quote.TotalPrice,
			Status:          domain.StatusPending,
			PickupLocation:  strings.TrimSpace(req.PickupLocation),
			DropoffLocation: strings.TrimSpace(req.DropoffLocation),
			CustomerInfo:    req.CustomerInfo,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.classifyTxError(req, err)
	}

	uc.metrics.RecordReservationCreated()
	uc.logger.Info("CreateReservation: successfully created reservation id=%d, days=%d, total=%.2f",
		result.ID, quote.Days, result.TotalPrice)

	return &Response{
		Reservation: result,
		Days:        quote.Days,
	}, nil
}

// classifyTxError приводит ошибку транзакции к ошибкам use case
func (uc *UseCase) classifyTxError(req *Request, err error) error {
	switch {
	case errors.Is(err, ErrConflict):
		uc.logger.Warn("CreateReservation: car id=%d already reserved for %s..%s",
			req.CarID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
		return ErrConflict
	case reservationRepo.IsConflict(err):
		uc.metrics.RecordConflict(conflictStageConstraint)
		uc.logger.Warn("CreateReservation: overlap rejected by constraint for car id=%d: %v", req.CarID, err)
		return ErrConflict
	case reservationRepo.IsSerializationFailure(err):
		uc.metrics.RecordConflict(conflictStageSerialize)
		uc.logger.Warn("CreateReservation: serialization failure for car id=%d: %v", req.CarID, err)
		return ErrConflictRetry
	default:
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

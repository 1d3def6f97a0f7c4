package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	carRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/car"
)

// UseCase use case проверки доступности автомобиля на даты с расчетом стоимости
// Результат информационный: окончательная проверка выполняется при создании бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	carRepo         CarRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, carRepo CarRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		carRepo:         carRepo,
		logger:          logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: car=%d, start=%s, end=%s",
		req.CarID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем диапазон дат
	period, err := domain.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Warn("CheckAvailability: invalid date range: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}

	// 3. Получаем автомобиль
	car, err := uc.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			uc.logger.Warn("CheckAvailability: car id=%d not found", req.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	// 4. Считаем стоимость
	quote, err := domain.ComputePrice(car.PricePerDay, period.Start, period.End)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to compute price for car id=%d: %v", car.ID, err)
		return nil, fmt.Errorf("%w: failed to compute price: %v", ErrInternal, err)
	}

	// 5. Ищем пересечения с активными бронированиями
	conflict, err := uc.reservationRepo.HasConflict(ctx, car.ID, period, nil)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to check conflicts for car id=%d: %v", car.ID, err)
		return nil, fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckAvailability: car id=%d available=%t, days=%d, total=%.2f",
		car.ID, !conflict, quote.Days, quote.TotalPrice)

	return &Response{
		CarID:       car.ID,
		StartDate:   period.Start,
		EndDate:     period.End,
		Available:   !conflict,
		Days:        quote.Days,
		PricePerDay: car.PricePerDay,
		TotalPrice:  quote.TotalPrice,
	}, nil
}

package transition_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/reservation"
)

// Стадии, на которых фиксируется конфликт (метка метрики)
const (
	conflictStageConfirm   = "confirm_check"
	conflictStageStatus    = "status_changed"
	conflictStageSerialize = "transition_serialization"
)

// UseCase use case для смены статуса бронирования
// (подтверждение, отмена, завершение)
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет переход бронирования в целевой статус
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionReservation: reservation=%d, caller=%d (%s), target=%s",
		req.ReservationID, req.Caller.UserID, req.Caller.Role, req.TargetStatus)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("TransitionReservation: validation failed: %v", err)
		return nil, err
	}

	var (
		result   *domain.Reservation
		previous domain.ReservationStatus
	)

	// 2. Чтение, проверки и условная запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем бронирование (строка блокируется до конца транзакции)
		current, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("failed to get reservation: %w", err)
		}
		previous = current.Status

		// 2.2. Чужое бронирование недоступно никому, кроме администратора,
		// независимо от его текущего статуса
		if !current.CanBeViewedBy(req.Caller) {
			return ErrForbidden
		}

		// 2.3. Проверяем переход по машине состояний
		if !current.Status.CanTransitionTo(req.TargetStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, req.TargetStatus)
		}

		// 2.4. Проверяем роль: подтверждение и завершение только для администратора
		if !current.CanBeTransitionedBy(req.Caller, req.TargetStatus) {
			return ErrForbidden
		}

		// 2.5. При подтверждении перепроверяем пересечения, исключая само бронирование
		if req.TargetStatus == domain.StatusConfirmed {
			conflict, err := uc.reservationRepo.HasConflict(txCtx, current.CarID, current.Period(), &current.ID)
			if err != nil {
				return fmt.Errorf("failed to check conflicts: %w", err)
			}
			if conflict {
				uc.metrics.RecordConflict(conflictStageConfirm)
				return ErrConflict
			}
		}

		// 2.6. Условная запись: статус должен остаться прежним
		updated, err := uc.reservationRepo.UpdateStatus(txCtx, current.ID, current.Status, req.TargetStatus)
		if err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, uc.classifyTxError(req, err)
	}

	uc.metrics.RecordTransition(string(result.Status))
	uc.logger.Info("TransitionReservation: reservation id=%d moved %s -> %s by user=%d",
		result.ID, previous, result.Status, req.Caller.UserID)

	return &Response{
		Reservation:    result,
		PreviousStatus: previous,
	}, nil
}

// classifyTxError приводит ошибку транзакции к ошибкам use case
func (uc *UseCase) classifyTxError(req *Request, err error) error {
	switch {
	case errors.Is(err, ErrReservationNotFound):
		uc.logger.Warn("TransitionReservation: reservation id=%d not found", req.ReservationID)
		return ErrReservationNotFound
	case errors.Is(err, ErrInvalidTransition):
		uc.logger.Warn("TransitionReservation: %v", err)
		return err
	case errors.Is(err, ErrForbidden):
		uc.logger.Warn("TransitionReservation: user=%d is not allowed to set %s on reservation id=%d",
			req.Caller.UserID, req.TargetStatus, req.ReservationID)
		return ErrForbidden
	case errors.Is(err, ErrConflict):
		uc.logger.Warn("TransitionReservation: reservation id=%d overlaps another active reservation", req.ReservationID)
		return ErrConflict
	case errors.Is(err, reservationRepo.ErrReservationNotFound):
		uc.logger.Warn("TransitionReservation: reservation id=%d disappeared during update", req.ReservationID)
		return ErrReservationNotFound
	case errors.Is(err, reservationRepo.ErrStatusChanged):
		uc.metrics.RecordConflict(conflictStageStatus)
		uc.logger.Warn("TransitionReservation: status of reservation id=%d changed concurrently", req.ReservationID)
		return ErrConflictRetry
	case reservationRepo.IsConflict(err):
		uc.metrics.RecordConflict(conflictStageConfirm)
		uc.logger.Warn("TransitionReservation: overlap rejected by constraint for reservation id=%d", req.ReservationID)
		return ErrConflict
	case reservationRepo.IsSerializationFailure(err):
		uc.metrics.RecordConflict(conflictStageSerialize)
		uc.logger.Warn("TransitionReservation: serialization failure for reservation id=%d: %v", req.ReservationID, err)
		return ErrConflictRetry
	default:
		uc.logger.Error("TransitionReservation: transaction failed: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

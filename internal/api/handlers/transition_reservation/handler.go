package transition_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/api/middleware"
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	transitionReservation "github.com/m04kA/SMC-CarRentalService/internal/usecase/transition_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStatus        = "некорректный статус, ожидается confirmed, cancelled или completed"
	msgNotFound             = "бронирование не найдено"
	msgInvalidTransition    = "переход в указанный статус невозможен"
	msgForbidden            = "недостаточно прав для смены статуса"
	msgConflict             = "автомобиль уже забронирован на эти даты"
	msgConflictRetry        = "статус бронирования изменился, повторите запрос"
	msgMissingUserID        = "отсутствует ID пользователя"
)

type Handler struct {
	useCase TransitionReservationUseCase
	logger  Logger
}

func NewHandler(useCase TransitionReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathInt64(r, "reservationId")
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	caller, ok := middleware.GetCaller(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	target, err := domain.ParseReservationStatus(req.Status)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid status: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &transitionReservation.Request{
		ReservationID: reservationID,
		Caller:        caller,
		TargetStatus:  target,
	})
	if err != nil {
		switch {
		case errors.Is(err, transitionReservation.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, transitionReservation.ErrInvalidTransition):
			handlers.RespondUnprocessable(w, msgInvalidTransition)

		case errors.Is(err, transitionReservation.ErrForbidden):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, transitionReservation.ErrConflict):
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, transitionReservation.ErrConflictRetry):
			handlers.RespondConflict(w, msgConflictRetry)

		case errors.Is(err, transitionReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /reservations/{id}/status - Failed to change status: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/status - Status changed: reservation_id=%d, %s -> %s, user_id=%d",
		reservationID, result.PreviousStatus, result.Reservation.Status, caller.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

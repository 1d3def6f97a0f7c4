package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-CarRentalService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange   = "дата окончания раньше даты начала"
	msgInvalidInput       = "некорректные данные бронирования"
	msgCarNotFound        = "автомобиль не найден"
	msgConflict           = "автомобиль уже забронирован на выбранные даты"
	msgConflictRetry      = "бронирование изменилось параллельно, повторите запрос"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrConflict):
			h.logger.Warn("POST /reservations - Car already reserved: user_id=%d, car_id=%d", userID, req.CarID)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, createReservation.ErrConflictRetry):
			h.logger.Warn("POST /reservations - Concurrent reservation: user_id=%d, car_id=%d", userID, req.CarID)
			handlers.RespondConflict(w, msgConflictRetry)

		case errors.Is(err, createReservation.ErrCarNotFound):
			h.logger.Warn("POST /reservations - Car not found: car_id=%d", req.CarID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, createReservation.ErrInvalidDateRange):
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, car_id=%d, error=%v",
				userID, req.CarID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user_id=%d, car_id=%d",
		result.Reservation.ID, userID, req.CarID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

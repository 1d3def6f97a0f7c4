package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-CarRentalService/internal/usecase/check_availability"
)

const (
	msgInvalidCarID     = "некорректный ID автомобиля"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange = "дата окончания раньше даты начала"
	msgCarNotFound      = "автомобиль не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cars/{carId}/availability?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carID, err := handlers.PathInt64(r, "carId")
	if err != nil {
		h.logger.Warn("GET /cars/{id}/availability - Invalid car ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	query := r.URL.Query()
	startDate, err := handlers.ParseDate(query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /cars/{id}/availability - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	endDate, err := handlers.ParseDate(query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /cars/{id}/availability - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		CarID:     carID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrCarNotFound):
			h.logger.Warn("GET /cars/{id}/availability - Car not found: car_id=%d", carID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidDateRange):
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /cars/{id}/availability - Failed to check availability: car_id=%d, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

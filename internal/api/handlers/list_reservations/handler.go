package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/api/middleware"
	"github.com/m04kA/SMC-CarRentalService/internal/service/reservations"
	"github.com/m04kA/SMC-CarRentalService/internal/service/reservations/models"
)

const (
	msgInvalidFilter = "некорректные параметры фильтрации"
	msgMissingUserID = "отсутствует ID пользователя"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations?userId=&carId=&status=&view=summary|detail
// Обычный пользователь всегда получает только свои бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCaller(r.Context())
	if !ok {
		h.logger.Warn("GET /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	userID, err := handlers.QueryInt64(r, "userId")
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid userId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	carID, err := handlers.QueryInt64(r, "carId")
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid carId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListReservationsRequest{
		Caller: caller,
		UserID: userID,
		CarID:  carID,
		Status: handlers.QueryString(r, "status"),
		View:   r.URL.Query().Get("view"),
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: user_id=%d, error=%v", caller.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: user_id=%d, count=%d",
		caller.UserID, result.Count)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_stats

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
	msgForbidden     = "статистика доступна только администратору"
)

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/stats?userId=&carId=&status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetCaller(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/stats - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	userID, err := handlers.QueryInt64(r, "userId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	carID, err := handlers.QueryInt64(r, "carId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	stats, err := h.service.Stats(r.Context(), &models.StatsRequest{
		Caller: caller,
		UserID: userID,
		CarID:  carID,
		Status: handlers.QueryString(r, "status"),
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrForbidden):
			h.logger.Warn("GET /admin/stats - Access denied: user_id=%d", caller.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/stats - Failed to compute stats: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stats)
}

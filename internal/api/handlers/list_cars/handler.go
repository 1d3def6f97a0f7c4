package list_cars

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/service/cars"
	"github.com/m04kA/SMC-CarRentalService/internal/service/cars/models"
)

const (
	msgInvalidFilter = "некорректные параметры фильтрации"
)

type Handler struct {
	service CarService
	logger  Logger
}

func NewHandler(service CarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		h.logger.Warn("GET /cars - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, cars.ErrInvalidInput):
			h.logger.Warn("GET /cars - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /cars - Failed to list cars: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cars - Cars retrieved successfully: count=%d", result.Count)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseRequest собирает фильтры каталога из query параметров
func parseRequest(r *http.Request) (*models.ListCarsRequest, error) {
	req := &models.ListCarsRequest{
		Type:         handlers.QueryString(r, "type"),
		Brand:        handlers.QueryString(r, "brand"),
		Fuel:         handlers.QueryString(r, "fuel"),
		Transmission: handlers.QueryString(r, "transmission"),
		Location:     handlers.QueryString(r, "location"),
	}

	var err error
	if req.MinPrice, err = handlers.QueryFloat64(r, "minPrice"); err != nil {
		return nil, err
	}
	if req.MaxPrice, err = handlers.QueryFloat64(r, "maxPrice"); err != nil {
		return nil, err
	}
	if req.Seats, err = handlers.QueryInt(r, "seats"); err != nil {
		return nil, err
	}
	if req.Availability, err = handlers.QueryBool(r, "availability"); err != nil {
		return nil, err
	}

	return req, nil
}

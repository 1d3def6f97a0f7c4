package get_car

import (
	"context"

	"github.com/m04kA/SMC-CarRentalService/internal/service/cars/models"
)

type CarService interface {
	GetByID(ctx context.Context, id int64) (*models.CarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

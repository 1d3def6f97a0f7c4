package cars

import (
	"context"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// CarRepository интерфейс каталога автомобилей
type CarRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	List(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package check_availability

import (
	"context"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// HasConflict проверяет наличие активного бронирования на пересекающиеся даты
	HasConflict(ctx context.Context, carID int64, period domain.DateRange, excludeID *int64) (bool, error)
}

// CarRepository интерфейс каталога автомобилей
type CarRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

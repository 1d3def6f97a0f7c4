package create_reservation

import (
	"context"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	HasConflict(ctx context.Context, carID int64, period domain.DateRange, excludeID *int64) (bool, error)
}

// CarRepository интерфейс каталога автомобилей
type CarRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс доменных метрик бронирований
type Metrics interface {
	RecordReservationCreated()
	RecordConflict(stage string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

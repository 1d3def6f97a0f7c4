package reservation

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrConflict возвращается, когда автомобиль уже забронирован на пересекающиеся даты
	// (срабатывание exclusion constraint reservations_no_overlap)
	ErrConflict = errors.New("reservation.repository: overlapping active reservation")

	// ErrStatusChanged возвращается, когда статус изменился между чтением и записью
	ErrStatusChanged = errors.New("reservation.repository: status changed concurrently")

	// ErrSerialization возвращается при конфликте сериализации транзакций
	ErrSerialization = errors.New("reservation.repository: serialization failure")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)

// Коды ошибок PostgreSQL
const (
	pgExclusionViolation   = pq.ErrorCode("23P01")
	pgSerializationFailure = pq.ErrorCode("40001")
	pgDeadlockDetected     = pq.ErrorCode("40P01")
)

// translateError превращает ошибки PostgreSQL в ошибки репозитория.
// Возвращает nil, если ошибка не распознана.
func translateError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch pqErr.Code {
	case pgExclusionViolation:
		return ErrConflict
	case pgSerializationFailure, pgDeadlockDetected:
		return ErrSerialization
	default:
		return nil
	}
}

// IsSerializationFailure проверяет, что ошибка (в том числе при COMMIT)
// вызвана конфликтом сериализации
func IsSerializationFailure(err error) bool {
	if errors.Is(err, ErrSerialization) {
		return true
	}
	return errors.Is(translateError(err), ErrSerialization)
}

// IsConflict проверяет, что ошибка вызвана пересечением бронирований
func IsConflict(err error) bool {
	if errors.Is(err, ErrConflict) {
		return true
	}
	return errors.Is(translateError(err), ErrConflict)
}

package create_reservation

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("create_reservation: car not found")

	// ErrInvalidDateRange возвращается, когда дата окончания раньше даты начала
	ErrInvalidDateRange = errors.New("create_reservation: end date is before start date")

	// ErrConflict возвращается, когда автомобиль уже забронирован на пересекающиеся даты
	ErrConflict = errors.New("create_reservation: car is already reserved for these dates")

	// ErrConflictRetry возвращается при конфликте параллельных транзакций, запрос можно повторить
	ErrConflictRetry = errors.New("create_reservation: concurrent update, retry the request")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

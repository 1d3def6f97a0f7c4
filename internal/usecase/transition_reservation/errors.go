package transition_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("transition_reservation: reservation not found")

	// ErrInvalidTransition возвращается, когда переход запрещен машиной состояний
	ErrInvalidTransition = errors.New("transition_reservation: transition is not allowed")

	// ErrForbidden возвращается, когда у пользователя нет прав на переход
	ErrForbidden = errors.New("transition_reservation: access denied")

	// ErrConflict возвращается при подтверждении, если даты пересекаются с другим активным бронированием
	ErrConflict = errors.New("transition_reservation: car is already reserved for these dates")

	// ErrConflictRetry возвращается, когда статус изменился параллельно, запрос можно повторить
	ErrConflictRetry = errors.New("transition_reservation: status changed concurrently, retry the request")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transition_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transition_reservation: internal error")
)

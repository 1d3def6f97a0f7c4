package cars

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("cars: car not found")

	// ErrInvalidInput возвращается при некорректных параметрах фильтрации
	ErrInvalidInput = errors.New("cars: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cars: internal error")
)

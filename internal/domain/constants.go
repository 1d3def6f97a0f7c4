package domain

// Business validation constants
const (
	MaxLocationLength     = 255
	MaxCustomerNameLength = 255
	MaxCustomerPhoneLen   = 32
	MaxCustomerEmailLen   = 255
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, блокирующие автомобиль на свои даты.
// Используется при проверке пересечений.
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// AllStatuses все статусы бронирования
var AllStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID          int64                // ID пользователя-владельца (из аутентификации)
	CarID           int64                // ID автомобиля
	StartDate       time.Time            // Дата начала аренды (включительно)
	EndDate         time.Time            // Дата окончания аренды (включительно)
	PickupLocation  string               // Место получения
	DropoffLocation string               // Место возврата
	CustomerInfo    *domain.CustomerInfo // Контактные данные (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation *domain.Reservation
	Days        int // Количество оплачиваемых дней
}

package check_availability

import "time"

// Request модель запроса проверки доступности автомобиля
type Request struct {
	CarID     int64
	StartDate time.Time
	EndDate   time.Time
}

// Response результат проверки: доступность и расчет стоимости
type Response struct {
	CarID       int64
	StartDate   time.Time
	EndDate     time.Time
	Available   bool    // Нет активных бронирований на эти даты
	Days        int     // Количество оплачиваемых дней
	PricePerDay float64 // Цена за день
	TotalPrice  float64 // Итоговая стоимость
}

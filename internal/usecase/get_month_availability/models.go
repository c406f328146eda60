package get_month_availability

import "time"

// Request модель запроса карты доступности на месяц
type Request struct {
	Year  int
	Month time.Month
}

// Response карта "дата → есть ли свободный слот"
// Ключ - дата в формате YYYY-MM-DD
type Response struct {
	Year         int
	Month        time.Month
	Availability map[string]bool
}

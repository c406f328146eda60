package get_day_grid

import (
	"time"

	"github.com/salonik/SLN-BookingService/pkg/types"
)

// Request модель запроса сетки расписания на день
type Request struct {
	Date time.Time // Дата (без времени)
}

// SlotAppointment данные записи для отображения в ячейке сетки
type SlotAppointment struct {
	ID          int64
	ClientName  string
	ServiceName string
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      string
}

// Slot ячейка 30-минутной сетки
type Slot struct {
	Time  types.TimeString
	State string // free | start | continuation

	// Appointment запись для отображения (первая по времени начала)
	Appointment *SlotAppointment

	// Anomalous true, если ячейку занимают несколько записей -
	// рендер обязан показать аномалию, а не спрятать её
	Anomalous bool
	Occupants []SlotAppointment
}

// Response модель ответа с сеткой дня
type Response struct {
	Date   time.Time
	Closed bool
	Slots  []Slot
}

package create_appointment

import (
	"time"

	"github.com/salonik/SLN-BookingService/pkg/types"
)

// NewClientData данные для заведения walk-in / телефонного клиента
type NewClientData struct {
	FullName string
	Phone    *string
	Email    *string
}

// Request модель запроса на создание записи
// Должно быть заполнено ровно одно из полей ClientID / UnregisteredClientID / NewClient
type Request struct {
	StaffID   int64     // ID сотрудника, создающего запись
	ServiceID int64     // ID услуги из прайса
	Date      time.Time // Дата записи (без времени)

	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время конца; если пусто - start + длительность услуги

	ClientID             *int64         // Зарегистрированный клиент
	UnregisteredClientID *int64         // Существующий незарегистрированный клиент
	NewClient            *NewClientData // Новый незарегистрированный клиент

	ClientName string  // Имя для отображения (fallback при degraded accounts-service)
	Notes      *string // Заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID                   int64
	ClientID             *int64
	UnregisteredClientID *int64
	ServiceID            int64
	AppointmentDate      time.Time
	StartTime            types.TimeString
	EndTime              types.TimeString
	Status               string

	ClientName   string
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

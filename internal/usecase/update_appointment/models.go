package update_appointment

import (
	"time"

	"github.com/salonik/SLN-BookingService/pkg/types"
)

// Request модель запроса на перенос/изменение записи
// Nil-поля означают "оставить как есть"
type Request struct {
	AppointmentID int64
	StaffID       int64

	Date      *time.Time        // Новая дата
	StartTime *types.TimeString // Новое время начала
	EndTime   *types.TimeString // Новое время конца; при смене услуги или начала без конца - пересчитывается
	ServiceID *int64            // Новая услуга
	Notes     *string           // Новые заметки
}

// Response модель ответа с обновлённой записью
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

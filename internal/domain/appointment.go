package domain

import (
	"time"

	"github.com/salonik/SLN-BookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a salon appointment
// Ровно одно из полей ClientID / UnregisteredClientID должно быть заполнено
type Appointment struct {
	ID                   int64
	ClientID             *int64 // зарегистрированный клиент (аккаунт в accounts-service)
	UnregisteredClientID *int64 // клиент, заведённый мастером вручную
	ServiceID            int64
	AppointmentDate      time.Time
	StartTime            types.TimeString
	EndTime              types.TimeString
	Status               AppointmentStatus

	// Denormalized data for display and history
	ClientName   string
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CreatedBy          int64 // ID сотрудника, создавшего запись
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies its time slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the appointment time can be changed
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// HasRegisteredClient returns true if the appointment references an account-backed client
func (a *Appointment) HasRegisteredClient() bool {
	return a.ClientID != nil
}

// Interval returns the appointment interval as minutes from midnight
func (a *Appointment) Interval() (start int, end int, err error) {
	start, err = a.StartTime.Minutes()
	if err != nil {
		return 0, 0, err
	}
	end, err = a.EndTime.Minutes()
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// DayAppointmentsFilter фильтр для получения записей на дату
type DayAppointmentsFilter struct {
	Date             time.Time
	ExcludeID        *int64 // исключить запись (используется при переносе)
	IncludeCancelled bool
}

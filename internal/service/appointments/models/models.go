package models

import (
	"fmt"
	"time"

	"github.com/salonik/SLN-BookingService/internal/domain"
	"github.com/salonik/SLN-BookingService/pkg/types"
)

// AppointmentResponse представление записи для сервисного слоя
type AppointmentResponse struct {
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

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse
}

// GetClientAppointmentsRequest запрос истории записей клиента
// Должно быть заполнено ровно одно из полей ClientID / UnregisteredClientID
type GetClientAppointmentsRequest struct {
	ClientID             *int64
	UnregisteredClientID *int64
	Status               *string
}

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	StaffID int64
	Reason  string
}

// FromDomainAppointment конвертирует domain.Appointment в response-модель
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                   appt.ID,
		ClientID:             appt.ClientID,
		UnregisteredClientID: appt.UnregisteredClientID,
		ServiceID:            appt.ServiceID,
		AppointmentDate:      appt.AppointmentDate,
		StartTime:            appt.StartTime,
		EndTime:              appt.EndTime,
		Status:               string(appt.Status),
		ClientName:           appt.ClientName,
		ServiceName:          appt.ServiceName,
		ServicePrice:         appt.ServicePrice,
		Notes:                appt.Notes,
		CancellationReason:   appt.CancellationReason,
		CancelledAt:          appt.CancelledAt,
		CreatedAt:            appt.CreatedAt,
		UpdatedAt:            appt.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список записей
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	result := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		result[i] = FromDomainAppointment(appt)
	}
	return &AppointmentListResponse{Appointments: result}
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	switch domain.AppointmentStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
		return domain.AppointmentStatus(s), nil
	default:
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
}

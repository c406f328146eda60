package get_client_appointments

import (
	"time"

	"github.com/salonik/SLN-BookingService/internal/domain"
	"github.com/salonik/SLN-BookingService/internal/service/appointments/models"
)

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID                   int64   `json:"id"`
	ClientID             *int64  `json:"clientId,omitempty"`
	UnregisteredClientID *int64  `json:"unregisteredClientId,omitempty"`
	ServiceID            int64   `json:"serviceId"`
	AppointmentDate      string  `json:"appointmentDate"`
	StartTime            string  `json:"startTime"`
	EndTime              string  `json:"endTime"`
	Status               string  `json:"status"`
	ClientName           string  `json:"clientName"`
	ServiceName          string  `json:"serviceName"`
	ServicePrice         float64 `json:"servicePrice"`
	Notes                *string `json:"notes,omitempty"`
	CreatedAt            string  `json:"createdAt"`
}

// AppointmentListResponse HTTP response со списком записей клиента
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromServiceResponse конвертирует список сервисных моделей в HTTP response
func FromServiceResponse(resp *models.AppointmentListResponse) *AppointmentListResponse {
	out := make([]AppointmentResponse, len(resp.Appointments))
	for i, appt := range resp.Appointments {
		out[i] = AppointmentResponse{
			ID:                   appt.ID,
			ClientID:             appt.ClientID,
			UnregisteredClientID: appt.UnregisteredClientID,
			ServiceID:            appt.ServiceID,
			AppointmentDate:      appt.AppointmentDate.Format(domain.DateFormat),
			StartTime:            appt.StartTime.String(),
			EndTime:              appt.EndTime.String(),
			Status:               appt.Status,
			ClientName:           appt.ClientName,
			ServiceName:          appt.ServiceName,
			ServicePrice:         appt.ServicePrice,
			Notes:                appt.Notes,
			CreatedAt:            appt.CreatedAt.Format(time.RFC3339),
		}
	}
	return &AppointmentListResponse{Appointments: out}
}

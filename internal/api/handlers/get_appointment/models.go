package get_appointment

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
	CancellationReason   *string `json:"cancellationReason,omitempty"`
	CancelledAt          *string `json:"cancelledAt,omitempty"`
	CreatedAt            string  `json:"createdAt"`
	UpdatedAt            string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует модель сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentResponse) *AppointmentResponse {
	out := &AppointmentResponse{
		ID:                   resp.ID,
		ClientID:             resp.ClientID,
		UnregisteredClientID: resp.UnregisteredClientID,
		ServiceID:            resp.ServiceID,
		AppointmentDate:      resp.AppointmentDate.Format(domain.DateFormat),
		StartTime:            resp.StartTime.String(),
		EndTime:              resp.EndTime.String(),
		Status:               resp.Status,
		ClientName:           resp.ClientName,
		ServiceName:          resp.ServiceName,
		ServicePrice:         resp.ServicePrice,
		Notes:                resp.Notes,
		CancellationReason:   resp.CancellationReason,
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.CancelledAt != nil {
		cancelledAt := resp.CancelledAt.Format(time.RFC3339)
		out.CancelledAt = &cancelledAt
	}

	return out
}

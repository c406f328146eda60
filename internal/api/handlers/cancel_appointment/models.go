package cancel_appointment

import "github.com/salonik/SLN-BookingService/internal/service/appointments/models"

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest(staffID int64) *models.CancelAppointmentRequest {
	return &models.CancelAppointmentRequest{
		StaffID: staffID,
		Reason:  r.Reason,
	}
}

package create_appointment

import (
	"time"

	"github.com/salonik/SLN-BookingService/internal/domain"
	createAppointment "github.com/salonik/SLN-BookingService/internal/usecase/create_appointment"
	"github.com/salonik/SLN-BookingService/pkg/types"
)

// NewClientData данные нового незарегистрированного клиента
type NewClientData struct {
	FullName string  `json:"fullName"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID       int64  `json:"serviceId"`
	AppointmentDate string `json:"appointmentDate"` // "2026-09-15"
	StartTime       string `json:"startTime"`       // "10:00"
	EndTime         string `json:"endTime,omitempty"`

	ClientID             *int64         `json:"clientId,omitempty"`
	UnregisteredClientID *int64         `json:"unregisteredClientId,omitempty"`
	NewClient            *NewClientData `json:"newClient,omitempty"`

	ClientName string  `json:"clientName,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// ConflictingAppointment данные записи, с которой пересекся запрошенный интервал
type ConflictingAppointment struct {
	ID          int64  `json:"id"`
	ClientName  string `json:"clientName"`
	ServiceName string `json:"serviceName"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// ConflictResponse тело 409 ответа с деталями пересечения
type ConflictResponse struct {
	Error     string                   `json:"error"`
	Conflicts []ConflictingAppointment `json:"conflicts"`
}

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
	UpdatedAt            string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(staffID int64) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	var endTime types.TimeString
	if r.EndTime != "" {
		endTime, err = types.NewTimeStringFromString(r.EndTime)
		if err != nil {
			return nil, err
		}
	}

	req := &createAppointment.Request{
		StaffID:              staffID,
		ServiceID:            r.ServiceID,
		Date:                 date,
		StartTime:            startTime,
		EndTime:              endTime,
		ClientID:             r.ClientID,
		UnregisteredClientID: r.UnregisteredClientID,
		ClientName:           r.ClientName,
		Notes:                r.Notes,
	}

	if r.NewClient != nil {
		req.NewClient = &createAppointment.NewClientData{
			FullName: r.NewClient.FullName,
			Phone:    r.NewClient.Phone,
			Email:    r.NewClient.Email,
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
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
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            resp.UpdatedAt.Format(time.RFC3339),
	}
}

// FromConflictError конвертирует детали конфликта в тело 409 ответа
func FromConflictError(message string, conflictErr *createAppointment.ConflictError) *ConflictResponse {
	conflicts := make([]ConflictingAppointment, len(conflictErr.Conflicts))
	for i, appt := range conflictErr.Conflicts {
		conflicts[i] = ConflictingAppointment{
			ID:          appt.ID,
			ClientName:  appt.ClientName,
			ServiceName: appt.ServiceName,
			StartTime:   appt.StartTime.String(),
			EndTime:     appt.EndTime.String(),
		}
	}
	return &ConflictResponse{Error: message, Conflicts: conflicts}
}

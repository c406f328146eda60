package notifications

import (
	"context"
	"fmt"

	"github.com/salonik/SLN-BookingService/internal/domain"
	"github.com/salonik/SLN-BookingService/internal/infra/storage/notification"
)

// Типы уведомлений клиента
const (
	TypeAppointmentCreated     = "appointment_created"
	TypeAppointmentRescheduled = "appointment_rescheduled"
	TypeAppointmentCancelled   = "appointment_cancelled"
)

// Service записывает уведомления для зарегистрированных клиентов
// Доставкой занимается отдельный сервис, здесь только постановка в очередь
type Service struct {
	notificationRepo NotificationRepository
}

// New создает новый сервис уведомлений
func New(notificationRepo NotificationRepository) *Service {
	return &Service{notificationRepo: notificationRepo}
}

// AppointmentCreated уведомляет клиента о новой записи
func (s *Service) AppointmentCreated(ctx context.Context, appt *domain.Appointment) error {
	if appt.ClientID == nil {
		return nil
	}

	return s.notificationRepo.Insert(ctx, &notification.Notification{
		UserID: *appt.ClientID,
		Type:   TypeAppointmentCreated,
		Title:  "Вы записаны",
		Body: fmt.Sprintf("Запись на %s: %s, %s - %s",
			appt.ServiceName,
			appt.AppointmentDate.Format(domain.DateFormat),
			appt.StartTime, appt.EndTime),
		Data: appointmentData(appt),
	})
}

// AppointmentRescheduled уведомляет клиента о переносе записи
func (s *Service) AppointmentRescheduled(ctx context.Context, appt *domain.Appointment) error {
	if appt.ClientID == nil {
		return nil
	}

	return s.notificationRepo.Insert(ctx, &notification.Notification{
		UserID: *appt.ClientID,
		Type:   TypeAppointmentRescheduled,
		Title:  "Запись перенесена",
		Body: fmt.Sprintf("Новое время записи на %s: %s, %s - %s",
			appt.ServiceName,
			appt.AppointmentDate.Format(domain.DateFormat),
			appt.StartTime, appt.EndTime),
		Data: appointmentData(appt),
	})
}

// AppointmentCancelled уведомляет клиента об отмене записи
func (s *Service) AppointmentCancelled(ctx context.Context, appt *domain.Appointment, reason string) error {
	if appt.ClientID == nil {
		return nil
	}

	data := appointmentData(appt)
	if reason != "" {
		data["reason"] = reason
	}

	return s.notificationRepo.Insert(ctx, &notification.Notification{
		UserID: *appt.ClientID,
		Type:   TypeAppointmentCancelled,
		Title:  "Запись отменена",
		Body: fmt.Sprintf("Запись на %s (%s, %s) отменена",
			appt.ServiceName,
			appt.AppointmentDate.Format(domain.DateFormat),
			appt.StartTime),
		Data: data,
	})
}

func appointmentData(appt *domain.Appointment) map[string]interface{} {
	return map[string]interface{}{
		"appointment_id": appt.ID,
		"service_id":     appt.ServiceID,
		"date":           appt.AppointmentDate.Format(domain.DateFormat),
		"start_time":     appt.StartTime.String(),
		"end_time":       appt.EndTime.String(),
	}
}

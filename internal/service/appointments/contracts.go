package appointments

import (
	"context"

	"github.com/salonik/SLN-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByClient(ctx context.Context, clientID *int64, unregisteredClientID *int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// Notifier отправляет уведомление клиенту об отмене записи
type Notifier interface {
	AppointmentCancelled(ctx context.Context, appt *domain.Appointment, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

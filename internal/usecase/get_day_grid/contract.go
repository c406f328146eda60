package get_day_grid

import (
	"context"

	"github.com/salonik/SLN-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByDate(ctx context.Context, filter domain.DayAppointmentsFilter) ([]*domain.Appointment, error)
}

// SalonRepository интерфейс репозитория настроек салона
type SalonRepository interface {
	GetWorkingHours(ctx context.Context) (domain.WeekSchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

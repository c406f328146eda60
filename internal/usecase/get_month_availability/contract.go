package get_month_availability

import (
	"context"
	"time"

	"github.com/salonik/SLN-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
}

// SalonRepository интерфейс репозитория настроек салона
type SalonRepository interface {
	GetWorkingHours(ctx context.Context) (domain.WeekSchedule, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

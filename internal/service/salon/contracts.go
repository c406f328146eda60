package salon

import (
	"context"

	"github.com/salonik/SLN-BookingService/internal/domain"
)

// SalonRepository интерфейс репозитория настроек салона
type SalonRepository interface {
	GetWorkingHours(ctx context.Context) (domain.WeekSchedule, error)
	UpdateWorkingHours(ctx context.Context, week domain.WeekSchedule) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

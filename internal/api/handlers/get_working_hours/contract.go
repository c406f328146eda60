package get_working_hours

import (
	"context"

	"github.com/salonik/SLN-BookingService/internal/domain"
)

type SalonService interface {
	GetWorkingHours(ctx context.Context) (domain.WeekSchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

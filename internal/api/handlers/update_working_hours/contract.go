package update_working_hours

import (
	"context"

	"github.com/salonik/SLN-BookingService/internal/domain"
)

type SalonService interface {
	UpdateWorkingHours(ctx context.Context, week domain.WeekSchedule) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

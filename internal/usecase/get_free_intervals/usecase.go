package get_free_intervals

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonik/SLN-BookingService/internal/domain"
	salonRepo "github.com/salonik/SLN-BookingService/internal/infra/storage/salon"
)

// UseCase use case получения свободных интервалов дня для модалки записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	salonRepo       SalonRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, salonRepo SalonRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		salonRepo:       salonRepo,
		logger:          logger,
	}
}

// Execute возвращает упорядоченные максимальные свободные промежутки дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.MinDurationMinutes < 0 {
		return nil, fmt.Errorf("%w: minDurationMinutes must not be negative", ErrInvalidInput)
	}

	minDuration := req.MinDurationMinutes
	if minDuration == 0 {
		minDuration = domain.MinBookableGapMinutes
	}

	week, err := uc.salonRepo.GetWorkingHours(ctx)
	if err != nil && !errors.Is(err, salonRepo.ErrSettingsNotFound) {
		uc.logger.Error("GetFreeIntervals: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	day := domain.ResolveWorkingHours(req.Date, week)
	if day.Closed {
		uc.logger.Info("GetFreeIntervals: salon is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Closed: true, Intervals: []FreeInterval{}}, nil
	}

	appointments, err := uc.appointmentRepo.GetByDate(ctx, domain.DayAppointmentsFilter{Date: req.Date})
	if err != nil {
		uc.logger.Error("GetFreeIntervals: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	free, err := domain.FreeIntervals(day, appointments, minDuration)
	if err != nil {
		uc.logger.Error("GetFreeIntervals: failed to compute free intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to compute free intervals: %v", ErrInternal, err)
	}

	intervals := make([]FreeInterval, len(free))
	for i, f := range free {
		intervals[i] = FreeInterval{StartTime: f.StartTime, EndTime: f.EndTime}
	}

	uc.logger.Info("GetFreeIntervals: %d intervals for %s (min %d min)",
		len(intervals), req.Date.Format(domain.DateFormat), minDuration)

	return &Response{Date: req.Date, Intervals: intervals}, nil
}

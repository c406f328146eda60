package get_month_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonik/SLN-BookingService/internal/domain"
	salonRepo "github.com/salonik/SLN-BookingService/internal/infra/storage/salon"
)

// UseCase use case сканирования месяца для календарного виджета
// Записи всего месяца выбираются одним запросом, расчёт по дням идёт в памяти
type UseCase struct {
	appointmentRepo AppointmentRepository
	salonRepo       SalonRepository
	timeProvider    TimeProvider
	blockedWeekday  *time.Weekday // день недели, закрытый для онлайн-записи (опционально)
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	salonRepo SalonRepository,
	blockedWeekday *time.Weekday,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		salonRepo:       salonRepo,
		timeProvider:    &RealTimeProvider{},
		blockedWeekday:  blockedWeekday,
		logger:          logger,
	}
}

// Execute строит карту доступности месяца
// Прошедшие дни и заблокированный день недели помечаются недоступными
// без запуска калькулятора - это фильтр вызывающей стороны, не калькулятора
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Year < 2000 || req.Year > 2100 {
		return nil, fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}
	if req.Month < time.January || req.Month > time.December {
		return nil, fmt.Errorf("%w: invalid month", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	firstDay := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	week, err := uc.salonRepo.GetWorkingHours(ctx)
	if err != nil && !errors.Is(err, salonRepo.ErrSettingsNotFound) {
		uc.logger.Error("ScanMonth: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	appointments, err := uc.appointmentRepo.GetByDateRange(ctx, firstDay, lastDay)
	if err != nil {
		uc.logger.Error("ScanMonth: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// Раскладываем записи месяца по дням
	byDate := make(map[string][]*domain.Appointment)
	for _, appt := range appointments {
		key := appt.AppointmentDate.Format(domain.DateFormat)
		byDate[key] = append(byDate[key], appt)
	}

	availability := make(map[string]bool, lastDay.Day())

	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		key := day.Format(domain.DateFormat)

		if isDateInPast(day, now) {
			availability[key] = false
			continue
		}
		if uc.blockedWeekday != nil && day.Weekday() == *uc.blockedWeekday {
			availability[key] = false
			continue
		}

		schedule := domain.ResolveWorkingHours(day, week)
		hasSlot, err := domain.HasAnyFreeSlot(schedule, byDate[key], domain.MinBookableGapMinutes)
		if err != nil {
			uc.logger.Error("ScanMonth: failed to scan %s: %v", key, err)
			return nil, fmt.Errorf("%w: failed to scan %s: %v", ErrInternal, key, err)
		}

		availability[key] = hasSlot
	}

	uc.logger.Info("ScanMonth: scanned %d-%02d, %d appointments", req.Year, req.Month, len(appointments))

	return &Response{
		Year:         req.Year,
		Month:        req.Month,
		Availability: availability,
	}, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
